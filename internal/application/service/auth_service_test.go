package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/billerone/billerone-web/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(repos *testRepos) (*AuthService, *WorkspaceStore, *utils.JWTManager) {
	store := NewWorkspaceStore(newTestFactory(repos), time.Hour, time.Hour)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(repos.auth, jwtManager, store, zap.NewNop()), store, jwtManager
}

func TestAuthService_Login(t *testing.T) {
	repos := newTestRepos()
	svc, store, jwtManager := newTestAuthService(repos)
	defer store.Close()

	out, err := svc.Login(context.Background(), &LoginInput{Username: " ana ", Password: "secreto"})
	require.NoError(t, err)

	assert.Equal(t, "ana", out.Username)
	assert.Equal(t, time.Hour, out.ExpiresIn)
	assert.Equal(t, 1, store.Len())

	claims, err := jwtManager.ValidateSessionToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, claims.SessionID)
	assert.Equal(t, "ana", claims.Username)

	svc.Logout(out.SessionID)
	assert.Zero(t, store.Len())
}

func TestAuthService_LoginValidation(t *testing.T) {
	repos := newTestRepos()
	svc, store, _ := newTestAuthService(repos)
	defer store.Close()

	_, err := svc.Login(context.Background(), &LoginInput{})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repos.auth.calls)
}

func TestAuthService_LoginRejected(t *testing.T) {
	repos := newTestRepos()
	repos.auth.err = apperror.NewBackendError(http.StatusUnauthorized, "Credenciales inválidas")
	svc, store, _ := newTestAuthService(repos)
	defer store.Close()

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ana", Password: "x"})

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	assert.Zero(t, store.Len())
}

func TestAuthService_LoginBackendDown(t *testing.T) {
	repos := newTestRepos()
	repos.auth.err = apperror.ErrBackendUnavailable
	svc, store, _ := newTestAuthService(repos)
	defer store.Close()

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ana", Password: "x"})

	assert.ErrorIs(t, err, apperror.ErrBackendUnavailable)
}
