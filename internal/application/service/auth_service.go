package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/billerone/billerone-web/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles sign-in against the billing API and session lifecycle
type AuthService struct {
	authRepo   repository.AuthRepository
	jwtManager *utils.JWTManager
	workspaces *WorkspaceStore
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	authRepo repository.AuthRepository,
	jwtManager *utils.JWTManager,
	workspaces *WorkspaceStore,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		authRepo:   authRepo,
		jwtManager: jwtManager,
		workspaces: workspaces,
		logger:     logger,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	SessionID   uuid.UUID
	Username    string
	AccessToken string
	ExpiresIn   time.Duration
}

// Login checks the credentials with the billing API and opens a session
// with an empty workspace.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	username := strings.TrimSpace(input.Username)

	fields := map[string]string{}
	if username == "" {
		fields["username"] = "Username is required"
	}
	if input.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationErrorFromMap(fields)
	}

	if err := s.authRepo.Login(ctx, username, input.Password); err != nil {
		if appErr := apperror.GetAppError(err); appErr.Code == http.StatusUnauthorized || appErr.Code == http.StatusBadRequest {
			s.logger.Info("login rejected", zap.String("username", username))
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	sessionID := uuid.New()
	token, err := s.jwtManager.GenerateSessionToken(sessionID, username)
	if err != nil {
		return nil, err
	}

	s.workspaces.Get(sessionID, username)
	s.logger.Info("session opened", zap.String("username", username), zap.String("session_id", sessionID.String()))

	return &LoginOutput{
		SessionID:   sessionID,
		Username:    username,
		AccessToken: token,
		ExpiresIn:   s.jwtManager.Expiry(),
	}, nil
}

// Logout discards the session's workspace.
func (s *AuthService) Logout(sessionID uuid.UUID) {
	s.workspaces.Drop(sessionID)
	s.logger.Info("session closed", zap.String("session_id", sessionID.String()))
}
