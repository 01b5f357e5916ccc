package repository

import (
	"context"
	"net/http"

	domainRepo "github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/internal/infrastructure/backend"
)

type authRepository struct {
	client *backend.Client
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(client *backend.Client) domainRepo.AuthRepository {
	return &authRepository{client: client}
}

// Login succeeds on any 2xx; the API answers failures with {"error": "..."}.
func (r *authRepository) Login(ctx context.Context, username, password string) error {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	return r.client.Do(ctx, http.MethodPost, "login", body, nil)
}
