package repository

import "context"

// AuthRepository checks credentials against the billing API
type AuthRepository interface {
	Login(ctx context.Context, username, password string) error
}
