package ports

import (
	"context"

	"github.com/techstore/inventory-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new user account with role "user" and returns it
	// together with a freshly issued token.
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	// Login verifies the credentials and returns a token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
