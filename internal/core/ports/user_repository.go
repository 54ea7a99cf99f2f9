package ports

import (
	"context"

	"github.com/techstore/inventory-api/internal/core/domain"
)

// UserRepository defines the interface for credential-store persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
