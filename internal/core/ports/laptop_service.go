package ports

import (
	"context"

	"github.com/techstore/inventory-api/internal/core/domain"
)

// Actor identifies the authenticated caller of a mutating operation,
// as decoded from the request's bearer token.
type Actor struct {
	ID   string
	Role string
}

// CreateLaptopInput carries all data needed to add a laptop to the inventory.
type CreateLaptopInput struct {
	Brand     string
	Model     string
	Price     float64
	RAMGb     int
	StorageGb int
	Processor string
	Available bool
}

// LaptopService orchestrates inventory reads and role-gated writes.
type LaptopService interface {
	List(ctx context.Context) ([]domain.Laptop, error)
	Get(ctx context.Context, id string) (*domain.Laptop, error)
	Create(ctx context.Context, input CreateLaptopInput, actor Actor) (*domain.Laptop, error)
	Update(ctx context.Context, id string, update LaptopUpdate, actor Actor) (*domain.Laptop, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
