package ports

import (
	"context"

	"github.com/techstore/inventory-api/internal/core/domain"
)

// LaptopUpdate carries a partial update: nil fields are left untouched.
type LaptopUpdate struct {
	Brand     *string
	Model     *string
	Price     *float64
	RAMGb     *int
	StorageGb *int
	Processor *string
	Available *bool
}

// Empty reports whether the update would change nothing.
func (u LaptopUpdate) Empty() bool {
	return u.Brand == nil && u.Model == nil && u.Price == nil &&
		u.RAMGb == nil && u.StorageGb == nil && u.Processor == nil && u.Available == nil
}

// LaptopRepository defines the interface for laptop persistence.
type LaptopRepository interface {
	List(ctx context.Context) ([]domain.Laptop, error)
	FindByID(ctx context.Context, id string) (*domain.Laptop, error)
	Create(ctx context.Context, laptop *domain.Laptop) (*domain.Laptop, error)
	Update(ctx context.Context, id string, update LaptopUpdate) (*domain.Laptop, error)
	Delete(ctx context.Context, id string) error
}
