package handler

import (
	"time"

	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
)

// --- Request / Response types ---

type createLaptopRequest struct {
	Brand     string  `json:"brand"      validate:"required"`
	Model     string  `json:"model"      validate:"required"`
	Price     float64 `json:"price"      validate:"required,gt=0"`
	RAMGb     int     `json:"ram_gb"     validate:"required,gt=0"`
	StorageGb int     `json:"storage_gb" validate:"required,gt=0"`
	Processor string  `json:"processor"  validate:"required"`
	Available *bool   `json:"available"`
}

// updateLaptopRequest carries a partial update: absent fields stay untouched.
type updateLaptopRequest struct {
	Brand     *string  `json:"brand"      validate:"omitempty,min=1"`
	Model     *string  `json:"model"      validate:"omitempty,min=1"`
	Price     *float64 `json:"price"      validate:"omitempty,gt=0"`
	RAMGb     *int     `json:"ram_gb"     validate:"omitempty,gt=0"`
	StorageGb *int     `json:"storage_gb" validate:"omitempty,gt=0"`
	Processor *string  `json:"processor"  validate:"omitempty,min=1"`
	Available *bool    `json:"available"`
}

// laptopResponse is the transport projection of a laptop. It is kept
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type laptopResponse struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Price     float64   `json:"price"`
	RAMGb     int       `json:"ram_gb"`
	StorageGb int       `json:"storage_gb"`
	Processor string    `json:"processor"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type laptopEnvelope struct {
	Message string         `json:"message"`
	Laptop  laptopResponse `json:"laptop"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request → Service input ---

func toCreateInput(req createLaptopRequest) ports.CreateLaptopInput {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return ports.CreateLaptopInput{
		Brand:     req.Brand,
		Model:     req.Model,
		Price:     req.Price,
		RAMGb:     req.RAMGb,
		StorageGb: req.StorageGb,
		Processor: req.Processor,
		Available: available,
	}
}

func toUpdateInput(req updateLaptopRequest) ports.LaptopUpdate {
	return ports.LaptopUpdate{
		Brand:     req.Brand,
		Model:     req.Model,
		Price:     req.Price,
		RAMGb:     req.RAMGb,
		StorageGb: req.StorageGb,
		Processor: req.Processor,
		Available: req.Available,
	}
}

// --- Domain → HTTP response ---

func toLaptopResponse(l *domain.Laptop) laptopResponse {
	return laptopResponse{
		ID:        l.ID,
		Brand:     l.Brand,
		Model:     l.Model,
		Price:     l.Price,
		RAMGb:     l.RAMGb,
		StorageGb: l.StorageGb,
		Processor: l.Processor,
		Available: l.Available,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLaptopListResponse(laptops []domain.Laptop) []laptopResponse {
	out := make([]laptopResponse, len(laptops))
	for i := range laptops {
		out[i] = toLaptopResponse(&laptops[i])
	}
	return out
}
