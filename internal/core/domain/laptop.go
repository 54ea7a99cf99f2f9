package domain

import (
	"errors"
	"time"
)

var ErrLaptopNotFound = errors.New("laptop not found")

// Laptop is a single inventory item.
type Laptop struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Brand     string    `json:"brand" bson:"brand"`
	Model     string    `json:"model" bson:"model"`
	Price     float64   `json:"price" bson:"price"`
	RAMGb     int       `json:"ram_gb" bson:"ram_gb"`
	StorageGb int       `json:"storage_gb" bson:"storage_gb"`
	Processor string    `json:"processor" bson:"processor"`
	Available bool      `json:"available" bson:"available"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
