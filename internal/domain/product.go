package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog entry. The catalog is owned by an external
// management process; this service only reads it.
type Product struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string         `json:"name" gorm:"not null"`
	Price     float64        `json:"price" gorm:"not null"`
	ImageURL  string         `json:"imageUrl"`
	Specs     datatypes.JSON `json:"specs,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
