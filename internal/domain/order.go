package domain

import (
	"time"

	"github.com/google/uuid"
)

const OrderStatusPending = "pending"

type Order struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID   `json:"userId" gorm:"type:uuid;not null;index"`
	Status    string      `json:"status" gorm:"not null"`
	CreatedAt time.Time   `json:"createdAt"`
	Lines     []OrderLine `json:"lines" gorm:"foreignKey:OrderID"`
}

// OrderLine records the price at order time. Catalog price changes must
// never alter past order totals.
type OrderLine struct {
	ID           uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `json:"orderId" gorm:"type:uuid;not null;index"`
	ProductID    int64     `json:"productId" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	PriceAtOrder float64   `json:"priceAtOrder" gorm:"not null"`
}

// OrderLineDetail is a line joined with its catalog entry for history views.
type OrderLineDetail struct {
	ProductName  string  `json:"productName"`
	ImageURL     string  `json:"imageUrl"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"priceAtOrder"`
}

// OrderHistoryEntry is one order reconstructed from the join of orders,
// lines and products, with its derived total.
type OrderHistoryEntry struct {
	ID        uuid.UUID
	Status    string
	CreatedAt time.Time
	Total     float64
	Lines     []OrderLineDetail
}
