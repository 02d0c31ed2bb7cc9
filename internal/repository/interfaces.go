package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// DeleteCascade removes the user's order lines, orders and the user row
	// in a single transaction.
	DeleteCascade(ctx context.Context, userID uuid.UUID) error
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]*domain.Product, error)
}

type OrderRepository interface {
	// Create inserts the order header and all of its lines atomically.
	Create(ctx context.Context, order *domain.Order) error
	// ListByUser returns the user's orders with nested line details and
	// derived totals, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.OrderHistoryEntry, error)
	CountLines(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type Repositories struct {
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
}
