package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/domain"
	"github.com/remib/phonestore/internal/repository"
)

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

type OrderItemInput struct {
	ProductID    int64
	Quantity     int
	PriceAtOrder float64
}

// PlaceOrder validates the cart and creates the order header plus all line
// rows in one transaction. An order is never visible with zero lines.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, items []OrderItemInput) (uuid.UUID, error) {
	if len(items) == 0 {
		return uuid.Nil, domain.ErrEmptyCart
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity < 1 || item.PriceAtOrder < 0 {
			return uuid.Nil, domain.ErrInvalidItem
		}
		lines = append(lines, domain.OrderLine{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
		})
	}

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines:     lines,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return uuid.Nil, err
	}

	return order.ID, nil
}

// ListOrders returns the user's order history, most recent first, with
// totals derived from the captured line prices.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*domain.OrderHistoryEntry, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}
