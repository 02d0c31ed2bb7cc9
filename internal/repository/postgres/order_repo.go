package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/domain"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *orderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order header and all line rows inside one transaction.
// Either every row persists or none do.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := order.Lines
		order.Lines = nil

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		order.Lines = lines
		return nil
	})
}

// historyRow is one row of the flattened orders/lines/products join.
type historyRow struct {
	OrderID      uuid.UUID
	Status       string
	CreatedAt    time.Time
	Quantity     int
	PriceAtOrder float64
	ProductName  string
	ImageURL     string
}

// ListByUser fetches the user's full order history in a single join and
// regroups it by order id in memory, preserving the query's ordering
// (most recent order first, lines in insert order).
func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.OrderHistoryEntry, error) {
	var rows []historyRow
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("orders.id AS order_id, orders.status, orders.created_at, "+
			"order_lines.quantity, order_lines.price_at_order, "+
			"products.name AS product_name, products.image_url").
		Joins("JOIN order_lines ON order_lines.order_id = orders.id").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC, orders.id, order_lines.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.OrderHistoryEntry, 0)
	byID := make(map[uuid.UUID]*domain.OrderHistoryEntry)

	for _, row := range rows {
		entry, ok := byID[row.OrderID]
		if !ok {
			entry = &domain.OrderHistoryEntry{
				ID:        row.OrderID,
				Status:    row.Status,
				CreatedAt: row.CreatedAt,
			}
			byID[row.OrderID] = entry
			entries = append(entries, entry)
		}

		entry.Lines = append(entry.Lines, domain.OrderLineDetail{
			ProductName:  row.ProductName,
			ImageURL:     row.ImageURL,
			Quantity:     row.Quantity,
			PriceAtOrder: row.PriceAtOrder,
		})
		entry.Total += float64(row.Quantity) * row.PriceAtOrder
	}

	return entries, nil
}

func (r *orderRepository) CountLines(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.OrderLine{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}
