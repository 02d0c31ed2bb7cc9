package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/domain"
	"github.com/remib/phonestore/internal/repository/postgres"
	"github.com/remib/phonestore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewOrderRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines: []domain.OrderLine{
			{ProductID: product.ID, Quantity: 2, PriceAtOrder: 9.99},
			{ProductID: product.ID, Quantity: 1, PriceAtOrder: 19.99},
		},
	}

	require.NoError(t, repo.Create(ctx, order))

	count, err := repo.CountLines(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOrderRepository_Create_RollsBackOnLineFailure(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewOrderRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	// Two lines forced onto the same primary key: the line insert fails
	// after the header was written, so the whole transaction must roll back.
	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines: []domain.OrderLine{
			{ID: 1, ProductID: product.ID, Quantity: 2, PriceAtOrder: 9.99},
			{ID: 1, ProductID: product.ID, Quantity: 1, PriceAtOrder: 19.99},
		},
	}

	err := repo.Create(ctx, order)
	require.Error(t, err)

	var orderCount, lineCount int64
	require.NoError(t, testDB.DB.Model(&domain.Order{}).Count(&orderCount).Error)
	require.NoError(t, testDB.DB.Model(&domain.OrderLine{}).Count(&lineCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, lineCount)
}

func TestOrderRepository_ListByUser_Ordering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewOrderRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	older := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().Add(-time.Hour),
		Lines:     []domain.OrderLine{{ProductID: product.ID, Quantity: 1, PriceAtOrder: 5.00}},
	}
	newer := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines:     []domain.OrderLine{{ProductID: product.ID, Quantity: 1, PriceAtOrder: 7.00}},
	}

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	entries, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)
}

func TestOrderRepository_ListByUser_GroupsLines(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewOrderRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	phone := testutil.NewProductBuilder().WithName("Nova 5G").WithPrice(199.90).Build(t, testDB.DB)
	charger := testutil.NewProductBuilder().WithName("Charger").WithPrice(24.50).Build(t, testDB.DB)

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines: []domain.OrderLine{
			{ProductID: phone.ID, Quantity: 1, PriceAtOrder: 199.90},
			{ProductID: charger.ID, Quantity: 2, PriceAtOrder: 24.50},
		},
	}
	require.NoError(t, repo.Create(ctx, order))

	entries, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	require.Len(t, entry.Lines, 2)
	// Lines come back in insert order
	assert.Equal(t, "Nova 5G", entry.Lines[0].ProductName)
	assert.Equal(t, "Charger", entry.Lines[1].ProductName)
	assert.InDelta(t, 199.90+2*24.50, entry.Total, 0.001)
}

func TestOrderRepository_ListByUser_NoOrders(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewOrderRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	entries, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
