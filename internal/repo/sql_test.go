package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/internal/repo"
	"github.com/SergeyBogomolovv/prontix-store/internal/sqlite"
	"github.com/SergeyBogomolovv/prontix-store/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repo.Migrate(context.Background(), db, repo.DialectSQLite))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, repo.Migrate(context.Background(), db, repo.DialectSQLite))
}

func TestSQLRepo_SaveAndGet(t *testing.T) {
	db := setupSQLite(t)
	r := repo.NewSQLRepo(db, repo.DialectSQLite)
	tx := trm.NewManager(db)
	ctx := context.Background()

	items := []entities.OrderItem{
		{Slug: "ebook-a", Quantity: 2, Price: decimal.RequireFromString("19.90")},
		{Slug: "ebook-b", Quantity: 1, Price: decimal.RequireFromString("5.05")},
	}
	order := entities.Order{
		ID:        "order-1",
		Items:     items,
		Total:     entities.CalcTotal(items),
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	err := tx.Do(ctx, func(ctx context.Context) error {
		return r.SaveOrder(ctx, order)
	})
	require.NoError(t, err)

	got, err := r.GetOrderByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)
	assert.Equal(t, entities.OrderStatusPending, got.Status)
	assert.Equal(t, "44.85", got.Total.StringFixed(2))
	assert.Empty(t, got.Token)
	assert.WithinDuration(t, order.CreatedAt, got.CreatedAt, time.Millisecond)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "ebook-a", got.Items[0].Slug)
	assert.Equal(t, "ebook-b", got.Items[1].Slug)
	assert.True(t, got.Items[1].Price.Equal(decimal.RequireFromString("5.05")))

	_, err = r.GetOrderByID(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = r.GetOrderByToken(ctx, "")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestSQLRepo_SaveRollsBackWithTx(t *testing.T) {
	db := setupSQLite(t)
	r := repo.NewSQLRepo(db, repo.DialectSQLite)
	tx := trm.NewManager(db)
	ctx := context.Background()

	order := entities.Order{
		ID:        "order-1",
		Items:     []entities.OrderItem{{Slug: "a", Quantity: 0, Price: decimal.NewFromInt(1)}},
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	err := tx.Do(ctx, func(ctx context.Context) error {
		return r.SaveOrder(ctx, order)
	})
	require.Error(t, err, "quantity check must reject the item")

	_, err = r.GetOrderByID(ctx, "order-1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestSQLRepo_MarkPaid(t *testing.T) {
	db := setupSQLite(t)
	r := repo.NewSQLRepo(db, repo.DialectSQLite)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, id := range []string{"order-1", "order-2"} {
		require.NoError(t, r.SaveOrder(ctx, entities.Order{
			ID:        id,
			Items:     []entities.OrderItem{{Slug: "ebook-a", Quantity: 1, Price: decimal.NewFromInt(10)}},
			Total:     decimal.NewFromInt(10),
			Status:    entities.OrderStatusPending,
			CreatedAt: now,
		}))
	}

	require.NoError(t, r.MarkPaid(ctx, "order-1", "token-1", now))

	got, err := r.GetOrderByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)
	assert.True(t, got.IsPaid())
	assert.WithinDuration(t, now, got.PaidAt, time.Millisecond)

	err = r.MarkPaid(ctx, "order-1", "token-other", now)
	assert.ErrorIs(t, err, entities.ErrOrderNotPending)

	err = r.MarkPaid(ctx, "missing", "token-x", now)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	err = r.MarkPaid(ctx, "order-2", "token-1", now)
	assert.Error(t, err, "tokens are unique")

	got, err = r.GetOrderByID(ctx, "order-2")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, got.Status)
}

func TestSQLRepo_LatestOrders(t *testing.T) {
	db := setupSQLite(t)
	r := repo.NewSQLRepo(db, repo.DialectSQLite)
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.SaveOrder(ctx, entities.Order{
			ID:        id,
			Items:     []entities.OrderItem{{Slug: "s-" + id, Quantity: 1, Price: decimal.NewFromInt(1)}},
			Total:     decimal.NewFromInt(1),
			Status:    entities.OrderStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	orders, err := r.LatestOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "c", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "s-c", orders[0].Items[0].Slug)

	orders, err = r.LatestOrders(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
