package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	mocks "github.com/SergeyBogomolovv/prontix-store/internal/service/mocks"
	"github.com/SergeyBogomolovv/prontix-store/pkg/trm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sequence выдаёт значения по очереди.
func sequence(values ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		v := values[i]
		i++
		return v, nil
	}
}

func TestOrderService_RegeneratesCollidingID(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)
	cache := mocks.NewMockCache(t)

	catalog.EXPECT().ProductBySlug(mock.Anything, "ebook-a").
		Return(entities.Product{Slug: "ebook-a", Price: decimal.RequireFromString("1.00")}, nil)
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "taken").Return(entities.Order{ID: "taken"}, nil).Once()
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "fresh").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	orderRepo.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
		return o.ID == "fresh"
	})).Return(nil).Once()
	cache.EXPECT().Set("fresh", mock.Anything).Once()

	svc := NewOrderService(slog.New(slog.NewTextHandler(io.Discard, nil)), trm.NewNopManager(), orderRepo, catalog, cache)
	svc.newID = sequence("taken", "fresh")

	id, err := svc.CreateOrder(context.Background(), []entities.CartItem{{Slug: "ebook-a", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, "fresh", id)
}

func TestOrderService_RegeneratesCollidingToken(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)

	pending := entities.Order{ID: "abc", Status: entities.OrderStatusPending}
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "abc").Return(pending, nil).Once()
	orderRepo.EXPECT().GetOrderByToken(mock.Anything, "dup").Return(entities.Order{ID: "other"}, nil).Once()
	orderRepo.EXPECT().GetOrderByToken(mock.Anything, "unique").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	orderRepo.EXPECT().MarkPaid(mock.Anything, "abc", "unique", mock.Anything).Return(nil).Once()
	cache.EXPECT().Set("abc", mock.Anything).Once()

	svc := NewOrderService(slog.New(slog.NewTextHandler(io.Discard, nil)), trm.NewNopManager(), orderRepo, mocks.NewMockCatalog(t), cache)
	svc.newToken = sequence("dup", "unique")

	approval, err := svc.ApproveOrder(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "unique", approval.Token)
}

func TestOrderService_GivesUpAfterRepeatedCollisions(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalog(t)

	catalog.EXPECT().ProductBySlug(mock.Anything, "ebook-a").
		Return(entities.Product{Slug: "ebook-a", Price: decimal.RequireFromString("1.00")}, nil)
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "taken").Return(entities.Order{ID: "taken"}, nil).Times(maxGenerateAttempts)

	svc := NewOrderService(slog.New(slog.NewTextHandler(io.Discard, nil)), trm.NewNopManager(), orderRepo, catalog, mocks.NewMockCache(t))
	svc.newID = func() (string, error) { return "taken", nil }

	_, err := svc.CreateOrder(context.Background(), []entities.CartItem{{Slug: "ebook-a", Quantity: 1}})
	require.Error(t, err)
	assert.Equal(t, entities.KindInternal, entities.KindOf(err))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "abcd****", maskToken("abcdefghijklmnop"))
	assert.Equal(t, "****", maskToken("abc"))
	assert.Equal(t, "****", maskToken(""))
}
