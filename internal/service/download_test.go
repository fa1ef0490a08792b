package service_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/internal/service"
	mocks "github.com/SergeyBogomolovv/prontix-store/internal/service/mocks"
	"github.com/SergeyBogomolovv/prontix-store/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPrivateStorage(t *testing.T, files map[string]string) *storage.PrivateStorage {
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	s, err := storage.NewPrivateStorage(dir)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDownloadService_RequestDownload(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo)

	paid := entities.Order{
		ID:     "order-1",
		Items:  []entities.OrderItem{{Slug: "ebook-a", Quantity: 1, Price: ebookA.Price}, {Slug: "ghost", Quantity: 1}, {Slug: "lost", Quantity: 1}},
		Status: entities.OrderStatusPaid,
		Token:  "good-token",
	}
	pending := entities.Order{
		ID:     "order-2",
		Items:  []entities.OrderItem{{Slug: "ebook-a", Quantity: 1}},
		Status: entities.OrderStatusPending,
		Token:  "pending-token",
	}

	lost := entities.Product{Slug: "lost", Price: decimal.Zero, File: "missing/lost.pdf"}

	testCases := []struct {
		name         string
		token        string
		slug         string
		mockBehavior MockBehavior
		wantErr      error
		wantKind     entities.ErrorKind
		wantContent  string
	}{
		{
			name:  "OK",
			token: "good-token",
			slug:  "ebook-a",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByToken(mock.Anything, "good-token").Return(paid, nil).Once()
			},
			wantContent: "ebook a content",
		},
		{
			name:  "unknown token",
			token: "bad-token",
			slug:  "ebook-a",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByToken(mock.Anything, "bad-token").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr:  entities.ErrInvalidToken,
			wantKind: entities.KindForbidden,
		},
		{
			name:  "order not paid",
			token: "pending-token",
			slug:  "ebook-a",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByToken(mock.Anything, "pending-token").Return(pending, nil).Once()
			},
			wantErr:  entities.ErrNotPaid,
			wantKind: entities.KindForbidden,
		},
		{
			name:  "item bought in another order",
			token: "good-token",
			slug:  "ebook-b",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByToken(mock.Anything, "good-token").Return(paid, nil).Once()
			},
			wantErr:  entities.ErrItemNotPurchased,
			wantKind: entities.KindForbidden,
		},
		{
			name:  "product gone from catalog",
			token: "good-token",
			slug:  "ghost",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByToken(mock.Anything, "good-token").Return(paid, nil).Once()
			},
			wantErr:  entities.ErrProductNotFound,
			wantKind: entities.KindNotFound,
		},
		{
			name:  "file missing",
			token: "good-token",
			slug:  "lost",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().GetOrderByToken(mock.Anything, "good-token").Return(paid, nil).Once()
			},
			wantErr:  entities.ErrFileNotFound,
			wantKind: entities.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orders)

			files := newPrivateStorage(t, map[string]string{
				"ebooks/a.pdf": "ebook a content",
				"ebooks/b.pdf": "ebook b content",
			})

			svc := service.NewDownloadService(discardLogger(), orders, catalogOf(t, ebookA, ebookB, lost), files)

			dl, err := svc.RequestDownload(context.Background(), tc.token, tc.slug)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.wantKind, entities.KindOf(err))
				assert.Nil(t, dl.Content)
				return
			}

			require.NoError(t, err)
			defer dl.Content.Close()

			body, err := io.ReadAll(dl.Content)
			require.NoError(t, err)
			assert.Equal(t, tc.wantContent, string(body))
			assert.Equal(t, "a.pdf", dl.Name)
			assert.Equal(t, int64(len(tc.wantContent)), dl.Size)
			assert.False(t, dl.ModTime.IsZero())
		})
	}
}
