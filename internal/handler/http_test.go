package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/internal/handler"
	mocks "github.com/SergeyBogomolovv/prontix-store/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	orders    *mocks.MockOrderService
	downloads *mocks.MockDownloader
	catalog   *mocks.MockCatalogReader
}

func newRouter(t *testing.T, secret string) (chi.Router, deps) {
	d := deps{
		orders:    mocks.NewMockOrderService(t),
		downloads: mocks.NewMockDownloader(t),
		catalog:   mocks.NewMockCatalogReader(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, d.orders, d.downloads, d.catalog, secret)

	r := chi.NewRouter()
	h.Init(r)
	return r, d
}

func do(r http.Handler, req *http.Request) (*http.Response, string) {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	return res, string(body)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"items":[{"slug":"ebook-a","qty":2}]}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					CreateOrder(mock.Anything, []entities.CartItem{{Slug: "ebook-a", Quantity: 2}}).
					Return("AbCdEf123456", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orderId":"AbCdEf123456"}`,
		},
		{
			name: "quantity coercion",
			body: `{"items":[{"slug":"a","qty":"3"},{"slug":"b","qty":2.7},{"slug":"c"},{"slug":"d","qty":"x"},{"slug":"e","qty":-4}]}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					CreateOrder(mock.Anything, []entities.CartItem{
						{Slug: "a", Quantity: 3},
						{Slug: "b", Quantity: 2},
						{Slug: "c", Quantity: 0},
						{Slug: "d", Quantity: 0},
						{Slug: "e", Quantity: 0},
					}).
					Return("id", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderId":"id"`,
		},
		{
			name: "empty cart",
			body: `{"items":[]}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CreateOrder(mock.Anything, []entities.CartItem{}).
					Return("", entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"kind":"validation","message":"cart is empty"}`,
		},
		{
			name: "invalid product",
			body: `{"items":[{"slug":"ghost","qty":1}]}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", entities.InvalidProduct("ghost")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"message":"invalid product: ghost"`,
		},
		{
			name:         "missing slug",
			body:         `{"items":[{"qty":1}]}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"CreateOrderRequest.Items[0].Slug":"required"`,
		},
		{
			name:         "malformed body",
			body:         `{"items":`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"kind":"validation"`,
		},
		{
			name: "internal error",
			body: `{"items":[{"slug":"ebook-a","qty":1}]}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", errors.New("disk full")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"kind":"internal","message":"internal server error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "")
			tc.mockBehavior(d)

			req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(tc.body))
			res, body := do(r, req)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "disk full")
		})
	}
}

func TestHTTPHandler_ApproveOrder(t *testing.T) {
	testCases := []struct {
		name         string
		secret       string
		header       string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().ApproveOrder(mock.Anything, "abc").
					Return(entities.Approval{OrderID: "abc", Token: "tok", Slugs: []string{"ebook-a"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"token":"tok","slugs":["ebook-a"]}`,
		},
		{
			name:   "secret matches",
			secret: "s3cret",
			header: "s3cret",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().ApproveOrder(mock.Anything, "abc").
					Return(entities.Approval{OrderID: "abc", Token: "tok"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"slugs":[]`,
		},
		{
			name:         "secret mismatch",
			secret:       "s3cret",
			header:       "guess",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"kind":"forbidden"`,
		},
		{
			name: "not found",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().ApproveOrder(mock.Anything, "abc").
					Return(entities.Approval{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"kind":"not_found","message":"order not found"}`,
		},
		{
			name: "canceled",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().ApproveOrder(mock.Anything, "abc").
					Return(entities.Approval{}, errors.Join(errors.New("failed to approve order"), entities.ErrOrderCanceled)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"kind":"validation"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, tc.secret)
			tc.mockBehavior(d)

			req := httptest.NewRequest(http.MethodPost, "/api/order/abc/approve", nil)
			if tc.header != "" {
				req.Header.Set("X-Webhook-Secret", tc.header)
			}
			res, body := do(r, req)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderStatus(mock.Anything, "abc").
					Return(entities.OrderStatusView{ID: "abc", Total: decimal.RequireFromString("39.8"), Status: entities.OrderStatusPending}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"abc","total":"39.80","status":"pending"}`,
		},
		{
			name: "not found",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderStatus(mock.Anything, "abc").
					Return(entities.OrderStatusView{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "")
			tc.mockBehavior(d)

			res, body := do(r, httptest.NewRequest(http.MethodGet, "/api/order/abc", nil))

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Catalog(t *testing.T) {
	product := entities.Product{
		Slug:     "ebook-a",
		Title:    "Ebook A",
		Price:    decimal.RequireFromString("19.9"),
		Niche:    "books",
		File:     "secret/ebook-a.pdf",
		Previews: []string{"/img/a.png"},
	}

	t.Run("niches", func(t *testing.T) {
		r, d := newRouter(t, "")
		d.catalog.EXPECT().Niches(mock.Anything).
			Return([]entities.Niche{{ID: "books", Name: "Books", Description: "Reading"}}, nil).Once()

		res, body := do(r, httptest.NewRequest(http.MethodGet, "/api/niches", nil))

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `[{"id":"books","name":"Books","desc":"Reading"}]`, body)
	})

	t.Run("products by niche", func(t *testing.T) {
		r, d := newRouter(t, "")
		d.catalog.EXPECT().Products(mock.Anything, "books").Return([]entities.Product{product}, nil).Once()

		res, body := do(r, httptest.NewRequest(http.MethodGet, "/api/products?niche=books", nil))

		assert.Equal(t, http.StatusOK, res.StatusCode)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "ebook-a", got[0]["slug"])
		assert.InDelta(t, 19.9, got[0]["price"], 0.0001)
		assert.NotContains(t, body, "secret/ebook-a.pdf")
	})

	t.Run("product", func(t *testing.T) {
		r, d := newRouter(t, "")
		d.catalog.EXPECT().ProductBySlug(mock.Anything, "ebook-a").Return(product, nil).Once()

		res, body := do(r, httptest.NewRequest(http.MethodGet, "/api/product/ebook-a", nil))

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"price":19.90`)
		assert.NotContains(t, body, "file")
	})

	t.Run("product not found", func(t *testing.T) {
		r, d := newRouter(t, "")
		d.catalog.EXPECT().ProductBySlug(mock.Anything, "nope").Return(entities.Product{}, entities.ErrProductNotFound).Once()

		res, body := do(r, httptest.NewRequest(http.MethodGet, "/api/product/nope", nil))

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, `"product not found"`)
	})
}

func TestHTTPHandler_Download(t *testing.T) {
	openFile := func(t *testing.T, content string) *os.File {
		path := filepath.Join(t.TempDir(), "ebook.pdf")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		f, err := os.Open(path)
		require.NoError(t, err)
		return f
	}

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(t *testing.T, d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			query: "?token=tok&slug=ebook-a",
			mockBehavior: func(t *testing.T, d deps) {
				d.downloads.EXPECT().RequestDownload(mock.Anything, "tok", "ebook-a").
					Return(entities.Download{
						Content: openFile(t, "pdf bytes"),
						Name:    "Ebook A.pdf",
						Size:    9,
						ModTime: time.Now(),
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "pdf bytes",
		},
		{
			name:         "missing token",
			query:        "?slug=ebook-a",
			mockBehavior: func(t *testing.T, d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"downloadQuery.Token":"required"`,
		},
		{
			name:         "missing slug",
			query:        "?token=tok",
			mockBehavior: func(t *testing.T, d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"downloadQuery.Slug":"required"`,
		},
		{
			name:  "forbidden reasons are not exposed",
			query: "?token=tok&slug=ebook-b",
			mockBehavior: func(t *testing.T, d deps) {
				d.downloads.EXPECT().RequestDownload(mock.Anything, "tok", "ebook-b").
					Return(entities.Download{}, entities.ErrItemNotPurchased).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"kind":"forbidden","message":"access denied"}`,
		},
		{
			name:  "file missing",
			query: "?token=tok&slug=ebook-a",
			mockBehavior: func(t *testing.T, d deps) {
				d.downloads.EXPECT().RequestDownload(mock.Anything, "tok", "ebook-a").
					Return(entities.Download{}, entities.ErrFileNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"file not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "")
			tc.mockBehavior(t, d)

			res, body := do(r, httptest.NewRequest(http.MethodGet, "/download"+tc.query, nil))

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "application/octet-stream", res.Header.Get("Content-Type"))
				assert.Equal(t, `attachment; filename="Ebook A.pdf"`, res.Header.Get("Content-Disposition"))
				assert.NotContains(t, body, "item not purchased")
			}
		})
	}
}
