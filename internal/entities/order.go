package entities

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusCanceled OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem хранит снимок цены на момент создания заказа.
type OrderItem struct {
	Slug     string
	Quantity int
	Price    decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID        string
	Items     []OrderItem
	Total     decimal.Decimal
	Status    OrderStatus
	Token     string
	CreatedAt time.Time
	PaidAt    time.Time
}

// CalcTotal считает сумму по снимкам цен, округляя до копеек (half-up для неотрицательных сумм).
func CalcTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total.Round(2)
}

func (o Order) Slugs() []string {
	slugs := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		slugs = append(slugs, it.Slug)
	}
	return slugs
}

func (o Order) HasItem(slug string) bool {
	return slices.ContainsFunc(o.Items, func(it OrderItem) bool {
		return it.Slug == slug
	})
}

func (o Order) IsPaid() bool {
	return o.Status == OrderStatusPaid && o.Token != ""
}

// CartItem позиция корзины, пришедшая от клиента.
type CartItem struct {
	Slug     string
	Quantity int
}

type OrderStatusView struct {
	ID     string
	Total  decimal.Decimal
	Status OrderStatus
}

type Approval struct {
	OrderID string
	Token   string
	Slugs   []string
}
