package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        string          `db:"id"`
	Status    string          `db:"status"`
	Total     decimal.Decimal `db:"total"`
	Token     sql.NullString  `db:"token"`
	CreatedAt time.Time       `db:"created_at"`
	PaidAt    sql.NullTime    `db:"paid_at"`
}

type Item struct {
	OrderID  string          `db:"order_id"`
	Position int             `db:"position"`
	Slug     string          `db:"slug"`
	Quantity int             `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
}

func OrderToEntity(o Order, items []Item) entities.Order {
	res := entities.Order{
		ID:        o.ID,
		Status:    entities.OrderStatus(o.Status),
		Total:     o.Total,
		Token:     o.Token.String,
		CreatedAt: o.CreatedAt,
		Items:     make([]entities.OrderItem, 0, len(items)),
	}
	if o.PaidAt.Valid {
		res.PaidAt = o.PaidAt.Time
	}
	for _, it := range items {
		res.Items = append(res.Items, entities.OrderItem{
			Slug:     it.Slug,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return res
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
