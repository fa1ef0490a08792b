package repo

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/shopspring/decimal"
)

// Collection документ файла заказов. Неизвестные поля на любом уровне
// сохраняются при перезаписи, чтобы старая версия сервиса не теряла данные новой.
type Collection struct {
	Orders []FileOrder `json:"orders"`

	Extra map[string]json.RawMessage `json:"-"`
}

type FileOrder struct {
	ID        string     `json:"id"`
	Items     []FileItem `json:"items"`
	Total     Money      `json:"total"`
	Status    string     `json:"status"`
	Token     *string    `json:"token"`
	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type FileItem struct {
	Slug  string `json:"slug"`
	Qty   int    `json:"qty"`
	Price Money  `json:"price"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Money пишется в JSON числом с двумя знаками после точки (39.80),
// читается и из числа, и из строки.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money(d)
	return nil
}

func (c Collection) MarshalJSON() ([]byte, error) {
	type plain Collection
	return marshalWithExtra(plain(c), c.Extra)
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	type plain Collection
	if err := json.Unmarshal(data, (*plain)(c)); err != nil {
		return err
	}
	extra, err := unknownFields(data, "orders")
	c.Extra = extra
	return err
}

func (o FileOrder) MarshalJSON() ([]byte, error) {
	type plain FileOrder
	return marshalWithExtra(plain(o), o.Extra)
}

func (o *FileOrder) UnmarshalJSON(data []byte) error {
	type plain FileOrder
	if err := json.Unmarshal(data, (*plain)(o)); err != nil {
		return err
	}
	extra, err := unknownFields(data, "id", "items", "total", "status", "token", "createdAt", "paidAt")
	o.Extra = extra
	return err
}

func (i FileItem) MarshalJSON() ([]byte, error) {
	type plain FileItem
	return marshalWithExtra(plain(i), i.Extra)
}

func (i *FileItem) UnmarshalJSON(data []byte) error {
	type plain FileItem
	if err := json.Unmarshal(data, (*plain)(i)); err != nil {
		return err
	}
	extra, err := unknownFields(data, "slug", "qty", "price")
	i.Extra = extra
	return err
}

func (c Collection) indexByID(id string) int {
	for i, o := range c.Orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func unknownFields(data []byte, known ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

func orderToFile(o entities.Order) FileOrder {
	res := FileOrder{
		ID:        o.ID,
		Total:     Money(o.Total),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC(),
		Items:     make([]FileItem, 0, len(o.Items)),
	}
	if o.Token != "" {
		token := o.Token
		res.Token = &token
	}
	if !o.PaidAt.IsZero() {
		paidAt := o.PaidAt.UTC()
		res.PaidAt = &paidAt
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, FileItem{Slug: it.Slug, Qty: it.Quantity, Price: Money(it.Price)})
	}
	return res
}

func (o FileOrder) toEntity() entities.Order {
	res := entities.Order{
		ID:        o.ID,
		Total:     decimal.Decimal(o.Total),
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
		Items:     make([]entities.OrderItem, 0, len(o.Items)),
	}
	if o.Token != nil {
		res.Token = *o.Token
	}
	if o.PaidAt != nil {
		res.PaidAt = *o.PaidAt
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, entities.OrderItem{
			Slug:     it.Slug,
			Quantity: it.Qty,
			Price:    decimal.Decimal(it.Price),
		})
	}
	return res
}
