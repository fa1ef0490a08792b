package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
)

// CreateOrderRequest корзина покупателя
type CreateOrderRequest struct {
	Items []CartItem `json:"items" validate:"dive"`
}

// CartItem позиция корзины
type CartItem struct {
	Slug string   `json:"slug" validate:"required"`
	Qty  Quantity `json:"qty" swaggertype:"integer"`
}

// Quantity принимает число или числовую строку. Дробная часть отбрасывается,
// всё, что не удалось разобрать, становится 0 (сервис поднимет до 1).
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = 0

	raw := string(bytes.TrimSpace(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return nil
	}

	*q = Quantity(math.Trunc(f))
	return nil
}

func (r CreateOrderRequest) ToEntities() []entities.CartItem {
	items := make([]entities.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.CartItem{Slug: it.Slug, Quantity: int(it.Qty)})
	}
	return items
}

// CreateOrderResponse идентификатор созданного заказа
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// ApproveResponse токен доступа к купленным файлам
type ApproveResponse struct {
	OK    bool     `json:"ok"`
	Token string   `json:"token"`
	Slugs []string `json:"slugs"`
}

// OrderStatusResponse публичная проекция заказа
type OrderStatusResponse struct {
	ID     string `json:"id"`
	Total  string `json:"total" example:"39.80"`
	Status string `json:"status" enums:"pending,paid,canceled"`
}

// Niche ниша каталога
type Niche struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// Product карточка товара. Ссылка на приватный файл наружу не отдаётся.
type Product struct {
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Price     json.Number `json:"price" swaggertype:"number" example:"19.90"`
	Niche     string      `json:"niche"`
	Previews  []string    `json:"previews"`
	ShortDesc string      `json:"shortDesc,omitempty"`
	LongDesc  string      `json:"longDesc,omitempty"`
	Format    string      `json:"format,omitempty"`
	WhatsIn   []string    `json:"whatsIn,omitempty"`
}

func ApprovalEntityToJSON(a entities.Approval) ApproveResponse {
	slugs := a.Slugs
	if slugs == nil {
		slugs = []string{}
	}
	return ApproveResponse{
		OK:    true,
		Token: a.Token,
		Slugs: slugs,
	}
}

func OrderStatusEntityToJSON(v entities.OrderStatusView) OrderStatusResponse {
	return OrderStatusResponse{
		ID:     v.ID,
		Total:  v.Total.StringFixed(2),
		Status: string(v.Status),
	}
}

func NicheEntityToJSON(n entities.Niche) Niche {
	return Niche{
		ID:   n.ID,
		Name: n.Name,
		Desc: n.Description,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	previews := p.Previews
	if previews == nil {
		previews = []string{}
	}
	return Product{
		Slug:      p.Slug,
		Title:     p.Title,
		Price:     json.Number(p.Price.StringFixed(2)),
		Niche:     p.Niche,
		Previews:  previews,
		ShortDesc: p.ShortDesc,
		LongDesc:  p.LongDesc,
		Format:    p.Format,
		WhatsIn:   p.WhatsIn,
	}
}
