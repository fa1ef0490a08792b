package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const webhookSecretHeader = "X-Webhook-Secret"

type OrderService interface {
	CreateOrder(ctx context.Context, items []entities.CartItem) (string, error)
	ApproveOrder(ctx context.Context, orderID string) (entities.Approval, error)
	GetOrderStatus(ctx context.Context, orderID string) (entities.OrderStatusView, error)
}

type Downloader interface {
	RequestDownload(ctx context.Context, token, slug string) (entities.Download, error)
}

type CatalogReader interface {
	Niches(ctx context.Context) ([]entities.Niche, error)
	Products(ctx context.Context, niche string) ([]entities.Product, error)
	ProductBySlug(ctx context.Context, slug string) (entities.Product, error)
}

type HTTPHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	orders        OrderService
	downloads     Downloader
	catalog       CatalogReader
	webhookSecret string
}

// NewHTTPHandler собирает HTTP API магазина. Пустой webhookSecret отключает
// проверку заголовка X-Webhook-Secret на approve.
func NewHTTPHandler(logger *slog.Logger, orders OrderService, downloads Downloader, catalog CatalogReader, webhookSecret string) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		orders:        orders,
		downloads:     downloads,
		catalog:       catalog,
		webhookSecret: webhookSecret,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/niches", h.ListNiches)
		r.Get("/products", h.ListProducts)
		r.Get("/product/{slug}", h.GetProduct)

		r.Post("/order", h.CreateOrder)
		r.Get("/order/{id}", h.GetOrderStatus)
		r.Post("/order/{id}/approve", h.ApproveOrder)
	})

	r.Get("/download", h.Download)
}

// ListNiches возвращает список ниш каталога.
// @Summary      Список ниш
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   Niche
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/niches [get]
func (h *HTTPHandler) ListNiches(w http.ResponseWriter, r *http.Request) {
	niches, err := h.catalog.Niches(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]Niche, 0, len(niches))
	for _, n := range niches {
		res = append(res, NicheEntityToJSON(n))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ListProducts возвращает товары каталога, опционально отфильтрованные по нише.
// @Summary      Список товаров
// @Tags         catalog
// @Produce      json
// @Param        niche  query     string  false  "Идентификатор ниши"
// @Success      200    {array}   Product
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context(), r.URL.Query().Get("niche"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetProduct возвращает товар по slug.
// @Summary      Получить товар
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Slug товара"
// @Success      200   {object}  Product
// @Failure      404   {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/product/{slug} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// CreateOrder создаёт заказ из корзины.
// @Summary      Создать заказ
// @Description  Фиксирует цены каталога и создаёт заказ в статусе pending
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Корзина"
// @Success      200      {object}  CreateOrderResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500      {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, string(entities.KindValidation), "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	id, err := h.orders.CreateOrder(r.Context(), req.ToEntities())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, CreateOrderResponse{OrderID: id}, http.StatusOK)
}

// ApproveOrder отмечает заказ оплаченным и выдаёт токен на скачивание.
// @Summary      Подтвердить оплату
// @Description  Вебхук платёжной системы. Повторный вызов возвращает тот же токен
// @Tags         orders
// @Produce      json
// @Param        id                path      string  true   "Идентификатор заказа"
// @Param        X-Webhook-Secret  header    string  false  "Секрет вебхука"
// @Success      200               {object}  ApproveResponse
// @Failure      400               {object}  utils.ErrorResponse "Заказ отменён"
// @Failure      403               {object}  utils.ErrorResponse "Неверный секрет"
// @Failure      404               {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500               {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/{id}/approve [post]
func (h *HTTPHandler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	if !h.webhookAllowed(r) {
		h.logger.WarnContext(r.Context(), "approve rejected: bad webhook secret", slog.String("remote", r.RemoteAddr))
		utils.WriteError(w, string(entities.KindForbidden), "access denied", http.StatusForbidden)
		return
	}

	approval, err := h.orders.ApproveOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ApprovalEntityToJSON(approval), http.StatusOK)
}

// GetOrderStatus возвращает статус и сумму заказа.
// @Summary      Статус заказа
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderStatusResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/{id} [get]
func (h *HTTPHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderStatusRequestsInProgress.Inc()
	defer orderStatusRequestsInProgress.Dec()

	start := time.Now()
	defer func() {
		orderStatusRequestDuration.Observe(time.Since(start).Seconds())
	}()

	view, err := h.orders.GetOrderStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		orderStatusRequestTotal.WithLabelValues(string(entities.KindOf(err))).Inc()
		h.writeError(w, r, err)
		return
	}

	orderStatusRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderStatusEntityToJSON(view), http.StatusOK)
}

func (h *HTTPHandler) webhookAllowed(r *http.Request) bool {
	if h.webhookSecret == "" {
		return true
	}
	got := r.Header.Get(webhookSecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookSecret)) == 1
}

// writeError переводит ошибку сервиса в HTTP ответ {kind, message}.
// Причина отказа в доступе наружу не отдаётся.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := entities.KindOf(err)

	switch kind {
	case entities.KindValidation:
		utils.WriteError(w, string(kind), validationMessage(err), http.StatusBadRequest)
	case entities.KindNotFound:
		utils.WriteError(w, string(kind), notFoundMessage(err), http.StatusNotFound)
	case entities.KindForbidden:
		utils.WriteError(w, string(kind), "access denied", http.StatusForbidden)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		utils.WriteError(w, string(entities.KindInternal), "internal server error", http.StatusInternalServerError)
	}
}

// validationMessage отрезает обёртки слоёв: "failed to ...: validation error: cart is empty" -> "cart is empty".
func validationMessage(err error) string {
	if _, msg, ok := strings.Cut(err.Error(), entities.ErrValidation.Error()+": "); ok {
		return msg
	}
	return "invalid request"
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return "order not found"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product not found"
	case errors.Is(err, entities.ErrFileNotFound):
		return "file not found"
	default:
		return "not found"
	}
}
