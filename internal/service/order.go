package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/pkg/idgen"
	"github.com/SergeyBogomolovv/prontix-store/pkg/trm"
)

// Сколько раз пробуем сгенерировать id/токен, если случайно попали в занятый.
const maxGenerateAttempts = 5

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByToken(ctx context.Context, token string) (entities.Order, error)
	MarkPaid(ctx context.Context, id, token string, paidAt time.Time) error
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Catalog interface {
	ProductBySlug(ctx context.Context, slug string) (entities.Product, error)
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   Catalog
	cache     Cache

	// Сериализует циклы чтение-изменение-запись хранилища (create, approve).
	mu sync.Mutex

	now      func() time.Time
	newID    func() (string, error)
	newToken func() (string, error)
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, catalog Catalog, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
		now:       time.Now,
		newID:     idgen.OrderID,
		newToken:  idgen.Token,
	}
}

// CreateOrder создаёт заказ в статусе pending, фиксируя текущие цены каталога.
// Если хотя бы один товар неизвестен, заказ не сохраняется.
func (s *orderService) CreateOrder(ctx context.Context, items []entities.CartItem) (string, error) {
	if len(items) == 0 {
		return "", entities.ErrEmptyCart
	}

	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		product, err := s.catalog.ProductBySlug(ctx, it.Slug)
		if errors.Is(err, entities.ErrProductNotFound) {
			return "", entities.InvalidProduct(it.Slug)
		}
		if err != nil {
			return "", fmt.Errorf("failed to resolve product %q: %w", it.Slug, err)
		}
		if product.Price.IsNegative() {
			s.logger.ErrorContext(ctx, "catalog product has negative price", slog.String("slug", product.Slug))
			return "", entities.InvalidProduct(it.Slug)
		}

		orderItems = append(orderItems, entities.OrderItem{
			Slug:     product.Slug,
			Quantity: max(it.Quantity, 1),
			Price:    product.Price,
		})
	}

	order := entities.Order{
		Items:     orderItems,
		Total:     entities.CalcTotal(orderItems),
		Status:    entities.OrderStatusPending,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.uniqueOrderID(ctx)
		if err != nil {
			return err
		}
		order.ID = id

		return s.repo.SaveOrder(ctx, order)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.cache.Set(order.ID, order)
	ordersCreated.Inc()

	s.logger.DebugContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)
	return order.ID, nil
}

// ApproveOrder переводит заказ в paid и выдаёт токен доступа.
// Повторный вызов для оплаченного заказа возвращает уже выданный токен.
func (s *orderService) ApproveOrder(ctx context.Context, orderID string) (entities.Approval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		order    entities.Order
		approved bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if o.IsPaid() {
			order = o
			return nil
		}
		if o.Status == entities.OrderStatusCanceled {
			return entities.ErrOrderCanceled
		}

		token, err := s.uniqueToken(ctx)
		if err != nil {
			return err
		}

		paidAt := s.now().UTC()
		if err := s.repo.MarkPaid(ctx, o.ID, token, paidAt); err != nil {
			return err
		}

		o.Status = entities.OrderStatusPaid
		o.Token = token
		o.PaidAt = paidAt
		order, approved = o, true
		return nil
	})
	if err != nil {
		if entities.KindOf(err) == entities.KindInternal {
			s.logger.ErrorContext(ctx, "failed to approve order", slog.Any("error", err), slog.String("order_id", orderID))
		}
		return entities.Approval{}, fmt.Errorf("failed to approve order: %w", err)
	}

	s.cache.Set(order.ID, order)

	if approved {
		ordersApproved.Inc()
		s.logger.InfoContext(ctx, "order approved", slog.String("order_id", order.ID))
	} else {
		s.logger.DebugContext(ctx, "order already approved", slog.String("order_id", order.ID))
	}

	return entities.Approval{
		OrderID: order.ID,
		Token:   order.Token,
		Slugs:   order.Slugs(),
	}, nil
}

// GetOrderStatus возвращает проекцию заказа без побочных эффектов.
func (s *orderService) GetOrderStatus(ctx context.Context, orderID string) (entities.OrderStatusView, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return statusView(order), nil
	}

	// Промах кэша читаем под замком, чтобы не положить в кэш версию старше,
	// чем записал параллельный approve.
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, entities.ErrOrderNotFound) {
			s.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		}
		return entities.OrderStatusView{}, err
	}

	s.cache.Set(order.ID, order)
	return statusView(order), nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, o := range orders {
		s.cache.Set(o.ID, o)
	}

	s.logger.InfoContext(ctx, "order cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) uniqueOrderID(ctx context.Context) (string, error) {
	for range maxGenerateAttempts {
		id, err := s.newID()
		if err != nil {
			return "", err
		}

		_, err = s.repo.GetOrderByID(ctx, id)
		if errors.Is(err, entities.ErrOrderNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("failed to generate unique order id")
}

func (s *orderService) uniqueToken(ctx context.Context) (string, error) {
	for range maxGenerateAttempts {
		token, err := s.newToken()
		if err != nil {
			return "", err
		}

		_, err = s.repo.GetOrderByToken(ctx, token)
		if errors.Is(err, entities.ErrOrderNotFound) {
			return token, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("failed to generate unique token")
}

func statusView(o entities.Order) entities.OrderStatusView {
	return entities.OrderStatusView{
		ID:     o.ID,
		Total:  o.Total,
		Status: o.Status,
	}
}
