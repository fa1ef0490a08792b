package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
)

type OrderByTokenGetter interface {
	GetOrderByToken(ctx context.Context, token string) (entities.Order, error)
}

type FileStorage interface {
	Open(ctx context.Context, ref string) (*os.File, fs.FileInfo, error)
}

type downloadService struct {
	logger  *slog.Logger
	orders  OrderByTokenGetter
	catalog Catalog
	storage FileStorage
}

func NewDownloadService(logger *slog.Logger, orders OrderByTokenGetter, catalog Catalog, storage FileStorage) *downloadService {
	return &downloadService{
		logger:  logger.With(slog.String("service", "download")),
		orders:  orders,
		catalog: catalog,
		storage: storage,
	}
}

// RequestDownload проверяет пару (токен, slug) и открывает файл товара.
// Проверки идут строго по порядку: токен, оплата, товар в этом заказе, товар в каталоге, файл.
// Путь к файлу берётся только из каталога: токен и slug в путь не попадают.
func (s *downloadService) RequestDownload(ctx context.Context, token, slug string) (entities.Download, error) {
	order, err := s.orders.GetOrderByToken(ctx, token)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Download{}, s.deny(ctx, entities.ErrInvalidToken, "invalid_token", token, slug)
	}
	if err != nil {
		return entities.Download{}, fmt.Errorf("failed to find order by token: %w", err)
	}

	if order.Status != entities.OrderStatusPaid {
		return entities.Download{}, s.deny(ctx, entities.ErrNotPaid, "not_paid", token, slug)
	}

	if !order.HasItem(slug) {
		return entities.Download{}, s.deny(ctx, entities.ErrItemNotPurchased, "item_not_purchased", token, slug)
	}

	product, err := s.catalog.ProductBySlug(ctx, slug)
	if err != nil {
		return entities.Download{}, fmt.Errorf("failed to resolve product: %w", err)
	}

	f, info, err := s.storage.Open(ctx, product.File)
	if err != nil {
		if errors.Is(err, entities.ErrFileNotFound) {
			s.logger.ErrorContext(ctx, "purchased product file is missing",
				slog.String("slug", slug), slog.String("order_id", order.ID), slog.Any("error", err))
		}
		return entities.Download{}, fmt.Errorf("failed to open product file: %w", err)
	}

	downloadsServed.Inc()
	s.logger.InfoContext(ctx, "download started", slog.String("order_id", order.ID), slog.String("slug", slug))

	return entities.Download{
		Content: f,
		Name:    product.DownloadName(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// deny фиксирует отказ: повторные отказы по одному токену похожи на перебор.
func (s *downloadService) deny(ctx context.Context, err error, reason, token, slug string) error {
	downloadsDenied.WithLabelValues(reason).Inc()
	s.logger.WarnContext(ctx, "download denied",
		slog.String("reason", reason),
		slog.String("token", maskToken(token)),
		slog.String("slug", slug),
	)
	return err
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
