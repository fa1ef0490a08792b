package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
)

// fileRepo хранит все заказы одним JSON документом {"orders": [...]}.
//
// Каждая запись переписывает документ целиком через временный файл и rename,
// поэтому читатели видят либо старую, либо новую версию. Циклы
// чтение-изменение-запись (Append, MarkPaid) вызывающая сторона должна сериализовать сама.
type fileRepo struct {
	logger *slog.Logger
	path   string
}

func NewFileRepo(logger *slog.Logger, path string) *fileRepo {
	return &fileRepo{
		logger: logger.With(slog.String("repo", "file"), slog.String("path", path)),
		path:   path,
	}
}

// Load возвращает все заказы в порядке добавления. Отсутствующий файл - пустая коллекция.
// Повреждённый файл тоже даёт пустую коллекцию, но сначала откладывается в сторону,
// чтобы следующая запись его не затёрла.
func (r *fileRepo) Load() (Collection, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Collection{}, nil
	}
	if err != nil {
		return Collection{}, fmt.Errorf("failed to read orders: %w", err)
	}

	var doc Collection
	if err := json.Unmarshal(data, &doc); err != nil {
		backup := r.path + ".corrupt-" + strconv.FormatInt(time.Now().UnixNano(), 10)
		r.logger.Error("orders file is corrupt, starting with empty collection",
			slog.Any("error", err), slog.String("backup", backup))
		if err := os.Rename(r.path, backup); err != nil {
			return Collection{}, fmt.Errorf("failed to move corrupt orders file: %w", err)
		}
		return Collection{}, nil
	}

	return doc, nil
}

// Persist атомарно заменяет содержимое файла.
func (r *fileRepo) Persist(doc Collection) error {
	if doc.Orders == nil {
		doc.Orders = []FileOrder{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create orders dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write orders: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync orders: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace orders file: %w", err)
	}

	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		d.Close()
	}
	return nil
}

func (r *fileRepo) Append(o entities.Order) error {
	doc, err := r.Load()
	if err != nil {
		return err
	}
	doc.Orders = append(doc.Orders, orderToFile(o))
	return r.Persist(doc)
}

func (r *fileRepo) FindByID(id string) (entities.Order, error) {
	doc, err := r.Load()
	if err != nil {
		return entities.Order{}, err
	}
	if i := doc.indexByID(id); i >= 0 {
		return doc.Orders[i].toEntity(), nil
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (r *fileRepo) FindByToken(token string) (entities.Order, error) {
	if token == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	doc, err := r.Load()
	if err != nil {
		return entities.Order{}, err
	}
	for _, o := range doc.Orders {
		if o.Token != nil && *o.Token == token {
			return o.toEntity(), nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (r *fileRepo) SaveOrder(_ context.Context, o entities.Order) error {
	if err := r.Append(o); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *fileRepo) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	return r.FindByID(id)
}

func (r *fileRepo) GetOrderByToken(_ context.Context, token string) (entities.Order, error) {
	return r.FindByToken(token)
}

func (r *fileRepo) MarkPaid(_ context.Context, id, token string, paidAt time.Time) error {
	doc, err := r.Load()
	if err != nil {
		return err
	}

	i := doc.indexByID(id)
	if i < 0 {
		return entities.ErrOrderNotFound
	}

	o := &doc.Orders[i]
	if entities.OrderStatus(o.Status) != entities.OrderStatusPending {
		return entities.ErrOrderNotPending
	}

	o.Status = string(entities.OrderStatusPaid)
	o.Token = &token
	paidAt = paidAt.UTC()
	o.PaidAt = &paidAt

	if err := r.Persist(doc); err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	return nil
}

func (r *fileRepo) LatestOrders(_ context.Context, count int) ([]entities.Order, error) {
	doc, err := r.Load()
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(doc.Orders))
	for _, o := range doc.Orders {
		orders = append(orders, o.toEntity())
	}

	slices.SortStableFunc(orders, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if count < len(orders) {
		orders = orders[:max(count, 0)]
	}
	return orders, nil
}
