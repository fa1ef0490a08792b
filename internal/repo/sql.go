package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{"id", "status", "total", "token", "created_at", "paid_at"}

type sqlRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewSQLRepo хранилище заказов поверх PostgreSQL или SQLite.
// Многошаговые записи должны выполняться внутри trm.Manager.Do.
func NewSQLRepo(db *sqlx.DB, dialect Dialect) *sqlRepo {
	return &sqlRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
	}
}

func (r *sqlRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, string(o.Status), o.Total, nullString(o.Token), o.CreatedAt, nullTime(o.PaidAt)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "slug", "quantity", "price")
	for i, it := range o.Items {
		q = q.Values(o.ID, i, it.Slug, it.Quantity, it.Price)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *sqlRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *sqlRepo) GetOrderByToken(ctx context.Context, token string) (entities.Order, error) {
	if token == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.getOrder(ctx, sq.Eq{"token": token})
}

func (r *sqlRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.selectItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.ID]), nil
}

// MarkPaid переводит заказ pending -> paid и выдаёт токен. Условие на статус в WHERE
// гарантирует, что токен уже оплаченного заказа не будет перезаписан.
func (r *sqlRepo) MarkPaid(ctx context.Context, id, token string, paidAt time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderStatusPaid)).
		Set("token", token).
		Set("paid_at", paidAt).
		Where(sq.Eq{"id": id, "status": string(entities.OrderStatusPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if n == 1 {
		return nil
	}

	if _, err := r.GetOrderByID(ctx, id); err != nil {
		return err
	}
	return entities.ErrOrderNotPending
}

func (r *sqlRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	if count <= 0 {
		return []entities.Order{}, nil
	}

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	items, err := r.selectItems(ctx, ids...)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.ID]))
	}
	return result, nil
}

func (r *sqlRepo) selectItems(ctx context.Context, orderIDs ...string) (map[string][]Item, error) {
	query, args := r.qb.Select("order_id", "position", "slug", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	res := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		res[it.OrderID] = append(res[it.OrderID], it)
	}
	return res, nil
}

func (r *sqlRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *sqlRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *sqlRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
