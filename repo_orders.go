package storefront

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Orders is the order store. Orders own their items; both are written in
// one transaction and read back as a hydrated aggregate.
type Orders interface {
	Create(ctx context.Context, order *Order) error
	GetAll(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
}

// OrdersRepository implements Orders using Bun.
type OrdersRepository struct {
	db *bun.DB
}

var _ Orders = (*OrdersRepository)(nil)

// NewOrdersRepository creates a new repository.
func NewOrdersRepository(db *bun.DB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// Create persists the order and its item snapshots atomically. The items
// receive the generated order id inside the same transaction; a failure on
// any row rolls back the whole unit.
func (r *OrdersRepository) Create(ctx context.Context, order *Order) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}

		if len(order.Items) == 0 {
			return nil
		}

		for _, item := range order.Items {
			item.OrderID = order.ID
		}

		_, err := tx.NewInsert().Model(&order.Items).Exec(ctx)
		return err
	})
}

// GetAll returns every order hydrated with its items in a single
// relation-join query. No pagination; the caller accepts the scale limit.
func (r *OrdersRepository) GetAll(ctx context.Context) ([]*Order, error) {
	var orders []*Order
	err := r.db.NewSelect().
		Model(&orders).
		Relation("Items").
		Order("ord.created_at ASC").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*Order{}, nil
		}
		return nil, err
	}

	return orders, nil
}

// GetByID returns the hydrated order or ErrOrderNotFound.
func (r *OrdersRepository) GetByID(ctx context.Context, id int64) (*Order, error) {
	order := &Order{}
	err := r.db.NewSelect().
		Model(order).
		Relation("Items").
		Where("ord.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

// UpdateStatus persists the new status in place. It reports false when the
// order does not exist; in that case no row was touched. Concurrent status
// updates for the same order are last-write-wins.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*Order)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
