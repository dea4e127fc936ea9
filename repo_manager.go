package storefront

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories.
type RepositoryManager interface {
	repository.Validator
	repository.TransactionManager
	Users() Users
	Orders() Orders
	Notifications() Notifications
	Products() Products
	Reviews() Reviews
}

type mngr struct {
	db            *bun.DB
	users         Users
	orders        Orders
	notifications Notifications
	products      Products
	reviews       Reviews
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:            db,
		users:         NewUsersRepository(db),
		orders:        NewOrdersRepository(db),
		notifications: NewNotificationsRepository(db),
		products:      NewProductsRepository(db),
		reviews:       NewReviewsRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.orders == nil {
		return errors.New("repository orders should be initialized")
	}

	if m.notifications == nil {
		return errors.New("repository notifications should be initialized")
	}

	if m.products == nil {
		return errors.New("repository products should be initialized")
	}

	if m.reviews == nil {
		return errors.New("repository reviews should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users {
	return m.users
}

func (m mngr) Orders() Orders {
	return m.orders
}

func (m mngr) Notifications() Notifications {
	return m.notifications
}

func (m mngr) Products() Products {
	return m.products
}

func (m mngr) Reviews() Reviews {
	return m.reviews
}
