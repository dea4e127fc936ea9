package storefront

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Notifications is the notification store.
type Notifications interface {
	Add(ctx context.Context, notification *Notification) error
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// NotificationsRepository implements Notifications using Bun.
type NotificationsRepository struct {
	db *bun.DB
}

var _ Notifications = (*NotificationsRepository)(nil)

// NewNotificationsRepository creates a new repository.
func NewNotificationsRepository(db *bun.DB) *NotificationsRepository {
	return &NotificationsRepository{db: db}
}

// Add persists a new notification. Records start unread.
func (r *NotificationsRepository) Add(ctx context.Context, notification *Notification) error {
	_, err := r.db.NewInsert().Model(notification).Exec(ctx)
	return err
}

// GetByUser returns the user's notifications, newest first.
func (r *NotificationsRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	var notifications []*Notification
	err := r.db.NewSelect().
		Model(&notifications).
		Where("?TableAlias.user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*Notification{}, nil
		}
		return nil, err
	}

	return notifications, nil
}

// MarkRead flips the read flag. Marking a missing notification is a no-op.
func (r *NotificationsRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*Notification)(nil)).
		Set("is_read = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
