package storefront

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// NotificationService exposes the per-user notification feed.
type NotificationService struct {
	notifications Notifications
	logger        Logger
}

func NewNotificationService(notifications Notifications) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        defLogger{},
	}
}

func (s *NotificationService) WithLogger(logger Logger) *NotificationService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Notify records a message for a user. Messages are immutable once written.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, message string) (*Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("notification message is required", errors.CategoryValidation)
	}

	notification := &Notification{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.notifications.Add(ctx, notification); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to add notification")
	}

	return notification, nil
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	notifications, err := s.notifications.GetByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list notifications")
	}
	return notifications, nil
}

// MarkRead flags a notification as read. Marking an unknown or already
// read notification is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID int64) error {
	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to mark notification as read")
	}
	return nil
}
