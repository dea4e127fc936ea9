package storefront

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one submitted line item. Name and price are the
// snapshot values frozen into the order; they are not re-read from the
// catalog afterwards.
type OrderItemInput struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Validate rejects non-positive quantities and product ids before any
// mutation is attempted.
func (i OrderItemInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ProductID, validation.Required, validation.Min(1)),
		validation.Field(&i.ProductName, validation.Required),
		validation.Field(&i.Quantity, validation.Required, validation.Min(1)),
	)
}

// OrderService orchestrates the order lifecycle. The notification write on
// status change is best-effort: the status change is the durable outcome.
type OrderService struct {
	orders        Orders
	notifications Notifications
	logger        Logger
	activitySink  ActivitySink
}

// NewOrderService creates an OrderService with explicit stores.
func NewOrderService(orders Orders, notifications Notifications) *OrderService {
	return &OrderService{
		orders:        orders,
		notifications: notifications,
		logger:        defLogger{},
		activitySink:  noopActivitySink{},
	}
}

func (s *OrderService) WithLogger(logger Logger) *OrderService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithActivitySink configures an ActivitySink for order events.
func (s *OrderService) WithActivitySink(sink ActivitySink) *OrderService {
	s.activitySink = normalizeActivitySink(sink)
	return s
}

// Create snapshots the submitted line items into a new order with status
// "Pendiente" and the current timestamp, persisting order and items as one
// atomic unit.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, items []OrderItemInput) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderWithoutItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, errors.Wrap(err, errors.CategoryValidation, "invalid order item")
		}
	}

	order := &Order{
		UserID:    userID,
		Status:    OrderStatusPendiente,
		CreatedAt: time.Now().UTC(),
		Items:     make([]*OrderItem, 0, len(items)),
	}

	for _, item := range items {
		order.Items = append(order.Items, &OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create order")
	}

	return order, nil
}

// ListAll returns every order with its items. No pagination.
func (s *OrderService) ListAll(ctx context.Context) ([]*Order, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list orders")
	}
	return orders, nil
}

// UpdateStatus persists a new status for an existing order and, only after
// the status change is confirmed durable, notifies the order's owner. The
// notification is fire-and-forget relative to the caller: its failure is
// logged and dropped, never surfaced as a status-update failure.
//
// Statuses are free-form; no transition graph is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, newStatus string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.IsNotFound(err) {
			return ErrOrderNotFound
		}
		return errors.Wrap(err, errors.CategoryInternal, "failed to load order")
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, newStatus)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to update order status")
	}

	if !updated {
		// Deleted between the lookup and the write; same outcome as an
		// unknown id.
		return ErrOrderNotFound
	}

	notification := &Notification{
		UserID:    order.UserID,
		Message:   StatusChangeMessage(orderID, newStatus),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.notifications.Add(ctx, notification); err != nil {
		s.logger.Error("failed to write status notification", "order_id", orderID, "error", err)
	}

	s.emitOrderEvent(ctx, order.UserID.String(), map[string]any{
		"order_id": orderID,
		"from":     order.Status,
		"to":       newStatus,
	})

	return nil
}

// StatusChangeMessage renders the user-facing notification text for an
// order status change.
func StatusChangeMessage(orderID int64, status string) string {
	return fmt.Sprintf("El estado de tu orden #%d cambió a '%s'", orderID, status)
}

func (s *OrderService) emitOrderEvent(ctx context.Context, userID string, metadata map[string]any) {
	sink := normalizeActivitySink(s.activitySink)
	event := ActivityEvent{
		EventType:  ActivityEventOrderStatusChanged,
		UserID:     userID,
		Metadata:   metadata,
		OccurredAt: time.Now(),
	}

	if err := sink.Record(ctx, event); err != nil {
		s.logger.Warn("activity sink record error: %v", err)
	}
}
