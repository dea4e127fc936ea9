package storefront_test

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vendira/go-storefront"
)

// TestIdentity implements storefront.Identity
type TestIdentity struct {
	id    string
	name  string
	email string
	role  string
}

func (i TestIdentity) ID() string    { return i.id }
func (i TestIdentity) Name() string  { return i.name }
func (i TestIdentity) Email() string { return i.email }
func (i TestIdentity) Role() string  { return i.role }

// MockIdentityProvider implements storefront.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (storefront.Identity, error) {
	args := m.Called(ctx, email, password)
	if identity, ok := args.Get(0).(storefront.Identity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, id string) (storefront.Identity, error) {
	args := m.Called(ctx, id)
	if identity, ok := args.Get(0).(storefront.Identity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserStore implements storefront.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*storefront.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*storefront.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*storefront.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*storefront.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) Roles(ctx context.Context, userID uuid.UUID) ([]storefront.Role, error) {
	args := m.Called(ctx, userID)
	if roles, ok := args.Get(0).([]storefront.Role); ok {
		return roles, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockOrders implements storefront.Orders
type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) Create(ctx context.Context, order *storefront.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrders) GetAll(ctx context.Context) ([]*storefront.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*storefront.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrders) GetByID(ctx context.Context, id int64) (*storefront.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*storefront.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrders) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

// MockNotifications implements storefront.Notifications
type MockNotifications struct {
	mock.Mock
}

func (m *MockNotifications) Add(ctx context.Context, notification *storefront.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotifications) GetByUser(ctx context.Context, userID uuid.UUID) ([]*storefront.Notification, error) {
	args := m.Called(ctx, userID)
	if notifications, ok := args.Get(0).([]*storefront.Notification); ok {
		return notifications, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotifications) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProducts implements storefront.Products
type MockProducts struct {
	mock.Mock
}

func (m *MockProducts) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProducts) GetByID(ctx context.Context, id int64) (*storefront.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*storefront.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockReviews implements storefront.Reviews
type MockReviews struct {
	mock.Mock
}

func (m *MockReviews) Add(ctx context.Context, review *storefront.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviews) GetByProduct(ctx context.Context, productID int64) ([]*storefront.Review, error) {
	args := m.Called(ctx, productID)
	if reviews, ok := args.Get(0).([]*storefront.Review); ok {
		return reviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviews) GetByID(ctx context.Context, id int64) (*storefront.Review, error) {
	args := m.Called(ctx, id)
	if review, ok := args.Get(0).(*storefront.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviews) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// capturingSink records activity events for assertions
type capturingSink struct {
	events []storefront.ActivityEvent
}

func (c *capturingSink) Record(ctx context.Context, evt storefront.ActivityEvent) error {
	c.events = append(c.events, evt)
	return nil
}

// capturingLogger records log lines for assertions without printing
type capturingLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (l *capturingLogger) Debug(format string, args ...any) { l.debugs = append(l.debugs, format) }
func (l *capturingLogger) Info(format string, args ...any)  { l.infos = append(l.infos, format) }
func (l *capturingLogger) Warn(format string, args ...any)  { l.warns = append(l.warns, format) }
func (l *capturingLogger) Error(format string, args ...any) { l.errors = append(l.errors, format) }

func newTestConfig() *storefront.SignerConfig {
	return &storefront.SignerConfig{
		SigningKey:      "test-signing-key",
		Issuer:          "test-issuer",
		Audience:        []string{"test-audience"},
		TokenExpiration: 60,
	}
}
