package storefront

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// User is the account model. Role membership lives in RoleAssignment rows;
// the account itself only carries credentials and profile fields.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Lastname      string     `bun:"lastname" json:"lastname,omitempty"`
	Phone         string     `bun:"phone_number" json:"phone_number,omitempty"`
	Province      string     `bun:"province" json:"province,omitempty"`
	Municipality  string     `bun:"municipality" json:"municipality,omitempty"`
	PostalCode    string     `bun:"postal_code" json:"postal_code,omitempty"`
	Street        string     `bun:"street" json:"street,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// DisplayName is the name embedded in token claims, falling back to the
// email when the profile has no name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}

// RoleAssignment grants a named role to a user. Membership is modeled as a
// set even though accounts hold at most one role today; external contracts
// surface only the primary role.
type RoleAssignment struct {
	bun.BaseModel `bun:"table:role_assignments,alias:ra"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	Role          Role       `bun:"role,notnull" json:"role,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Product is the snapshot source for order items and the existence anchor
// for reviews. Catalog browsing is handled elsewhere.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:prd"`
	ID            int64           `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string          `bun:"name,notnull" json:"name,omitempty"`
	Price         decimal.Decimal `bun:"price,notnull,type:numeric" json:"price,omitempty"`
	CreatedAt     *time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Well known order statuses. The storage layer does not enforce a
// transition graph; any status string may follow any other.
const (
	OrderStatusPendiente = "Pendiente"
	OrderStatusEnCamino  = "En camino"
	OrderStatusEntregado = "Entregado"
)

// Order is a purchase record composed of item snapshots. Items are owned by
// the order and share its lifecycle.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:ord"`
	ID            int64        `bun:"id,pk,autoincrement" json:"id,omitempty"`
	UserID        uuid.UUID    `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	Status        string       `bun:"status,notnull,default:'Pendiente'" json:"status,omitempty"`
	Items         []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
	CreatedAt     time.Time    `bun:"created_at,notnull,default:current_timestamp" json:"created_at,omitempty"`
}

// Total sums the item snapshots. Because price and name are frozen at
// creation time, the total never changes when the source product is edited
// or deleted.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	if o == nil {
		return total
	}
	for _, item := range o.Items {
		if item == nil {
			continue
		}
		total = total.Add(item.Subtotal())
	}
	return total
}

// OrderItem is a copy of product id, name, price, and quantity taken when
// the order was submitted.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items,alias:oit"`
	ID            int64           `bun:"id,pk,autoincrement" json:"id,omitempty"`
	OrderID       int64           `bun:"order_id,notnull" json:"order_id,omitempty"`
	ProductID     int64           `bun:"product_id,notnull" json:"product_id,omitempty"`
	ProductName   string          `bun:"product_name,notnull" json:"product_name,omitempty"`
	Price         decimal.Decimal `bun:"price,notnull,type:numeric" json:"price,omitempty"`
	Quantity      int             `bun:"quantity,notnull" json:"quantity,omitempty"`
}

// Subtotal is price times quantity for this line.
func (i *OrderItem) Subtotal() decimal.Decimal {
	if i == nil {
		return decimal.Zero
	}
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Notification is a user-addressed message written as a side effect of an
// order status change. It starts unread and is only ever mutated by
// MarkRead.
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:ntf"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id,omitempty"`
	UserID        uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	Message       string    `bun:"message,notnull" json:"message,omitempty"`
	Read          bool      `bun:"is_read,notnull,default:false" json:"is_read"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at,omitempty"`
}

// Review is a product review left by a registered user.
type Review struct {
	bun.BaseModel `bun:"table:reviews,alias:rvw"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id,omitempty"`
	ProductID     int64     `bun:"product_id,notnull" json:"product_id,omitempty"`
	UserID        uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	User          *User     `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	Rating        int       `bun:"rating,notnull" json:"rating,omitempty"`
	Comment       string    `bun:"comment" json:"comment,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at,omitempty"`
}
