package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of accepted payment options.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Principal is the authenticated caller as resolved by the identity provider.
type Principal struct {
	ID   string
	Role rbac.Role
}

// OrderItem is a denormalized snapshot of a product at order time. It is owned
/// exclusively by its order: catalog price changes never alter placed orders.
type OrderItem struct {
	ProductID    string
	ProductName  string
	ProductImage string
	StoreID      string
	StoreName    string
	Quantity     int
	UnitPrice    decimal.Decimal
}

type Order struct {
	OrderID         string
	CustomerID      string
	StoreID         string
	Status          OrderStatus
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	DeliveryAddress string
	DeliveryPhone   string
	DeliveryNotes   string
	PaymentMethod   PaymentMethod
	// Minutes, 5-180. Zero means the store's default applies.
	EstimatedDeliveryMinutes int
	Items                    []OrderItem
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// DeliveryUpdate is the bounded set of order fields editable after creation.
// Nil pointers leave the stored value untouched.
type DeliveryUpdate struct {
	Address                  *string
	Phone                    *string
	Notes                    *string
	EstimatedDeliveryMinutes *int
}

func (u DeliveryUpdate) Empty() bool {
	return u.Address == nil && u.Phone == nil && u.Notes == nil && u.EstimatedDeliveryMinutes == nil
}

type Store struct {
	StoreID          string
	OwnerID          string
	Name             string
	Description      string
	Address          string
	Phone            string
	Image            string
	Rating           float64
	DeliveryMinutes  int
	DeliveryFee      decimal.Decimal
	QualityCertified bool
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Product struct {
	ProductID   string
	StoreID     string
	CategoryID  string
	Name        string
	Description string
	Image       string
	Price       decimal.Decimal
	Stock       int
	Active      bool
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Review struct {
	ReviewID   string
	StoreID    string
	CustomerID string
	Stars      int
	Comment    string
	CreatedAt  time.Time
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")

	ErrInvalidStatus     = errors.New("invalid order status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")

	// ErrConflict signals an optimistic concurrency loss: the stored status
	// changed since the caller last observed it.
	ErrConflict = errors.New("order was updated concurrently")

	// ErrOrderNotEditable covers delivery-detail edits attempted after the
	// order left the pending/confirmed window.
	ErrOrderNotEditable = errors.New("order is no longer editable")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidLineItem = errors.New("invalid line item")
	ErrTotalMismatch   = errors.New("declared total does not match computed total")
	ErrStoreInactive   = errors.New("store is not active")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
