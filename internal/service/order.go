package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/pricing"
	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/mgalvezc/delivery-core/pkg/trm"
	"github.com/mgalvezc/delivery-core/pkg/utils"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string, limit int) ([]entities.Order, error)
	ListOrdersByStore(ctx context.Context, storeID string, limit int) ([]entities.Order, error)
	ListLatestOrders(ctx context.Context, limit int) ([]entities.Order, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, updatedAt time.Time) error
	UpdateOrderDetails(ctx context.Context, orderID string, upd entities.DeliveryUpdate, updatedAt time.Time) error
}

type CatalogRepo interface {
	GetStoreByID(ctx context.Context, storeID string) (entities.Store, error)
	GetStoreByOwnerID(ctx context.Context, ownerID string) (entities.Store, error)
	GetProductsByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// TaxRateFunc yields the current tax rate. The rate lives in external
// configuration; the service never hard-codes it.
type TaxRateFunc func() decimal.Decimal

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   CatalogRepo
	cache     Cache
	taxRate   TaxRateFunc
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, catalog CatalogRepo, cache Cache, taxRate TaxRateFunc) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
		taxRate:   taxRate,
	}
}

// CheckoutItem is an order line as submitted by the client, priced at quote time.
type CheckoutItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CheckoutInput is a validated cart snapshot ready to become an order.
// DeclaredTotal, when non-zero, is cross-checked against the recomputed total
// and never stored verbatim.
type CheckoutInput struct {
	Items                    []CheckoutItem
	DeliveryAddress          string
	DeliveryPhone            string
	DeliveryNotes            string
	PaymentMethod            entities.PaymentMethod
	EstimatedDeliveryMinutes int
	DeclaredTotal            decimal.Decimal
}

var persistRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateOrder turns a cart snapshot into a pending order. Items are snapshotted
// from the catalog, totals are re-derived from the line items and the store's
// delivery fee, and a tampered declared total is rejected.
func (s *orderService) CreateOrder(ctx context.Context, customerID string, in CheckoutInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}

	ids := make([]string, len(in.Items))
	for i, item := range in.Items {
		ids[i] = item.ProductID
	}

	products, err := s.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	storeID := ""
	lines := make([]pricing.LineItem, 0, len(in.Items))
	for _, item := range in.Items {
		product, ok := byID[item.ProductID]
		if !ok || !product.Active {
			return entities.Order{}, fmt.Errorf("%w: product %s is not available", entities.ErrInvalidLineItem, item.ProductID)
		}
		if storeID == "" {
			storeID = product.StoreID
		} else if product.StoreID != storeID {
			return entities.Order{}, fmt.Errorf("%w: product %s belongs to another store", entities.ErrInvalidLineItem, item.ProductID)
		}
		lines = append(lines, pricing.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	store, err := s.catalog.GetStoreByID(ctx, storeID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load store: %w", err)
	}
	if !store.Active {
		return entities.Order{}, entities.ErrStoreInactive
	}

	totals, err := pricing.ComputeTotals(lines, store.DeliveryFee, s.taxRate())
	if err != nil {
		return entities.Order{}, err
	}

	if !in.DeclaredTotal.IsZero() && !pricing.WithinTolerance(in.DeclaredTotal, totals.Total) {
		return entities.Order{}, fmt.Errorf("%w: declared %s, computed %s",
			entities.ErrTotalMismatch, in.DeclaredTotal, totals.Total)
	}

	eta := in.EstimatedDeliveryMinutes
	if eta == 0 {
		eta = store.DeliveryMinutes
	}

	now := time.Now().UTC()
	order := entities.Order{
		OrderID:                  ulid.Make().String(),
		CustomerID:               customerID,
		StoreID:                  store.StoreID,
		Status:                   entities.StatusPending,
		Subtotal:                 totals.Subtotal,
		DeliveryFee:              totals.DeliveryFee,
		Tax:                      totals.Tax,
		Total:                    totals.Total,
		DeliveryAddress:          in.DeliveryAddress,
		DeliveryPhone:            in.DeliveryPhone,
		DeliveryNotes:            in.DeliveryNotes,
		PaymentMethod:            in.PaymentMethod,
		EstimatedDeliveryMinutes: eta,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	order.Items = make([]entities.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		product := byID[item.ProductID]
		order.Items = append(order.Items, entities.OrderItem{
			ProductID:    product.ProductID,
			ProductName:  product.Name,
			ProductImage: product.Image,
			StoreID:      store.StoreID,
			StoreName:    store.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveOrderItems(ctx, order.OrderID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
			s.logger.Debug("order created", "order_id", order.OrderID, "store_id", order.StoreID)
			return nil
		})
	}
	if err := utils.Retry(persistRetry, fn); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// TransitionStatus moves an order along the lifecycle graph as a
// compare-and-swap against the status the caller last observed. Of two
// concurrent attempts from the same observed status, exactly one wins; the
// loser gets ErrConflict and should reload.
func (s *orderService) TransitionStatus(ctx context.Context, principal entities.Principal, orderID string, target, observed entities.OrderStatus) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.authorizeOrderAccess(ctx, principal, order); err != nil {
		return entities.Order{}, err
	}

	from := order.Status
	if observed != "" {
		if order.Status != observed {
			return entities.Order{}, fmt.Errorf("%w: status is %s, observed %s", entities.ErrConflict, order.Status, observed)
		}
		from = observed
	}

	if err := entities.Transition(from, target, principal.Role); err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateOrderStatus(ctx, orderID, from, target, now); err != nil {
		return entities.Order{}, err
	}

	order.Status = target
	order.UpdatedAt = now
	s.cacheOrder(order)

	s.logger.Info("order status changed",
		slog.String("order_id", orderID),
		slog.String("from", string(from)),
		slog.String("to", string(target)),
		slog.String("role", string(principal.Role)),
	)
	return order, nil
}

// UpdateDeliveryDetails applies the bounded set of delivery-detail edits,
// permitted only while the order is pending or confirmed.
func (s *orderService) UpdateDeliveryDetails(ctx context.Context, principal entities.Principal, orderID string, upd entities.DeliveryUpdate) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.authorizeOrderAccess(ctx, principal, order); err != nil {
		return entities.Order{}, err
	}
	if principal.Role == rbac.RoleCourier {
		return entities.Order{}, fmt.Errorf("%w: couriers may not edit delivery details", entities.ErrForbidden)
	}

	if upd.Empty() {
		return order, nil
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateOrderDetails(ctx, orderID, upd, now); err != nil {
		return entities.Order{}, err
	}

	if upd.Address != nil {
		order.DeliveryAddress = *upd.Address
	}
	if upd.Phone != nil {
		order.DeliveryPhone = *upd.Phone
	}
	if upd.Notes != nil {
		order.DeliveryNotes = *upd.Notes
	}
	if upd.EstimatedDeliveryMinutes != nil {
		order.EstimatedDeliveryMinutes = *upd.EstimatedDeliveryMinutes
	}
	order.UpdatedAt = now
	s.cacheOrder(order)

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
		} else {
			if err := s.authorizeOrderAccess(ctx, principal, order); err != nil {
				return entities.Order{}, err
			}
			return order, nil
		}
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(persistRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if err := s.authorizeOrderAccess(ctx, principal, order); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

const listLimit = 50

// ListOrders returns the orders visible to the principal: customers see their
// own, stores see their store's, admins see the latest across the marketplace.
func (s *orderService) ListOrders(ctx context.Context, principal entities.Principal) ([]entities.Order, error) {
	switch principal.Role {
	case rbac.RoleCustomer:
		return s.repo.ListOrdersByCustomer(ctx, principal.ID, listLimit)
	case rbac.RoleStore:
		store, err := s.catalog.GetStoreByOwnerID(ctx, principal.ID)
		if err != nil {
			return nil, err
		}
		return s.repo.ListOrdersByStore(ctx, store.StoreID, listLimit)
	case rbac.RoleAdmin:
		return s.repo.ListLatestOrders(ctx, listLimit)
	default:
		return nil, fmt.Errorf("%w: role %q may not list orders", entities.ErrForbidden, principal.Role)
	}
}

// WarmUpCache preloads the newest orders so a cold start does not stampede
// the database.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListLatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// authorizeOrderAccess enforces per-role visibility: customers their own
// orders, stores their store's, couriers/admins/moderators any.
func (s *orderService) authorizeOrderAccess(ctx context.Context, principal entities.Principal, order entities.Order) error {
	switch principal.Role {
	case rbac.RoleAdmin, rbac.RoleCourier, rbac.RoleModerator:
		return nil
	case rbac.RoleCustomer:
		if order.CustomerID != principal.ID {
			return fmt.Errorf("%w: order belongs to another customer", entities.ErrForbidden)
		}
		return nil
	case rbac.RoleStore:
		store, err := s.catalog.GetStoreByID(ctx, order.StoreID)
		if err != nil {
			return err
		}
		if store.OwnerID != principal.ID {
			return fmt.Errorf("%w: order belongs to another store", entities.ErrForbidden)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", entities.ErrForbidden, principal.Role)
	}
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderID, data)
}
