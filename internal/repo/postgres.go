package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "customer_id", "store_id", "status",
	"subtotal", "delivery_fee", "tax", "total",
	"delivery_address", "delivery_phone", "delivery_notes",
	"payment_method", "estimated_minutes", "created_at", "updated_at",
}

var orderItemColumns = []string{
	"order_id", "product_id", "product_name", "product_image",
	"store_id", "store_name", "quantity", "unit_price",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID string, limit int) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"customer_id": customerID}, limit)
}

func (r *postgresRepo) ListOrdersByStore(ctx context.Context, storeID string, limit int) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"store_id": storeID}, limit)
}

func (r *postgresRepo) listOrders(ctx context.Context, where sq.Eq, limit int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if len(where) > 0 {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID]))
	}
	return result, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderID, o.CustomerID, o.StoreID, string(o.Status),
			o.Subtotal, o.DeliveryFee, o.Tax, o.Total,
			o.DeliveryAddress, o.DeliveryPhone, nullString(o.DeliveryNotes),
			string(o.PaymentMethod), nullInt32(o.EstimatedDeliveryMinutes),
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(orderItemColumns...).
		Suffix("ON CONFLICT (order_id, product_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(
			orderID,
			it.ProductID,
			it.ProductName,
			nullString(it.ProductImage),
			it.StoreID,
			it.StoreName,
			it.Quantity,
			it.UnitPrice,
		)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

// UpdateOrderStatus is a compare-and-swap on the stored status: the row is only
// written when it still holds the status the caller observed. Zero rows on an
// existing order means another writer got there first.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, updatedAt time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"order_id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return r.conflictOrMissing(ctx, orderID, entities.ErrConflict)
	}
	return nil
}

// UpdateOrderDetails writes delivery-detail edits, but only while the order is
// still in the pending/confirmed window.
func (r *postgresRepo) UpdateOrderDetails(ctx context.Context, orderID string, upd entities.DeliveryUpdate, updatedAt time.Time) error {
	q := r.qb.Update("orders").Set("updated_at", updatedAt)
	if upd.Address != nil {
		q = q.Set("delivery_address", *upd.Address)
	}
	if upd.Phone != nil {
		q = q.Set("delivery_phone", *upd.Phone)
	}
	if upd.Notes != nil {
		q = q.Set("delivery_notes", nullString(*upd.Notes))
	}
	if upd.EstimatedDeliveryMinutes != nil {
		q = q.Set("estimated_minutes", *upd.EstimatedDeliveryMinutes)
	}

	query, args := q.
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.Eq{"status": []string{string(entities.StatusPending), string(entities.StatusConfirmed)}}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order details: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return r.conflictOrMissing(ctx, orderID, entities.ErrOrderNotEditable)
	}
	return nil
}

// conflictOrMissing distinguishes "row exists but the guard failed" from
// "row does not exist" after a zero-row conditional update.
func (r *postgresRepo) conflictOrMissing(ctx context.Context, orderID string, onExists error) error {
	query, args := r.qb.Select("1").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check order existence: %w", err)
	}
	return onExists
}

func (r *postgresRepo) GetStoreByID(ctx context.Context, storeID string) (entities.Store, error) {
	query, args := r.qb.Select(
		"store_id", "owner_id", "name", "description", "address", "phone", "image",
		"rating", "delivery_minutes", "delivery_fee", "quality_certified", "active",
		"created_at", "updated_at").
		From("stores").
		Where(sq.Eq{"store_id": storeID}).
		MustSql()

	var store Store
	err := r.getContext(ctx, &store, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	if err != nil {
		return entities.Store{}, fmt.Errorf("failed to get store: %w", err)
	}
	return StoreToEntity(store), nil
}

func (r *postgresRepo) GetStoreByOwnerID(ctx context.Context, ownerID string) (entities.Store, error) {
	query, args := r.qb.Select(
		"store_id", "owner_id", "name", "description", "address", "phone", "image",
		"rating", "delivery_minutes", "delivery_fee", "quality_certified", "active",
		"created_at", "updated_at").
		From("stores").
		Where(sq.Eq{"owner_id": ownerID}).
		MustSql()

	var store Store
	err := r.getContext(ctx, &store, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	if err != nil {
		return entities.Store{}, fmt.Errorf("failed to get store by owner: %w", err)
	}
	return StoreToEntity(store), nil
}

func (r *postgresRepo) ListLatestOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.listOrders(ctx, nil, limit)
}

func (r *postgresRepo) UpdateStore(ctx context.Context, s entities.Store) error {
	query, args := r.qb.Update("stores").
		Set("name", s.Name).
		Set("description", nullString(s.Description)).
		Set("address", nullString(s.Address)).
		Set("phone", nullString(s.Phone)).
		Set("image", nullString(s.Image)).
		Set("delivery_minutes", s.DeliveryMinutes).
		Set("delivery_fee", s.DeliveryFee).
		Set("quality_certified", s.QualityCertified).
		Set("active", s.Active).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"store_id": s.StoreID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrStoreNotFound
	}
	return nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(
		"product_id", "store_id", "category_id", "name", "description", "image",
		"price", "stock", "active", "featured", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) GetProductsByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	query, args := r.qb.Select(
		"product_id", "store_id", "category_id", "name", "description", "image",
		"price", "stock", "active", "featured", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"product_id": productIDs}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("description", nullString(p.Description)).
		Set("image", nullString(p.Image)).
		Set("price", p.Price).
		Set("stock", p.Stock).
		Set("active", p.Active).
		Set("featured", p.Featured).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"product_id": p.ProductID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) SaveReview(ctx context.Context, rev entities.Review) error {
	query, args := r.qb.Insert("reviews").
		Columns("review_id", "store_id", "customer_id", "stars", "comment", "created_at").
		Values(rev.ReviewID, rev.StoreID, rev.CustomerID, rev.Stars, nullString(rev.Comment), rev.CreatedAt).
		Suffix("ON CONFLICT (review_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
