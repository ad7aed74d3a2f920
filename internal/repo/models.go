package repo

import (
	"database/sql"
	"time"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID          string          `db:"order_id"`
	CustomerID       string          `db:"customer_id"`
	StoreID          string          `db:"store_id"`
	Status           string          `db:"status"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	DeliveryFee      decimal.Decimal `db:"delivery_fee"`
	Tax              decimal.Decimal `db:"tax"`
	Total            decimal.Decimal `db:"total"`
	DeliveryAddress  string          `db:"delivery_address"`
	DeliveryPhone    string          `db:"delivery_phone"`
	DeliveryNotes    sql.NullString  `db:"delivery_notes"`
	PaymentMethod    string          `db:"payment_method"`
	EstimatedMinutes sql.NullInt32   `db:"estimated_minutes"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type OrderItem struct {
	OrderID      string          `db:"order_id"`
	ProductID    string          `db:"product_id"`
	ProductName  string          `db:"product_name"`
	ProductImage sql.NullString  `db:"product_image"`
	StoreID      string          `db:"store_id"`
	StoreName    string          `db:"store_name"`
	Quantity     int             `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
}

type Store struct {
	StoreID          string          `db:"store_id"`
	OwnerID          string          `db:"owner_id"`
	Name             string          `db:"name"`
	Description      sql.NullString  `db:"description"`
	Address          sql.NullString  `db:"address"`
	Phone            sql.NullString  `db:"phone"`
	Image            sql.NullString  `db:"image"`
	Rating           float64         `db:"rating"`
	DeliveryMinutes  int             `db:"delivery_minutes"`
	DeliveryFee      decimal.Decimal `db:"delivery_fee"`
	QualityCertified bool            `db:"quality_certified"`
	Active           bool            `db:"active"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type Product struct {
	ProductID   string          `db:"product_id"`
	StoreID     string          `db:"store_id"`
	CategoryID  sql.NullString  `db:"category_id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Image       sql.NullString  `db:"image"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Active      bool            `db:"active"`
	Featured    bool            `db:"featured"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Review struct {
	ReviewID   string         `db:"review_id"`
	StoreID    string         `db:"store_id"`
	CustomerID string         `db:"customer_id"`
	Stars      int            `db:"stars"`
	Comment    sql.NullString `db:"comment"`
	CreatedAt  time.Time      `db:"created_at"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID:    i.ProductID,
		ProductName:  i.ProductName,
		ProductImage: nullStringToString(i.ProductImage),
		StoreID:      i.StoreID,
		StoreName:    i.StoreName,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderID:                  o.OrderID,
		CustomerID:               o.CustomerID,
		StoreID:                  o.StoreID,
		Status:                   entities.OrderStatus(o.Status),
		Subtotal:                 o.Subtotal,
		DeliveryFee:              o.DeliveryFee,
		Tax:                      o.Tax,
		Total:                    o.Total,
		DeliveryAddress:          o.DeliveryAddress,
		DeliveryPhone:            o.DeliveryPhone,
		DeliveryNotes:            nullStringToString(o.DeliveryNotes),
		PaymentMethod:            entities.PaymentMethod(o.PaymentMethod),
		EstimatedDeliveryMinutes: nullInt32ToInt(o.EstimatedMinutes),
		CreatedAt:                o.CreatedAt,
		UpdatedAt:                o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func StoreToEntity(s Store) entities.Store {
	return entities.Store{
		StoreID:          s.StoreID,
		OwnerID:          s.OwnerID,
		Name:             s.Name,
		Description:      nullStringToString(s.Description),
		Address:          nullStringToString(s.Address),
		Phone:            nullStringToString(s.Phone),
		Image:            nullStringToString(s.Image),
		Rating:           s.Rating,
		DeliveryMinutes:  s.DeliveryMinutes,
		DeliveryFee:      s.DeliveryFee,
		QualityCertified: s.QualityCertified,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ProductID:   p.ProductID,
		StoreID:     p.StoreID,
		CategoryID:  nullStringToString(p.CategoryID),
		Name:        p.Name,
		Description: nullStringToString(p.Description),
		Image:       nullStringToString(p.Image),
		Price:       p.Price,
		Stock:       p.Stock,
		Active:      p.Active,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}
