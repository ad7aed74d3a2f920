package handler

import (
	"time"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/service"

	"github.com/shopspring/decimal"
)

// OrderItemPayload is an order line as submitted at checkout, priced at quote time.
type OrderItemPayload struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	Price     float64 `json:"price" validate:"required,gte=0.01"`
}

// CreateOrderRequest is the checkout payload. The money fields are
// informational: totals are always re-derived server side.
type CreateOrderRequest struct {
	Items                 []OrderItemPayload `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress       string             `json:"delivery_address" validate:"required,min=10,max=200"`
	DeliveryPhone         string             `json:"delivery_phone" validate:"required,min=7,max=20"`
	DeliveryNotes         string             `json:"delivery_notes,omitempty" validate:"max=500"`
	PaymentMethod         string             `json:"payment_method" validate:"required,oneof=cash card"`
	EstimatedDeliveryTime int                `json:"estimated_delivery_time,omitempty" validate:"omitempty,gte=5,lte=180"`
	Subtotal              float64            `json:"subtotal,omitempty" validate:"omitempty,gte=0"`
	DeliveryFee           float64            `json:"delivery_fee,omitempty" validate:"omitempty,gte=0"`
	Tax                   float64            `json:"tax,omitempty" validate:"omitempty,gte=0"`
	Total                 float64            `json:"total,omitempty" validate:"omitempty,gte=0"`
}

// UpdateOrderRequest carries the bounded set of delivery-detail edits.
type UpdateOrderRequest struct {
	DeliveryAddress       *string `json:"delivery_address,omitempty" validate:"omitempty,min=10,max=200"`
	DeliveryPhone         *string `json:"delivery_phone,omitempty" validate:"omitempty,min=7,max=20"`
	DeliveryNotes         *string `json:"delivery_notes,omitempty" validate:"omitempty,max=500"`
	EstimatedDeliveryTime *int    `json:"estimated_delivery_time,omitempty" validate:"omitempty,gte=5,lte=180"`
}

// TransitionRequest asks for a status change. ExpectedStatus is the status the
// caller last observed; the transition is rejected with a conflict when the
// stored status has moved on.
type TransitionRequest struct {
	Status         string `json:"status" validate:"required"`
	ExpectedStatus string `json:"expected_status,omitempty"`
}

type UpdateStoreRequest struct {
	Name               *string  `json:"nombre,omitempty" validate:"omitempty,min=2,max=100"`
	Description        *string  `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Address            *string  `json:"direccion,omitempty" validate:"omitempty,min=5,max=200"`
	Phone              *string  `json:"telefono,omitempty" validate:"omitempty,min=7,max=20"`
	Image              *string  `json:"imagen,omitempty" validate:"omitempty,url"`
	DeliveryMinutes    *int     `json:"tiempo_entrega,omitempty" validate:"omitempty,gte=1,lte=180"`
	DeliveryFee        *float64 `json:"costo_envio,omitempty" validate:"omitempty,gte=0"`
	QualityCertificate *bool    `json:"certificado_calidad,omitempty"`
	Active             *bool    `json:"activo,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"nombre,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Image       *string  `json:"imagen,omitempty" validate:"omitempty,url"`
	Price       *float64 `json:"precio,omitempty" validate:"omitempty,gt=0,lte=9999.99"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0,lte=9999"`
	Active      *bool    `json:"activo,omitempty"`
	Featured    *bool    `json:"destacado,omitempty"`
}

type CreateReviewRequest struct {
	Stars   int    `json:"stars" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"max=500"`
}

// Order представляет заказ в ответах API
type Order struct {
	OrderID               string      `json:"order_id"`
	CustomerID            string      `json:"customer_id"`
	StoreID               string      `json:"store_id"`
	Status                string      `json:"status"`
	Subtotal              float64     `json:"subtotal"`
	DeliveryFee           float64     `json:"delivery_fee"`
	Tax                   float64     `json:"tax"`
	Total                 float64     `json:"total"`
	DeliveryAddress       string      `json:"delivery_address"`
	DeliveryPhone         string      `json:"delivery_phone"`
	DeliveryNotes         string      `json:"delivery_notes,omitempty"`
	PaymentMethod         string      `json:"payment_method"`
	EstimatedDeliveryTime int         `json:"estimated_delivery_time,omitempty"`
	Items                 []OrderItem `json:"items"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image,omitempty"`
	StoreID      string  `json:"store_id"`
	StoreName    string  `json:"store_name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

type Store struct {
	StoreID            string    `json:"store_id"`
	Name               string    `json:"nombre"`
	Description        string    `json:"descripcion,omitempty"`
	Address            string    `json:"direccion,omitempty"`
	Phone              string    `json:"telefono,omitempty"`
	Image              string    `json:"imagen,omitempty"`
	Rating             float64   `json:"rating"`
	DeliveryMinutes    int       `json:"tiempo_entrega"`
	DeliveryFee        float64   `json:"costo_envio"`
	QualityCertificate bool      `json:"certificado_calidad"`
	Active             bool      `json:"activo"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Product struct {
	ProductID   string    `json:"product_id"`
	StoreID     string    `json:"store_id"`
	CategoryID  string    `json:"category_id,omitempty"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
	Image       string    `json:"imagen,omitempty"`
	Price       float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Active      bool      `json:"activo"`
	Featured    bool      `json:"destacado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Review struct {
	ReviewID   string    `json:"review_id"`
	StoreID    string    `json:"store_id"`
	CustomerID string    `json:"customer_id"`
	Stars      int       `json:"stars"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func CheckoutInputFromRequest(req CreateOrderRequest) service.CheckoutInput {
	items := make([]service.CheckoutItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CheckoutItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: decimal.NewFromFloat(it.Price),
		})
	}

	return service.CheckoutInput{
		Items:                    items,
		DeliveryAddress:          req.DeliveryAddress,
		DeliveryPhone:            req.DeliveryPhone,
		DeliveryNotes:            req.DeliveryNotes,
		PaymentMethod:            entities.PaymentMethod(req.PaymentMethod),
		EstimatedDeliveryMinutes: req.EstimatedDeliveryTime,
		DeclaredTotal:            decimal.NewFromFloat(req.Total),
	}
}

func DeliveryUpdateFromRequest(req UpdateOrderRequest) entities.DeliveryUpdate {
	return entities.DeliveryUpdate{
		Address:                  req.DeliveryAddress,
		Phone:                    req.DeliveryPhone,
		Notes:                    req.DeliveryNotes,
		EstimatedDeliveryMinutes: req.EstimatedDeliveryTime,
	}
}

func StorePatchFromRequest(req UpdateStoreRequest) service.StorePatch {
	patch := service.StorePatch{
		Name:             req.Name,
		Description:      req.Description,
		Address:          req.Address,
		Phone:            req.Phone,
		Image:            req.Image,
		DeliveryMinutes:  req.DeliveryMinutes,
		QualityCertified: req.QualityCertificate,
		Active:           req.Active,
	}
	if req.DeliveryFee != nil {
		fee := decimal.NewFromFloat(*req.DeliveryFee)
		patch.DeliveryFee = &fee
	}
	return patch
}

func ProductPatchFromRequest(req UpdateProductRequest) service.ProductPatch {
	patch := service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
		Active:      req.Active,
		Featured:    req.Featured,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		patch.Price = &price
	}
	return patch
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID:    i.ProductID,
		ProductName:  i.ProductName,
		ProductImage: i.ProductImage,
		StoreID:      i.StoreID,
		StoreName:    i.StoreName,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice.InexactFloat64(),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		OrderID:               o.OrderID,
		CustomerID:            o.CustomerID,
		StoreID:               o.StoreID,
		Status:                string(o.Status),
		Subtotal:              o.Subtotal.InexactFloat64(),
		DeliveryFee:           o.DeliveryFee.InexactFloat64(),
		Tax:                   o.Tax.InexactFloat64(),
		Total:                 o.Total.InexactFloat64(),
		DeliveryAddress:       o.DeliveryAddress,
		DeliveryPhone:         o.DeliveryPhone,
		DeliveryNotes:         o.DeliveryNotes,
		PaymentMethod:         string(o.PaymentMethod),
		EstimatedDeliveryTime: o.EstimatedDeliveryMinutes,
		Items:                 items,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func StoreEntityToJSON(s entities.Store) Store {
	return Store{
		StoreID:            s.StoreID,
		Name:               s.Name,
		Description:        s.Description,
		Address:            s.Address,
		Phone:              s.Phone,
		Image:              s.Image,
		Rating:             s.Rating,
		DeliveryMinutes:    s.DeliveryMinutes,
		DeliveryFee:        s.DeliveryFee.InexactFloat64(),
		QualityCertificate: s.QualityCertified,
		Active:             s.Active,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ProductID:   p.ProductID,
		StoreID:     p.StoreID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		Active:      p.Active,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ReviewID:   r.ReviewID,
		StoreID:    r.StoreID,
		CustomerID: r.CustomerID,
		Stars:      r.Stars,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
