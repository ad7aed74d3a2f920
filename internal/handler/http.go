package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/middleware"
	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/mgalvezc/delivery-core/internal/service"
	"github.com/mgalvezc/delivery-core/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID string, in service.CheckoutInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, principal entities.Principal) ([]entities.Order, error)
	TransitionStatus(ctx context.Context, principal entities.Principal, orderID string, target, observed entities.OrderStatus) (entities.Order, error)
	UpdateDeliveryDetails(ctx context.Context, principal entities.Principal, orderID string, upd entities.DeliveryUpdate) (entities.Order, error)
}

type StoreService interface {
	GetStoreByID(ctx context.Context, storeID string) (entities.Store, error)
	UpdateStore(ctx context.Context, principal entities.Principal, storeID string, patch service.StorePatch) (entities.Store, error)
	UpdateProduct(ctx context.Context, principal entities.Principal, productID string, patch service.ProductPatch) (entities.Product, error)
	SubmitReview(ctx context.Context, principal entities.Principal, storeID string, stars int, comment string) (entities.Review, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	stores   StoreService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, stores StoreService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		orders:   orders,
		stores:   stores,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.With(middleware.RequirePermission(rbac.PermOrdersCreate)).Post("/", h.CreateOrder)
		r.With(middleware.RequirePermission(rbac.PermOrdersRead)).Get("/", h.ListOrders)
		r.With(middleware.RequirePermission(rbac.PermOrdersRead)).Get("/{order_id}", h.GetOrderByID)
		r.With(middleware.RequirePermission(rbac.PermOrdersUpdate)).Patch("/{order_id}", h.UpdateOrderDetails)
		r.With(middleware.RequirePermission(rbac.PermOrdersUpdate)).Patch("/{order_id}/status", h.TransitionStatus)
	})

	r.Route("/stores", func(r chi.Router) {
		r.Get("/{store_id}", h.GetStoreByID)
		r.With(middleware.RequirePermission(rbac.PermStoresWrite)).Patch("/{store_id}", h.UpdateStore)
		r.With(middleware.RequirePermission(rbac.PermReviewsWrite)).Post("/{store_id}/reviews", h.SubmitReview)
	})

	r.With(middleware.RequirePermission(rbac.PermProductsWrite)).Patch("/products/{product_id}", h.UpdateProduct)
}

// CreateOrder создает заказ из корзины.
// @Summary      Оформить заказ
// @Description  Валидирует корзину, пересчитывает суммы и создает заказ в статусе pending
// @Tags         orders
// @Accept       json
// @Param        payload  body      CreateOrderRequest  true  "Снимок корзины"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, principal.ID, CheckoutInputFromRequest(req))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, principal, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	orders, err := h.orders.ListOrders(ctx, principal)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list orders")
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *HTTPHandler) UpdateOrderDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)
	orderID := chi.URLParam(r, "order_id")

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateDeliveryDetails(ctx, principal, orderID, DeliveryUpdateFromRequest(req))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update order details")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// TransitionStatus перемещает заказ по жизненному циклу.
// @Summary      Сменить статус заказа
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Param        payload  body      TransitionRequest  true  "Целевой и наблюдаемый статус"
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse "Статус изменился, обновите заказ"
// @Failure      422  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)
	orderID := chi.URLParam(r, "order_id")

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target, err := entities.ParseOrderStatus(req.Status)
	if err != nil {
		h.writeDomainError(ctx, w, err, "invalid target status")
		return
	}

	var observed entities.OrderStatus
	if req.ExpectedStatus != "" {
		observed, err = entities.ParseOrderStatus(req.ExpectedStatus)
		if err != nil {
			h.writeDomainError(ctx, w, err, "invalid expected status")
			return
		}
	}

	order, err := h.orders.TransitionStatus(ctx, principal, orderID, target, observed)
	if err != nil {
		statusTransitions.WithLabelValues(req.ExpectedStatus, req.Status, "rejected").Inc()
		h.writeDomainError(ctx, w, err, "failed to transition order")
		return
	}
	statusTransitions.WithLabelValues(req.ExpectedStatus, req.Status, "ok").Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) GetStoreByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	store, err := h.stores.GetStoreByID(ctx, storeID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get store")
		return
	}

	utils.WriteJSON(w, StoreEntityToJSON(store), http.StatusOK)
}

func (h *HTTPHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)
	storeID := chi.URLParam(r, "store_id")

	var req UpdateStoreRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	store, err := h.stores.UpdateStore(ctx, principal, storeID, StorePatchFromRequest(req))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update store")
		return
	}

	utils.WriteJSON(w, StoreEntityToJSON(store), http.StatusOK)
}

func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)
	productID := chi.URLParam(r, "product_id")

	var req UpdateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.stores.UpdateProduct(ctx, principal, productID, ProductPatchFromRequest(req))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *HTTPHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)
	storeID := chi.URLParam(r, "store_id")

	var req CreateReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.stores.SubmitReview(ctx, principal, storeID, req.Stars, req.Comment)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to submit review")
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// writeDomainError maps domain sentinels onto stable HTTP outcomes so clients
// can distinguish "re-prompt", "refresh and retry" and "not allowed".
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "not allowed", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrStoreNotFound),
		errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict),
		errors.Is(err, entities.ErrOrderNotEditable):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrIllegalTransition):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrInvalidLineItem),
		errors.Is(err, entities.ErrTotalMismatch),
		errors.Is(err, entities.ErrStoreInactive):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, logMsg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
