package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/mgalvezc/delivery-core/internal/service"
	mocks "github.com/mgalvezc/delivery-core/internal/service/mocks"
	txMocks "github.com/mgalvezc/delivery-core/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func flatRate(s string) service.TaxRateFunc {
	rate := dec(s)
	return func() decimal.Decimal { return rate }
}

type orderAPI interface {
	CreateOrder(ctx context.Context, customerID string, in service.CheckoutInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, principal entities.Principal) ([]entities.Order, error)
	TransitionStatus(ctx context.Context, principal entities.Principal, orderID string, target, observed entities.OrderStatus) (entities.Order, error)
	UpdateDeliveryDetails(ctx context.Context, principal entities.Principal, orderID string, upd entities.DeliveryUpdate) (entities.Order, error)
}

func newOrderService(t *testing.T) (orderAPI, *mocks.MockOrderRepo, *mocks.MockCatalogRepo, *mocks.MockCache, *txMocks.MockManager) {
	t.Helper()
	repo := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	svc := service.NewOrderService(logger, tx, repo, catalog, cache, flatRate("0.08"))
	return svc, repo, catalog, cache, tx
}

var (
	testStore = entities.Store{
		StoreID:         "s1",
		OwnerID:         "owner-1",
		Name:            "Taquería El Fogón",
		DeliveryFee:     dec("2.50"),
		DeliveryMinutes: 30,
		Active:          true,
	}
	testProduct = entities.Product{
		ProductID: "p1",
		StoreID:   "s1",
		Name:      "Tacos al pastor",
		Price:     dec("10.00"),
		Active:    true,
	}
)

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache)

	input := service.CheckoutInput{
		Items: []service.CheckoutItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: dec("10.00")},
		},
		DeliveryAddress: "Av. Insurgentes Sur 1457, CDMX",
		DeliveryPhone:   "+5255123456789",
		PaymentMethod:   entities.PaymentCash,
	}

	testCases := []struct {
		name         string
		input        service.CheckoutInput
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			input: input,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{testProduct}, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				repo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
		},
		{
			name: "declared total matches recomputed",
			input: func() service.CheckoutInput {
				in := input
				in.DeclaredTotal = dec("24.10")
				return in
			}(),
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{testProduct}, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				repo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
		},
		{
			name: "tampered declared total",
			input: func() service.CheckoutInput {
				in := input
				in.DeclaredTotal = dec("3.99")
				return in
			}(),
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{testProduct}, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
			},
			wantErr: entities.ErrTotalMismatch,
		},
		{
			name:         "empty cart",
			input:        service.CheckoutInput{},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCatalogRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrEmptyCart,
		},
		{
			name:  "unknown product",
			input: input,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return(nil, nil)
			},
			wantErr: entities.ErrInvalidLineItem,
		},
		{
			name:  "inactive product",
			input: input,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				inactive := testProduct
				inactive.Active = false
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{inactive}, nil)
			},
			wantErr: entities.ErrInvalidLineItem,
		},
		{
			name: "items from two stores",
			input: service.CheckoutInput{
				Items: []service.CheckoutItem{
					{ProductID: "p1", Quantity: 1, UnitPrice: dec("10.00")},
					{ProductID: "p2", Quantity: 1, UnitPrice: dec("4.00")},
				},
				DeliveryAddress: input.DeliveryAddress,
				DeliveryPhone:   input.DeliveryPhone,
				PaymentMethod:   entities.PaymentCash,
			},
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				other := entities.Product{ProductID: "p2", StoreID: "s2", Price: dec("4.00"), Active: true}
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1", "p2"}).
					Return([]entities.Product{testProduct, other}, nil)
			},
			wantErr: entities.ErrInvalidLineItem,
		},
		{
			name:  "inactive store",
			input: input,
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				closed := testStore
				closed.Active = false
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{testProduct}, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(closed, nil)
			},
			wantErr: entities.ErrStoreInactive,
		},
		{
			name:  "retry works (first attempt fails, second succeeds)",
			input: input,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				catalog.EXPECT().GetProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{testProduct}, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
				// первая попытка - SaveOrder падает
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				// вторая попытка - всё ок
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				repo.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, catalog, cache, _ := newOrderService(t)
			tc.mockBehavior(repo, catalog, cache)

			got, err := svc.CreateOrder(context.Background(), "c1", tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			assert.NotEmpty(t, got.OrderID)
			assert.Equal(t, "c1", got.CustomerID)
			assert.Equal(t, "s1", got.StoreID)
			assert.Equal(t, entities.StatusPending, got.Status)
			assert.True(t, got.Subtotal.Equal(dec("20.00")), "subtotal: got %s", got.Subtotal)
			assert.True(t, got.Tax.Equal(dec("1.60")), "tax: got %s", got.Tax)
			assert.True(t, got.Total.Equal(dec("24.10")), "total: got %s", got.Total)
			assert.Equal(t, testStore.DeliveryMinutes, got.EstimatedDeliveryMinutes)
			require.Len(t, got.Items, 1)
			assert.Equal(t, testProduct.Name, got.Items[0].ProductName)
			assert.Equal(t, testStore.Name, got.Items[0].StoreName)
		})
	}
}

func TestOrderService_TransitionStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache)

	pendingOrder := entities.Order{
		OrderID:    "o1",
		CustomerID: "c1",
		StoreID:    "s1",
		Status:     entities.StatusPending,
	}
	storeOwner := entities.Principal{ID: "owner-1", Role: rbac.RoleStore}
	customer := entities.Principal{ID: "c1", Role: rbac.RoleCustomer}

	testCases := []struct {
		name         string
		principal    entities.Principal
		target       entities.OrderStatus
		observed     entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:      "store owner confirms pending order",
			principal: storeOwner,
			target:    entities.StatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.StatusPending, entities.StatusConfirmed, mock.Anything).
					Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
		},
		{
			name:      "observed status is stale",
			principal: storeOwner,
			target:    entities.StatusPreparing,
			observed:  entities.StatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:      "lost the swap race",
			principal: storeOwner,
			target:    entities.StatusConfirmed,
			observed:  entities.StatusPending,
			mockBehavior: func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder, nil)
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.StatusPending, entities.StatusConfirmed, mock.Anything).
					Return(entities.ErrConflict)
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:      "customer may not confirm",
			principal: customer,
			target:    entities.StatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "customer cancels own pending order",
			principal: customer,
			target:    entities.StatusCancelled,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder, nil)
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.StatusPending, entities.StatusCancelled, mock.Anything).
					Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
		},
		{
			name:      "foreign customer",
			principal: entities.Principal{ID: "c2", Role: rbac.RoleCustomer},
			target:    entities.StatusCancelled,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "order not found",
			principal: storeOwner,
			target:    entities.StatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, catalog, cache, _ := newOrderService(t)
			tc.mockBehavior(repo, catalog, cache)

			got, err := svc.TransitionStatus(context.Background(), tc.principal, "o1", tc.target, tc.observed)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, got.Status)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache)

	validOrder := entities.Order{
		OrderID:    "o1",
		CustomerID: "c1",
		StoreID:    "s1",
		Status:     entities.StatusPending,
	}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	admin := entities.Principal{ID: "a1", Role: rbac.RoleAdmin}

	testCases := []struct {
		name         string
		principal    entities.Principal
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:      "success from cache",
			principal: admin,
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:      "cache hit still enforces ownership",
			principal: entities.Principal{ID: "c2", Role: rbac.RoleCustomer},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "broken cache entry falls back to repo",
			principal: admin,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return([]byte("broken"), true).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:      "success from repo and set to cache",
			principal: admin,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:      "not found is permanent, no retry",
			principal: admin,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "second attempt from repo",
			principal: admin,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:      "store owner reads own store order",
			principal: entities.Principal{ID: "owner-1", Role: rbac.RoleStore},
			mockBehavior: func(_ *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
				catalog.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil).Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, catalog, cache, _ := newOrderService(t)
			tc.mockBehavior(repo, catalog, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.principal, "o1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	orders := []entities.Order{{OrderID: "o1"}, {OrderID: "o2"}}

	t.Run("customer sees own orders", func(t *testing.T) {
		svc, repo, _, _, _ := newOrderService(t)
		repo.EXPECT().ListOrdersByCustomer(mock.Anything, "c1", mock.Anything).Return(orders, nil)

		got, err := svc.ListOrders(context.Background(), entities.Principal{ID: "c1", Role: rbac.RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("store owner sees store orders", func(t *testing.T) {
		svc, repo, catalog, _, _ := newOrderService(t)
		catalog.EXPECT().GetStoreByOwnerID(mock.Anything, "owner-1").Return(testStore, nil)
		repo.EXPECT().ListOrdersByStore(mock.Anything, "s1", mock.Anything).Return(orders, nil)

		got, err := svc.ListOrders(context.Background(), entities.Principal{ID: "owner-1", Role: rbac.RoleStore})
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("admin sees latest orders", func(t *testing.T) {
		svc, repo, _, _, _ := newOrderService(t)
		repo.EXPECT().ListLatestOrders(mock.Anything, mock.Anything).Return(orders, nil)

		got, err := svc.ListOrders(context.Background(), entities.Principal{ID: "a1", Role: rbac.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("courier may not list", func(t *testing.T) {
		svc, _, _, _, _ := newOrderService(t)

		_, err := svc.ListOrders(context.Background(), entities.Principal{ID: "r1", Role: rbac.RoleCourier})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestOrderService_UpdateDeliveryDetails(t *testing.T) {
	order := entities.Order{
		OrderID:         "o1",
		CustomerID:      "c1",
		StoreID:         "s1",
		Status:          entities.StatusPending,
		DeliveryAddress: "Calle Durango 200, CDMX",
	}
	customer := entities.Principal{ID: "c1", Role: rbac.RoleCustomer}
	newAddress := "Av. Revolución 735, CDMX"

	t.Run("customer updates address", func(t *testing.T) {
		svc, repo, _, cache, _ := newOrderService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(order, nil)
		repo.EXPECT().
			UpdateOrderDetails(mock.Anything, "o1", entities.DeliveryUpdate{Address: &newAddress}, mock.Anything).
			Return(nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

		got, err := svc.UpdateDeliveryDetails(context.Background(), customer, "o1", entities.DeliveryUpdate{Address: &newAddress})
		require.NoError(t, err)
		assert.Equal(t, newAddress, got.DeliveryAddress)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		svc, repo, _, _, _ := newOrderService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(order, nil)

		got, err := svc.UpdateDeliveryDetails(context.Background(), customer, "o1", entities.DeliveryUpdate{})
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("courier may not edit details", func(t *testing.T) {
		svc, repo, _, _, _ := newOrderService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(order, nil)

		_, err := svc.UpdateDeliveryDetails(context.Background(), entities.Principal{ID: "r1", Role: rbac.RoleCourier}, "o1", entities.DeliveryUpdate{Address: &newAddress})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("order no longer editable", func(t *testing.T) {
		preparing := order
		preparing.Status = entities.StatusPreparing

		svc, repo, _, _, _ := newOrderService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(preparing, nil)
		repo.EXPECT().
			UpdateOrderDetails(mock.Anything, "o1", entities.DeliveryUpdate{Address: &newAddress}, mock.Anything).
			Return(entities.ErrOrderNotEditable)

		_, err := svc.UpdateDeliveryDetails(context.Background(), customer, "o1", entities.DeliveryUpdate{Address: &newAddress})
		assert.ErrorIs(t, err, entities.ErrOrderNotEditable)
	})
}
