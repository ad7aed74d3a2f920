package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/mgalvezc/delivery-core/internal/service"
	mocks "github.com/mgalvezc/delivery-core/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) (storeAPI, *mocks.MockStoreRepo) {
	t.Helper()
	repo := mocks.NewMockStoreRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewStoreService(logger, repo), repo
}

type storeAPI interface {
	GetStoreByID(ctx context.Context, storeID string) (entities.Store, error)
	UpdateStore(ctx context.Context, principal entities.Principal, storeID string, patch service.StorePatch) (entities.Store, error)
	UpdateProduct(ctx context.Context, principal entities.Principal, productID string, patch service.ProductPatch) (entities.Product, error)
	SubmitReview(ctx context.Context, principal entities.Principal, storeID string, stars int, comment string) (entities.Review, error)
}

func TestStoreService_UpdateStore(t *testing.T) {
	owner := entities.Principal{ID: "owner-1", Role: rbac.RoleStore}
	newName := "Taquería El Fogón Centro"
	newFee := dec("3.00")

	t.Run("owner updates own store", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
		repo.EXPECT().UpdateStore(mock.Anything, mock.Anything).Return(nil)

		got, err := svc.UpdateStore(context.Background(), owner, "s1", service.StorePatch{
			Name:        &newName,
			DeliveryFee: &newFee,
		})
		require.NoError(t, err)
		assert.Equal(t, newName, got.Name)
		assert.True(t, got.DeliveryFee.Equal(newFee))
		// untouched fields keep their values
		assert.Equal(t, testStore.DeliveryMinutes, got.DeliveryMinutes)
	})

	t.Run("admin may update any store", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
		repo.EXPECT().UpdateStore(mock.Anything, mock.Anything).Return(nil)

		_, err := svc.UpdateStore(context.Background(), entities.Principal{ID: "a1", Role: rbac.RoleAdmin}, "s1", service.StorePatch{Name: &newName})
		assert.NoError(t, err)
	})

	t.Run("foreign owner is rejected", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)

		_, err := svc.UpdateStore(context.Background(), entities.Principal{ID: "owner-2", Role: rbac.RoleStore}, "s1", service.StorePatch{Name: &newName})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("customer is rejected", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)

		_, err := svc.UpdateStore(context.Background(), entities.Principal{ID: "c1", Role: rbac.RoleCustomer}, "s1", service.StorePatch{Name: &newName})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("store not found", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "ghost").
			Return(entities.Store{}, entities.ErrStoreNotFound)

		_, err := svc.UpdateStore(context.Background(), owner, "ghost", service.StorePatch{Name: &newName})
		assert.ErrorIs(t, err, entities.ErrStoreNotFound)
	})
}

func TestStoreService_UpdateProduct(t *testing.T) {
	owner := entities.Principal{ID: "owner-1", Role: rbac.RoleStore}
	newPrice := dec("11.50")
	newStock := 40

	t.Run("owner updates own product", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetProductByID(mock.Anything, "p1").Return(testProduct, nil)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
		repo.EXPECT().UpdateProduct(mock.Anything, mock.Anything).Return(nil)

		got, err := svc.UpdateProduct(context.Background(), owner, "p1", service.ProductPatch{
			Price: &newPrice,
			Stock: &newStock,
		})
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(newPrice))
		assert.Equal(t, newStock, got.Stock)
		assert.Equal(t, testProduct.Name, got.Name)
	})

	t.Run("foreign owner is rejected", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetProductByID(mock.Anything, "p1").Return(testProduct, nil)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)

		_, err := svc.UpdateProduct(context.Background(), entities.Principal{ID: "owner-2", Role: rbac.RoleStore}, "p1", service.ProductPatch{Price: &newPrice})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("product not found", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetProductByID(mock.Anything, "ghost").
			Return(entities.Product{}, entities.ErrProductNotFound)

		_, err := svc.UpdateProduct(context.Background(), owner, "ghost", service.ProductPatch{Price: &newPrice})
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestStoreService_SubmitReview(t *testing.T) {
	customer := entities.Principal{ID: "c1", Role: rbac.RoleCustomer}

	t.Run("OK", func(t *testing.T) {
		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(testStore, nil)
		repo.EXPECT().SaveReview(mock.Anything, mock.Anything).Return(nil)

		got, err := svc.SubmitReview(context.Background(), customer, "s1", 5, "Excelente servicio")
		require.NoError(t, err)
		assert.NotEmpty(t, got.ReviewID)
		assert.Equal(t, "s1", got.StoreID)
		assert.Equal(t, "c1", got.CustomerID)
		assert.Equal(t, 5, got.Stars)
	})

	t.Run("inactive store takes no reviews", func(t *testing.T) {
		closed := testStore
		closed.Active = false

		svc, repo := newStoreService(t)
		repo.EXPECT().GetStoreByID(mock.Anything, "s1").Return(closed, nil)

		_, err := svc.SubmitReview(context.Background(), customer, "s1", 4, "")
		assert.ErrorIs(t, err, entities.ErrStoreInactive)
	})
}
