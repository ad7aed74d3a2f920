package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/rbac"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type StoreRepo interface {
	GetStoreByID(ctx context.Context, storeID string) (entities.Store, error)
	GetStoreByOwnerID(ctx context.Context, ownerID string) (entities.Store, error)
	UpdateStore(ctx context.Context, s entities.Store) error
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	SaveReview(ctx context.Context, r entities.Review) error
}

type storeService struct {
	logger *slog.Logger
	repo   StoreRepo
}

func NewStoreService(logger *slog.Logger, repo StoreRepo) *storeService {
	return &storeService{
		logger: logger.With(slog.String("service", "store")),
		repo:   repo,
	}
}

func (s *storeService) GetStoreByID(ctx context.Context, storeID string) (entities.Store, error) {
	return s.repo.GetStoreByID(ctx, storeID)
}

// StorePatch holds the store fields a store owner may change.
// Nil pointers leave the stored value untouched.
type StorePatch struct {
	Name             *string
	Description      *string
	Address          *string
	Phone            *string
	Image            *string
	DeliveryMinutes  *int
	DeliveryFee      *decimal.Decimal
	QualityCertified *bool
	Active           *bool
}

func (s *storeService) UpdateStore(ctx context.Context, principal entities.Principal, storeID string, patch StorePatch) (entities.Store, error) {
	store, err := s.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return entities.Store{}, err
	}

	if err := authorizeStoreWrite(principal, store); err != nil {
		return entities.Store{}, err
	}

	if patch.Name != nil {
		store.Name = *patch.Name
	}
	if patch.Description != nil {
		store.Description = *patch.Description
	}
	if patch.Address != nil {
		store.Address = *patch.Address
	}
	if patch.Phone != nil {
		store.Phone = *patch.Phone
	}
	if patch.Image != nil {
		store.Image = *patch.Image
	}
	if patch.DeliveryMinutes != nil {
		store.DeliveryMinutes = *patch.DeliveryMinutes
	}
	if patch.DeliveryFee != nil {
		store.DeliveryFee = *patch.DeliveryFee
	}
	if patch.QualityCertified != nil {
		store.QualityCertified = *patch.QualityCertified
	}
	if patch.Active != nil {
		store.Active = *patch.Active
	}
	store.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateStore(ctx, store); err != nil {
		return entities.Store{}, err
	}

	s.logger.Info("store updated", slog.String("store_id", store.StoreID))
	return store, nil
}

// ProductPatch holds the product fields mutable by the owning store.
type ProductPatch struct {
	Name        *string
	Description *string
	Image       *string
	Price       *decimal.Decimal
	Stock       *int
	Active      *bool
	Featured    *bool
}

func (s *storeService) UpdateProduct(ctx context.Context, principal entities.Principal, productID string, patch ProductPatch) (entities.Product, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}

	store, err := s.repo.GetStoreByID(ctx, product.StoreID)
	if err != nil {
		return entities.Product{}, err
	}
	if err := authorizeStoreWrite(principal, store); err != nil {
		return entities.Product{}, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Image != nil {
		product.Image = *patch.Image
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Active != nil {
		product.Active = *patch.Active
	}
	if patch.Featured != nil {
		product.Featured = *patch.Featured
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product updated", slog.String("product_id", product.ProductID), slog.String("store_id", product.StoreID))
	return product, nil
}

func (s *storeService) SubmitReview(ctx context.Context, principal entities.Principal, storeID string, stars int, comment string) (entities.Review, error) {
	store, err := s.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return entities.Review{}, err
	}
	if !store.Active {
		return entities.Review{}, entities.ErrStoreInactive
	}

	review := entities.Review{
		ReviewID:   ulid.Make().String(),
		StoreID:    store.StoreID,
		CustomerID: principal.ID,
		Stars:      stars,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.SaveReview(ctx, review); err != nil {
		return entities.Review{}, err
	}

	s.logger.Debug("review saved", "review_id", review.ReviewID, "store_id", review.StoreID)
	return review, nil
}

// authorizeStoreWrite allows admins and the owning store only.
func authorizeStoreWrite(principal entities.Principal, store entities.Store) error {
	if principal.Role == rbac.RoleAdmin {
		return nil
	}
	if principal.Role == rbac.RoleStore && store.OwnerID == principal.ID {
		return nil
	}
	return fmt.Errorf("%w: store %s belongs to another owner", entities.ErrForbidden, store.StoreID)
}
