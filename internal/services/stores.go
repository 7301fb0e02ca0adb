// internal/services/stores.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/javajoker/seller-products/internal/models"
	"github.com/javajoker/seller-products/internal/repository"
)

// SellerStore resolves sellers by id.
type SellerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
}

// ProductStore is the generic product persistence the service runs on.
type ProductStore interface {
	FindOne(ctx context.Context, id uuid.UUID, filter repository.ProductFilter) (*models.Product, error)
	Find(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error)
	New(seller *models.Seller, fields models.ProductFields) *models.Product
	Save(ctx context.Context, products []*models.Product) ([]*models.Product, error)
	Remove(ctx context.Context, products []*models.Product) error
}
