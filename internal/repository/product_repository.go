// internal/repository/product_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/seller-products/internal/database"
	"github.com/javajoker/seller-products/internal/models"
)

// ProductFilter scopes product lookups to one owning seller.
type ProductFilter struct {
	SellerID uuid.UUID
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) scoped(ctx context.Context, filter ProductFilter) *gorm.DB {
	return r.db.WithContext(ctx).Where("seller_id = ?", filter.SellerID)
}

// FindOne looks a product up by id within the filter. A product owned by another seller
// yields ErrProductNotFound, exactly like a missing one.
func (r *ProductRepository) FindOne(ctx context.Context, id uuid.UUID, filter ProductFilter) (*models.Product, error) {
	var product models.Product
	if err := r.scoped(ctx, filter).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// Find returns every product matching the filter, oldest first.
func (r *ProductRepository) Find(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	if err := r.scoped(ctx, filter).Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

// New builds an unsaved product bound to seller.
func (r *ProductRepository) New(seller *models.Seller, fields models.ProductFields) *models.Product {
	return &models.Product{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		SellerID:    seller.ID,
		Seller:      seller,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price.Round(models.PriceScale),
		Stock:       fields.Stock,
	}
}

// Save inserts new products and rewrites existing ones in a single transaction.
// Either every product is written or none is. Rewriting a product that no longer
// exists under its seller fails with ErrProductNotFound instead of recreating it.
func (r *ProductRepository) Save(ctx context.Context, products []*models.Product) ([]*models.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	err := database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		for _, product := range products {
			if product.CreatedAt.IsZero() {
				if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
					return fmt.Errorf("failed to create product %s: %w", product.ID, err)
				}
				continue
			}

			result := tx.Model(product).
				Select("*").
				Omit(clause.Associations).
				Where("seller_id = ?", product.SellerID).
				Updates(product)
			if result.Error != nil {
				return fmt.Errorf("failed to update product %s: %w", product.ID, result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrProductNotFound
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Remove deletes the given products in one statement.
func (r *ProductRepository) Remove(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}

	return nil
}
