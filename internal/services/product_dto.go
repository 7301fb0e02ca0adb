// internal/services/product_dto.go
package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/javajoker/seller-products/internal/models"
)

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price" validate:"gte=0,lte=9999999999.99"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

func (r CreateProductRequest) Fields() models.ProductFields {
	return models.ProductFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// UpdateProductRequest is a partial update: absent fields keep their stored values.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0,lte=9999999999.99"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

func (r UpdateProductRequest) Patch() models.ProductPatch {
	return models.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

type BulkUpdateProductRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
	UpdateProductRequest
}

type DeleteProductRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// ProductResponse is the outward shape of a product; the seller relation is reduced to its id.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    uuid.UUID       `json:"sellerId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

func newProductResponses(products []*models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(p))
	}
	return responses
}
