// internal/services/product_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/javajoker/seller-products/internal/models"
	"github.com/javajoker/seller-products/internal/repository"
)

// ProductService exposes a seller's products. Every product lookup carries the seller
// filter, so another seller's product is reported as not found rather than forbidden.
type ProductService struct {
	sellers  SellerStore
	products ProductStore
}

func NewProductService(sellers SellerStore, products ProductStore) *ProductService {
	return &ProductService{
		sellers:  sellers,
		products: products,
	}
}

func (s *ProductService) CreateProducts(ctx context.Context, sellerID uuid.UUID, reqs []CreateProductRequest) ([]ProductResponse, error) {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	products := make([]*models.Product, 0, len(reqs))
	for _, req := range reqs {
		products = append(products, s.products.New(seller, req.Fields()))
	}

	saved, err := s.products.Save(ctx, products)
	if err != nil {
		return nil, err
	}

	return newProductResponses(saved), nil
}

func (s *ProductService) GetProduct(ctx context.Context, sellerID, productID uuid.UUID) (*ProductResponse, error) {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindOne(ctx, productID, ownedBy(seller))
	if err != nil {
		return nil, err
	}

	res := NewProductResponse(product)
	return &res, nil
}

func (s *ProductService) ListProducts(ctx context.Context, sellerID uuid.UUID) ([]ProductResponse, error) {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.Find(ctx, ownedBy(seller))
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i]))
	}
	return responses, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindOne(ctx, productID, ownedBy(seller))
	if err != nil {
		return nil, err
	}
	product.Apply(req.Patch())

	saved, err := s.products.Save(ctx, []*models.Product{product})
	if err != nil {
		return nil, err
	}

	res := NewProductResponse(saved[0])
	return &res, nil
}

// UpdateProducts merges each entry over the stored product and writes the batch at once.
// Every entry is merged over its own copy of the stored row, so entries repeating an id
// do not see each other's changes; the last one is what remains stored. One response is
// returned per entry, in input order. If any id does not resolve under the seller,
// nothing is written.
func (s *ProductService) UpdateProducts(ctx context.Context, sellerID uuid.UUID, reqs []BulkUpdateProductRequest) ([]ProductResponse, error) {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}

	stored, err := s.findOwned(ctx, seller, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Product, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	products := make([]*models.Product, 0, len(reqs))
	for _, req := range reqs {
		product := *byID[req.ID]
		product.Apply(req.Patch())
		products = append(products, &product)
	}

	saved, err := s.products.Save(ctx, products)
	if err != nil {
		return nil, err
	}

	return newProductResponses(saved), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return err
	}

	product, err := s.products.FindOne(ctx, productID, ownedBy(seller))
	if err != nil {
		return err
	}

	return s.products.Remove(ctx, []*models.Product{product})
}

func (s *ProductService) DeleteProducts(ctx context.Context, sellerID uuid.UUID, ids []uuid.UUID) error {
	seller, err := s.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return err
	}

	products, err := s.findOwned(ctx, seller, ids)
	if err != nil {
		return err
	}

	return s.products.Remove(ctx, products)
}

// findOwned resolves every distinct id under seller concurrently. The result follows the
// first-occurrence order of ids; the first failed lookup cancels the rest.
func (s *ProductService) findOwned(ctx context.Context, seller *models.Seller, ids []uuid.UUID) ([]*models.Product, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	products := make([]*models.Product, len(unique))
	filter := ownedBy(seller)

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range unique {
		i, id := i, id
		g.Go(func() error {
			product, err := s.products.FindOne(gctx, id, filter)
			if err != nil {
				return err
			}
			products[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return products, nil
}

func ownedBy(seller *models.Seller) repository.ProductFilter {
	return repository.ProductFilter{SellerID: seller.ID}
}
