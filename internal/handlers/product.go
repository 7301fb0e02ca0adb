// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/seller-products/internal/i18n"
	"github.com/javajoker/seller-products/internal/repository"
	"github.com/javajoker/seller-products/internal/services"
	"github.com/javajoker/seller-products/internal/utils"
)

// MaxBatchSize caps the number of entries accepted by the bulk endpoints.
const MaxBatchSize = 100

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// POST /sellers/:sellerId/products
func (h *ProductHandler) CreateProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, ok := parseSellerID(c)
	if !ok {
		return
	}

	var req []services.CreateProductRequest
	if !bindBatch(c, &req) {
		return
	}

	if validationErrors := utils.ValidateSlice(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	products, err := h.productService.CreateProducts(c.Request.Context(), sellerID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"products": products,
	}, gin.H{
		"message": i18n.T(lang, i18n.KeyProductsCreated, len(products)),
		"count":   len(products),
	})
}

// GET /sellers/:sellerId/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	sellerID, ok := parseSellerID(c)
	if !ok {
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), sellerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": products,
	}, gin.H{
		"count": len(products),
	})
}

// PATCH /sellers/:sellerId/products
func (h *ProductHandler) UpdateProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, ok := parseSellerID(c)
	if !ok {
		return
	}

	var req []services.BulkUpdateProductRequest
	if !bindBatch(c, &req) {
		return
	}

	if validationErrors := utils.ValidateSlice(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	products, err := h.productService.UpdateProducts(c.Request.Context(), sellerID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": products,
	}, gin.H{
		"message": i18n.T(lang, i18n.KeyProductsUpdated, len(products)),
		"count":   len(products),
	})
}

// DELETE /sellers/:sellerId/products
func (h *ProductHandler) DeleteProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, ok := parseSellerID(c)
	if !ok {
		return
	}

	var req []services.DeleteProductRequest
	if !bindBatch(c, &req) {
		return
	}

	if validationErrors := utils.ValidateSlice(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ids := make([]uuid.UUID, 0, len(req))
	distinct := make(map[uuid.UUID]struct{}, len(req))
	for _, r := range req {
		ids = append(ids, r.ID)
		distinct[r.ID] = struct{}{}
	}

	if err := h.productService.DeleteProducts(c.Request.Context(), sellerID, ids); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, nil, gin.H{
		"message": i18n.T(lang, i18n.KeyProductsDeleted, len(distinct)),
		"count":   len(distinct),
	})
}

// GET /sellers/:sellerId/products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	sellerID, productID, ok := parseProductPath(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), sellerID, productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// PATCH /sellers/:sellerId/products/:productId
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, productID, ok := parseProductPath(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), sellerID, productID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, gin.H{
		"product": product,
	}, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
	})
}

// DELETE /sellers/:sellerId/products/:productId
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, productID, ok := parseProductPath(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), sellerID, productID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, nil, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

func parseSellerID(c *gin.Context) (uuid.UUID, bool) {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeySellerInvalid), nil)
		return uuid.Nil, false
	}
	return sellerID, true
}

func parseProductPath(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	sellerID, ok := parseSellerID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductInvalid), nil)
		return uuid.Nil, uuid.Nil, false
	}
	return sellerID, productID, true
}

// bindBatch decodes a JSON array body into dst and enforces MaxBatchSize.
func bindBatch[T any](c *gin.Context, dst *[]T) bool {
	lang := utils.GetLangFromContext(c)
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	if len(*dst) > MaxBatchSize {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBatchSize, MaxBatchSize), nil)
		return false
	}
	return true
}

func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSellerNotFound):
		utils.NotFoundResponse(c, i18n.KeySellerNotFound)
	case errors.Is(err, repository.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": utils.GetRequestIDFromContext(c),
			"path":       c.FullPath(),
		}).Error("Product request failed")
		_ = c.Error(err)
		utils.InternalErrorResponse(c)
	}
}
