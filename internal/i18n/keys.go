// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthForbidden    = "auth.forbidden"

	// Sellers
	KeySellerNotFound = "seller.not_found"
	KeySellerInvalid  = "seller.invalid_id"

	// Products
	KeyProductUpdated   = "product.updated"
	KeyProductDeleted   = "product.deleted"
	KeyProductsCreated  = "product.bulk_created"
	KeyProductsUpdated  = "product.bulk_updated"
	KeyProductsDeleted  = "product.bulk_deleted"
	KeyProductNotFound  = "product.not_found"
	KeyProductInvalid   = "product.invalid_id"
	KeyProductBatchSize = "product.batch_too_large"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Platform
	KeyRateLimited   = "rate_limit.exceeded"
	KeyInternalError = "internal.error"
)
