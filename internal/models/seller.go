// internal/models/seller.go
package models

// Seller owns products. Sellers are provisioned by another system; this service only reads them.
type Seller struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}
