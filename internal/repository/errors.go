// internal/repository/errors.go
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is the only lookup failure surfaced to callers. Seller and product variants
// wrap it so errors.Is(err, ErrNotFound) holds for both.
var (
	ErrNotFound        = errors.New("not found")
	ErrSellerNotFound  = fmt.Errorf("seller %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
)
