// internal/models/comparison.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Comparison is a saved set of products for side-by-side viewing.
// UserID is nullable; anonymous callers may create comparisons.
type Comparison struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    *uuid.UUID `json:"userId" gorm:"type:uuid;index"`
	Title     string     `json:"title" gorm:"size:255"`
	CreatedAt time.Time  `json:"createdAt"`

	Products []Product `json:"products" gorm:"many2many:comparison_products"`
}

// ComparisonProduct links a comparison to one of its products (composite key).
type ComparisonProduct struct {
	ComparisonID uint `json:"comparisonId" gorm:"primaryKey"`
	ProductID    uint `json:"productId" gorm:"primaryKey"`
}
