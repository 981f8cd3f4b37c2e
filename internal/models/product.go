// internal/models/product.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a vendor's software offering listed in the marketplace.
// Rating is the denormalized review mean stored on a x10 integer scale
// (0-50 representing 0.0-5.0); ReviewCount tracks the number of reviews
// blended into it. Both are server-maintained, never client-supplied.
type Product struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description      string         `json:"description" gorm:"type:text;not null"`
	ShortDescription string         `json:"shortDescription" gorm:"type:text"`
	LogoURL          string         `json:"logoUrl" gorm:"size:512"`
	WebsiteURL       string         `json:"websiteUrl" gorm:"size:512"`
	VendorName       string         `json:"vendorName" gorm:"size:255"`
	CategoryID       *uint          `json:"categoryId" gorm:"index"`
	PricingTier      string         `json:"pricingTier" gorm:"size:50"`
	IntegrationType  string         `json:"integrationType" gorm:"size:100"`
	DeploymentType   string         `json:"deploymentType" gorm:"size:100"`
	Specifications   JSONB          `json:"specifications" gorm:"type:jsonb"`
	IsAiCapable      bool           `json:"isAiCapable" gorm:"default:false;index"`
	AiCapabilities   pq.StringArray `json:"aiCapabilities" gorm:"type:text[]"`
	Rating           int            `json:"rating" gorm:"default:0"`
	ReviewCount      int            `json:"reviewCount" gorm:"default:0"`
	CreatedAt        time.Time      `json:"createdAt"`

	// Relationships
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Topics   []Topic   `json:"topics,omitempty" gorm:"many2many:product_topics"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}
