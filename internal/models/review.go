// internal/models/review.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user-submitted rating and comment on a product.
// Rating is the raw 1-5 value as submitted; the product aggregate keeps
// the x10-scaled mean.
type Review struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ProductID        uint      `json:"productId" gorm:"not null;index"`
	UserID           uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Rating           int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content          string    `json:"content" gorm:"type:text"`
	Pros             string    `json:"pros" gorm:"type:text"`
	Cons             string    `json:"cons" gorm:"type:text"`
	OrganizationSize string    `json:"organizationSize" gorm:"size:100"`
	UsageDuration    string    `json:"usageDuration" gorm:"size:100"`
	CreatedAt        time.Time `json:"createdAt"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
