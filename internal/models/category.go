// internal/models/category.go
package models

// Category is a top-level taxonomy node grouping topics and products.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"size:100"`
}

// Topic is a sub-taxonomy node under a category. OfferingCount is a
// denormalized display counter maintained only by seed data.
type Topic struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"size:255;not null"`
	Slug          string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description   string `json:"description" gorm:"type:text"`
	CategoryID    *uint  `json:"categoryId" gorm:"index"`
	Icon          string `json:"icon" gorm:"size:100"`
	OfferingCount int    `json:"offeringCount" gorm:"default:0"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Products []Product `json:"products,omitempty" gorm:"many2many:product_topics"`
}

// ProductTopic is the product/topic association row (composite key).
type ProductTopic struct {
	ProductID uint `json:"productId" gorm:"primaryKey"`
	TopicID   uint `json:"topicId" gorm:"primaryKey"`
}
