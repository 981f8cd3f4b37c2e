// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/models"
	"github.com/medhub/medhub-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Content          string `json:"content,omitempty"`
	Pros             string `json:"pros,omitempty"`
	Cons             string `json:"cons,omitempty"`
	OrganizationSize string `json:"organizationSize,omitempty"`
	UsageDuration    string `json:"usageDuration,omitempty"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListReviewsByProduct returns a product's reviews oldest first.
func (s *ReviewService) ListReviewsByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// CreateReview inserts the review and refreshes the product's
// denormalized aggregate in the same transaction. The aggregate update
// is a single UPDATE statement recomputing the x10-scaled mean from the
// reviews table, so concurrent submissions for the same product cannot
// lose each other's effect and the stored value is always
// round(mean * 10) independent of submission order.
func (s *ReviewService) CreateReview(productID uint, userID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	review := &models.Review{
		ProductID:        productID,
		UserID:           userID,
		Rating:           req.Rating,
		Content:          req.Content,
		Pros:             req.Pros,
		Cons:             req.Cons,
		OrganizationSize: req.OrganizationSize,
		UsageDuration:    req.UsageDuration,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Select("id").First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		if err := tx.Exec(`
			UPDATE products
			SET review_count = review_count + 1,
			    rating = (SELECT CAST(ROUND(AVG(rating) * 10) AS INTEGER) FROM reviews WHERE product_id = ?)
			WHERE id = ?`,
			productID, productID,
		).Error; err != nil {
			return fmt.Errorf("failed to update product rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}
