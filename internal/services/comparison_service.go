// internal/services/comparison_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/models"
)

var ErrComparisonNotFound = errors.New("comparison not found")

type ComparisonService struct {
	db *gorm.DB
}

func NewComparisonService(db *gorm.DB) *ComparisonService {
	return &ComparisonService{db: db}
}

// CreateComparison inserts the comparison row and one association row
// per product id. Both steps run in one transaction so a failure leaves
// no dangling empty comparison. An empty product list is valid.
func (s *ComparisonService) CreateComparison(userID *uuid.UUID, productIDs []uint, title string) (*models.Comparison, error) {
	if title == "" {
		title = "Product Comparison"
	}

	comparison := &models.Comparison{
		UserID: userID,
		Title:  title,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comparison).Error; err != nil {
			return fmt.Errorf("failed to create comparison: %w", err)
		}

		if len(productIDs) == 0 {
			return nil
		}

		links := make([]models.ComparisonProduct, 0, len(productIDs))
		for _, pid := range productIDs {
			links = append(links, models.ComparisonProduct{
				ComparisonID: comparison.ID,
				ProductID:    pid,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link comparison products: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if comparison.Products == nil {
		comparison.Products = []models.Product{}
	}

	return comparison, nil
}

// GetComparison returns the comparison with its resolved product list.
// Product order is not guaranteed.
func (s *ComparisonService) GetComparison(id uint) (*models.Comparison, error) {
	var comparison models.Comparison
	if err := s.db.Preload("Products").First(&comparison, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComparisonNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if comparison.Products == nil {
		comparison.Products = []models.Product{}
	}

	return &comparison, nil
}
