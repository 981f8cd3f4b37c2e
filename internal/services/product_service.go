// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/models"
	"github.com/medhub/medhub-backend/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

// ProductFilters are conjunctive and all optional. IsAiCapable is
// tri-state: nil means no filter.
type ProductFilters struct {
	Search      string
	CategoryID  *uint
	TopicID     *uint
	IsAiCapable *bool
	Sort        models.ProductSort
}

type CreateProductRequest struct {
	Name             string                 `json:"name" validate:"required,min=2,max=255"`
	Slug             string                 `json:"slug" validate:"required,slug,max=255"`
	Description      string                 `json:"description" validate:"required,min=10"`
	ShortDescription string                 `json:"shortDescription,omitempty"`
	LogoURL          string                 `json:"logoUrl,omitempty" validate:"omitempty,url"`
	WebsiteURL       string                 `json:"websiteUrl,omitempty" validate:"omitempty,url"`
	VendorName       string                 `json:"vendorName,omitempty"`
	CategoryID       *uint                  `json:"categoryId,omitempty"`
	PricingTier      string                 `json:"pricingTier,omitempty"`
	IntegrationType  string                 `json:"integrationType,omitempty"`
	DeploymentType   string                 `json:"deploymentType,omitempty"`
	Specifications   map[string]interface{} `json:"specifications,omitempty"`
	IsAiCapable      bool                   `json:"isAiCapable,omitempty"`
	AiCapabilities   []string               `json:"aiCapabilities,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ListProducts returns the full matching set; filters are ANDed, sort
// defaults to newest first. No pagination.
func (s *ProductService) ListProducts(filters ProductFilters) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if filters.Search != "" {
		searchTerm := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}

	if filters.IsAiCapable != nil {
		query = query.Where("is_ai_capable = ?", *filters.IsAiCapable)
	}

	if filters.TopicID != nil {
		query = query.Where(
			"id IN (?)",
			s.db.Model(&models.ProductTopic{}).Select("product_id").Where("topic_id = ?", *filters.TopicID),
		)
	}

	switch filters.Sort {
	case models.ProductSortRating:
		query = query.Order("rating DESC")
	case models.ProductSortReviews:
		query = query.Order("review_count DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}

	return products, nil
}

// GetProduct returns the product with its resolved category and linked
// topics. ErrProductNotFound when no row matches.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Preload("Topics").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

// CreateProduct inserts a vendor-submitted listing. Rating, review count
// and creation time are server-assigned.
func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		LogoURL:          req.LogoURL,
		WebsiteURL:       req.WebsiteURL,
		VendorName:       req.VendorName,
		CategoryID:       req.CategoryID,
		PricingTier:      req.PricingTier,
		IntegrationType:  req.IntegrationType,
		DeploymentType:   req.DeploymentType,
		Specifications:   models.JSONB(req.Specifications),
		IsAiCapable:      req.IsAiCapable,
		AiCapabilities:   pq.StringArray(req.AiCapabilities),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
