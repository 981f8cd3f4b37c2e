// internal/services/product_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/models"
)

type ProductServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProductService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewProductService(suite.db)

	imaging := models.Category{Name: "Imaging", Slug: "imaging"}
	billing := models.Category{Name: "Billing", Slug: "billing"}
	suite.Require().NoError(suite.db.Create(&imaging).Error)
	suite.Require().NoError(suite.db.Create(&billing).Error)

	triage := models.Topic{Name: "Triage", Slug: "triage", CategoryID: &imaging.ID}
	suite.Require().NoError(suite.db.Create(&triage).Error)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []models.Product{
		{
			Name:        "ScanAssist",
			Slug:        "scanassist",
			Description: "Automated radiology worklist prioritization.",
			CategoryID:  &imaging.ID,
			IsAiCapable: true,
			Rating:      42,
			ReviewCount: 10,
			CreatedAt:   base,
		},
		{
			Name:        "ClaimFlow",
			Slug:        "claimflow",
			Description: "Claims scrubbing and denial management.",
			CategoryID:  &billing.ID,
			IsAiCapable: false,
			Rating:      50,
			ReviewCount: 3,
			CreatedAt:   base.Add(24 * time.Hour),
		},
		{
			Name:        "DeepScan Pro",
			Slug:        "deepscan-pro",
			Description: "CT anomaly detection with PACS integration.",
			CategoryID:  &imaging.ID,
			IsAiCapable: true,
			Rating:      35,
			ReviewCount: 21,
			CreatedAt:   base.Add(48 * time.Hour),
		},
	}
	suite.Require().NoError(suite.db.Create(&products).Error)

	suite.Require().NoError(suite.db.Create(&models.ProductTopic{
		ProductID: products[0].ID,
		TopicID:   triage.ID,
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.ProductTopic{
		ProductID: products[2].ID,
		TopicID:   triage.ID,
	}).Error)
}

func (suite *ProductServiceTestSuite) names(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func (suite *ProductServiceTestSuite) TestListAllDefaultsToNewestFirst() {
	products, err := suite.service.ListProducts(ProductFilters{})
	suite.NoError(err)
	suite.Equal([]string{"DeepScan Pro", "ClaimFlow", "ScanAssist"}, suite.names(products))
}

func (suite *ProductServiceTestSuite) TestSearchIsCaseInsensitiveSubstring() {
	products, err := suite.service.ListProducts(ProductFilters{Search: "SCAN"})
	suite.NoError(err)
	suite.ElementsMatch([]string{"ScanAssist", "DeepScan Pro"}, suite.names(products))

	products, err = suite.service.ListProducts(ProductFilters{Search: "scan"})
	suite.NoError(err)
	suite.Len(products, 2)
}

func (suite *ProductServiceTestSuite) TestFilterByCategory() {
	var billing models.Category
	suite.Require().NoError(suite.db.Where("slug = ?", "billing").First(&billing).Error)

	products, err := suite.service.ListProducts(ProductFilters{CategoryID: &billing.ID})
	suite.NoError(err)
	suite.Equal([]string{"ClaimFlow"}, suite.names(products))
}

func (suite *ProductServiceTestSuite) TestFilterByTopic() {
	var triage models.Topic
	suite.Require().NoError(suite.db.Where("slug = ?", "triage").First(&triage).Error)

	products, err := suite.service.ListProducts(ProductFilters{TopicID: &triage.ID})
	suite.NoError(err)
	suite.ElementsMatch([]string{"ScanAssist", "DeepScan Pro"}, suite.names(products))
}

func (suite *ProductServiceTestSuite) TestAiCapableFilterIsTriState() {
	products, err := suite.service.ListProducts(ProductFilters{IsAiCapable: boolPtr(true)})
	suite.NoError(err)
	suite.Len(products, 2)

	products, err = suite.service.ListProducts(ProductFilters{IsAiCapable: boolPtr(false)})
	suite.NoError(err)
	suite.Equal([]string{"ClaimFlow"}, suite.names(products))

	products, err = suite.service.ListProducts(ProductFilters{})
	suite.NoError(err)
	suite.Len(products, 3)
}

func (suite *ProductServiceTestSuite) TestFiltersCombineConjunctively() {
	var imaging models.Category
	suite.Require().NoError(suite.db.Where("slug = ?", "imaging").First(&imaging).Error)

	products, err := suite.service.ListProducts(ProductFilters{
		Search:      "deep",
		CategoryID:  &imaging.ID,
		IsAiCapable: boolPtr(true),
	})
	suite.NoError(err)
	suite.Equal([]string{"DeepScan Pro"}, suite.names(products))
}

func (suite *ProductServiceTestSuite) TestSortByRating() {
	products, err := suite.service.ListProducts(ProductFilters{Sort: models.ProductSortRating})
	suite.NoError(err)
	suite.Equal([]string{"ClaimFlow", "ScanAssist", "DeepScan Pro"}, suite.names(products))
}

func (suite *ProductServiceTestSuite) TestSortByReviewCount() {
	products, err := suite.service.ListProducts(ProductFilters{Sort: models.ProductSortReviews})
	suite.NoError(err)
	suite.Equal([]string{"DeepScan Pro", "ScanAssist", "ClaimFlow"}, suite.names(products))
}

func (suite *ProductServiceTestSuite) TestGetProductPreloadsRelations() {
	var scan models.Product
	suite.Require().NoError(suite.db.Where("slug = ?", "scanassist").First(&scan).Error)

	product, err := suite.service.GetProduct(scan.ID)
	suite.NoError(err)
	suite.Require().NotNil(product.Category)
	suite.Equal("Imaging", product.Category.Name)
	suite.Require().Len(product.Topics, 1)
	suite.Equal("triage", product.Topics[0].Slug)
}

func (suite *ProductServiceTestSuite) TestGetProductNotFound() {
	_, err := suite.service.GetProduct(99999)
	suite.ErrorIs(err, ErrProductNotFound)
}

func (suite *ProductServiceTestSuite) TestCreateProductAssignsServerFields() {
	product, err := suite.service.CreateProduct(&CreateProductRequest{
		Name:        "NoteTaker",
		Slug:        "notetaker",
		Description: "Ambient clinical documentation assistant.",
		IsAiCapable: true,
	})
	suite.NoError(err)
	suite.NotZero(product.ID)
	suite.Equal(0, product.Rating)
	suite.Equal(0, product.ReviewCount)
	suite.False(product.CreatedAt.IsZero())
}

func (suite *ProductServiceTestSuite) TestCreateProductRejectsMissingName() {
	_, err := suite.service.CreateProduct(&CreateProductRequest{
		Slug:        "unnamed",
		Description: "A product without a name field.",
	})
	suite.Error(err)

	var verrs validator.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	suite.Equal("Name", verrs[0].Field())
}

func (suite *ProductServiceTestSuite) TestCreateProductRejectsBadSlug() {
	_, err := suite.service.CreateProduct(&CreateProductRequest{
		Name:        "Bad Slug Product",
		Slug:        "Not A Slug!",
		Description: "Slug must be lowercase url-safe.",
	})
	suite.Error(err)
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
