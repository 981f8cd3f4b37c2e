// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/medhub/medhub-backend/internal/models"
	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filters services.ProductFilters

	filters.Search = c.Query("search")
	filters.Sort = models.ProductSort(c.Query("sort"))

	if categoryIDStr := c.Query("categoryId"); categoryIDStr != "" {
		if categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32); err == nil {
			id := uint(categoryID)
			filters.CategoryID = &id
		}
	}

	if topicIDStr := c.Query("topicId"); topicIDStr != "" {
		if topicID, err := strconv.ParseUint(topicIDStr, 10, 32); err == nil {
			id := uint(topicID)
			filters.TopicID = &id
		}
	}

	switch c.Query("isAiCapable") {
	case "true":
		v := true
		filters.IsAiCapable = &v
	case "false":
		v := false
		filters.IsAiCapable = &v
	}

	products, err := h.productService.ListProducts(filters)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.OKResponse(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	product, err := h.productService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.OKResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			message, field := utils.FirstValidationError(err)
			utils.BadRequestResponse(c, message, field)
			return
		}
		utils.InternalErrorResponse(c, "Failed to create product")
		return
	}

	utils.CreatedResponse(c, product)
}
