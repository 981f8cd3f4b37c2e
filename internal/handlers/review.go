// internal/handlers/review.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /api/products/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	reviews, err := h.reviewService.ListReviewsByProduct(uint(productID))
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.OKResponse(c, reviews)
}

// POST /api/products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}

	review, err := h.reviewService.CreateReview(uint(productID), userID, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			message, field := utils.FirstValidationError(err)
			utils.BadRequestResponse(c, message, field)
			return
		}
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to create review")
		return
	}

	utils.CreatedResponse(c, review)
}
