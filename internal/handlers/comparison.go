// internal/handlers/comparison.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type ComparisonHandler struct {
	comparisonService *services.ComparisonService
}

type createComparisonRequest struct {
	ProductIDs []uint `json:"productIds"`
	Title      string `json:"title,omitempty"`
}

func NewComparisonHandler(comparisonService *services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
	}
}

// POST /api/comparisons
func (h *ComparisonHandler) CreateComparison(c *gin.Context) {
	var req createComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}

	// Anonymous callers are allowed; the user id is nullable.
	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(c); ok {
		userID = &id
	}

	comparison, err := h.comparisonService.CreateComparison(userID, req.ProductIDs, req.Title)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create comparison")
		return
	}

	utils.CreatedResponse(c, comparison)
}

// GET /api/comparisons/:id
func (h *ComparisonHandler) GetComparison(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Comparison not found")
		return
	}

	comparison, err := h.comparisonService.GetComparison(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrComparisonNotFound) {
			utils.NotFoundResponse(c, "Comparison not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.OKResponse(c, comparison)
}
