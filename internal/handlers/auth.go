// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			message, field := utils.FirstValidationError(err)
			utils.BadRequestResponse(c, message, field)
			return
		}
		utils.BadRequestResponse(c, err.Error(), "")
		return
	}

	utils.CreatedResponse(c, authResponse)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			message, field := utils.FirstValidationError(err)
			utils.BadRequestResponse(c, message, field)
			return
		}
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	utils.OKResponse(c, authResponse)
}

// GET /api/auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.OKResponse(c, user)
}
