// internal/handlers/directory.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// GET /api/categories
func (h *DirectoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.directoryService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.OKResponse(c, categories)
}

// GET /api/topics
func (h *DirectoryHandler) ListTopics(c *gin.Context) {
	var categoryID *uint
	if categoryIDStr := c.Query("categoryId"); categoryIDStr != "" {
		if parsed, err := strconv.ParseUint(categoryIDStr, 10, 32); err == nil {
			id := uint(parsed)
			categoryID = &id
		}
	}

	topics, err := h.directoryService.ListTopics(categoryID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.OKResponse(c, topics)
}

// GET /api/topics/:slug
func (h *DirectoryHandler) GetTopicBySlug(c *gin.Context) {
	topic, err := h.directoryService.GetTopicBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrTopicNotFound) {
			utils.NotFoundResponse(c, "Topic not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.OKResponse(c, topic)
}

// GET /api/stats
func (h *DirectoryHandler) ListStats(c *gin.Context) {
	stats, err := h.directoryService.ListStats()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.OKResponse(c, stats)
}

// GET /api/articles
func (h *DirectoryHandler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	articles, err := h.directoryService.ListArticles(c.Query("type"), limit)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.OKResponse(c, articles)
}

// GET /api/events
func (h *DirectoryHandler) ListEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	events, err := h.directoryService.ListEvents(limit)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.OKResponse(c, events)
}
