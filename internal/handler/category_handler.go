package handler

import (
	"net/http"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/service"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type CategoryRequest struct {
	Name *string `json:"name"`
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		c.Error(err)
		return
	}

	body := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		body = append(body, categoryJSON(category))
	}
	c.JSON(http.StatusOK, body)
}

// Get handles GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Category"))
		return
	}

	category, err := h.categoryService.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, categoryJSON(*category))
}

// Create handles POST /api/v1/categories (admin only)
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Category request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}

	category, err := h.categoryService.Create(name)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, categoryJSON(*category))
}

// Update handles PUT /api/v1/categories/:id (admin only)
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Category"))
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Category request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	category, err := h.categoryService.Update(id, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, categoryJSON(*category))
}

// Delete handles DELETE /api/v1/categories/:id (admin only)
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Category"))
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
