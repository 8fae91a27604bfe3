package handler

import (
	"net/http"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/service"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EditorHandler struct {
	editorService *service.EditorService
}

func NewEditorHandler(editorService *service.EditorService) *EditorHandler {
	return &EditorHandler{editorService: editorService}
}

type EditorRequest struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

// List handles GET /api/v1/editors
func (h *EditorHandler) List(c *gin.Context) {
	editors, err := h.editorService.List()
	if err != nil {
		c.Error(err)
		return
	}

	body := make([]gin.H, 0, len(editors))
	for _, editor := range editors {
		body = append(body, editorJSON(editor))
	}
	c.JSON(http.StatusOK, body)
}

// Get handles GET /api/v1/editors/:id
func (h *EditorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Editor"))
		return
	}

	editor, err := h.editorService.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, editorJSON(*editor))
}

// Create handles POST /api/v1/editors (admin only)
func (h *EditorHandler) Create(c *gin.Context) {
	var req EditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Editor request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	name, country := "", ""
	if req.Name != nil {
		name = *req.Name
	}
	if req.Country != nil {
		country = *req.Country
	}

	editor, err := h.editorService.Create(name, country)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, editorJSON(*editor))
}

// Update handles PUT /api/v1/editors/:id (admin only)
func (h *EditorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Editor"))
		return
	}

	var req EditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Editor request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	editor, err := h.editorService.Update(id, req.Name, req.Country)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, editorJSON(*editor))
}

// Delete handles DELETE /api/v1/editors/:id (admin only). The editor's video
// games are removed with it.
func (h *EditorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Editor"))
		return
	}

	if err := h.editorService.Delete(id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
