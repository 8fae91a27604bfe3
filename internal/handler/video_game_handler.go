package handler

import (
	"net/http"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/service"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoGameHandler struct {
	gameService *service.VideoGameService
}

func NewVideoGameHandler(gameService *service.VideoGameService) *VideoGameHandler {
	return &VideoGameHandler{gameService: gameService}
}

// VideoGameRequest mirrors the external write contract. The related-entity
// keys are capitalized ("Editor", "Categories"); that casing is the
// published wire format and clients already depend on it.
type VideoGameRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ReleaseDate *string `json:"releaseDate"`
	CoverImage  *string `json:"cover_image"`
	Editor      *uint   `json:"Editor"`
	Categories  *[]uint `json:"Categories"`
}

func (r VideoGameRequest) toInput() service.VideoGameInput {
	return service.VideoGameInput{
		Title:       r.Title,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		CoverImage:  r.CoverImage,
		Editor:      r.Editor,
		Categories:  r.Categories,
	}
}

// List handles GET /api/v1/video-games
func (h *VideoGameHandler) List(c *gin.Context) {
	games, err := h.gameService.List()
	if err != nil {
		c.Error(err)
		return
	}

	body := make([]gin.H, 0, len(games))
	for _, game := range games {
		body = append(body, videoGameJSON(game))
	}
	c.JSON(http.StatusOK, body)
}

// Get handles GET /api/v1/video-games/:id
func (h *VideoGameHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Video game"))
		return
	}

	game, err := h.gameService.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, videoGameJSON(*game))
}

// Create handles POST /api/v1/video-games (admin only)
func (h *VideoGameHandler) Create(c *gin.Context) {
	var req VideoGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Video game request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	game, err := h.gameService.Create(req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, videoGameJSON(*game))
}

// Update handles PUT /api/v1/video-games/:id (admin only)
func (h *VideoGameHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Video game"))
		return
	}

	var req VideoGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Video game request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	game, err := h.gameService.Update(id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, videoGameJSON(*game))
}

// Delete handles DELETE /api/v1/video-games/:id (admin only)
func (h *VideoGameHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("Video game"))
		return
	}

	if err := h.gameService.Delete(id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
