package handler

import (
	"net/http"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/middleware"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/service"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserRequest struct {
	Email                  *string         `json:"email"`
	Password               *string         `json:"password"`
	Roles                  *models.RoleSet `json:"roles"`
	NewsletterSubscription *bool           `json:"newsletterSubscription"`
}

func (r UserRequest) toInput() service.UserInput {
	return service.UserInput{
		Email:                  r.Email,
		Password:               r.Password,
		Roles:                  r.Roles,
		NewsletterSubscription: r.NewsletterSubscription,
	}
}

// canActOn implements the self-or-admin rule: the acting principal may touch
// the target record if it is their own or they hold the administrator role.
// The identity check is an explicit id comparison from the JWT claims.
func canActOn(c *gin.Context, targetID uint) bool {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return false
	}
	return claims.UserID == targetID || claims.IsAdmin()
}

// List handles GET /api/v1/users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		c.Error(err)
		return
	}

	body := make([]gin.H, 0, len(users))
	for _, user := range users {
		body = append(body, userJSON(user))
	}
	c.JSON(http.StatusOK, body)
}

// Get handles GET /api/v1/users/:id (self or admin)
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("User"))
		return
	}

	if !canActOn(c, id) {
		c.Error(apperr.AccessDenied("Access denied"))
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, userJSON(*user))
}

// Create handles POST /api/v1/users (admin only)
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("User request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.userService.Create(req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	logger.Log.Info("User created by admin",
		zap.Uint("user_id", user.ID),
		zap.Uint("admin_id", middleware.GetClaims(c).UserID),
	)

	c.JSON(http.StatusCreated, userJSON(*user))
}

// Update handles PUT /api/v1/users/:id (self or admin). Non-admin actors may
// update their own record, but a roles field they submit is discarded.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("User"))
		return
	}

	if !canActOn(c, id) {
		c.Error(apperr.AccessDenied("Access denied"))
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("User request parsing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	claims := middleware.GetClaims(c)
	user, err := h.userService.Update(id, req.toInput(), claims.IsAdmin())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, userJSON(*user))
}

// Delete handles DELETE /api/v1/users/:id (admin only)
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Error(apperr.NotFound("User"))
		return
	}

	if err := h.userService.Delete(id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
