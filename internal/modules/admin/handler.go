package admin

import (
	"errors"
	"net/http"

	"rakshakmorcha/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login is registered on the public group, Verify behind the auth
// middleware.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/admin/login", h.Login)
}

func (h *Handler) RegisterAdminRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.GET("/verify", h.Verify)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"expiresIn": "24h",
	})
}

// Verify confirms token validity; the auth middleware has already checked
// the token by the time this runs.
func (h *Handler) Verify(c *gin.Context) {
	response.Success(c, http.StatusOK, "Token valid", gin.H{
		"admin": gin.H{
			"id":    c.GetString("admin_id"),
			"email": c.GetString("admin_email"),
		},
	})
}
