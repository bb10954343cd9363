package socialwork

import (
	"errors"
	"net/http"

	"rakshakmorcha/internal/pkg/response"
	"rakshakmorcha/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/social-works", h.List)
}

func (h *Handler) RegisterAdminRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.POST("/social-works", h.Create)
	adminGroup.DELETE("/social-works/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	works, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, "Social works fetched", gin.H{"socialWorks": works})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title and description are required")
		return
	}

	w, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrTitleDescriptionRequired) {
			response.Error(c, http.StatusBadRequest, "Title and description are required")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Social work created successfully", gin.H{"socialWork": w})
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Social work not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, "Social work deleted successfully", nil)
}
