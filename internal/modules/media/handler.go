package media

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
	api.GET("/media", h.List)
}

func (h *Handler) RegisterAdminRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.POST("/upload", h.Upload)
	adminGroup.DELETE("/media/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, "Media fetched", gin.H{"media": items})
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	m, err := h.service.Upload(c.Request.Context(), fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "File too large. Maximum size is 50MB")
		case errors.Is(err, ErrInvalidFileType), errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "Only images and videos are allowed")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "File uploaded successfully", gin.H{"media": m})
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Media not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, "Media deleted successfully", nil)
}
