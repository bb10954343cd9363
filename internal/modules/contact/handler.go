package contact

import (
	"errors"
	"net/http"

	"rakshakmorcha/internal/mailer"
	"rakshakmorcha/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	mail mailer.Sender
}

func NewHandler(mail mailer.Sender) *Handler {
	return &Handler{mail: mail}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/contact", h.Submit)
}

// Submit relays a contact-form submission by email. Mail delivery is
// best-effort: once validation passes the response is always a success,
// only the message text reflects whether the relay worked.
func (h *Handler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	name, email, subject, message, err := ValidateContact(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			response.Error(c, http.StatusBadRequest, "Invalid email format")
		default:
			response.Error(c, http.StatusBadRequest, "All fields are required")
		}
		return
	}

	sent := h.mail.Send(mailer.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})

	if sent {
		response.Success(c, http.StatusOK, "Message sent successfully!", nil)
		return
	}
	response.Success(c, http.StatusOK, "Message received (email unavailable)", nil)
}
