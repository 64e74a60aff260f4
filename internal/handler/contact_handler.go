package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/pkg/response"
)

type contactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error)
}

// ContactHandler accepts contact form messages.
type ContactHandler struct {
	contact contactService
}

// NewContactHandler constructs the handler.
func NewContactHandler(contact contactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit godoc
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Message"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.contact.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, resp)
}
