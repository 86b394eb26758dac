package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmc/portal/internal/application/contract"
	"github.com/dmc/portal/internal/infrastructure/esign"
	"github.com/dmc/portal/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SignatureHeader carries the webhook HMAC signature
const SignatureHeader = "X-ESign-Signature"

// SigningHandler serves the e-signature flow
type SigningHandler struct {
	BaseHandler
	service  *contract.SigningService
	provider esign.Provider
}

// NewSigningHandler creates a new SigningHandler
func NewSigningHandler(service *contract.SigningService, provider esign.Provider) *SigningHandler {
	return &SigningHandler{service: service, provider: provider}
}

// RegisterRoutes registers signing routes
func (h *SigningHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contracts/:id/signing/start", h.Start)
	rg.POST("/webhooks/esign/:provider", h.Webhook)
}

// Start begins the signing process for a draft contract
func (h *SigningHandler) Start(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract id")
		return
	}

	resp, err := h.service.Start(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// Webhook applies a provider status notification
func (h *SigningHandler) Webhook(c *gin.Context) {
	if c.Param("provider") != h.provider.Name() {
		h.NotFound(c, "Unknown provider")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Cannot read request body")
		return
	}

	event, err := h.provider.ParseWebhook(body, c.GetHeader(SignatureHeader))
	if err != nil {
		if errors.Is(err, esign.ErrInvalidSignature) {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid webhook signature"))
			return
		}
		h.BadRequest(c, "Malformed webhook payload")
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), event); err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"status": "accepted"})
}
