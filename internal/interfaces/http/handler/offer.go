package handler

import (
	"strconv"

	"github.com/dmc/portal/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// OfferHandler serves the offer catalog
type OfferHandler struct {
	BaseHandler
	service *catalog.OfferService
}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler(service *catalog.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// RegisterRoutes registers offer routes
func (h *OfferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	offers := rg.Group("/offers")
	{
		offers.GET("", h.List)
		offers.GET("/:id", h.Get)
	}
}

// List returns all active offers ordered by price
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, offers)
}

// Get returns a single offer
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid offer id")
		return
	}
	offer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, offer)
}
