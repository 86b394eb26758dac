package handler

import (
	"strconv"

	"github.com/dmc/portal/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// CounterpartyHandler serves counterparty registration
type CounterpartyHandler struct {
	BaseHandler
	service *partner.CounterpartyService
}

// NewCounterpartyHandler creates a new CounterpartyHandler
func NewCounterpartyHandler(service *partner.CounterpartyService) *CounterpartyHandler {
	return &CounterpartyHandler{service: service}
}

// RegisterRoutes registers counterparty routes
func (h *CounterpartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.Create)
		counterparties.GET("/:id", h.Get)
	}
}

// Create registers a new counterparty
func (h *CounterpartyHandler) Create(c *gin.Context) {
	var req partner.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single counterparty
func (h *CounterpartyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid counterparty id")
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
