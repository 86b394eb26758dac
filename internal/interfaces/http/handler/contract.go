package handler

import (
	"github.com/dmc/portal/internal/application/contract"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler serves the contract draft lifecycle and documents
type ContractHandler struct {
	BaseHandler
	service *contract.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(service *contract.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// RegisterRoutes registers contract routes
func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	{
		contracts.POST("/draft", h.CreateDraft)
		contracts.GET("/:id", h.Get)
		contracts.GET("/:id/draft-pdf", h.DraftPDF)
		contracts.GET("/:id/signed-pdf", h.SignedPDF)
	}
}

// CreateDraft creates a contract draft and renders its document
func (h *ContractHandler) CreateDraft(c *gin.Context) {
	var req contract.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.CreateDraft(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a contract with its counterparty and offer projections
func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// DraftPDF streams the rendered draft document
func (h *ContractHandler) DraftPDF(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	path, err := h.service.DraftPDFPath(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

// SignedPDF streams the signed document
func (h *ContractHandler) SignedPDF(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	path, err := h.service.SignedPDFPath(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

func (h *ContractHandler) contractID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract id")
		return uuid.Nil, false
	}
	return id, true
}
