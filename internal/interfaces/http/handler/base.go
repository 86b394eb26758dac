package handler

import (
	"errors"
	"net/http"

	"github.com/dmc/portal/internal/domain/shared"
	"github.com/dmc/portal/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response with the payload
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
}

// HandleError converts domain errors to HTTP responses. Domain error codes
// pick the status; the message becomes the response detail. Anything else
// is reported as a 500 without leaking internals.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponse(domainErr.Message))
		return
	}
	if errors.Is(err, shared.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An unexpected error occurred"))
}
