package dto

import "net/http"

// ErrorResponse is the wire format for all error responses. Clients read
// the human-readable reason from the detail field.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// statusByCode maps domain error codes to HTTP status codes
var statusByCode = map[string]int{
	"NOT_FOUND":       http.StatusNotFound,
	"ALREADY_EXISTS":  http.StatusConflict,
	"INVALID_STATE":   http.StatusConflict,
	"BUSINESS_RULE":   http.StatusUnprocessableEntity,
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_TYPE":    http.StatusBadRequest,
	"INVALID_NAME":    http.StatusBadRequest,
	"INVALID_ADDRESS": http.StatusBadRequest,
	"INVALID_COUNTRY": http.StatusBadRequest,
	"INVALID_EMAIL":   http.StatusBadRequest,
	"INVALID_CODE":    http.StatusBadRequest,
	"INVALID_PRICE":   http.StatusBadRequest,
	"UNAUTHORIZED":    http.StatusUnauthorized,
	"FORBIDDEN":       http.StatusForbidden,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
