package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// responseHandler implements the ResponseHandler interface
type responseHandler struct {
	logger Logger
}

// NewResponseHandler creates a new instance of ResponseHandler
func NewResponseHandler(logger Logger) ResponseHandler {
	return &responseHandler{
		logger: logger,
	}
}

// SuccessResponse sends a success response with optional data and message
func (h *responseHandler) SuccessResponse(c *gin.Context, data interface{}, message string) {
	response := Response{
		Status:       StatusSuccess,
		ResponseCode: message,
		Data:         data,
	}
	c.JSON(http.StatusOK, response)
}

// AffectedRowsResponse sends a success response carrying the updated counter
func (h *responseHandler) AffectedRowsResponse(c *gin.Context, message string, affectedRows int) {
	response := Response{
		Status:       StatusSuccess,
		ResponseCode: message,
		AffectedRows: &affectedRows,
	}
	c.JSON(http.StatusOK, response)
}

// CountResponse sends a success response carrying a count
func (h *responseHandler) CountResponse(c *gin.Context, message string, count int) {
	response := Response{
		Status:       StatusSuccess,
		ResponseCode: message,
		Count:        &count,
	}
	c.JSON(http.StatusOK, response)
}

// ErrorResponse sends an error response with status code, error code, and message
func (h *responseHandler) ErrorResponse(c *gin.Context, status int, code, message string, err error) {
	if err != nil {
		h.logger.LogError(err, message)
	}

	response := Response{
		Status:       StatusError,
		ResponseCode: message,
		Error: &Error{
			Code: code,
		},
	}
	c.JSON(status, response)
}

// ValidationErrorResponse sends a validation error response
func (h *responseHandler) ValidationErrorResponse(c *gin.Context, field, message string) {
	response := Response{
		Status:       StatusError,
		ResponseCode: message,
		Error: &Error{
			Code:  "VALIDATION_ERROR",
			Field: field,
		},
	}
	c.JSON(http.StatusBadRequest, response)
}

// NotFoundResponse sends a not found error response
func (h *responseHandler) NotFoundResponse(c *gin.Context, message string) {
	h.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// UnauthorizedResponse sends an unauthorized error response
func (h *responseHandler) UnauthorizedResponse(c *gin.Context, message string) {
	h.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// ConflictResponse sends a conflict error response
func (h *responseHandler) ConflictResponse(c *gin.Context, message string) {
	h.ErrorResponse(c, http.StatusConflict, "CONFLICT", message, nil)
}

// InternalErrorResponse sends an internal server error response
func (h *responseHandler) InternalErrorResponse(c *gin.Context, message string, err error) {
	h.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, err)
}
