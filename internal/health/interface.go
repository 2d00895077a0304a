package health

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ResponseHandler defines the interface for handling HTTP responses
type ResponseHandler interface {
	SuccessResponse(c *gin.Context, data interface{}, message string)
	ErrorResponse(c *gin.Context, status int, code, message string, err error)
}

// Checker reports whether a dependency is reachable
type Checker interface {
	Ping(ctx context.Context) error
}
