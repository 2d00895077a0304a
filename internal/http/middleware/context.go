package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
)

const (
	// LoggerKey is the gin context key of the request scoped logger
	LoggerKey = "logger"

	// RequestIDHeader carries a caller supplied request id
	RequestIDHeader = "X-Request-ID"
)

// GetLogger retrieves the logger from the gin context
func GetLogger(c *gin.Context) logger.Logger {
	if log, exists := c.Get(LoggerKey); exists {
		if contextLogger, ok := log.(logger.Logger); ok {
			return contextLogger
		}
	}
	return logger.NewNopLogger()
}
