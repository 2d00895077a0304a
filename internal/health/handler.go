package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const checkTimeout = 2 * time.Second

// Handler handles health check related endpoints
type Handler struct {
	responseHandler ResponseHandler
	checks          map[string]Checker
}

// NewHandler creates a new health check handler
func NewHandler(responseHandler ResponseHandler) *Handler {
	return &Handler{
		responseHandler: responseHandler,
		checks:          make(map[string]Checker),
	}
}

// AddCheck registers a named dependency probed by the health endpoint
func (h *Handler) AddCheck(name string, checker Checker) {
	h.checks[name] = checker
}

// @Summary Health check endpoint
// @Description Checks that the API server and its dependencies are reachable
// @Tags health
// @Produce json
// @Success 200 {object} http.Response "Health check successful"
// @Failure 503 {object} http.Response "Service unavailable"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			h.responseHandler.ErrorResponse(c, http.StatusServiceUnavailable, "UNAVAILABLE", name+" unavailable", err)
			return
		}
		status[name] = "up"
	}

	h.responseHandler.SuccessResponse(c, status, "Health check successful")
}
