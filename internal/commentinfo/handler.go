package commentinfo

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/auth"
	apperrors "github.com/consensuslabs/pavilion-network/commentinfo/internal/errors"
	httpHandler "github.com/consensuslabs/pavilion-network/commentinfo/internal/http"
)

// UpdateCommentInfoRequest is the body of PUT /comment-info/:id
type UpdateCommentInfoRequest struct {
	OwnerID uuid.UUID `json:"ownerId" binding:"required"`
	Likes   int       `json:"likes"`
	Reports int       `json:"reports"`
}

// Handler defines the HTTP handler for comment info operations
type Handler struct {
	service  Service
	response httpHandler.ResponseHandler
}

// NewHandler creates a new comment info handler
func NewHandler(service Service, response httpHandler.ResponseHandler) *Handler {
	return &Handler{
		service:  service,
		response: response,
	}
}

// RegisterRoutes registers the comment info API routes.
// Authentication is optional at the transport level; the service rejects anonymous callers.
func (h *Handler) RegisterRoutes(router gin.IRouter, tokens auth.TokenService) {
	group := router.Group("/comment-info")
	group.Use(auth.OptionalAuthMiddleware(tokens))
	{
		group.PUT("/:id", h.UpdateCommentInfo)
		group.DELETE("/:id", h.DeleteCommentInfo)
		group.GET("/:id/likes", h.CountLikes)
		group.POST("/:id/like", h.LikeComment)
		group.POST("/:id/report", h.ReportComment)
	}
}

// @Summary Update comment info
// @Description Overwrites owner and counters of a comment
// @Tags comment-info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID (UUID)"
// @Param request body UpdateCommentInfoRequest true "Comment info"
// @Success 200 {object} http.Response "Comment info updated successfully"
// @Failure 400 {object} http.Response "Invalid uuid input"
// @Failure 401 {object} http.Response "Unauthorized"
// @Failure 500 {object} http.Response "Failed to update comment info"
// @Router /comment-info/{id} [put]
func (h *Handler) UpdateCommentInfo(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req UpdateCommentInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if userID == "" {
			h.respond(c, Failure(apperrors.KindUnauthorized, MsgUnauthorized))
			return
		}
		h.response.ValidationErrorResponse(c, "body", MsgInvalidCommentInfo)
		return
	}

	info := &CommentInfo{
		ID:      h.pathID(c),
		OwnerID: req.OwnerID,
		Likes:   req.Likes,
		Reports: req.Reports,
	}
	h.respond(c, h.service.UpdateCommentInfo(c.Request.Context(), userID, info))
}

// @Summary Delete comment info
// @Tags comment-info
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} http.Response "Comment deleted successfully"
// @Failure 400 {object} http.Response "Invalid uuid input"
// @Failure 401 {object} http.Response "Unauthorized"
// @Failure 404 {object} http.Response "Failed to delete comment"
// @Router /comment-info/{id} [delete]
func (h *Handler) DeleteCommentInfo(c *gin.Context) {
	h.respond(c, h.service.DeleteCommentInfo(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")))
}

// @Summary Count likes of a comment
// @Tags comment-info
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} http.Response "Likes counted successfully"
// @Failure 404 {object} http.Response "Comment not found"
// @Router /comment-info/{id}/likes [get]
func (h *Handler) CountLikes(c *gin.Context) {
	h.respond(c, h.service.CountLikes(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")))
}

// @Summary Like a comment
// @Tags comment-info
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} http.Response "Successfully liked"
// @Failure 409 {object} http.Response "Already liked"
// @Router /comment-info/{id}/like [post]
func (h *Handler) LikeComment(c *gin.Context) {
	h.respond(c, h.service.LikeComment(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")))
}

// @Summary Report a comment
// @Tags comment-info
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} http.Response "Successfully report"
// @Failure 409 {object} http.Response "Already report"
// @Router /comment-info/{id}/report [post]
func (h *Handler) ReportComment(c *gin.Context) {
	h.respond(c, h.service.ReportComment(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")))
}

// pathID parses the :id parameter; malformed ids become uuid.Nil and are rejected by the service
func (h *Handler) pathID(c *gin.Context) uuid.UUID {
	raw := c.Param("id")
	if !IsValidUUID(raw) {
		return uuid.Nil
	}
	id, err := parseID(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// respond maps the result kind onto the HTTP status
func (h *Handler) respond(c *gin.Context, res Result) {
	switch res.Kind {
	case apperrors.KindNone:
		switch {
		case res.AffectedRows != nil:
			h.response.AffectedRowsResponse(c, res.ResponseCode, *res.AffectedRows)
		case res.Count != nil:
			h.response.CountResponse(c, res.ResponseCode, *res.Count)
		default:
			h.response.SuccessResponse(c, nil, res.ResponseCode)
		}
	case apperrors.KindUnauthorized:
		h.response.UnauthorizedResponse(c, res.ResponseCode)
	case apperrors.KindValidation:
		field := "body"
		if res.ResponseCode == MsgInvalidUUID {
			field = "id"
		}
		h.response.ValidationErrorResponse(c, field, res.ResponseCode)
	case apperrors.KindNotFound:
		h.response.NotFoundResponse(c, res.ResponseCode)
	case apperrors.KindConflict:
		h.response.ConflictResponse(c, res.ResponseCode)
	default:
		h.response.InternalErrorResponse(c, res.ResponseCode, nil)
	}
}
