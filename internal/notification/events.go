package notification

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of comment info event
type EventType string

const (
	CommentLiked    EventType = "COMMENT_LIKED"
	CommentReported EventType = "COMMENT_REPORTED"
)

// BaseEvent contains common fields for all event types
type BaseEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentInfoEvent is emitted after a like or report has been counted
type CommentInfoEvent struct {
	BaseEvent
	CommentID uuid.UUID `json:"commentId"`
	UserID    uuid.UUID `json:"userId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Count     int       `json:"count"`
}
