package commentinfo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
)

// ErrCommentInfoNotFound is returned by repositories when no row matches the id
var ErrCommentInfoNotFound = errors.New("comment info not found")

// Repository defines the interface for comment info data access
type Repository interface {
	Create(ctx context.Context, info *CommentInfo) error
	GetByID(ctx context.Context, id uuid.UUID) (*CommentInfo, error)
	Update(ctx context.Context, info *CommentInfo) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, id uuid.UUID) (int, error)

	// AddUserActivity records the activity and reports false when it already existed
	AddUserActivity(ctx context.Context, activity ActivityType, userID, commentID uuid.UUID) (bool, error)

	// IncrementLikes and IncrementReports add one in storage and return the new value
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	IncrementReports(ctx context.Context, id uuid.UUID) (int, error)
}

// Service defines the business logic interface for comment info operations.
// userID is the authenticated caller; an empty string means unauthenticated.
type Service interface {
	UpdateCommentInfo(ctx context.Context, userID string, info *CommentInfo) Result
	DeleteCommentInfo(ctx context.Context, userID, commentID string) Result
	CountLikes(ctx context.Context, userID, commentID string) Result
	LikeComment(ctx context.Context, userID, commentID string) Result
	ReportComment(ctx context.Context, userID, commentID string) Result
}

// EventPublisher announces successful likes and reports
type EventPublisher interface {
	PublishCommentLiked(ctx context.Context, commentID, ownerID, userID uuid.UUID, likes int) error
	PublishCommentReported(ctx context.Context, commentID, ownerID, userID uuid.UUID, reports int) error
}

// Logger interface for logging operations
type Logger = logger.Logger
