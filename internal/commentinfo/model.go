package commentinfo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentInfo holds the interaction counters of a comment
type CommentInfo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Likes     int       `gorm:"not null;default:0;check:likes >= 0" json:"likes"`
	Reports   int       `gorm:"not null;default:0;check:reports >= 0" json:"reports"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the gorm table name
func (CommentInfo) TableName() string {
	return "comment_info"
}

// BeforeCreate assigns an id when the caller did not
func (c *CommentInfo) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// UserActivity records that a user performed an activity on a comment.
// The unique index on (user, comment, activity) is what rejects duplicates.
type UserActivity struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_activity_unique,priority:1" json:"userId"`
	CommentID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_activity_unique,priority:2;index" json:"commentId"`
	Activity  ActivityType `gorm:"type:varchar(32);not null;uniqueIndex:idx_user_activity_unique,priority:3" json:"activity"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TableName overrides the gorm table name
func (UserActivity) TableName() string {
	return "user_activity"
}

// BeforeCreate assigns an id when the caller did not
func (a *UserActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// NewCommentInfo creates comment info with zeroed counters
func NewCommentInfo(id, ownerID uuid.UUID) *CommentInfo {
	now := time.Now().UTC()
	return &CommentInfo{
		ID:        id,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
