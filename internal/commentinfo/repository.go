package commentinfo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/consensuslabs/pavilion-network/commentinfo/internal/errors"
)

// gormRepository implements Repository on top of PostgreSQL
type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a new gorm backed comment info repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new comment info row
func (r *gormRepository) Create(ctx context.Context, info *CommentInfo) error {
	if err := r.db.WithContext(ctx).Create(info).Error; err != nil {
		return apperrors.NewStorageError("failed to create comment info", err)
	}
	return nil
}

// GetByID returns nil without error when the comment does not exist
func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*CommentInfo, error) {
	var info CommentInfo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("failed to get comment info", err)
	}
	return &info, nil
}

// Update overwrites owner and counters of an existing row
func (r *gormRepository) Update(ctx context.Context, info *CommentInfo) error {
	result := r.db.WithContext(ctx).
		Model(&CommentInfo{}).
		Where("id = ?", info.ID).
		Updates(map[string]interface{}{
			"owner_id": info.OwnerID,
			"likes":    info.Likes,
			"reports":  info.Reports,
		})

	if result.Error != nil {
		return apperrors.NewStorageError("failed to update comment info", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCommentInfoNotFound
	}
	return nil
}

// Delete removes the comment info together with its recorded activities
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&UserActivity{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&CommentInfo{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperrors.NewStorageError("failed to delete comment info", err)
	}
	return deleted, nil
}

// CountLikes reads the likes column of the row
func (r *gormRepository) CountLikes(ctx context.Context, id uuid.UUID) (int, error) {
	var likes []int
	err := r.db.WithContext(ctx).
		Model(&CommentInfo{}).
		Where("id = ?", id).
		Pluck("likes", &likes).Error
	if err != nil {
		return 0, apperrors.NewStorageError("failed to count likes", err)
	}
	if len(likes) == 0 {
		return 0, ErrCommentInfoNotFound
	}
	return likes[0], nil
}

// AddUserActivity inserts the activity and relies on the unique index to reject repeats
func (r *gormRepository) AddUserActivity(ctx context.Context, activity ActivityType, userID, commentID uuid.UUID) (bool, error) {
	record := &UserActivity{
		UserID:    userID,
		CommentID: commentID,
		Activity:  activity,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record)
	if result.Error != nil {
		return false, apperrors.NewStorageError("failed to add user activity", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// IncrementLikes adds one like in a single statement
func (r *gormRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	return r.increment(ctx, id, "likes")
}

// IncrementReports adds one report in a single statement
func (r *gormRepository) IncrementReports(ctx context.Context, id uuid.UUID) (int, error) {
	return r.increment(ctx, id, "reports")
}

func (r *gormRepository) increment(ctx context.Context, id uuid.UUID, column string) (int, error) {
	var info CommentInfo
	result := r.db.WithContext(ctx).
		Model(&info).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "likes"}, {Name: "reports"}}}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return 0, apperrors.NewStorageError("failed to increment "+column, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrCommentInfoNotFound
	}

	if column == "reports" {
		return info.Reports, nil
	}
	return info.Likes, nil
}
