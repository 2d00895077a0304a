package commentinfo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/consensuslabs/pavilion-network/commentinfo/internal/errors"
)

// serviceImpl implements the Service interface
type serviceImpl struct {
	repo      Repository
	logger    Logger
	publisher EventPublisher
}

// NewService creates a new comment info service. publisher may be nil.
func NewService(repo Repository, logger Logger, publisher EventPublisher) Service {
	return &serviceImpl{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// interaction describes one of the counted activities (like, report)
type interaction struct {
	operation string
	activity  ActivityType
	ownerMsg  string
	duplicate string
	success   string
	failure   string
	increment func(ctx context.Context, id uuid.UUID) (int, error)
	apply     func(info *CommentInfo, n int)
	publish   func(ctx context.Context, info *CommentInfo, userID uuid.UUID) error
}

// authenticate resolves the caller id or logs the rejected attempt
func (s *serviceImpl) authenticate(userID string) (uuid.UUID, bool) {
	if userID == "" {
		s.logger.LogWarn("Unauthorized access attempt", nil)
		return uuid.Nil, false
	}

	id, err := parseID(userID)
	if err != nil {
		s.logger.LogWarn("Unauthorized access attempt", map[string]interface{}{
			"reason": "malformed user id",
		})
		return uuid.Nil, false
	}
	return id, true
}

// UpdateCommentInfo persists the given comment info as is
func (s *serviceImpl) UpdateCommentInfo(ctx context.Context, userID string, info *CommentInfo) Result {
	if _, ok := s.authenticate(userID); !ok {
		return Failure(apperrors.KindUnauthorized, MsgUnauthorized)
	}

	if verr := validateCommentInfo(info); verr != nil {
		s.logger.LogDebug("Rejected comment info update", map[string]interface{}{
			"field": verr.Field,
		})
		return Failure(apperrors.KindValidation, verr.Message)
	}

	s.logger.LogInfo("CommentInfoService.updateCommentInfo started", map[string]interface{}{
		"commentID": info.ID.String(),
	})

	if err := s.repo.Update(ctx, info); err != nil {
		if errors.Is(err, ErrCommentInfoNotFound) {
			return Failure(apperrors.KindNotFound, MsgUpdateFailed)
		}
		s.logger.WithFields(map[string]interface{}{
			"commentID": info.ID.String(),
		}).LogError(err, "Failed to update comment info")
		return Failure(apperrors.KindInternal, MsgUpdateFailed)
	}

	return Success(MsgUpdated)
}

// DeleteCommentInfo removes the comment info row
func (s *serviceImpl) DeleteCommentInfo(ctx context.Context, userID, commentID string) Result {
	if _, ok := s.authenticate(userID); !ok {
		return Failure(apperrors.KindUnauthorized, MsgUnauthorized)
	}

	id, ok := s.validateID(commentID)
	if !ok {
		return Failure(apperrors.KindValidation, MsgInvalidUUID)
	}

	s.logger.LogInfo("CommentInfoService.deleteCommentInfo started", map[string]interface{}{
		"commentID": id.String(),
	})

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"commentID": id.String(),
		}).LogError(err, "Failed to delete comment")
		return Failure(apperrors.KindInternal, MsgDeleteFailed)
	}
	if !deleted {
		return Failure(apperrors.KindNotFound, MsgDeleteFailed)
	}

	return Success(MsgDeleted)
}

// CountLikes returns the like count of an existing comment
func (s *serviceImpl) CountLikes(ctx context.Context, userID, commentID string) Result {
	if _, ok := s.authenticate(userID); !ok {
		return Failure(apperrors.KindUnauthorized, MsgUnauthorized)
	}

	id, ok := s.validateID(commentID)
	if !ok {
		return Failure(apperrors.KindValidation, MsgInvalidUUID)
	}

	s.logger.LogInfo("CommentInfoService.countLikes started", map[string]interface{}{
		"commentID": id.String(),
	})

	info, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.LogErrorf(err, "Failed to load comment %s", id)
		return Failure(apperrors.KindInternal, MsgCountFailed)
	}
	if info == nil {
		return Failure(apperrors.KindNotFound, MsgNotFound)
	}

	likes, err := s.repo.CountLikes(ctx, id)
	if err != nil {
		s.logger.LogErrorf(err, "Failed to count likes of comment %s", id)
		return Failure(apperrors.KindInternal, MsgCountFailed)
	}

	return withCount(Success(MsgLikesCounted), likes)
}

// LikeComment records a like from the caller and bumps the like counter
func (s *serviceImpl) LikeComment(ctx context.Context, userID, commentID string) Result {
	return s.interact(ctx, userID, commentID, interaction{
		operation: "likeComment",
		activity:  ActivityLike,
		ownerMsg:  MsgOwnerCannotLike,
		duplicate: MsgAlreadyLiked,
		success:   MsgLiked,
		failure:   MsgLikeFailed,
		increment: func(ctx context.Context, id uuid.UUID) (int, error) {
			return s.repo.IncrementLikes(ctx, id)
		},
		apply:     func(info *CommentInfo, n int) { info.Likes = n },
		publish: func(ctx context.Context, info *CommentInfo, userID uuid.UUID) error {
			return s.publisher.PublishCommentLiked(ctx, info.ID, info.OwnerID, userID, info.Likes)
		},
	})
}

// ReportComment records a report from the caller and bumps the report counter
func (s *serviceImpl) ReportComment(ctx context.Context, userID, commentID string) Result {
	return s.interact(ctx, userID, commentID, interaction{
		operation: "reportComment",
		activity:  ActivityReport,
		ownerMsg:  MsgOwnerCannotReport,
		duplicate: MsgAlreadyReported,
		success:   MsgReported,
		failure:   MsgReportFailed,
		increment: func(ctx context.Context, id uuid.UUID) (int, error) {
			return s.repo.IncrementReports(ctx, id)
		},
		apply:     func(info *CommentInfo, n int) { info.Reports = n },
		publish: func(ctx context.Context, info *CommentInfo, userID uuid.UUID) error {
			return s.publisher.PublishCommentReported(ctx, info.ID, info.OwnerID, userID, info.Reports)
		},
	})
}

// interact runs the shared like/report flow: load, owner check, activity, increment
func (s *serviceImpl) interact(ctx context.Context, userID, commentID string, in interaction) Result {
	caller, ok := s.authenticate(userID)
	if !ok {
		return Failure(apperrors.KindUnauthorized, MsgUnauthorized)
	}

	id, ok := s.validateID(commentID)
	if !ok {
		return Failure(apperrors.KindValidation, MsgInvalidUUID)
	}

	log := s.logger.WithFields(map[string]interface{}{
		"commentID": id.String(),
		"userID":    caller.String(),
	})
	log.LogInfo("CommentInfoService."+in.operation+" started", nil)

	info, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.LogError(err, "Failed to load comment info")
		return Failure(apperrors.KindInternal, in.failure)
	}
	if info == nil {
		return Failure(apperrors.KindNotFound, MsgNotFound)
	}

	if info.OwnerID == caller {
		return Failure(apperrors.KindConflict, in.ownerMsg)
	}

	recorded, err := s.repo.AddUserActivity(ctx, in.activity, caller, id)
	if err != nil {
		log.LogError(err, "Failed to record user activity")
		return Failure(apperrors.KindInternal, in.failure)
	}
	if !recorded {
		return Failure(apperrors.KindConflict, in.duplicate)
	}

	n, err := in.increment(ctx, id)
	if err != nil {
		log.LogError(err, "Failed to increment counter")
		return Failure(apperrors.KindInternal, in.failure)
	}
	in.apply(info, n)

	if s.publisher != nil {
		if err := in.publish(ctx, info, caller); err != nil {
			log.LogWarn("Failed to publish comment info event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return withAffectedRows(Success(in.success), n)
}

// validateID applies the uuid format contract and parses the id
func (s *serviceImpl) validateID(raw string) (uuid.UUID, bool) {
	if !IsValidUUID(raw) {
		return uuid.Nil, false
	}
	id, err := parseID(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseID accepts the braced form as well as the plain one
func parseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.Trim(raw, "{}"))
}
