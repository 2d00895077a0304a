package commentinfo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/consensuslabs/pavilion-network/commentinfo/internal/errors"
	"github.com/consensuslabs/pavilion-network/commentinfo/testhelper"
)

type serviceFixture struct {
	repo      *MockRepository
	publisher *MockPublisher
	logger    *testhelper.TestLogger
	service   Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		repo:      &MockRepository{},
		publisher: &MockPublisher{},
		logger:    testhelper.NewTestLogger(false),
	}
	f.service = NewService(f.repo, f.logger, f.publisher)
	return f
}

func assertFailure(t *testing.T, res Result, kind apperrors.Kind, message string) {
	t.Helper()
	assert.False(t, res.IsSuccess())
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, kind, res.Kind)
	assert.Equal(t, message, res.ResponseCode)
	assert.Nil(t, res.AffectedRows)
	assert.Nil(t, res.Count)
}

func TestService_Unauthorized(t *testing.T) {
	commentID := uuid.New().String()

	ops := map[string]func(s Service, userID string) Result{
		"update": func(s Service, userID string) Result {
			return s.UpdateCommentInfo(context.Background(), userID, NewCommentInfo(uuid.New(), uuid.New()))
		},
		"delete": func(s Service, userID string) Result {
			return s.DeleteCommentInfo(context.Background(), userID, commentID)
		},
		"count": func(s Service, userID string) Result {
			return s.CountLikes(context.Background(), userID, commentID)
		},
		"like": func(s Service, userID string) Result {
			return s.LikeComment(context.Background(), userID, commentID)
		},
		"report": func(s Service, userID string) Result {
			return s.ReportComment(context.Background(), userID, commentID)
		},
	}

	for name, op := range ops {
		for _, userID := range []string{"", "not-a-user"} {
			t.Run(name+"/"+userID, func(t *testing.T) {
				f := newServiceFixture()

				res := op(f.service, userID)

				assertFailure(t, res, apperrors.KindUnauthorized, "Unauthorized")
				assert.True(t, f.logger.HasWarn("Unauthorized access attempt"))
				assert.Empty(t, f.repo.Calls)
				assert.Empty(t, f.publisher.Calls)
			})
		}
	}
}

func TestService_GuardsRunBeforeRepository(t *testing.T) {
	s := NewService(nil, testhelper.NewTestLogger(false), nil)
	commentID := uuid.New().String()

	assert.NotPanics(t, func() {
		assertFailure(t, s.LikeComment(context.Background(), "", commentID), apperrors.KindUnauthorized, "Unauthorized")
		assertFailure(t, s.ReportComment(context.Background(), "", commentID), apperrors.KindUnauthorized, "Unauthorized")
		assertFailure(t, s.LikeComment(context.Background(), uuid.New().String(), "bad-id"), apperrors.KindValidation, "Invalid uuid input")
	})
}

func TestService_InvalidCommentID(t *testing.T) {
	userID := uuid.New().String()

	ops := map[string]func(s Service, commentID string) Result{
		"delete": func(s Service, id string) Result { return s.DeleteCommentInfo(context.Background(), userID, id) },
		"count":  func(s Service, id string) Result { return s.CountLikes(context.Background(), userID, id) },
		"like":   func(s Service, id string) Result { return s.LikeComment(context.Background(), userID, id) },
		"report": func(s Service, id string) Result { return s.ReportComment(context.Background(), userID, id) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			f := newServiceFixture()

			res := op(f.service, "not-a-uuid")

			assertFailure(t, res, apperrors.KindValidation, "Invalid uuid input")
			assert.Empty(t, f.repo.Calls)
		})
	}
}

func TestService_UpdateCommentInfo(t *testing.T) {
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture()
		info := &CommentInfo{ID: uuid.New(), OwnerID: uuid.New(), Likes: 2, Reports: 1}
		f.repo.On("Update", mock.Anything, info).Return(nil).Once()

		res := f.service.UpdateCommentInfo(context.Background(), userID, info)

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Comment info updated successfully", res.ResponseCode)
		assert.Equal(t, apperrors.KindNone, res.Kind)
		assert.True(t, f.logger.HasInfo("CommentInfoService.updateCommentInfo started"))
		f.repo.AssertExpectations(t)
	})

	t.Run("persistence failure is logged not returned", func(t *testing.T) {
		f := newServiceFixture()
		info := &CommentInfo{ID: uuid.New(), OwnerID: uuid.New()}
		f.repo.On("Update", mock.Anything, info).Return(errors.New("connection refused")).Once()

		res := f.service.UpdateCommentInfo(context.Background(), userID, info)

		assertFailure(t, res, apperrors.KindInternal, "Failed to update comment info")
		assert.NotContains(t, res.ResponseCode, "connection refused")
		assert.True(t, f.logger.HasError("Failed to update comment info"))
	})

	t.Run("unknown comment", func(t *testing.T) {
		f := newServiceFixture()
		info := &CommentInfo{ID: uuid.New(), OwnerID: uuid.New()}
		f.repo.On("Update", mock.Anything, info).Return(ErrCommentInfoNotFound).Once()

		res := f.service.UpdateCommentInfo(context.Background(), userID, info)

		assertFailure(t, res, apperrors.KindNotFound, "Failed to update comment info")
		assert.False(t, f.logger.HasError("Failed to update comment info"))
	})

	t.Run("missing id", func(t *testing.T) {
		f := newServiceFixture()

		res := f.service.UpdateCommentInfo(context.Background(), userID, &CommentInfo{OwnerID: uuid.New()})

		assertFailure(t, res, apperrors.KindValidation, "Invalid uuid input")
		assert.Empty(t, f.repo.Calls)
	})

	t.Run("nil info", func(t *testing.T) {
		f := newServiceFixture()

		res := f.service.UpdateCommentInfo(context.Background(), userID, nil)

		assertFailure(t, res, apperrors.KindValidation, "Invalid uuid input")
	})

	t.Run("negative counter", func(t *testing.T) {
		f := newServiceFixture()

		res := f.service.UpdateCommentInfo(context.Background(), userID, &CommentInfo{ID: uuid.New(), Likes: -1})

		assertFailure(t, res, apperrors.KindValidation, "Invalid comment info input")
		assert.Empty(t, f.repo.Calls)
	})
}

func TestService_DeleteCommentInfo(t *testing.T) {
	userID := uuid.New().String()
	commentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("Delete", mock.Anything, commentID).Return(true, nil).Once()

		res := f.service.DeleteCommentInfo(context.Background(), userID, commentID.String())

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Comment deleted successfully", res.ResponseCode)
		f.repo.AssertExpectations(t)
	})

	t.Run("braced id", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("Delete", mock.Anything, commentID).Return(true, nil).Once()

		res := f.service.DeleteCommentInfo(context.Background(), userID, "{"+commentID.String()+"}")

		assert.True(t, res.IsSuccess())
		f.repo.AssertExpectations(t)
	})

	t.Run("nothing deleted", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("Delete", mock.Anything, commentID).Return(false, nil).Once()

		res := f.service.DeleteCommentInfo(context.Background(), userID, commentID.String())

		assertFailure(t, res, apperrors.KindNotFound, "Failed to delete comment")
	})

	t.Run("storage error", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("Delete", mock.Anything, commentID).Return(false, errors.New("boom")).Once()

		res := f.service.DeleteCommentInfo(context.Background(), userID, commentID.String())

		assertFailure(t, res, apperrors.KindInternal, "Failed to delete comment")
		assert.True(t, f.logger.HasError("Failed to delete comment"))
	})
}

func TestService_CountLikes(t *testing.T) {
	userID := uuid.New().String()
	commentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, Likes: 7}, nil).Once()
		f.repo.On("CountLikes", mock.Anything, commentID).Return(7, nil).Once()

		res := f.service.CountLikes(context.Background(), userID, commentID.String())

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Likes counted successfully", res.ResponseCode)
		require.NotNil(t, res.Count)
		assert.Equal(t, 7, *res.Count)
		assert.Nil(t, res.AffectedRows)
		f.repo.AssertExpectations(t)
	})

	t.Run("zero likes is still a count", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID}, nil).Once()
		f.repo.On("CountLikes", mock.Anything, commentID).Return(0, nil).Once()

		res := f.service.CountLikes(context.Background(), userID, commentID.String())

		require.NotNil(t, res.Count)
		assert.Equal(t, 0, *res.Count)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(nil, nil).Once()

		res := f.service.CountLikes(context.Background(), userID, commentID.String())

		assertFailure(t, res, apperrors.KindNotFound, "Comment not found")
		f.repo.AssertNotCalled(t, "CountLikes", mock.Anything, mock.Anything)
	})

	t.Run("load failure", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(nil, errors.New("timeout")).Once()

		res := f.service.CountLikes(context.Background(), userID, commentID.String())

		assertFailure(t, res, apperrors.KindInternal, "Failed to count likes")
	})

	t.Run("count failure", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID}, nil).Once()
		f.repo.On("CountLikes", mock.Anything, commentID).Return(0, errors.New("timeout")).Once()

		res := f.service.CountLikes(context.Background(), userID, commentID.String())

		assertFailure(t, res, apperrors.KindInternal, "Failed to count likes")
	})
}

func TestService_LikeComment(t *testing.T) {
	caller := uuid.New()
	owner := uuid.New()
	commentID := uuid.New()

	t.Run("increments likes", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner, Likes: 3}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityLike, caller, commentID).Return(true, nil).Once()
		f.repo.On("IncrementLikes", mock.Anything, commentID).Return(4, nil).Once()
		f.publisher.On("PublishCommentLiked", mock.Anything, commentID, owner, caller, 4).Return(nil).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Successfully liked", res.ResponseCode)
		require.NotNil(t, res.AffectedRows)
		assert.Equal(t, 4, *res.AffectedRows)
		assert.True(t, f.logger.HasInfo("CommentInfoService.likeComment started"))
		f.repo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("owner cannot like", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: caller, Likes: 3}, nil).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindConflict, "Comment owner cannot like their own comment")
		f.repo.AssertNotCalled(t, "AddUserActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "IncrementLikes", mock.Anything, mock.Anything)
	})

	t.Run("already liked", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner, Likes: 3}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityLike, caller, commentID).Return(false, nil).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindConflict, "Already liked")
		f.repo.AssertNotCalled(t, "IncrementLikes", mock.Anything, mock.Anything)
		assert.Empty(t, f.publisher.Calls)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(nil, nil).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindNotFound, "Comment not found")
	})

	t.Run("activity failure", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityLike, caller, commentID).Return(false, errors.New("deadlock")).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindInternal, "Failed to like comment")
		assert.True(t, f.logger.HasError("Failed to record user activity"))
	})

	t.Run("increment failure", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityLike, caller, commentID).Return(true, nil).Once()
		f.repo.On("IncrementLikes", mock.Anything, commentID).Return(0, errors.New("deadlock")).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindInternal, "Failed to like comment")
		assert.Empty(t, f.publisher.Calls)
	})

	t.Run("publish failure does not fail the like", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityLike, caller, commentID).Return(true, nil).Once()
		f.repo.On("IncrementLikes", mock.Anything, commentID).Return(1, nil).Once()
		f.publisher.On("PublishCommentLiked", mock.Anything, commentID, owner, caller, 1).Return(errors.New("broker down")).Once()

		res := f.service.LikeComment(context.Background(), caller.String(), commentID.String())

		assert.True(t, res.IsSuccess())
		assert.True(t, f.logger.HasWarn("Failed to publish comment info event"))
	})

	t.Run("without publisher", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner, Likes: 9}, nil).Once()
		repo.On("AddUserActivity", mock.Anything, ActivityLike, caller, commentID).Return(true, nil).Once()
		repo.On("IncrementLikes", mock.Anything, commentID).Return(10, nil).Once()
		svc := NewService(repo, testhelper.NewTestLogger(false), nil)

		res := svc.LikeComment(context.Background(), caller.String(), commentID.String())

		assert.True(t, res.IsSuccess())
		assert.Equal(t, 10, *res.AffectedRows)
	})
}

func TestService_ReportComment(t *testing.T) {
	caller := uuid.New()
	owner := uuid.New()
	commentID := uuid.New()

	t.Run("increments reports", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner, Likes: 5, Reports: 0}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityReport, caller, commentID).Return(true, nil).Once()
		f.repo.On("IncrementReports", mock.Anything, commentID).Return(1, nil).Once()
		f.publisher.On("PublishCommentReported", mock.Anything, commentID, owner, caller, 1).Return(nil).Once()

		res := f.service.ReportComment(context.Background(), caller.String(), commentID.String())

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Successfully report", res.ResponseCode)
		require.NotNil(t, res.AffectedRows)
		assert.Equal(t, 1, *res.AffectedRows)
		f.repo.AssertNotCalled(t, "IncrementLikes", mock.Anything, mock.Anything)
		f.repo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("owner cannot report", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: caller}, nil).Once()

		res := f.service.ReportComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindConflict, "Comment owner cannot report their own comment")
		f.repo.AssertNotCalled(t, "AddUserActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already reported", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(&CommentInfo{ID: commentID, OwnerID: owner, Reports: 2}, nil).Once()
		f.repo.On("AddUserActivity", mock.Anything, ActivityReport, caller, commentID).Return(false, nil).Once()

		res := f.service.ReportComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindConflict, "Already report")
		f.repo.AssertNotCalled(t, "IncrementReports", mock.Anything, mock.Anything)
	})

	t.Run("load failure", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("GetByID", mock.Anything, commentID).Return(nil, errors.New("timeout")).Once()

		res := f.service.ReportComment(context.Background(), caller.String(), commentID.String())

		assertFailure(t, res, apperrors.KindInternal, "Failed to report comment")
	})
}
