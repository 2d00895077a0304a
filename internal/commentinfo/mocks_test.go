package commentinfo

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, info *CommentInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*CommentInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CommentInfo), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, info *CommentInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CountLikes(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) AddUserActivity(ctx context.Context, activity ActivityType, userID, commentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, activity, userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) IncrementReports(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

// MockPublisher is a testify mock of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishCommentLiked(ctx context.Context, commentID, ownerID, userID uuid.UUID, likes int) error {
	args := m.Called(ctx, commentID, ownerID, userID, likes)
	return args.Error(0)
}

func (m *MockPublisher) PublishCommentReported(ctx context.Context, commentID, ownerID, userID uuid.UUID, reports int) error {
	args := m.Called(ctx, commentID, ownerID, userID, reports)
	return args.Error(0)
}

// MockService is a testify mock of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateCommentInfo(ctx context.Context, userID string, info *CommentInfo) Result {
	return m.Called(ctx, userID, info).Get(0).(Result)
}

func (m *MockService) DeleteCommentInfo(ctx context.Context, userID, commentID string) Result {
	return m.Called(ctx, userID, commentID).Get(0).(Result)
}

func (m *MockService) CountLikes(ctx context.Context, userID, commentID string) Result {
	return m.Called(ctx, userID, commentID).Get(0).(Result)
}

func (m *MockService) LikeComment(ctx context.Context, userID, commentID string) Result {
	return m.Called(ctx, userID, commentID).Get(0).(Result)
}

func (m *MockService) ReportComment(ctx context.Context, userID, commentID string) Result {
	return m.Called(ctx, userID, commentID).Get(0).(Result)
}
