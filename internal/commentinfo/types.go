package commentinfo

import (
	apperrors "github.com/consensuslabs/pavilion-network/commentinfo/internal/errors"
)

// ActivityType names a recorded user activity
type ActivityType string

const (
	// ActivityLike is recorded when a user likes a comment
	ActivityLike ActivityType = "likeComment"

	// ActivityReport is recorded when a user reports a comment
	ActivityReport ActivityType = "reportComment"
)

// Status is the outcome field of a Result
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Response codes. The text is part of the public contract, clients compare against it.
const (
	MsgUnauthorized       = apperrors.ErrMsgUnauthorized
	MsgInvalidUUID        = apperrors.ErrMsgInvalidUUID
	MsgNotFound           = apperrors.ErrMsgNotFound
	MsgInvalidCommentInfo = "Invalid comment info input"
	MsgUpdated            = "Comment info updated successfully"
	MsgUpdateFailed       = "Failed to update comment info"
	MsgDeleted            = "Comment deleted successfully"
	MsgDeleteFailed       = "Failed to delete comment"
	MsgLikesCounted       = "Likes counted successfully"
	MsgCountFailed        = "Failed to count likes"
	MsgLiked              = "Successfully liked"
	MsgAlreadyLiked       = "Already liked"
	MsgOwnerCannotLike    = "Comment owner cannot like their own comment"
	MsgLikeFailed         = "Failed to like comment"
	MsgReported           = "Successfully report"
	MsgAlreadyReported    = "Already report"
	MsgOwnerCannotReport  = "Comment owner cannot report their own comment"
	MsgReportFailed       = "Failed to report comment"
)

// Result is the envelope returned by every service operation
type Result struct {
	Status       Status         `json:"status"`
	ResponseCode string         `json:"ResponseCode"`
	AffectedRows *int           `json:"affectedRows,omitempty"`
	Count        *int           `json:"count,omitempty"`
	Kind         apperrors.Kind `json:"-"`
}

// IsSuccess reports whether the operation succeeded
func (r Result) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// Success builds a successful Result
func Success(message string) Result {
	return Result{
		Status:       StatusSuccess,
		ResponseCode: message,
		Kind:         apperrors.KindNone,
	}
}

// Failure builds an error Result of the given kind
func Failure(kind apperrors.Kind, message string) Result {
	return Result{
		Status:       StatusError,
		ResponseCode: message,
		Kind:         kind,
	}
}

func withAffectedRows(r Result, n int) Result {
	r.AffectedRows = &n
	return r
}

func withCount(r Result, n int) Result {
	r.Count = &n
	return r
}
