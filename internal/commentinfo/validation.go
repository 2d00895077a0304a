package commentinfo

import (
	"regexp"

	"github.com/google/uuid"

	apperrors "github.com/consensuslabs/pavilion-network/commentinfo/internal/errors"
)

var uuidPattern = regexp.MustCompile(`^\{?[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}\}?$`)

// IsValidUUID reports whether s is a canonical 8-4-4-4-12 hex uuid, optionally wrapped in braces
func IsValidUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// validateCommentInfo checks an update payload before it reaches storage
func validateCommentInfo(info *CommentInfo) *apperrors.ValidationError {
	if info == nil || info.ID == uuid.Nil {
		return apperrors.NewValidationError("id", MsgInvalidUUID)
	}
	if info.Likes < 0 {
		return apperrors.NewValidationError("likes", MsgInvalidCommentInfo)
	}
	if info.Reports < 0 {
		return apperrors.NewValidationError("reports", MsgInvalidCommentInfo)
	}
	return nil
}
