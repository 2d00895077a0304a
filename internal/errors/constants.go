package errors

// Error message constants
const (
	ErrMsgUnauthorized = "Unauthorized"
	ErrMsgInvalidUUID  = "Invalid uuid input"
	ErrMsgNotFound     = "Comment not found"
)
