package http

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the envelope written by every comment info endpoint
type Response struct {
	Status       string      `json:"status"`
	ResponseCode string      `json:"ResponseCode"`
	AffectedRows *int        `json:"affectedRows,omitempty"`
	Count        *int        `json:"count,omitempty"`
	Data         interface{} `json:"data,omitempty"`
	Error        *Error      `json:"error,omitempty"`
}

// Error represents the error structure in responses
type Error struct {
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}
