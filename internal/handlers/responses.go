package handlers

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Fixed user-facing error strings. Internal error detail stays in the logs;
// clients only ever see one of these.
const (
	msgInvalidBody       = "Invalid request body"
	msgInvalidEmail      = "Please provide a valid email address"
	msgInvalidOrExpired  = "Invalid or expired code"
	msgResendCooldown    = "Please wait before requesting another code"
	msgInternalError     = "Something went wrong, please try again"
)
