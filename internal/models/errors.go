package models

import "errors"

// Error constants for the auth handshake
var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrCodeNotFound      = errors.New("code not found")
	ErrCodeExpired       = errors.New("code expired")
	ErrResendCooldown    = errors.New("resend cooldown active")
	ErrIdentityProvider  = errors.New("identity provider error")
	ErrCodeStore         = errors.New("code store error")
)

// Error constants for order operations
var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrDeliveryDateTooSoon    = errors.New("delivery date does not meet minimum notice")
	ErrDeliveryDisabled       = errors.New("delivery is not currently offered")
	ErrUnknownCakeType        = errors.New("unknown cake type")
	ErrUnknownSize            = errors.New("unknown size")
	ErrInvalidPhone           = errors.New("invalid phone number")
)

// Error constants for enquiry operations
var (
	ErrEnquiryNotFound      = errors.New("enquiry not found")
	ErrInvalidEnquiryStatus = errors.New("invalid enquiry status")
)

// Error constants for the assistant
var (
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrChatNotConfigured    = errors.New("chat webhook not configured")
)
