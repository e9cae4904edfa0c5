package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingCode is a one-time login code awaiting verification. At most one
// pending code exists per email; re-requesting overwrites the previous one.
type PendingCode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Code      string             `bson:"code" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (p *PendingCode) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// RequestCodeRequest is the body for POST /auth/request-code
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Mode  string `json:"mode"`
}

// VerifyCodeRequest is the body for POST /auth/verify-code
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// VerifyCodeResponse carries the redeemable session fragment the client
// exchanges with the identity provider for an authenticated session.
type VerifyCodeResponse struct {
	Success bool   `json:"success"`
	Hash    string `json:"hash"`
}

// Constants for one-time code configuration
const (
	AuthCodeLength = 4
	AuthCodeMin    = 1000
	AuthCodeMax    = 9999
)

// IdentityOutcome is the typed result of the ensure-identity upsert against
// the identity provider.
type IdentityOutcome int

const (
	IdentityCreated IdentityOutcome = iota
	IdentityAlreadyExists
	IdentityFailed
)

func (o IdentityOutcome) String() string {
	switch o {
	case IdentityCreated:
		return "created"
	case IdentityAlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}
