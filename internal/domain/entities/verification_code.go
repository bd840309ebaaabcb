package entities

import (
	"time"

	"github.com/google/uuid"
)

// CodeTTL is how long an issued verification code stays valid.
const CodeTTL = 15 * time.Minute

// VerificationCode represents a one-time email verification code.
// At most one active record should exist per email; issuing a new code
// removes all prior records for that address.
type VerificationCode struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// SendCodeInput represents input for requesting a verification code
type SendCodeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeInput represents input for redeeming a verification code
type VerifyCodeInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}
