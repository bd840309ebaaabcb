package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode rows are hard-deleted: consumption, expiry cleanup and
// re-issuance all remove records outright, so no soft-delete column.
type VerificationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
