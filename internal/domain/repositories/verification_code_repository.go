package repositories

import (
	"context"

	"github.com/google/uuid"
	"start-academy.backend/internal/domain/entities"
)

// VerificationCodeRepository defines storage for outstanding one-time codes.
//
// Issuance must call DeleteByEmail before Create so that at most one active
// record exists per email. The pair is not atomic; LatestByEmail breaks ties
// by created_at descending, so the newest record wins if two issuances race.
type VerificationCodeRepository interface {
	// Create persists a new code record.
	Create(ctx context.Context, code *entities.VerificationCode) error
	// LatestByEmail returns the most recently created record for the
	// normalized email, or ErrNotFound when none exists.
	LatestByEmail(ctx context.Context, email string) (*entities.VerificationCode, error)
	// DeleteByEmail removes all records for the email. Zero matches is not
	// an error.
	DeleteByEmail(ctx context.Context, email string) error
	// DeleteByID removes a single record. Idempotent: deleting an
	// already-deleted id is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
