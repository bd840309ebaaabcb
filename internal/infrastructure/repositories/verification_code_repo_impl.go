package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/infrastructure/models"
	"start-academy.backend/pkg/utils"
)

// VerificationCodeRepository implements one-time code storage
type VerificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db *gorm.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

// Create persists a new code record
func (r *VerificationCodeRepository) Create(ctx context.Context, code *entities.VerificationCode) error {
	m := &models.VerificationCode{
		ID:        code.ID,
		Email:     code.Email,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	code.ID = m.ID
	code.CreatedAt = m.CreatedAt
	return nil
}

// LatestByEmail returns the most recently created record for an email.
// Newest-first ordering decides the winner if a re-issuance race left more
// than one row behind.
func (r *VerificationCodeRepository) LatestByEmail(ctx context.Context, email string) (*entities.VerificationCode, error) {
	var m models.VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// DeleteByEmail removes every record for an email. Zero matches is fine;
// issuance calls this unconditionally before inserting the replacement.
func (r *VerificationCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.VerificationCode{}).Error
}

// DeleteByID removes a single record by id. Deleting an id that is already
// gone is not an error, so concurrent consumers cannot fail each other.
func (r *VerificationCodeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.VerificationCode{}, "id = ?", id).Error
}

func (r *VerificationCodeRepository) toEntity(m *models.VerificationCode) *entities.VerificationCode {
	return &entities.VerificationCode{
		ID:        m.ID,
		Email:     m.Email,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
