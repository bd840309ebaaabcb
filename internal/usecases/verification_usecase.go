package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/domain/repositories"
	"start-academy.backend/pkg/crypto"
	"start-academy.backend/pkg/logger"
	"start-academy.backend/pkg/utils"
)

// SendCodeResult reports the outcome of a code issuance. DevCode carries the
// plaintext code back to the caller outside production so the flow stays
// testable without a configured mailer.
type SendCodeResult struct {
	Delivered bool
	DevCode   string
}

// VerificationUsecase handles the email one-time-code flow
type VerificationUsecase struct {
	codeRepo   repositories.VerificationCodeRepository
	userRepo   repositories.UserRepository
	mailer     Mailer
	production bool
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	codeRepo repositories.VerificationCodeRepository,
	userRepo repositories.UserRepository,
	mailer Mailer,
	production bool,
) *VerificationUsecase {
	return &VerificationUsecase{
		codeRepo:   codeRepo,
		userRepo:   userRepo,
		mailer:     mailer,
		production: production,
	}
}

// RequestCode issues a fresh verification code for the email, replacing any
// outstanding one. Storage failures abort the issuance; delivery failures do
// not, the stored code stays redeemable either way.
func (u *VerificationUsecase) RequestCode(ctx context.Context, email string) (*SendCodeResult, error) {
	email = utils.NormalizeEmail(email)

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return nil, err
	}

	now := timeNow()
	record := &entities.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(entities.CodeTTL),
		CreatedAt: now,
	}

	// Invalidate before issuing so at most one active code exists per email.
	// The two writes are not atomic; LatestByEmail picks the newest row if a
	// concurrent issuance slips in between.
	if err := u.codeRepo.DeleteByEmail(ctx, email); err != nil {
		logger.Error(ctx, "failed to invalidate previous codes", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if err := u.codeRepo.Create(ctx, record); err != nil {
		logger.Error(ctx, "failed to store verification code", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	result := &SendCodeResult{}
	if !u.production {
		result.DevCode = code
	}

	if u.mailer == nil {
		if u.production {
			logger.Warn(ctx, "mailer not configured, code not delivered", zap.String("email", email))
			return result, nil
		}
		logger.Info(ctx, "mailer not configured, development fallback", zap.String("email", email))
		result.Delivered = true
		return result, nil
	}

	if err := u.mailer.SendVerificationCode(ctx, email, code); err != nil {
		logger.Warn(ctx, "verification email delivery failed", zap.String("email", email), zap.Error(err))
		return result, nil
	}
	result.Delivered = true
	return result, nil
}

// VerifyCode redeems a code for the email. On success the account for the
// email exists (created with an empty password hash if needed) and the code
// record is gone.
func (u *VerificationUsecase) VerifyCode(ctx context.Context, email, code string) error {
	email = utils.NormalizeEmail(email)

	record, err := u.codeRepo.LatestByEmail(ctx, email)
	if err != nil {
		return err
	}

	if record.Code != code {
		// The record stays so the user can retry with the right code.
		return domainerrors.ErrCodeMismatch
	}

	if record.Expired(timeNow()) {
		if err := u.codeRepo.DeleteByID(ctx, record.ID); err != nil {
			logger.Warn(ctx, "failed to delete expired code", zap.String("email", email), zap.Error(err))
		}
		return domainerrors.ErrCodeExpired
	}

	if err := u.ensureUser(ctx, email); err != nil {
		return err
	}

	// Verification already succeeded; a failed cleanup only risks a replay
	// within the TTL, which the next issuance clears anyway.
	if err := u.codeRepo.DeleteByID(ctx, record.ID); err != nil {
		logger.Warn(ctx, "failed to delete consumed code", zap.String("email", email), zap.Error(err))
	}
	return nil
}

func (u *VerificationUsecase) ensureUser(ctx context.Context, email string) error {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return u.userRepo.Create(ctx, &entities.User{Email: email})
}
