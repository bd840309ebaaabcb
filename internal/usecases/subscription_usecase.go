package usecases

import (
	"context"

	"go.uber.org/zap"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/pkg/logger"
	"start-academy.backend/pkg/utils"
)

// SubscriptionUsecase signs visitors up for announcement emails. There is no
// subscriber table; the admissions inbox alert is the system of record.
type SubscriptionUsecase struct {
	mailer Mailer
}

// NewSubscriptionUsecase creates a new subscription usecase
func NewSubscriptionUsecase(mailer Mailer) *SubscriptionUsecase {
	return &SubscriptionUsecase{mailer: mailer}
}

// Subscribe sends the welcome email and alerts the admissions inbox. Unlike
// the other flows the welcome send is the operation itself, so its failure
// is returned to the caller.
func (u *SubscriptionUsecase) Subscribe(ctx context.Context, email string) error {
	if u.mailer == nil {
		return domainerrors.InternalError(nil)
	}

	email = utils.NormalizeEmail(email)
	if err := u.mailer.SendSubscriptionWelcome(ctx, email); err != nil {
		logger.Error(ctx, "subscription welcome delivery failed", zap.String("email", email), zap.Error(err))
		return err
	}

	if err := u.mailer.SendSubscriberAlert(ctx, email); err != nil {
		logger.Warn(ctx, "subscriber alert delivery failed", zap.String("email", email), zap.Error(err))
	}
	return nil
}
