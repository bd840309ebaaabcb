package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/domain/repositories"
	"start-academy.backend/pkg/logger"
	"start-academy.backend/pkg/utils"
)

// AdmissionUsecase dispatches admissions decisions: status update plus the
// formal letter to the applicant.
type AdmissionUsecase struct {
	appRepo repositories.ApplicationRepository
	mailer  Mailer
}

// NewAdmissionUsecase creates a new admission usecase
func NewAdmissionUsecase(appRepo repositories.ApplicationRepository, mailer Mailer) *AdmissionUsecase {
	return &AdmissionUsecase{appRepo: appRepo, mailer: mailer}
}

// Decide records the decision on the application and sends the matching
// templated letter. The status write must succeed before any email goes out;
// a failed send leaves the recorded decision standing.
func (u *AdmissionUsecase) Decide(ctx context.Context, decision entities.Decision, input *entities.DecisionInput) error {
	if err := u.updateStatus(ctx, decision, input.ApplicationID); err != nil {
		return err
	}

	if u.mailer == nil {
		logger.Warn(ctx, "mailer not configured, decision letter not sent",
			zap.String("applicationId", input.ApplicationID), zap.String("decision", string(decision)))
		return nil
	}

	email := utils.NormalizeEmail(input.StudentEmail)
	if err := u.mailer.SendDecisionLetter(ctx, decision, email, input.StudentName, input.ApplicationID, input.FinancialAidAmount); err != nil {
		logger.Warn(ctx, "decision letter delivery failed",
			zap.String("applicationId", input.ApplicationID), zap.String("decision", string(decision)), zap.Error(err))
	}
	return nil
}

// DecideCustom sends a free-form letter without touching the pipeline status
func (u *AdmissionUsecase) DecideCustom(ctx context.Context, input *entities.CustomDecisionInput) error {
	if u.mailer == nil {
		logger.Warn(ctx, "mailer not configured, custom letter not sent",
			zap.String("applicationId", input.ApplicationID))
		return nil
	}

	email := utils.NormalizeEmail(input.StudentEmail)
	if err := u.mailer.SendCustomLetter(ctx, email, input.StudentName, input.ApplicationID, input.Subject, input.Body); err != nil {
		logger.Warn(ctx, "custom letter delivery failed",
			zap.String("applicationId", input.ApplicationID), zap.Error(err))
	}
	return nil
}

func (u *AdmissionUsecase) updateStatus(ctx context.Context, decision entities.Decision, applicationID string) error {
	id, err := uuid.Parse(applicationID)
	if err != nil {
		return domainerrors.ErrInvalidInput
	}

	status := decision.Status()
	accepted := status == entities.ApplicationAccepted
	if err := u.appRepo.UpdateStatus(ctx, id, status, accepted); err != nil {
		logger.Error(ctx, "failed to update application status",
			zap.String("applicationId", applicationID), zap.String("status", string(status)), zap.Error(err))
		return err
	}
	return nil
}
