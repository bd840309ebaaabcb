package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/domain/repositories"
	"start-academy.backend/pkg/logger"
	"start-academy.backend/pkg/utils"
)

// AdminListLimit caps the dashboard application listing
const AdminListLimit = 50

// ApplicationUsecase handles application intake and listing
type ApplicationUsecase struct {
	appRepo repositories.ApplicationRepository
	mailer  Mailer
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo repositories.ApplicationRepository, mailer Mailer) *ApplicationUsecase {
	return &ApplicationUsecase{appRepo: appRepo, mailer: mailer}
}

// Submit stores a new application and notifies the admissions inbox and the
// applicant. One application per email; the notification emails are
// best-effort.
func (u *ApplicationUsecase) Submit(ctx context.Context, input *entities.SubmitApplicationInput) (*entities.Application, error) {
	email := utils.NormalizeEmail(input.Email)

	_, err := u.appRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	app := &entities.Application{
		FullName:            input.FullName,
		Email:               email,
		Age:                 input.Age,
		Location:            input.Location,
		CurrentEducation:    input.CurrentEducation,
		Institution:         input.Institution,
		WhyProgram:          input.WhyProgram,
		CareerGoals:         input.CareerGoals,
		ProgramGoals:        input.ProgramGoals,
		FinancialAid:        input.FinancialAid,
		CommitmentSerious:   input.CommitmentSerious,
		CommitmentDedicated: input.CommitmentDedicated,
		Status:              entities.ApplicationPending,
	}
	if input.Major != "" {
		app.Major = null.StringFrom(input.Major)
	}
	if input.GraduationYear != 0 {
		app.GraduationYear = null.IntFrom(input.GraduationYear)
	}
	if input.WorkExperience != "" {
		app.WorkExperience = null.StringFrom(input.WorkExperience)
	}
	if input.EntrepreneurialExperience != "" {
		app.EntrepreneurialExperience = null.StringFrom(input.EntrepreneurialExperience)
	}
	if input.TechnicalSkills != "" {
		app.TechnicalSkills = null.StringFrom(input.TechnicalSkills)
	}
	if input.BiggestChallenge != "" {
		app.BiggestChallenge = null.StringFrom(input.BiggestChallenge)
	}
	if input.UniqueContribution != "" {
		app.UniqueContribution = null.StringFrom(input.UniqueContribution)
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		logger.Error(ctx, "failed to store application", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if u.mailer != nil {
		if err := u.mailer.SendApplicationAlert(ctx, app); err != nil {
			logger.Warn(ctx, "application alert delivery failed", zap.String("applicationId", app.ID.String()), zap.Error(err))
		}
		if err := u.mailer.SendApplicationConfirmation(ctx, email, app.FullName); err != nil {
			logger.Warn(ctx, "application confirmation delivery failed", zap.String("email", email), zap.Error(err))
		}
	}

	return app, nil
}

// List returns the newest applications for the admin dashboard
func (u *ApplicationUsecase) List(ctx context.Context) ([]*entities.Application, error) {
	return u.appRepo.List(ctx, AdminListLimit)
}
