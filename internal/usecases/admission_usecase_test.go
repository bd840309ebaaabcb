package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/usecases"
)

func decisionInput(appID string) *entities.DecisionInput {
	return &entities.DecisionInput{
		ApplicationID: appID,
		StudentEmail:  "Dias@Example.com",
		StudentName:   "Dias Kairatov",
	}
}

func TestDecide_Acceptance(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)
	appID := uuid.New()

	appRepo.On("UpdateStatus", mock.Anything, appID, entities.ApplicationAccepted, true).Return(nil)
	mailer.On("SendDecisionLetter", mock.Anything, entities.DecisionAcceptance,
		"dias@example.com", "Dias Kairatov", appID.String(), "").Return(nil)

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.Decide(context.Background(), entities.DecisionAcceptance, decisionInput(appID.String()))

	require.NoError(t, err)
	appRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestDecide_AcceptanceWithAid(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)
	appID := uuid.New()

	input := decisionInput(appID.String())
	input.FinancialAidAmount = "2500"

	appRepo.On("UpdateStatus", mock.Anything, appID, entities.ApplicationAccepted, true).Return(nil)
	mailer.On("SendDecisionLetter", mock.Anything, entities.DecisionAcceptanceWithAid,
		"dias@example.com", "Dias Kairatov", appID.String(), "2500").Return(nil)

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.Decide(context.Background(), entities.DecisionAcceptanceWithAid, input)

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestDecide_Rejection(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)
	appID := uuid.New()

	appRepo.On("UpdateStatus", mock.Anything, appID, entities.ApplicationRejected, false).Return(nil)
	mailer.On("SendDecisionLetter", mock.Anything, entities.DecisionRejection,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.Decide(context.Background(), entities.DecisionRejection, decisionInput(appID.String()))

	require.NoError(t, err)
	appRepo.AssertExpectations(t)
}

func TestDecide_InvalidApplicationID(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.Decide(context.Background(), entities.DecisionRejection, decisionInput("not-a-uuid"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_UnknownApplication(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)
	appID := uuid.New()

	appRepo.On("UpdateStatus", mock.Anything, appID, mock.Anything, mock.Anything).Return(domainerrors.ErrNotFound)

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.Decide(context.Background(), entities.DecisionWaitlist, decisionInput(appID.String()))

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	mailer.AssertNotCalled(t, "SendDecisionLetter",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_LetterFailureIsSoft(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)
	appID := uuid.New()

	appRepo.On("UpdateStatus", mock.Anything, appID, entities.ApplicationDeferred, false).Return(nil)
	mailer.On("SendDecisionLetter", mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("resend 500"))

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.Decide(context.Background(), entities.DecisionDeferral, decisionInput(appID.String()))

	assert.NoError(t, err)
}

func TestDecide_NoMailerStillRecordsDecision(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	appID := uuid.New()

	appRepo.On("UpdateStatus", mock.Anything, appID, entities.ApplicationWaitlisted, false).Return(nil)

	uc := usecases.NewAdmissionUsecase(appRepo, nil)
	err := uc.Decide(context.Background(), entities.DecisionWaitlist, decisionInput(appID.String()))

	assert.NoError(t, err)
	appRepo.AssertExpectations(t)
}

func TestDecideCustom_SkipsStatusUpdate(t *testing.T) {
	appRepo := new(MockApplicationRepository)
	mailer := new(MockMailer)
	appID := uuid.New().String()

	input := &entities.CustomDecisionInput{
		ApplicationID: appID,
		StudentEmail:  "Dias@Example.com",
		StudentName:   "Dias Kairatov",
		Subject:       "Interview invitation",
		Body:          "We would like to invite you to an interview.",
	}
	mailer.On("SendCustomLetter", mock.Anything, "dias@example.com", "Dias Kairatov",
		appID, "Interview invitation", input.Body).Return(nil)

	uc := usecases.NewAdmissionUsecase(appRepo, mailer)
	err := uc.DecideCustom(context.Background(), input)

	require.NoError(t, err)
	appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertExpectations(t)
}

func TestDecideCustom_NoMailer(t *testing.T) {
	uc := usecases.NewAdmissionUsecase(new(MockApplicationRepository), nil)
	err := uc.DecideCustom(context.Background(), &entities.CustomDecisionInput{
		ApplicationID: uuid.New().String(),
		StudentEmail:  "dias@example.com",
		StudentName:   "Dias",
		Subject:       "Hello",
		Body:          "Body",
	})
	assert.NoError(t, err)
}
