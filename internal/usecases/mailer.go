package usecases

import (
	"context"
	"time"

	"start-academy.backend/internal/domain/entities"
)

// timeNow is swapped in tests that exercise expiry handling.
var timeNow = time.Now

// Mailer sends transactional email. Implementations may fail; callers treat
// delivery as best-effort and never roll back state on a send error.
// A nil Mailer means outbound email is not configured.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
	SendApplicationConfirmation(ctx context.Context, to, fullName string) error
	SendApplicationAlert(ctx context.Context, app *entities.Application) error
	SendDecisionLetter(ctx context.Context, decision entities.Decision, to, studentName, applicationID, aidAmount string) error
	SendCustomLetter(ctx context.Context, to, studentName, applicationID, subject, body string) error
	SendSubscriptionWelcome(ctx context.Context, to string) error
	SendSubscriberAlert(ctx context.Context, subscriberEmail string) error
}
