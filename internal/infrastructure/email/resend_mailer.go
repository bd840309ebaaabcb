package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"start-academy.backend/internal/domain/entities"
)

// ResendMailer delivers transactional email through the Resend API
type ResendMailer struct {
	client     *resend.Client
	fromEmail  string
	adminEmail string
}

// NewResendMailer creates a new Resend-backed mailer
func NewResendMailer(apiKey, fromEmail, adminEmail string) *ResendMailer {
	return &ResendMailer{
		client:     resend.NewClient(apiKey),
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
	}
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.fromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}

// SendVerificationCode emails a one-time login code
func (m *ResendMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	return m.send(ctx, to, "Your verification code", verificationCodeHTML(code))
}

// SendApplicationConfirmation acknowledges a received application
func (m *ResendMailer) SendApplicationConfirmation(ctx context.Context, to, fullName string) error {
	return m.send(ctx, to, "Application Received - The Start Academy", applicationConfirmationHTML(fullName))
}

// SendApplicationAlert notifies the admissions inbox of a new application
func (m *ResendMailer) SendApplicationAlert(ctx context.Context, app *entities.Application) error {
	subject := fmt.Sprintf("New Application: %s - The Start Academy", app.FullName)
	return m.send(ctx, m.adminEmail, subject, applicationAlertHTML(app))
}

// SendDecisionLetter emails the formal admissions letter for a decision
func (m *ResendMailer) SendDecisionLetter(ctx context.Context, decision entities.Decision, to, studentName, applicationID, aidAmount string) error {
	subject, html := decisionLetter(decision, studentName, applicationID, aidAmount)
	return m.send(ctx, to, subject, html)
}

// SendCustomLetter emails a free-form letter on academy letterhead
func (m *ResendMailer) SendCustomLetter(ctx context.Context, to, studentName, applicationID, subject, body string) error {
	return m.send(ctx, to, subject, customLetterHTML(studentName, applicationID, body))
}

// SendSubscriptionWelcome welcomes a new announcements subscriber
func (m *ResendMailer) SendSubscriptionWelcome(ctx context.Context, to string) error {
	return m.send(ctx, to, "Welcome to The Start Academy!", subscriptionWelcomeHTML())
}

// SendSubscriberAlert notifies the admissions inbox of a new subscriber
func (m *ResendMailer) SendSubscriberAlert(ctx context.Context, subscriberEmail string) error {
	return m.send(ctx, m.adminEmail, "New Subscriber Alert", subscriberAlertHTML(subscriberEmail))
}
