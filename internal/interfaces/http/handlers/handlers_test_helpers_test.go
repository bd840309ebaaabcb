package handlers

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
)

// In-memory repository fakes for handler tests. Error fields let individual
// tests force storage failures.

type fakeCodeRepo struct {
	records   []*entities.VerificationCode
	createErr error
	deleteErr error
}

func (f *fakeCodeRepo) Create(_ context.Context, code *entities.VerificationCode) error {
	if f.createErr != nil {
		return f.createErr
	}
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	f.records = append(f.records, code)
	return nil
}

func (f *fakeCodeRepo) LatestByEmail(_ context.Context, email string) (*entities.VerificationCode, error) {
	var matches []*entities.VerificationCode
	for _, r := range f.records {
		if r.Email == email {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	return matches[0], nil
}

func (f *fakeCodeRepo) DeleteByEmail(_ context.Context, email string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.records[:0]
	for _, r := range f.records {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeCodeRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	kept := f.records[:0]
	for _, r := range f.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

type fakeUserRepo struct {
	users     map[string]*entities.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

type fakeAppRepo struct {
	apps      map[uuid.UUID]*entities.Application
	createErr error
	listErr   error
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: make(map[uuid.UUID]*entities.Application)}
}

func (f *fakeAppRepo) Create(_ context.Context, app *entities.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	f.apps[app.ID] = app
	return nil
}

func (f *fakeAppRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Application, error) {
	if app, ok := f.apps[id]; ok {
		return app, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeAppRepo) GetByEmail(_ context.Context, email string) (*entities.Application, error) {
	for _, app := range f.apps {
		if app.Email == email {
			return app, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeAppRepo) List(_ context.Context, limit int) ([]*entities.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var apps []*entities.Application
	for _, app := range f.apps {
		apps = append(apps, app)
	}
	if len(apps) > limit {
		apps = apps[:limit]
	}
	return apps, nil
}

func (f *fakeAppRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ApplicationStatus, accepted bool) error {
	app, ok := f.apps[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	app.Status = status
	return nil
}

// fakeMailer records sends and can fail selectively
type fakeMailer struct {
	codes      []string
	decisions  []entities.Decision
	customs    []string
	welcomes   []string
	alerts     []string
	welcomeErr error
}

func (f *fakeMailer) SendVerificationCode(_ context.Context, to, code string) error {
	f.codes = append(f.codes, code)
	return nil
}

func (f *fakeMailer) SendApplicationConfirmation(_ context.Context, to, fullName string) error {
	return nil
}

func (f *fakeMailer) SendApplicationAlert(_ context.Context, app *entities.Application) error {
	f.alerts = append(f.alerts, app.Email)
	return nil
}

func (f *fakeMailer) SendDecisionLetter(_ context.Context, decision entities.Decision, to, studentName, applicationID, aidAmount string) error {
	f.decisions = append(f.decisions, decision)
	return nil
}

func (f *fakeMailer) SendCustomLetter(_ context.Context, to, studentName, applicationID, subject, body string) error {
	f.customs = append(f.customs, subject)
	return nil
}

func (f *fakeMailer) SendSubscriptionWelcome(_ context.Context, to string) error {
	if f.welcomeErr != nil {
		return f.welcomeErr
	}
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeMailer) SendSubscriberAlert(_ context.Context, subscriberEmail string) error {
	f.alerts = append(f.alerts, subscriberEmail)
	return nil
}
