package repositories

import (
	"context"

	"github.com/google/uuid"
	"start-academy.backend/internal/domain/entities"
)

// ApplicationRepository defines admissions application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	GetByEmail(ctx context.Context, email string) (*entities.Application, error)
	// List returns the newest applications first, capped at limit.
	List(ctx context.Context, limit int) ([]*entities.Application, error)
	// UpdateStatus sets the pipeline status; acceptedAt is recorded only for
	// acceptance decisions.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, accepted bool) error
}
