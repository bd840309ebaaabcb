package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/infrastructure/models"
	"start-academy.backend/pkg/utils"
)

// ApplicationRepository implements admissions application storage
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application
func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	m := &models.Application{
		ID:                        app.ID,
		FullName:                  app.FullName,
		Email:                     app.Email,
		Age:                       app.Age,
		Location:                  app.Location,
		CurrentEducation:          app.CurrentEducation,
		Institution:               app.Institution,
		Major:                     app.Major.Ptr(),
		WorkExperience:            app.WorkExperience.Ptr(),
		EntrepreneurialExperience: app.EntrepreneurialExperience.Ptr(),
		TechnicalSkills:           app.TechnicalSkills.Ptr(),
		WhyProgram:                app.WhyProgram,
		CareerGoals:               app.CareerGoals,
		BiggestChallenge:          app.BiggestChallenge.Ptr(),
		UniqueContribution:        app.UniqueContribution.Ptr(),
		ProgramGoals:              app.ProgramGoals,
		FinancialAid:              app.FinancialAid,
		CommitmentSerious:         app.CommitmentSerious,
		CommitmentDedicated:       app.CommitmentDedicated,
		Status:                    string(app.Status),
		CreatedAt:                 app.CreatedAt,
		UpdatedAt:                 app.UpdatedAt,
	}
	if app.GraduationYear.Valid {
		year := app.GraduationYear.Int
		m.GraduationYear = &year
	}
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.Status == "" {
		m.Status = string(entities.ApplicationPending)
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	app.ID = m.ID
	app.Status = entities.ApplicationStatus(m.Status)
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var m models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets an application by normalized email (duplicate check)
func (r *ApplicationRepository) GetByEmail(ctx context.Context, email string) (*entities.Application, error) {
	var m models.Application
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns the newest applications first, capped at limit
func (r *ApplicationRepository) List(ctx context.Context, limit int) ([]*entities.Application, error) {
	var appModels []models.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&appModels).Error
	if err != nil {
		return nil, err
	}

	var apps []*entities.Application
	for _, m := range appModels {
		model := m
		apps = append(apps, r.toEntity(&model))
	}
	return apps, nil
}

// UpdateStatus sets the pipeline status and stamps acceptedAt for acceptances
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, accepted bool) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if accepted {
		updates["accepted_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) toEntity(m *models.Application) *entities.Application {
	app := &entities.Application{
		ID:                        m.ID,
		FullName:                  m.FullName,
		Email:                     m.Email,
		Age:                       m.Age,
		Location:                  m.Location,
		CurrentEducation:          m.CurrentEducation,
		Institution:               m.Institution,
		Major:                     null.StringFromPtr(m.Major),
		WorkExperience:            null.StringFromPtr(m.WorkExperience),
		EntrepreneurialExperience: null.StringFromPtr(m.EntrepreneurialExperience),
		TechnicalSkills:           null.StringFromPtr(m.TechnicalSkills),
		WhyProgram:                m.WhyProgram,
		CareerGoals:               m.CareerGoals,
		BiggestChallenge:          null.StringFromPtr(m.BiggestChallenge),
		UniqueContribution:        null.StringFromPtr(m.UniqueContribution),
		ProgramGoals:              m.ProgramGoals,
		FinancialAid:              m.FinancialAid,
		CommitmentSerious:         m.CommitmentSerious,
		CommitmentDedicated:       m.CommitmentDedicated,
		Status:                    entities.ApplicationStatus(m.Status),
		AcceptedAt:                null.TimeFromPtr(m.AcceptedAt),
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
	if m.GraduationYear != nil {
		app.GraduationYear = null.IntFrom(*m.GraduationYear)
	}
	return app
}
