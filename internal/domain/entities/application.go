package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents where an application sits in the admissions pipeline
type ApplicationStatus string

const (
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationAccepted   ApplicationStatus = "accepted"
	ApplicationRejected   ApplicationStatus = "rejected"
	ApplicationDeferred   ApplicationStatus = "deferred"
	ApplicationWaitlisted ApplicationStatus = "waitlisted"
)

// Decision represents an admissions decision dispatched to an applicant
type Decision string

const (
	DecisionAcceptance        Decision = "acceptance"
	DecisionAcceptanceWithAid Decision = "acceptance_with_aid"
	DecisionRejection         Decision = "rejection"
	DecisionDeferral          Decision = "deferral"
	DecisionWaitlist          Decision = "waitlist"
	DecisionCustom            Decision = "custom"
)

// Status returns the application status a decision resolves to.
func (d Decision) Status() ApplicationStatus {
	switch d {
	case DecisionAcceptance, DecisionAcceptanceWithAid:
		return ApplicationAccepted
	case DecisionRejection:
		return ApplicationRejected
	case DecisionDeferral:
		return ApplicationDeferred
	case DecisionWaitlist:
		return ApplicationWaitlisted
	default:
		return ApplicationPending
	}
}

// Application represents a prospective-student application
type Application struct {
	ID                        uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName                  string            `json:"fullName"`
	Email                     string            `json:"email"`
	Age                       int               `json:"age"`
	Location                  string            `json:"location"`
	CurrentEducation          string            `json:"currentEducation"`
	Institution               string            `json:"institution"`
	Major                     null.String       `json:"major,omitempty"`
	GraduationYear            null.Int          `json:"graduationYear,omitempty"`
	WorkExperience            null.String       `json:"workExperience,omitempty"`
	EntrepreneurialExperience null.String       `json:"entrepreneurialExperience,omitempty"`
	TechnicalSkills           null.String       `json:"technicalSkills,omitempty"`
	WhyProgram                string            `json:"whyProgram"`
	CareerGoals               string            `json:"careerGoals"`
	BiggestChallenge          null.String       `json:"biggestChallenge,omitempty"`
	UniqueContribution        null.String       `json:"uniqueContribution,omitempty"`
	ProgramGoals              string            `json:"programGoals"`
	FinancialAid              string            `json:"financialAid"`
	CommitmentSerious         bool              `json:"commitmentSerious"`
	CommitmentDedicated       bool              `json:"commitmentDedicated"`
	Status                    ApplicationStatus `json:"status"`
	AcceptedAt                null.Time         `json:"acceptedAt,omitempty"`
	CreatedAt                 time.Time         `json:"createdAt"`
	UpdatedAt                 time.Time         `json:"updatedAt"`
}

// SubmitApplicationInput represents the application form payload
type SubmitApplicationInput struct {
	FullName                  string `json:"fullName" binding:"required"`
	Email                     string `json:"email" binding:"required,email"`
	Age                       int    `json:"age" binding:"required,gt=0"`
	Location                  string `json:"location" binding:"required"`
	CurrentEducation          string `json:"currentEducation" binding:"required"`
	Institution               string `json:"institution" binding:"required"`
	Major                     string `json:"major"`
	GraduationYear            int    `json:"graduationYear"`
	WorkExperience            string `json:"workExperience"`
	EntrepreneurialExperience string `json:"entrepreneurialExperience"`
	TechnicalSkills           string `json:"technicalSkills"`
	WhyProgram                string `json:"whyProgram" binding:"required"`
	CareerGoals               string `json:"careerGoals" binding:"required"`
	BiggestChallenge          string `json:"biggestChallenge"`
	UniqueContribution        string `json:"uniqueContribution"`
	ProgramGoals              string `json:"programGoals" binding:"required"`
	FinancialAid              string `json:"financialAid" binding:"required"`
	CommitmentSerious         bool   `json:"commitmentSerious"`
	CommitmentDedicated       bool   `json:"commitmentDedicated"`
}

// DecisionInput represents input for dispatching an admissions decision.
// FinancialAidAmount is only read for acceptance-with-aid letters.
type DecisionInput struct {
	ApplicationID      string `json:"applicationId" binding:"required"`
	StudentEmail       string `json:"studentEmail" binding:"required,email"`
	StudentName        string `json:"studentName" binding:"required"`
	FinancialAidAmount string `json:"financialAidAmount"`
}

// CustomDecisionInput adds a free-form subject and body for custom letters
type CustomDecisionInput struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	StudentEmail  string `json:"studentEmail" binding:"required,email"`
	StudentName   string `json:"studentName" binding:"required"`
	Subject       string `json:"subject" binding:"required"`
	Body          string `json:"body" binding:"required"`
}
