package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FullName                  string    `gorm:"type:varchar(255);not null"`
	Email                     string    `gorm:"type:varchar(255);not null;index"`
	Age                       int       `gorm:"not null"`
	Location                  string    `gorm:"type:varchar(255);not null"`
	CurrentEducation          string    `gorm:"type:varchar(255);not null"`
	Institution               string    `gorm:"type:varchar(255);not null"`
	Major                     *string   `gorm:"type:varchar(255)"`
	GraduationYear            *int
	WorkExperience            *string `gorm:"type:text"`
	EntrepreneurialExperience *string `gorm:"type:text"`
	TechnicalSkills           *string `gorm:"type:text"`
	WhyProgram                string  `gorm:"type:text;not null"`
	CareerGoals               string  `gorm:"type:text;not null"`
	BiggestChallenge          *string `gorm:"type:text"`
	UniqueContribution        *string `gorm:"type:text"`
	ProgramGoals              string  `gorm:"type:text;not null"`
	FinancialAid              string  `gorm:"type:varchar(100);not null"`
	CommitmentSerious         bool    `gorm:"not null"`
	CommitmentDedicated       bool    `gorm:"not null"`
	Status                    string  `gorm:"type:varchar(50);not null;default:'pending'"`
	AcceptedAt                *time.Time
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
