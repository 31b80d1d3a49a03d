package models

import (
	"time"

	"github.com/google/uuid"
)

// BreedingPlan represents an individual dam/sire breeding plan. Confirming a
// group member pregnant graduates her into one of these records; the plan's
// own lifecycle is managed outside the group-breeding subsystem.
type BreedingPlan struct {
	BaseModel
	OrganizationID    uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProgramID         *uuid.UUID `json:"program_id,omitempty" gorm:"type:uuid;index"`
	Name              string     `json:"name" gorm:"not null;size:150" validate:"required,min=1,max=150"`
	Species           Species    `json:"species" gorm:"type:varchar(20);not null" validate:"required"`
	BreedText         string     `json:"breed_text" gorm:"size:100"`
	DamID             uuid.UUID  `json:"dam_id" gorm:"type:uuid;not null;index" validate:"required"`
	SireID            uuid.UUID  `json:"sire_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status            PlanStatus `json:"status" gorm:"type:varchar(20);not null;default:'PLANNED'"`
	ExpectedBirthDate *time.Time `json:"expected_birth_date,omitempty" gorm:"type:date"`
	BreedDateActual   *time.Time `json:"breed_date_actual,omitempty" gorm:"type:date"`
	Notes             string     `json:"notes" gorm:"type:text"`

	// Relationships
	Organization Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Program      *BreedingProgram `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Dam          Animal           `json:"dam,omitempty" gorm:"foreignKey:DamID"`
	Sire         Animal           `json:"sire,omitempty" gorm:"foreignKey:SireID"`
}

// TableName returns the table name for BreedingPlan
func (BreedingPlan) TableName() string {
	return "breeding_plans"
}
