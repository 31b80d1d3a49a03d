package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreedingGroup represents a cohort pairing one sire with multiple dams over a
// shared exposure window. Used for sheep, goats, cattle and pigs.
type BreedingGroup struct {
	BaseModel
	OrganizationID    uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProgramID         *uuid.UUID     `json:"program_id,omitempty" gorm:"type:uuid;index"`
	Name              string         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Species           Species        `json:"species" gorm:"type:varchar(20);not null" validate:"required"`
	BreedText         string         `json:"breed_text" gorm:"size:100"`
	Season            string         `json:"season" gorm:"size:50"`
	SireID            uuid.UUID      `json:"sire_id" gorm:"type:uuid;not null;index" validate:"required"`
	ExposureStartDate time.Time      `json:"exposure_start_date" gorm:"type:date;not null" validate:"required"`
	ExposureEndDate   *time.Time     `json:"exposure_end_date,omitempty" gorm:"type:date"`
	Status            GroupStatus    `json:"status" gorm:"type:varchar(30);not null;default:'ACTIVE';index"`
	Notes             string         `json:"notes" gorm:"type:text"`
	DeletedAt         gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Organization Organization         `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Program      *BreedingProgram     `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Sire         Animal               `json:"sire,omitempty" gorm:"foreignKey:SireID"`
	Members      []BreedingGroupMember `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BreedingGroup
func (BreedingGroup) TableName() string {
	return "breeding_groups"
}
