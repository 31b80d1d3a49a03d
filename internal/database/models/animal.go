package models

import (
	"time"

	"github.com/google/uuid"
)

// Animal represents an individual animal owned by an organization.
// Sires and dams referenced by breeding groups and plans are Animal rows.
type Animal struct {
	BaseModel
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string       `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Species        Species      `json:"species" gorm:"type:varchar(20);not null;index" validate:"required"`
	Sex            Sex          `json:"sex" gorm:"type:varchar(10);not null" validate:"required"`
	BreedText      string       `json:"breed_text" gorm:"size:100"`
	TagNumber      string       `json:"tag_number" gorm:"size:50"`
	BirthDate      *time.Time   `json:"birth_date,omitempty" gorm:"type:date"`
	Status         AnimalStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Notes          string       `json:"notes" gorm:"type:text"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Animal
func (Animal) TableName() string {
	return "animals"
}
