package models

import "github.com/google/uuid"

// BreedingProgram represents a named breeding program an operation runs.
// Groups and plans may optionally link to a program.
type BreedingProgram struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Species        Species   `json:"species" gorm:"type:varchar(20);not null" validate:"required"`
	Description    string    `json:"description" gorm:"type:text"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BreedingProgram
func (BreedingProgram) TableName() string {
	return "breeding_programs"
}
