package models

import (
	"time"

	"github.com/google/uuid"
)

// BreedingGroupMember represents one dam's participation record within a
// breeding group. A dam may hold at most one non-terminal membership across
// all of a tenant's groups; a partial unique index on
// (organization_id, dam_id) over non-terminal statuses enforces this.
type BreedingGroupMember struct {
	BaseModel
	OrganizationID       uuid.UUID             `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	GroupID              uuid.UUID             `json:"group_id" gorm:"type:uuid;not null;index" validate:"required"`
	DamID                uuid.UUID             `json:"dam_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status               MemberStatus          `json:"status" gorm:"type:varchar(30);not null;default:'EXPOSED';index"`
	ExposedAt            time.Time             `json:"exposed_at" gorm:"type:date;not null"`
	RemovedAt            *time.Time            `json:"removed_at,omitempty"`
	PregnancyConfirmedAt *time.Time            `json:"pregnancy_confirmed_at,omitempty" gorm:"type:date"`
	PregnancyCheckedAt   *time.Time            `json:"pregnancy_checked_at,omitempty" gorm:"type:date"`
	PregnancyCheckMethod *PregnancyCheckMethod `json:"pregnancy_check_method,omitempty" gorm:"type:varchar(20)"`
	BreedingPlanID       *uuid.UUID            `json:"breeding_plan_id,omitempty" gorm:"type:uuid;index"`
	ExpectedBirthStart   *time.Time            `json:"expected_birth_start,omitempty" gorm:"type:date"`
	ExpectedBirthEnd     *time.Time            `json:"expected_birth_end,omitempty" gorm:"type:date"`
	ActualBirthDate      *time.Time            `json:"actual_birth_date,omitempty" gorm:"type:date"`
	OffspringCount       *int                  `json:"offspring_count,omitempty"`
	LiveCount            *int                  `json:"live_count,omitempty"`
	StillbornCount       *int                  `json:"stillborn_count,omitempty"`
	BirthNotes           string                `json:"birth_notes" gorm:"type:text"`
	Notes                string                `json:"notes" gorm:"type:text"`

	// Relationships
	Group        BreedingGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Dam          Animal        `json:"dam,omitempty" gorm:"foreignKey:DamID"`
	BreedingPlan *BreedingPlan `json:"breeding_plan,omitempty" gorm:"foreignKey:BreedingPlanID"`
}

// TableName returns the table name for BreedingGroupMember
func (BreedingGroupMember) TableName() string {
	return "breeding_group_members"
}

// HasGraduated reports whether the member has been graduated to an individual
// breeding plan. Graduated members cannot be removed or re-confirmed.
func (m *BreedingGroupMember) HasGraduated() bool {
	return m.BreedingPlanID != nil
}
