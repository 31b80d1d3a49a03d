package service

import (
	"herdbook-backend/internal/database/models"
	"herdbook-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BreedingGroupServiceInterface defines the interface for the breeding group service
type BreedingGroupServiceInterface interface {
	Create(organizationID uuid.UUID, req *CreateBreedingGroupRequest) (*CreateBreedingGroupResponse, error)
	Update(organizationID, groupID uuid.UUID, req *UpdateBreedingGroupRequest) (*BreedingGroupResponse, error)
	EndExposure(organizationID, groupID uuid.UUID, req *EndExposureRequest) (*BreedingGroupResponse, error)
	Delete(organizationID, groupID uuid.UUID) error
	GetByID(organizationID, groupID uuid.UUID) (*BreedingGroupResponse, error)
	List(organizationID uuid.UUID, filter repository.GroupListFilter, page, pageSize int) (*BreedingGroupListResponse, error)
}

// BreedingGroupMemberServiceInterface defines the interface for the member service
type BreedingGroupMemberServiceInterface interface {
	AddMember(organizationID, groupID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error)
	AddMembersBulk(organizationID, groupID uuid.UUID, req *AddMembersBulkRequest) (*AddMembersBulkResponse, error)
	RemoveMember(organizationID, groupID, damID uuid.UUID) (*MemberResponse, error)
	SetStatus(organizationID, groupID, damID uuid.UUID, req *SetMemberStatusRequest) (*MemberResponse, error)
	ConfirmPregnancy(organizationID, groupID, damID uuid.UUID, req *ConfirmPregnancyRequest) (*ConfirmPregnancyResponse, error)
	MarkNotPregnant(organizationID, groupID, damID uuid.UUID, req *MarkNotPregnantRequest) (*MemberResponse, error)
	RecordBirth(organizationID, groupID, damID uuid.UUID, req *RecordBirthRequest) (*MemberResponse, error)
	ListMembers(organizationID, groupID uuid.UUID, status *models.MemberStatus) (*MemberListResponse, error)
}

// AnimalServiceInterface defines the interface for the animal service
type AnimalServiceInterface interface {
	Create(organizationID uuid.UUID, req *CreateAnimalRequest) (*AnimalResponse, error)
	GetByID(organizationID, animalID uuid.UUID) (*AnimalResponse, error)
	List(organizationID uuid.UUID, filter AnimalListFilter, page, pageSize int) (*AnimalListResponse, error)
	Update(organizationID, animalID uuid.UUID, req *UpdateAnimalRequest) (*AnimalResponse, error)
	Delete(organizationID, animalID uuid.UUID) error
}

// BreedingProgramServiceInterface defines the interface for the program service
type BreedingProgramServiceInterface interface {
	Create(organizationID uuid.UUID, req *CreateProgramRequest) (*ProgramResponse, error)
	GetByID(organizationID, programID uuid.UUID) (*ProgramResponse, error)
	List(organizationID uuid.UUID, page, pageSize int) (*ProgramListResponse, error)
	Update(organizationID, programID uuid.UUID, req *UpdateProgramRequest) (*ProgramResponse, error)
	Delete(organizationID, programID uuid.UUID) error
}

// BreedingPlanServiceInterface defines the interface for the plan service
type BreedingPlanServiceInterface interface {
	GetByID(organizationID, planID uuid.UUID) (*PlanResponse, error)
	List(organizationID uuid.UUID, page, pageSize int) (*PlanListResponse, error)
}
