package models

import "strings"

// Species identifies the species of an animal
type Species string

const (
	SpeciesDog    Species = "DOG"
	SpeciesCat    Species = "CAT"
	SpeciesHorse  Species = "HORSE"
	SpeciesSheep  Species = "SHEEP"
	SpeciesGoat   Species = "GOAT"
	SpeciesCattle Species = "CATTLE"
	SpeciesPig    Species = "PIG"
)

// Sex identifies the sex of an animal
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// AnimalStatus defines the lifecycle status of an animal record
type AnimalStatus string

const (
	AnimalStatusActive   AnimalStatus = "ACTIVE"
	AnimalStatusArchived AnimalStatus = "ARCHIVED"
)

// GroupStatus defines the lifecycle status of a breeding group.
// Forward path: ACTIVE -> EXPOSURE_COMPLETE -> MONITORING -> COMPLETE.
// CANCELED is reachable from any non-terminal status via soft delete.
type GroupStatus string

const (
	GroupStatusActive           GroupStatus = "ACTIVE"
	GroupStatusExposureComplete GroupStatus = "EXPOSURE_COMPLETE"
	GroupStatusMonitoring       GroupStatus = "MONITORING"
	GroupStatusComplete         GroupStatus = "COMPLETE"
	GroupStatusCanceled         GroupStatus = "CANCELED"
)

// MemberStatus defines the lifecycle status of a breeding group member.
// EXPOSED -> {PREGNANT, NOT_PREGNANT, REMOVED}; PREGNANT -> {LAMBING_IMMINENT, LAMBED}.
// LAMBED, NOT_PREGNANT and REMOVED are terminal.
type MemberStatus string

const (
	MemberStatusExposed         MemberStatus = "EXPOSED"
	MemberStatusPregnant        MemberStatus = "PREGNANT"
	MemberStatusLambingImminent MemberStatus = "LAMBING_IMMINENT"
	MemberStatusLambed          MemberStatus = "LAMBED"
	MemberStatusNotPregnant     MemberStatus = "NOT_PREGNANT"
	MemberStatusRemoved         MemberStatus = "REMOVED"
)

// PregnancyCheckMethod defines how a pregnancy was confirmed or ruled out
type PregnancyCheckMethod string

const (
	CheckMethodUltrasound PregnancyCheckMethod = "ULTRASOUND"
	CheckMethodBloodTest  PregnancyCheckMethod = "BLOOD_TEST"
	CheckMethodPalpation  PregnancyCheckMethod = "PALPATION"
	CheckMethodVisual     PregnancyCheckMethod = "VISUAL"
	CheckMethodOther      PregnancyCheckMethod = "OTHER"
)

// PlanStatus defines the lifecycle status of an individual breeding plan
type PlanStatus string

const (
	PlanStatusPlanned   PlanStatus = "PLANNED"
	PlanStatusBred      PlanStatus = "BRED"
	PlanStatusConfirmed PlanStatus = "CONFIRMED"
	PlanStatusBorn      PlanStatus = "BORN"
	PlanStatusComplete  PlanStatus = "COMPLETE"
)

// NonTerminalMemberStatuses are member statuses that still hold a dam committed
// to a group. The storage layer enforces at most one such membership per dam.
var NonTerminalMemberStatuses = []MemberStatus{
	MemberStatusExposed,
	MemberStatusPregnant,
	MemberStatusLambingImminent,
}

// ResolvableGroupStatuses are group statuses under which a dam membership
// blocks her from joining another group.
var ResolvableGroupStatuses = []GroupStatus{
	GroupStatusActive,
	GroupStatusExposureComplete,
	GroupStatusMonitoring,
}

// IsValid checks if the Species is valid
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesHorse, SpeciesSheep, SpeciesGoat, SpeciesCattle, SpeciesPig:
		return true
	}
	return false
}

// IsValid checks if the Sex is valid
func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

// IsValid checks if the AnimalStatus is valid
func (s AnimalStatus) IsValid() bool {
	return s == AnimalStatusActive || s == AnimalStatusArchived
}

// IsValid checks if the GroupStatus is valid
func (s GroupStatus) IsValid() bool {
	switch s {
	case GroupStatusActive, GroupStatusExposureComplete, GroupStatusMonitoring, GroupStatusComplete, GroupStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further group transition is defined
func (s GroupStatus) IsTerminal() bool {
	return s == GroupStatusComplete || s == GroupStatusCanceled
}

// IsValid checks if the MemberStatus is valid
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusExposed, MemberStatusPregnant, MemberStatusLambingImminent,
		MemberStatusLambed, MemberStatusNotPregnant, MemberStatusRemoved:
		return true
	}
	return false
}

// IsTerminal reports whether no further member transition is defined
func (s MemberStatus) IsTerminal() bool {
	switch s {
	case MemberStatusLambed, MemberStatusNotPregnant, MemberStatusRemoved:
		return true
	}
	return false
}

// IsValid checks if the PregnancyCheckMethod is valid
func (m PregnancyCheckMethod) IsValid() bool {
	switch m {
	case CheckMethodUltrasound, CheckMethodBloodTest, CheckMethodPalpation, CheckMethodVisual, CheckMethodOther:
		return true
	}
	return false
}

// IsValid checks if the PlanStatus is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPlanned, PlanStatusBred, PlanStatusConfirmed, PlanStatusBorn, PlanStatusComplete:
		return true
	}
	return false
}

// ParseSpecies parses a species string case-insensitively into the closed enum
func ParseSpecies(raw string) (Species, bool) {
	s := Species(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// ParseMemberStatus parses a member status string case-insensitively into the closed enum
func ParseMemberStatus(raw string) (MemberStatus, bool) {
	s := MemberStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// ParseGroupStatus parses a group status string case-insensitively into the closed enum
func ParseGroupStatus(raw string) (GroupStatus, bool) {
	s := GroupStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// ParseCheckMethod parses a pregnancy check method string case-insensitively into the closed enum
func ParseCheckMethod(raw string) (PregnancyCheckMethod, bool) {
	m := PregnancyCheckMethod(strings.ToUpper(strings.TrimSpace(raw)))
	return m, m.IsValid()
}
