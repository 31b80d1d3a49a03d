// Package gestation derives expected-birth date ranges from a breeding
// group's exposure window. The per-species day ranges and the set of species
// eligible for group breeding are configuration, not compiled-in behavior, so
// species support can change without touching the lifecycle code.
package gestation

import (
	"time"

	"herdbook-backend/internal/database/models"
)

// DefaultGestationDays is applied when a species has no configured range.
// Permissive on purpose: an eligible species whose range was dropped from
// configuration must not brick groups that already reference it.
const DefaultGestationDays = 150

// Range holds the minimum and maximum gestation length for a species, in days
type Range struct {
	MinDays int
	MaxDays int
}

// Table is the injectable species configuration consumed by the breeding
// group services: which species may be bred in groups, and their gestation
// day ranges.
type Table struct {
	ranges   map[models.Species]Range
	eligible map[models.Species]bool
}

// NewTable builds a Table from explicit configuration
func NewTable(ranges map[models.Species]Range, eligible []models.Species) *Table {
	t := &Table{
		ranges:   make(map[models.Species]Range, len(ranges)),
		eligible: make(map[models.Species]bool, len(eligible)),
	}
	for species, r := range ranges {
		t.ranges[species] = r
	}
	for _, species := range eligible {
		t.eligible[species] = true
	}
	return t
}

// DefaultTable returns the stock configuration: the four group-breeding
// species with their textbook gestation ranges.
func DefaultTable() *Table {
	return NewTable(
		map[models.Species]Range{
			models.SpeciesSheep:  {MinDays: 142, MaxDays: 152},
			models.SpeciesGoat:   {MinDays: 145, MaxDays: 155},
			models.SpeciesCattle: {MinDays: 279, MaxDays: 292},
			models.SpeciesPig:    {MinDays: 112, MaxDays: 118},
		},
		[]models.Species{models.SpeciesSheep, models.SpeciesGoat, models.SpeciesCattle, models.SpeciesPig},
	)
}

// IsGroupEligible reports whether the species may be bred in groups
func (t *Table) IsGroupEligible(species models.Species) bool {
	return t.eligible[species]
}

// RangeFor returns the configured gestation range for a species, falling back
// to DefaultGestationDays/DefaultGestationDays when none is configured
func (t *Table) RangeFor(species models.Species) Range {
	if r, ok := t.ranges[species]; ok {
		return r
	}
	return Range{MinDays: DefaultGestationDays, MaxDays: DefaultGestationDays}
}

// ExpectedBirthWindow computes the expected-birth date range for a dam exposed
// between exposureStart and exposureEnd. A nil exposureEnd means exposure is
// still open and the start date bounds both ends of the window.
func (t *Table) ExpectedBirthWindow(species models.Species, exposureStart time.Time, exposureEnd *time.Time) (time.Time, time.Time) {
	effectiveEnd := exposureStart
	if exposureEnd != nil {
		effectiveEnd = *exposureEnd
	}
	r := t.RangeFor(species)
	windowStart := exposureStart.AddDate(0, 0, r.MinDays)
	windowEnd := effectiveEnd.AddDate(0, 0, r.MaxDays)
	return windowStart, windowEnd
}

// EstimatedBirthDate collapses an expected-birth window to a point estimate:
// the midpoint of the window, or the window start when the window is empty.
func EstimatedBirthDate(windowStart, windowEnd time.Time) time.Time {
	if !windowEnd.After(windowStart) {
		return windowStart
	}
	return windowStart.Add(windowEnd.Sub(windowStart) / 2)
}
