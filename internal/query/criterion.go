// Package query resolves search criteria and filters a creature catalog.
package query

import (
	"github.com/agnivade/levenshtein"
)

// Criterion identifies one of the supported filter dimensions.
// The zero value is not a valid criterion.
type Criterion int

// Supported criteria.
const (
	Type Criterion = iota + 1
	AttackDamage
	HitPoints
	Ability
	Stage
	Energy
)

// criterionLabels holds the canonical label of every criterion, in help order.
var criterionLabels = []struct {
	label     string
	criterion Criterion
}{
	{"Type", Type},
	{"Damage", AttackDamage},
	{"HP", HitPoints},
	{"Ability", Ability},
	{"Stage", Stage},
	{"Energy", Energy},
}

// String returns the canonical label, or "Unknown" for an invalid criterion.
func (c Criterion) String() string {
	for _, l := range criterionLabels {
		if l.criterion == c {
			return l.label
		}
	}
	return "Unknown"
}

// Valid reports whether c is one of the six supported criteria.
func (c Criterion) Valid() bool {
	return c >= Type && c <= Energy
}

// Resolve maps a label to its criterion, ignoring case.
//
// Postcondition: Returns (criterion, true) on a match, or (0, false).
func Resolve(label string) (Criterion, bool) {
	for _, l := range criterionLabels {
		if equalFold(label, l.label) {
			return l.criterion, true
		}
	}
	return 0, false
}

// Labels returns the canonical criterion labels in help order.
func Labels() []string {
	out := make([]string, 0, len(criterionLabels))
	for _, l := range criterionLabels {
		out = append(out, l.label)
	}
	return out
}

// maxSuggestDistance bounds how different a label may be and still be suggested.
const maxSuggestDistance = 2

// Suggest returns the canonical label closest to label, or "" when none is
// within a small edit distance. It only feeds error messages.
func Suggest(label string) string {
	in := upper(label)
	if in == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, l := range criterionLabels {
		d := levenshtein.ComputeDistance(in, upper(l.label))
		if d < bestDist {
			best, bestDist = l.label, d
		}
	}
	return best
}
