package types

import (
	"slices"
	"time"
)

// MaxOutcomeLength is the rune limit for a single "this year" outcome.
const MaxOutcomeLength = 120

// Answers is the full record produced by one run of the alignment wizard.
//
// DomainGoals, YearOutcomes and Alignment only ever hold keys that are also
// present in SelectedDomains. The first selected domain is the top focus.
type Answers struct {
	ID string `json:"id,omitempty"`

	Identity       string `json:"identity"`
	LifeFeels      string `json:"lifeFeels"`
	OthersDescribe string `json:"othersDescribe"`

	SelectedDomains []Domain          `json:"selectedDomains"`
	DomainGoals     map[Domain]string `json:"domainGoals"`

	YearOutcomes map[Domain]string `json:"yearOutcomes"`

	Alignment          map[Domain]AlignmentLevel `json:"alignment"`
	WhatPulledOffTrack string                    `json:"whatPulledOffTrack"`

	Timestamp time.Time `json:"timestamp"`
}

// NewAnswers returns an empty record with its maps allocated.
func NewAnswers() Answers {
	return Answers{
		SelectedDomains: []Domain{},
		DomainGoals:     map[Domain]string{},
		YearOutcomes:    map[Domain]string{},
		Alignment:       map[Domain]AlignmentLevel{},
	}
}

// IsSelected reports whether d is part of the current selection.
func (a Answers) IsSelected(d Domain) bool {
	return slices.Contains(a.SelectedDomains, d)
}

// TopFocus returns the first selected domain.
func (a Answers) TopFocus() (Domain, bool) {
	if len(a.SelectedDomains) == 0 {
		return "", false
	}
	return a.SelectedDomains[0], true
}

// Rating returns the recorded level for d, if any.
func (a Answers) Rating(d Domain) (AlignmentLevel, bool) {
	l, ok := a.Alignment[d]
	if !ok || !l.Valid() {
		return "", false
	}
	return l, true
}

// Clone returns a deep copy.
func (a Answers) Clone() Answers {
	out := a
	out.SelectedDomains = slices.Clone(a.SelectedDomains)
	if out.SelectedDomains == nil {
		out.SelectedDomains = []Domain{}
	}
	out.DomainGoals = cloneMap(a.DomainGoals)
	out.YearOutcomes = cloneMap(a.YearOutcomes)
	out.Alignment = cloneMap(a.Alignment)
	return out
}

// Normalize restores the record invariants on data read from storage: unknown
// and duplicate domains are dropped, the selection is capped, per-domain maps
// are pruned to the selection and outcomes are truncated.
func (a *Answers) Normalize() {
	seen := make(map[Domain]bool, len(a.SelectedDomains))
	kept := make([]Domain, 0, len(a.SelectedDomains))
	for _, d := range a.SelectedDomains {
		if !d.Valid() || seen[d] || len(kept) == MaxSelectedDomains {
			continue
		}
		seen[d] = true
		kept = append(kept, d)
	}
	a.SelectedDomains = kept

	if a.DomainGoals == nil {
		a.DomainGoals = map[Domain]string{}
	}
	if a.YearOutcomes == nil {
		a.YearOutcomes = map[Domain]string{}
	}
	if a.Alignment == nil {
		a.Alignment = map[Domain]AlignmentLevel{}
	}
	for d := range a.DomainGoals {
		if !seen[d] {
			delete(a.DomainGoals, d)
		}
	}
	for d, v := range a.YearOutcomes {
		if !seen[d] {
			delete(a.YearOutcomes, d)
			continue
		}
		a.YearOutcomes[d] = TruncateOutcome(v)
	}
	for d, l := range a.Alignment {
		if !seen[d] || !l.Valid() {
			delete(a.Alignment, d)
		}
	}
}

// TruncateOutcome cuts s to MaxOutcomeLength runes.
func TruncateOutcome(s string) string {
	r := []rune(s)
	if len(r) <= MaxOutcomeLength {
		return s
	}
	return string(r[:MaxOutcomeLength])
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
