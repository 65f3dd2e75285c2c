package types

import "fmt"

// AlignmentLevel is the self-reported match between recent actions and a goal.
type AlignmentLevel string

const (
	AlignmentNot      AlignmentLevel = "not"
	AlignmentSomewhat AlignmentLevel = "somewhat"
	AlignmentMostly   AlignmentLevel = "mostly"
)

// AlignmentLevels returns the levels in the order they are offered to the user.
func AlignmentLevels() []AlignmentLevel {
	return []AlignmentLevel{AlignmentMostly, AlignmentSomewhat, AlignmentNot}
}

// Rank is the ordinal position in not < somewhat < mostly. Unknown levels rank -1.
func (l AlignmentLevel) Rank() int {
	switch l {
	case AlignmentNot:
		return 0
	case AlignmentSomewhat:
		return 1
	case AlignmentMostly:
		return 2
	}
	return -1
}

// Valid reports whether l is one of the three known levels.
func (l AlignmentLevel) Valid() bool { return l.Rank() >= 0 }

// Score maps the level to its numeric weight. Unknown levels score as somewhat.
func (l AlignmentLevel) Score() int {
	switch l {
	case AlignmentMostly:
		return 3
	case AlignmentNot:
		return 1
	}
	return 2
}

// Label is the human readable rating. Anything that is not mostly or somewhat
// reads as "Not really aligned".
func (l AlignmentLevel) Label() string {
	switch l {
	case AlignmentMostly:
		return "Mostly aligned"
	case AlignmentSomewhat:
		return "Somewhat aligned"
	}
	return "Not really aligned"
}

// ParseAlignmentLevel accepts the stored value ("mostly", "somewhat", "not").
func ParseAlignmentLevel(s string) (AlignmentLevel, error) {
	l := AlignmentLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown alignment level %q", s)
	}
	return l, nil
}

// Classification is the aggregate alignment bucket for a whole check-in.
type Classification string

const (
	ClassMostly     Classification = "mostly"
	ClassPartially  Classification = "partially"
	ClassMisaligned Classification = "misaligned"
)

// Headline is the one-line verdict shown on the insight step and in reports.
func (c Classification) Headline() string {
	switch c {
	case ClassMostly:
		return "Your life is mostly aligned."
	case ClassPartially:
		return "Your life is partially aligned."
	}
	return "Your life is currently misaligned."
}

// Delta describes how a domain's rating moved since the previous check-in.
type Delta string

const (
	DeltaNone     Delta = "none"
	DeltaImproved Delta = "improved"
	DeltaDeclined Delta = "declined"
	DeltaSame     Delta = "same"
)

// Marker is the suffix appended to a rating line in exported reports.
func (d Delta) Marker() string {
	switch d {
	case DeltaImproved:
		return " (↑ Improved)"
	case DeltaDeclined:
		return " (↓ Declined)"
	case DeltaSame:
		return " (→ Same)"
	}
	return ""
}

// Badge is the short label shown next to a domain during a check-in.
func (d Delta) Badge() string {
	switch d {
	case DeltaImproved:
		return "↑ Improved"
	case DeltaDeclined:
		return "↓ Declined"
	case DeltaSame:
		return "→ Same"
	}
	return ""
}
