package types

import (
	"fmt"
	"strings"
)

// Domain is one of the fixed life areas a user can prioritise.
type Domain string

const (
	DomainHealth        Domain = "Health"
	DomainWork          Domain = "Work / Craft"
	DomainMoney         Domain = "Money"
	DomainRelationships Domain = "Relationships"
	DomainGrowth        Domain = "Growth"
	DomainContribution  Domain = "Contribution"
)

// MaxSelectedDomains caps how many domains can be selected at once.
const MaxSelectedDomains = 3

var allDomains = []Domain{
	DomainHealth,
	DomainWork,
	DomainMoney,
	DomainRelationships,
	DomainGrowth,
	DomainContribution,
}

var placeholders = map[Domain]string{
	DomainHealth:        "Build a body that feels strong and calm",
	DomainWork:          "Create work that feels meaningful and aligned",
	DomainMoney:         "Build financial security and freedom",
	DomainRelationships: "Deepen connections that matter most",
	DomainGrowth:        "Develop skills and understanding that serve my future self",
	DomainContribution:  "Make a meaningful impact in ways that align with my values",
}

// AllDomains returns the domains in display order.
func AllDomains() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

// String returns the display name of the domain.
func (d Domain) String() string { return string(d) }

// Valid reports whether d belongs to the fixed domain set.
func (d Domain) Valid() bool {
	_, ok := placeholders[d]
	return ok
}

// Placeholder returns the example outcome shown for d in the "this year" step.
func (d Domain) Placeholder() string { return placeholders[d] }

// ParseDomain resolves a user-supplied name to a Domain. Matching ignores case
// and whitespace, so "work/craft" resolves to DomainWork.
func ParseDomain(s string) (Domain, error) {
	want := squash(s)
	for _, d := range allDomains {
		if squash(string(d)) == want {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
