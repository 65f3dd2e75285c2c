package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
)

const (
	mostlyThreshold    = 2.5
	partiallyThreshold = 1.5
)

// lowerText lower-cases user text for use mid-sentence. A Caser keeps state,
// so each call gets its own.
func lowerText(s string) string { return cases.Lower(language.English).String(s) }

// AverageScore is the mean per-domain score over the selected domains. A
// domain without a rating counts as 2. ok is false when nothing is selected.
func AverageScore(a domain.Answers) (avg float64, ok bool) {
	if len(a.SelectedDomains) == 0 {
		return 0, false
	}
	total := 0
	for _, d := range a.SelectedDomains {
		total += a.Alignment[d].Score()
	}
	return float64(total) / float64(len(a.SelectedDomains)), true
}

// Classify buckets the average score. With no domains selected it returns
// ClassMostly.
func Classify(a domain.Answers) domain.Classification {
	avg, ok := AverageScore(a)
	if !ok {
		return types.ClassMostly
	}
	switch {
	case avg >= mostlyThreshold:
		return types.ClassMostly
	case avg >= partiallyThreshold:
		return types.ClassPartially
	}
	return types.ClassMisaligned
}

// Insight picks one of four fixed sentences. The order of the checks matters:
// any mostly-aligned domain wins over not-aligned ones.
func Insight(a domain.Answers) string {
	mostly := withLevel(a, types.AlignmentMostly)
	notAligned := withLevel(a, types.AlignmentNot)

	switch {
	case len(mostly) > 0 && len(notAligned) == 0:
		return fmt.Sprintf("You have a clear direction in %s, and your recent actions support it.", joinAnd(mostly))
	case len(mostly) > 0:
		return fmt.Sprintf("You have a clear direction in %s, but your recent actions don't fully support it yet.", joinAnd(mostly))
	case len(notAligned) > 0:
		return "You have clarity about what matters, but there's a gap between your direction and your recent actions."
	}
	return "You're building clarity about what matters. The next step is aligning your daily actions with that direction."
}

// Delta compares the rating of d between two check-ins. Either record may be
// nil; a missing rating on either side yields DeltaNone.
func Delta(prev, curr *domain.Answers, d domain.Domain) domain.Delta {
	if prev == nil || curr == nil {
		return types.DeltaNone
	}
	p, ok := prev.Rating(d)
	if !ok {
		return types.DeltaNone
	}
	c, ok := curr.Rating(d)
	if !ok {
		return types.DeltaNone
	}
	switch {
	case c.Rank() > p.Rank():
		return types.DeltaImproved
	case c.Rank() < p.Rank():
		return types.DeltaDeclined
	}
	return types.DeltaSame
}

// AlignmentText is the longer explanation of a classification used by the
// summary view.
func AlignmentText(c domain.Classification) string {
	switch c {
	case types.ClassMostly:
		return "Your current actions align well with your long-term vision. You're on a path that supports who you're becoming."
	case types.ClassPartially:
		return "Your current actions partially align with your long-term vision. There's room to bring your daily choices closer to your future self."
	}
	return "There's a gap between your long-term vision and your current actions. This isn't failure—it's information about where to focus."
}

// Takeaways lists the key points of a check-in in display order.
func Takeaways(a domain.Answers) []string {
	var out []string
	if a.Identity != "" {
		out = append(out, "You're becoming someone who "+lowerText(a.Identity))
	}
	if len(a.SelectedDomains) > 0 {
		out = append(out, "Your focus areas are "+joinAnd(a.SelectedDomains))
	}
	if mostly := withLevel(a, types.AlignmentMostly); len(mostly) > 0 {
		out = append(out, "You're most aligned in "+joinAnd(mostly))
	}
	return out
}

// NextSteps suggests what to do this week, anchored on the top focus.
func NextSteps(a domain.Answers) []string {
	var out []string
	if top, ok := a.TopFocus(); ok {
		focus := lowerText(top.String())
		switch Classify(a) {
		case types.ClassMostly:
			out = append(out, fmt.Sprintf("Continue supporting your %s focus with small, consistent actions this week.", focus))
		case types.ClassPartially:
			out = append(out, fmt.Sprintf("Pick one small action this week that moves you closer in %s. It could be as simple as dedicating 15 minutes daily to what matters.", focus))
		default:
			out = append(out, fmt.Sprintf("Start with one small action in %s this week. Choose something realistic that you can actually do.", focus))
		}
	}
	return append(out, "Return to this alignment check weekly. Regular reflection helps you notice when you drift and gently return to what matters.")
}

func withLevel(a domain.Answers, level domain.AlignmentLevel) []domain.Domain {
	var out []domain.Domain
	for _, d := range a.SelectedDomains {
		if a.Alignment[d] == level {
			out = append(out, d)
		}
	}
	return out
}

func joinAnd(ds []domain.Domain) string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.String()
	}
	return strings.Join(names, " and ")
}
