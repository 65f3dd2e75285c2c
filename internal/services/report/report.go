package report

import (
	"fmt"
	"strings"
	"time"

	"becoming/internal/domain"
	"becoming/internal/services/scoring"
)

const (
	// SummaryTitle heads the export produced from the summary view.
	SummaryTitle = "Your Alignment Summary"
	// ReflectionTitle heads the export produced after a check-in.
	ReflectionTitle = "Your Alignment Reflection"

	closingLine = "The gap is not failure. It's information."
	tagline     = "Becoming - A personal growth and life alignment system"

	// DateLayout formats the previous check-in date.
	DateLayout = "January 2, 2006"
)

// Options controls the optional parts of the export.
type Options struct {
	// Title defaults to SummaryTitle.
	Title string
	// Previous enables delta markers and the previous check-in line.
	Previous *domain.Answers
	// Location for the previous check-in date. Defaults to time.Local.
	Location *time.Location
}

// Subject is the mail subject line that goes with a report title.
func Subject(title string) string {
	if title == ReflectionTitle {
		return "Your Becoming Alignment Reflection"
	}
	return "Your Becoming Alignment Summary"
}

// Format renders a as the plain-text export. Every section header is always
// present; lines inside a section only appear for non-empty fields.
func Format(a domain.Answers, opts Options) string {
	title := opts.Title
	if title == "" {
		title = SummaryTitle
	}
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "%s\n\n", scoring.Classify(a).Headline())

	b.WriteString("FUTURE SELF\n")
	line(&b, "I am someone who ", a.Identity)
	line(&b, "My life feels ", a.LifeFeels)
	line(&b, "Others would describe me as ", a.OthersDescribe)
	b.WriteString("\n")

	b.WriteString("WHAT MATTERS\n")
	for _, d := range a.SelectedDomains {
		goal := a.DomainGoals[d]
		if goal == "" {
			goal = "Not specified"
		}
		fmt.Fprintf(&b, "%s: %s\n", d, goal)
	}
	b.WriteString("\n")

	b.WriteString("THIS YEAR\n")
	for _, d := range a.SelectedDomains {
		if outcome := a.YearOutcomes[d]; outcome != "" {
			fmt.Fprintf(&b, "%s: %s\n", d, outcome)
		}
	}
	b.WriteString("\n")

	b.WriteString("REALITY CHECK\n")
	for _, d := range a.SelectedDomains {
		marker := ""
		if opts.Previous != nil {
			marker = scoring.Delta(opts.Previous, &a, d).Marker()
		}
		fmt.Fprintf(&b, "%s: %s%s\n", d, a.Alignment[d].Label(), marker)
	}
	if a.WhatPulledOffTrack != "" {
		fmt.Fprintf(&b, "\nWhat pulled you off track: %s\n", a.WhatPulledOffTrack)
	}
	b.WriteString("\n")

	b.WriteString("INSIGHT\n")
	fmt.Fprintf(&b, "%s\n\n", scoring.Insight(a))
	fmt.Fprintf(&b, "%s\n", closingLine)
	if opts.Previous != nil {
		fmt.Fprintf(&b, "\nPrevious check-in: %s\n", FormatDate(opts.Previous.Timestamp, opts.Location))
	}

	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "%s\n", tagline)
	return b.String()
}

// FormatDate renders t as "January 2, 2006" in loc (time.Local when nil).
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

func line(b *strings.Builder, prefix, value string) {
	if value == "" {
		return
	}
	b.WriteString(prefix)
	b.WriteString(value)
	b.WriteString("\n")
}
