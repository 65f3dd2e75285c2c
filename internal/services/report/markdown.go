package report

import (
	"fmt"
	"strings"

	"becoming/internal/domain"
	"becoming/internal/services/scoring"
)

// Markdown renders the summary view: top focus, what the classification
// means, key takeaways and suggested next steps.
func Markdown(a domain.Answers) string {
	var b strings.Builder
	class := scoring.Classify(a)

	b.WriteString("# Your Alignment Summary\n\n")
	b.WriteString("## Where you are\n\n")
	if top, ok := a.TopFocus(); ok {
		fmt.Fprintf(&b, "In just 5 minutes, you clarified that your top focus is **%s**. %s\n\n", top, scoring.AlignmentText(class))
	} else {
		fmt.Fprintf(&b, "%s\n\n", scoring.AlignmentText(class))
	}

	if takeaways := scoring.Takeaways(a); len(takeaways) > 0 {
		b.WriteString("### Key takeaways\n\n")
		for _, t := range takeaways {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	if a.WhatPulledOffTrack != "" {
		b.WriteString("### What pulled you off track\n\n")
		fmt.Fprintf(&b, "> %s\n\n", a.WhatPulledOffTrack)
	}

	b.WriteString("## Suggested next steps\n\n")
	for i, step := range scoring.NextSteps(a) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}
