package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"becoming/internal/domain/types"
	"becoming/internal/services/report"
	"becoming/internal/services/wizard"
)

func (m Model) View() string {
	if m.saved != nil || m.aborted {
		return ""
	}
	var b strings.Builder
	step := m.wiz.Step()
	b.WriteString(m.styles.Progress.Render(fmt.Sprintf("Step %d of %d", step, wizard.LastStep)))
	b.WriteString("\n")

	switch step {
	case wizard.StepFutureSelf:
		m.viewFutureSelf(&b)
	case wizard.StepWhatMatters:
		m.viewWhatMatters(&b)
	case wizard.StepThisYear:
		m.viewThisYear(&b)
	case wizard.StepRealityCheck:
		m.viewRealityCheck(&b)
	case wizard.StepInsight:
		m.viewInsight(&b)
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help()))
	b.WriteString("\n")
	return m.styles.Body.Width(m.width).Render(b.String())
}

func (m Model) viewFutureSelf(b *strings.Builder) {
	if prior, ok := m.wiz.Prior(); ok && m.wiz.Mode() == wizard.ModeCheckin {
		b.WriteString(m.styles.Notice.Render(
			"Last check-in: " + report.FormatDate(prior.Timestamp, nil) + "\n" +
				m.styles.Subtle.Render("Your previous responses are pre-filled. Update what has changed."),
		))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Title.Render("Who are you becoming?"))
	b.WriteString("\n")
	b.WriteString("Imagine yourself 10 years from now.\nIf life goes well, who are you?\n")
	b.WriteString(m.styles.Subtle.Render("This is about identity, not goals."))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
}

func (m Model) viewWhatMatters(b *strings.Builder) {
	a := m.wiz.Answers()
	b.WriteString(m.styles.Title.Render("What actually matters right now?"))
	b.WriteString("\n")
	b.WriteString("Choose the three life areas that matter most in this season.\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Choose only three. %d of %d selected.", len(a.SelectedDomains), types.MaxSelectedDomains)))
	b.WriteString("\n\n")

	for i, d := range types.AllDomains() {
		pointer := "  "
		if i == m.cursor {
			pointer = m.styles.Cursor.Render("> ")
		}
		box := "[ ]"
		name := d.String()
		if a.IsSelected(d) {
			box = "[x]"
			name = m.styles.Selected.Render(name)
		}
		fmt.Fprintf(b, "%s%s %s\n", pointer, box, name)

		if !a.IsSelected(d) {
			continue
		}
		switch {
		case m.editingGoal && i == m.cursor:
			fmt.Fprintf(b, "      %s\n", m.goal.View())
		case a.DomainGoals[d] != "":
			fmt.Fprintf(b, "      %s\n", m.styles.Subtle.Render(a.DomainGoals[d]))
		default:
			fmt.Fprintf(b, "      %s\n", m.styles.Subtle.Render(`In 10 years, "good" looks like…`))
		}
	}
}

func (m Model) viewThisYear(b *strings.Builder) {
	b.WriteString(m.styles.Title.Render("Zoom into this year."))
	b.WriteString("\n")
	b.WriteString("If this year mattered, what would move you closer?\n\n")
	for i, d := range m.wiz.Answers().SelectedDomains {
		b.WriteString(m.styles.Label.Render(d.String()))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%d / %d characters",
			utf8.RuneCountInString(m.inputs[i].Value()), types.MaxOutcomeLength)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Subtle.Render("One meaningful outcome, not a to-do list."))
	b.WriteString("\n")
}

func (m Model) viewRealityCheck(b *strings.Builder) {
	a := m.wiz.Answers()
	b.WriteString(m.styles.Title.Render("What did you actually do?"))
	b.WriteString("\n")
	b.WriteString("Think about the last 7 days.\n\n")

	for i, d := range a.SelectedDomains {
		pointer := "  "
		if i == m.cursor {
			pointer = m.styles.Cursor.Render("> ")
		}
		label := m.styles.Label.Render(d.String())
		if m.wiz.Mode() == wizard.ModeCheckin {
			if badge := m.styles.Badge(m.wiz.Delta(d)); badge != "" {
				label += "  " + badge
			}
		}
		fmt.Fprintf(b, "%s%s\n", pointer, label)

		rating, _ := a.Rating(d)
		opts := make([]string, 0, 3)
		for _, l := range types.AlignmentLevels() {
			mark := "( )"
			if l == rating {
				mark = "(•)"
			}
			opts = append(opts, mark+" "+l.Label())
		}
		fmt.Fprintf(b, "    %s\n", strings.Join(opts, "  "))
	}

	b.WriteString("\n")
	pointer := "  "
	if m.cursor == len(a.SelectedDomains) {
		pointer = m.styles.Cursor.Render("> ")
	}
	b.WriteString(pointer)
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
}

func (m Model) viewInsight(b *strings.Builder) {
	b.WriteString(m.styles.Title.Render("Your alignment right now"))
	b.WriteString("\n")
	b.WriteString(m.styles.Headline.Render(m.wiz.Classification().Headline()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtle.Render("This is not a judgment.\nAlignment is not something you achieve once.\nIt's something you return to."))
	b.WriteString("\n\n")
	b.WriteString(m.wiz.Insight())
	b.WriteString("\n")
	b.WriteString(m.styles.Emphasis.Render("The gap is not failure. It's information."))
	b.WriteString("\n")

	if prior, ok := m.wiz.Prior(); ok && m.wiz.Mode() == wizard.ModeCheckin {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("Previous check-in: " + report.FormatDate(prior.Timestamp, nil)))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("Keep returning to alignment. Small shifts compound over time."))
		b.WriteString("\n")
	}
}

func (m Model) help() string {
	switch m.wiz.Step() {
	case wizard.StepWhatMatters:
		if m.editingGoal {
			return "enter/tab: done editing • esc: done editing"
		}
		return "↑/↓: move • space: select • tab: describe \"good\" • enter: continue • esc: quit"
	case wizard.StepRealityCheck:
		return "↑/↓: move • ←/→ or 1-3: rate • enter: continue • esc: quit"
	case wizard.StepInsight:
		if m.wiz.Mode() == wizard.ModeCheckin {
			return "enter: save and continue alignment weekly • esc: quit without saving"
		}
		return "enter: save and view your summary • esc: quit without saving"
	}
	return "tab/↑/↓: move • enter: continue • esc: quit"
}
