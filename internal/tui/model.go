package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
	"becoming/internal/services/wizard"
)

// ErrAborted is returned by Run when the user quits before saving.
var ErrAborted = errors.New("check-in abandoned")

// Options configures the model.
type Options struct {
	Width  int
	Styles *Styles
}

// Model is the bubbletea model for one wizard run.
type Model struct {
	ctx    context.Context
	wiz    *wizard.Wizard
	styles Styles
	width  int

	// text fields of the current step
	inputs []textinput.Model
	focus  int

	// step 2 domain list and step 4 rating rows
	cursor      int
	editingGoal bool
	goal        textinput.Model

	err     string
	saved   *domain.Answers
	aborted bool
}

// New returns a model positioned on the wizard's current step.
func New(ctx context.Context, w *wizard.Wizard, opts Options) Model {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	m := Model{ctx: ctx, wiz: w, styles: styles, width: width}
	m.goal = m.newInput(`In 10 years, "good" looks like…`, 0)
	m.enterStep()
	return m
}

// Saved returns the stored answers once the run has completed.
func (m Model) Saved() (domain.Answers, bool) {
	if m.saved == nil {
		return domain.Answers{}, false
	}
	return m.saved.Clone(), true
}

// Aborted reports whether the user quit without saving.
func (m Model) Aborted() bool { return m.aborted }

// Step is the wizard step currently on screen.
func (m Model) Step() wizard.Step { return m.wiz.Step() }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < m.width {
			m.width = msg.Width
			m.resizeInputs()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saved != nil || m.aborted {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEsc:
		if m.editingGoal {
			m.stopEditingGoal()
			return m, nil
		}
		m.aborted = true
		return m, tea.Quit
	}

	switch m.wiz.Step() {
	case wizard.StepWhatMatters:
		return m.keyWhatMatters(msg)
	case wizard.StepRealityCheck:
		return m.keyRealityCheck(msg)
	case wizard.StepInsight:
		if msg.Type == tea.KeyEnter {
			return m.complete()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.advance()
	case tea.KeyTab, tea.KeyDown:
		return m, m.focusInput(m.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.focusInput(m.focus - 1)
	}
	return m.updateFocused(msg)
}

func (m Model) keyWhatMatters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := types.AllDomains()[m.cursor]
	if m.editingGoal {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyTab:
			m.stopEditingGoal()
			return m, nil
		}
		var cmd tea.Cmd
		m.goal, cmd = m.goal.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(types.AllDomains())-1 {
			m.cursor++
		}
	case " ", "x":
		m.err = ""
		on, err := m.wiz.ToggleDomain(d)
		if err != nil {
			m.err = err.Error()
		} else if !on && !m.wiz.Answers().IsSelected(d) && len(m.wiz.Answers().SelectedDomains) >= types.MaxSelectedDomains {
			m.err = "You can choose up to three areas."
		}
	case "tab":
		if m.wiz.Answers().IsSelected(d) {
			m.editingGoal = true
			m.goal.SetValue(m.wiz.Answers().DomainGoals[d])
			m.goal.CursorEnd()
			return m, m.goal.Focus()
		}
	case "enter":
		return m.advance()
	}
	return m, nil
}

func (m *Model) stopEditingGoal() {
	d := types.AllDomains()[m.cursor]
	if err := m.wiz.SetDomainGoal(d, m.goal.Value()); err != nil {
		m.err = err.Error()
	}
	m.goal.Blur()
	m.editingGoal = false
}

func (m Model) keyRealityCheck(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.wiz.Answers().SelectedDomains
	onNote := m.cursor == len(selected)

	switch msg.Type {
	case tea.KeyEnter:
		return m.advance()
	case tea.KeyTab, tea.KeyDown:
		return m, m.moveRow(m.cursor + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.moveRow(m.cursor - 1)
	}
	if onNote {
		return m.updateFocused(msg)
	}

	d := selected[m.cursor]
	levels := types.AlignmentLevels()
	current, _ := m.wiz.Answers().Rating(d)
	idx := -1
	for i, l := range levels {
		if l == current {
			idx = i
		}
	}
	switch msg.String() {
	case "left", "h":
		if idx > 0 {
			idx--
		} else {
			idx = 0
		}
	case "right", "l":
		if idx < len(levels)-1 {
			idx++
		}
	case "1", "2", "3":
		idx = int(msg.Runes[0] - '1')
	case " ":
		if idx < 0 {
			idx = 0
		}
	default:
		return m, nil
	}
	if err := m.wiz.SetAlignment(d, levels[idx]); err != nil {
		m.err = err.Error()
	}
	return m, nil
}

func (m *Model) moveRow(row int) tea.Cmd {
	rows := len(m.wiz.Answers().SelectedDomains) + 1
	if row < 0 || row >= rows {
		return nil
	}
	m.cursor = row
	if row == rows-1 {
		return m.focusInput(0)
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return nil
}

// advance commits the current step's fields and moves on.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.editingGoal {
		m.stopEditingGoal()
	}
	if err := m.commit(); err != nil {
		m.err = err.Error()
		return m, nil
	}
	if err := m.wiz.Continue(); err != nil {
		if errors.Is(err, wizard.ErrNoDomainsSelected) {
			m.err = "Select at least one area to continue."
		} else {
			m.err = err.Error()
		}
		return m, nil
	}
	m.err = ""
	return m, m.enterStep()
}

// complete saves on the update goroutine; the wizard is not safe to share
// with a command goroutine while View reads it.
func (m Model) complete() (tea.Model, tea.Cmd) {
	a, err := m.wiz.Complete(m.ctx)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.saved = &a
	return m, tea.Quit
}

func (m *Model) commit() error {
	a := m.wiz.Answers()
	switch m.wiz.Step() {
	case wizard.StepFutureSelf:
		return errors.Join(
			m.wiz.SetIdentity(m.inputs[0].Value()),
			m.wiz.SetLifeFeels(m.inputs[1].Value()),
			m.wiz.SetOthersDescribe(m.inputs[2].Value()),
		)
	case wizard.StepThisYear:
		var errs []error
		for i, d := range a.SelectedDomains {
			errs = append(errs, m.wiz.SetYearOutcome(d, m.inputs[i].Value()))
		}
		return errors.Join(errs...)
	case wizard.StepRealityCheck:
		return m.wiz.SetPulledOffTrack(m.inputs[0].Value())
	}
	return nil
}

// enterStep builds the text fields for the wizard's current step from the
// answers recorded so far.
func (m *Model) enterStep() tea.Cmd {
	a := m.wiz.Answers()
	m.inputs = nil
	m.focus = 0
	m.cursor = 0
	m.editingGoal = false

	switch m.wiz.Step() {
	case wizard.StepFutureSelf:
		m.inputs = []textinput.Model{
			m.prefilled("I am someone who…", a.Identity, 0),
			m.prefilled("My life feels…", a.LifeFeels, 0),
			m.prefilled("Others would describe me as…", a.OthersDescribe, 0),
		}
	case wizard.StepThisYear:
		for _, d := range a.SelectedDomains {
			m.inputs = append(m.inputs, m.prefilled(d.Placeholder(), a.YearOutcomes[d], types.MaxOutcomeLength))
		}
	case wizard.StepRealityCheck:
		m.inputs = []textinput.Model{m.prefilled("What pulled you off track?", a.WhatPulledOffTrack, 0)}
		return nil
	default:
		return nil
	}
	return m.focusInput(0)
}

func (m *Model) focusInput(i int) tea.Cmd {
	if i < 0 || i >= len(m.inputs) {
		return nil
	}
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	return m.inputs[i].Focus()
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editingGoal {
		var cmd tea.Cmd
		m.goal, cmd = m.goal.Update(msg)
		return m, cmd
	}
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = limit
	ti.Width = m.inputWidth()
	return ti
}

func (m Model) prefilled(placeholder, value string, limit int) textinput.Model {
	ti := m.newInput(placeholder, limit)
	ti.SetValue(value)
	return ti
}

func (m Model) inputWidth() int {
	if w := m.width - 6; w > 10 {
		return w
	}
	return 10
}

func (m *Model) resizeInputs() {
	for i := range m.inputs {
		m.inputs[i].Width = m.inputWidth()
	}
	m.goal.Width = m.inputWidth()
}

// Run shows the wizard until it is saved or abandoned.
func Run(ctx context.Context, w *wizard.Wizard, opts Options, progOpts ...tea.ProgramOption) (domain.Answers, error) {
	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)
	final, err := tea.NewProgram(New(ctx, w, opts), progOpts...).Run()
	if err != nil {
		return domain.Answers{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return domain.Answers{}, ErrAborted
	}
	if a, ok := m.Saved(); ok {
		return a, nil
	}
	return domain.Answers{}, ErrAborted
}
