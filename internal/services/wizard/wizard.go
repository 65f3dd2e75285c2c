package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
	"becoming/internal/services/scoring"
)

// Step is a wizard state.
type Step int

const (
	StepFutureSelf Step = iota + 1
	StepWhatMatters
	StepThisYear
	StepRealityCheck
	StepInsight
	StepDone
)

// LastStep is the final interactive step.
const LastStep = StepInsight

var stepNames = map[Step]string{
	StepFutureSelf:   "future-self",
	StepWhatMatters:  "what-matters",
	StepThisYear:     "this-year",
	StepRealityCheck: "reality-check",
	StepInsight:      "insight",
	StepDone:         "done",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Mode selects between a first run and a repeat check-in.
type Mode int

const (
	ModeFresh Mode = iota
	ModeCheckin
)

func (m Mode) String() string {
	if m == ModeCheckin {
		return "checkin"
	}
	return "fresh"
}

var (
	// ErrWrongStep is returned when a mutator is used outside its step.
	ErrWrongStep = errors.New("not available on this step")
	// ErrNoDomainsSelected is returned when leaving step 2 with nothing selected.
	ErrNoDomainsSelected = errors.New("select at least one domain")
	// ErrNotSelected is returned when editing a domain that is not selected.
	ErrNotSelected = errors.New("domain is not selected")
	// ErrUnknownDomain is returned for values outside the fixed domain set.
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrUnknownLevel is returned for alignment levels outside mostly/somewhat/not.
	ErrUnknownLevel = errors.New("unknown alignment level")
	// ErrUseComplete is returned by Continue on the insight step.
	ErrUseComplete = errors.New("last step: use Complete to save")
	// ErrFinished is returned once the wizard has completed.
	ErrFinished = errors.New("wizard already completed")
)

// Option configures a Wizard.
type Option func(*Wizard)

// WithClock overrides the time source used to stamp the record.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithIDSource overrides how record IDs are generated.
func WithIDSource(newID func() string) Option {
	return func(w *Wizard) { w.newID = newID }
}

// Wizard holds the answers collected so far and the current step.
type Wizard struct {
	store   domain.CheckinStore
	mode    Mode
	step    Step
	answers domain.Answers
	prior   *domain.Answers

	now   func() time.Time
	newID func() string
}

// New starts a wizard on step 1. prior is the previously saved check-in or
// nil. In ModeCheckin the future-self statements, selection, goals and
// outcomes are copied from prior; ratings and the off-track note start empty.
func New(store domain.CheckinStore, mode Mode, prior *domain.Answers, opts ...Option) *Wizard {
	w := &Wizard{
		store:   store,
		mode:    mode,
		step:    StepFutureSelf,
		answers: types.NewAnswers(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	if prior != nil {
		p := prior.Clone()
		p.Normalize()
		w.prior = &p
		if mode == ModeCheckin {
			w.prefill(p)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) prefill(p domain.Answers) {
	a := types.NewAnswers()
	a.Identity = p.Identity
	a.LifeFeels = p.LifeFeels
	a.OthersDescribe = p.OthersDescribe
	a.SelectedDomains = slices.Clone(p.SelectedDomains)
	for _, d := range a.SelectedDomains {
		if v, ok := p.DomainGoals[d]; ok {
			a.DomainGoals[d] = v
		}
		if v, ok := p.YearOutcomes[d]; ok {
			a.YearOutcomes[d] = v
		}
	}
	w.answers = a
}

// Step returns the current state.
func (w *Wizard) Step() Step { return w.step }

// Mode returns the mode the wizard was started in.
func (w *Wizard) Mode() Mode { return w.mode }

// Answers returns a copy of the answers collected so far.
func (w *Wizard) Answers() domain.Answers { return w.answers.Clone() }

// Prior returns a copy of the previous check-in, if there was one.
func (w *Wizard) Prior() (domain.Answers, bool) {
	if w.prior == nil {
		return domain.Answers{}, false
	}
	return w.prior.Clone(), true
}

// Continue advances one step. It is the only transition.
func (w *Wizard) Continue() error {
	switch w.step {
	case StepDone:
		return ErrFinished
	case LastStep:
		return ErrUseComplete
	case StepWhatMatters:
		if len(w.answers.SelectedDomains) == 0 {
			return ErrNoDomainsSelected
		}
	}
	w.step++
	return nil
}

// SetIdentity records "I am someone who …".
func (w *Wizard) SetIdentity(s string) error {
	return w.on(StepFutureSelf, func() { w.answers.Identity = s })
}

// SetLifeFeels records "My life feels …".
func (w *Wizard) SetLifeFeels(s string) error {
	return w.on(StepFutureSelf, func() { w.answers.LifeFeels = s })
}

// SetOthersDescribe records "Others would describe me as …".
func (w *Wizard) SetOthersDescribe(s string) error {
	return w.on(StepFutureSelf, func() { w.answers.OthersDescribe = s })
}

// ToggleDomain selects or deselects d and reports whether d is selected
// afterwards. Selecting beyond MaxSelectedDomains leaves the selection
// unchanged without an error. Deselecting clears everything recorded for d.
func (w *Wizard) ToggleDomain(d domain.Domain) (bool, error) {
	if w.step != StepWhatMatters {
		return false, ErrWrongStep
	}
	if !d.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
	a := &w.answers
	if i := slices.Index(a.SelectedDomains, d); i >= 0 {
		a.SelectedDomains = slices.Delete(a.SelectedDomains, i, i+1)
		delete(a.DomainGoals, d)
		delete(a.YearOutcomes, d)
		delete(a.Alignment, d)
		return false, nil
	}
	if len(a.SelectedDomains) >= types.MaxSelectedDomains {
		return false, nil
	}
	a.SelectedDomains = append(a.SelectedDomains, d)
	return true, nil
}

// SetDomainGoal records what "good" looks like in ten years for a selected domain.
func (w *Wizard) SetDomainGoal(d domain.Domain, goal string) error {
	if err := w.selected(StepWhatMatters, d); err != nil {
		return err
	}
	w.answers.DomainGoals[d] = goal
	return nil
}

// SetYearOutcome records this year's outcome for a selected domain,
// truncated to MaxOutcomeLength characters.
func (w *Wizard) SetYearOutcome(d domain.Domain, outcome string) error {
	if err := w.selected(StepThisYear, d); err != nil {
		return err
	}
	w.answers.YearOutcomes[d] = types.TruncateOutcome(outcome)
	return nil
}

// SetAlignment records the rating for a selected domain.
func (w *Wizard) SetAlignment(d domain.Domain, level domain.AlignmentLevel) error {
	if err := w.selected(StepRealityCheck, d); err != nil {
		return err
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	w.answers.Alignment[d] = level
	return nil
}

// SetPulledOffTrack records the shared "what pulled you off track" note.
func (w *Wizard) SetPulledOffTrack(s string) error {
	return w.on(StepRealityCheck, func() { w.answers.WhatPulledOffTrack = s })
}

// Delta compares the current rating of d with the previous check-in.
func (w *Wizard) Delta(d domain.Domain) domain.Delta {
	return scoring.Delta(w.prior, &w.answers, d)
}

// Classification is the aggregate bucket for the current answers.
func (w *Wizard) Classification() domain.Classification {
	return scoring.Classify(w.answers)
}

// Insight is the insight sentence for the current answers.
func (w *Wizard) Insight() string {
	return scoring.Insight(w.answers)
}

// Complete stamps and saves the answers, replacing any stored check-in, and
// moves the wizard to StepDone. It is only valid on the insight step.
func (w *Wizard) Complete(ctx context.Context) (domain.Answers, error) {
	switch w.step {
	case StepDone:
		return domain.Answers{}, ErrFinished
	case LastStep:
	default:
		return domain.Answers{}, ErrWrongStep
	}

	rec := w.answers.Clone()
	rec.ID = w.newID()
	rec.Timestamp = w.now().UTC()
	if err := w.store.SaveCheckin(ctx, rec); err != nil {
		return domain.Answers{}, fmt.Errorf("saving check-in: %w", err)
	}
	w.answers = rec
	w.step = StepDone
	return rec.Clone(), nil
}

func (w *Wizard) on(step Step, set func()) error {
	if w.step != step {
		return ErrWrongStep
	}
	set()
	return nil
}

func (w *Wizard) selected(step Step, d domain.Domain) error {
	if w.step != step {
		return ErrWrongStep
	}
	if !w.answers.IsSelected(d) {
		return fmt.Errorf("%w: %s", ErrNotSelected, d)
	}
	return nil
}
