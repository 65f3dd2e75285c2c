package checkin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"becoming/internal/domain"
	"becoming/internal/services/report"
	"becoming/internal/services/wizard"
	"becoming/internal/store"
)

// ErrNoCheckin is returned when there is no usable stored check-in.
var ErrNoCheckin = errors.New("no previous check-in")

// Service manages the lifecycle of the single stored check-in.
type Service struct {
	store domain.CheckinStore
	log   *zap.Logger
	opts  []wizard.Option
}

// New returns a check-in service backed by the given store.
func New(s domain.CheckinStore, log *zap.Logger, opts ...wizard.Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: s, log: log.Named("checkin"), opts: opts}
}

// Previous returns the stored check-in. A corrupt record is logged and
// reported as ErrNoCheckin; other storage errors are returned as is.
func (s *Service) Previous(ctx context.Context) (domain.Answers, error) {
	a, found, err := s.store.LoadCheckin(ctx)
	switch {
	case errors.Is(err, store.ErrCorruptRecord):
		s.log.Warn("ignoring unreadable check-in", zap.Error(err))
		return domain.Answers{}, ErrNoCheckin
	case err != nil:
		return domain.Answers{}, err
	case !found:
		return domain.Answers{}, ErrNoCheckin
	}
	return a, nil
}

// Start creates a wizard in the given mode, seeded with the previous
// check-in when there is one.
func (s *Service) Start(ctx context.Context, mode wizard.Mode) (*wizard.Wizard, error) {
	var prior *domain.Answers
	a, err := s.Previous(ctx)
	switch {
	case err == nil:
		prior = &a
	case !errors.Is(err, ErrNoCheckin):
		return nil, err
	}
	s.log.Debug("starting wizard",
		zap.Stringer("mode", mode),
		zap.Bool("has_prior", prior != nil),
	)
	return wizard.New(s.store, mode, prior, s.opts...), nil
}

// Summary returns the check-in for the summary view.
func (s *Service) Summary(ctx context.Context) (domain.Answers, error) {
	return s.Previous(ctx)
}

// Report formats the stored check-in. previous, when non-nil, adds delta
// markers and the previous check-in date.
func (s *Service) Report(ctx context.Context, title string, previous *domain.Answers) (string, error) {
	a, err := s.Previous(ctx)
	if err != nil {
		return "", err
	}
	return report.Format(a, report.Options{Title: title, Previous: previous}), nil
}
