package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
	"becoming/internal/services/delivery"
)

// ErrNotSignedUp is returned by Status when no address is stored.
var ErrNotSignedUp = errors.New("not signed up for reminders")

// Status describes the stored signup.
type Status struct {
	Signup domain.Signup
	Due    bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service registers reminder addresses.
type Service struct {
	store domain.SignupStore
	log   *zap.Logger
	now   func() time.Time
}

// New returns a signup service.
func New(s domain.SignupStore, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	svc := &Service{store: s, log: log.Named("signup"), now: time.Now}
	for _, o := range opts {
		o(svc)
	}
	return svc
}

// Register validates email and stores it with the first reminder one week
// out. Registering again replaces the address and restarts the schedule.
func (s *Service) Register(ctx context.Context, email string) (domain.Signup, error) {
	if err := delivery.ValidateEmail(email); err != nil {
		return domain.Signup{}, err
	}
	now := s.now().UTC()
	su := domain.Signup{
		Email:        strings.TrimSpace(email),
		SignedUpAt:   now,
		NextReminder: now.Add(types.ReminderInterval),
	}
	if err := s.store.SaveSignup(ctx, su); err != nil {
		return domain.Signup{}, fmt.Errorf("saving signup: %w", err)
	}
	s.log.Info("signed up for reminders", zap.Time("next_reminder", su.NextReminder))
	return su, nil
}

// Status returns the stored signup and whether a reminder is due.
func (s *Service) Status(ctx context.Context) (Status, error) {
	su, found, err := s.store.LoadSignup(ctx)
	if err != nil {
		return Status{}, err
	}
	if !found {
		return Status{}, ErrNotSignedUp
	}
	return Status{Signup: su, Due: su.Due(s.now())}, nil
}
