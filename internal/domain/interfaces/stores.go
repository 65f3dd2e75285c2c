package interfaces

import (
	"context"

	domaintypes "becoming/internal/domain/types"
)

// CheckinStore holds the single most recent check-in. Saving overwrites it.
type CheckinStore interface {
	LoadCheckin(ctx context.Context) (domaintypes.Answers, bool, error)
	SaveCheckin(ctx context.Context, answers domaintypes.Answers) error
}

// SignupStore holds the reminder signup, if any.
type SignupStore interface {
	LoadSignup(ctx context.Context) (domaintypes.Signup, bool, error)
	SaveSignup(ctx context.Context, signup domaintypes.Signup) error
}
