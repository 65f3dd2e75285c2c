package app

import (
	"go.uber.org/zap"

	"becoming/internal/domain"
	"becoming/internal/services/checkin"
	"becoming/internal/services/delivery"
	"becoming/internal/services/signup"
)

// App exposes the high-level services the commands use.
type App struct {
	Checkin  *checkin.Service
	Delivery *delivery.Service
	Signup   *signup.Service
	Log      *zap.Logger
	UI       UIConfig

	wire *Wire
}

// New builds the services on top of w. Nil opener or clipboard use the
// system implementations.
func New(w *Wire, ui UIConfig, opener domain.Opener, cb domain.Clipboard) *App {
	return &App{
		Checkin:  checkin.New(w.Checkins, w.Log),
		Delivery: delivery.New(opener, cb, w.Log),
		Signup:   signup.New(w.Signups, w.Log),
		Log:      w.Log,
		UI:       ui,
		wire:     w,
	}
}

// Close releases everything opened by the wire.
func (a *App) Close() error { return a.wire.Close() }
