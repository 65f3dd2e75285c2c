package app

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"becoming/internal/domain"
	"becoming/internal/logging"
	"becoming/internal/store"
)

// ErrPassphraseUnsupported is returned when a passphrase is combined with a
// backend that cannot seal records.
var ErrPassphraseUnsupported = errors.New("passphrase sealing is only supported by the file storage driver")

// Wire bundles the stores and logger built from Config.
type Wire struct {
	Checkins domain.CheckinStore
	Signups  domain.SignupStore
	Log      *zap.Logger

	closers []func() error
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	w := &Wire{}
	if cfg.DryRun {
		w.Log = logging.Nop()
	} else {
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, fmt.Errorf("home dir: %w", err)
		}
		log, closeLog, err := logging.New(cfg.Log)
		if err != nil {
			return nil, err
		}
		w.Log = log
		w.closers = append(w.closers, func() error { closeLog(); return nil })
	}

	switch {
	case cfg.DryRun:
		mem := store.NewMemoryStore()
		w.Checkins, w.Signups = mem, mem
	case cfg.Storage.Driver == DriverSQLite:
		if cfg.Passphrase != "" {
			_ = w.Close()
			return nil, ErrPassphraseUnsupported
		}
		db, err := store.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		w.Checkins, w.Signups = db, db
		w.closers = append(w.closers, db.Close)
	default:
		var opts []store.FileOption
		if cfg.Passphrase != "" {
			opts = append(opts, store.WithPassphrase(cfg.Passphrase))
		}
		w.Checkins = store.NewCheckinFileStore(cfg.Storage.Path, opts...)
		w.Signups = store.NewSignupFileStore(cfg.Storage.Path)
	}

	w.Log.Debug("wired",
		zap.String("driver", cfg.Storage.Driver),
		zap.Bool("sealed", cfg.Passphrase != ""),
		zap.Bool("dry_run", cfg.DryRun),
	)
	return w, nil
}

// Close releases the store and flushes the log, in reverse order of opening.
func (w *Wire) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}
