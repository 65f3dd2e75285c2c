package delivery

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"becoming/internal/domain"
)

var errClipboardUnsupported = errors.New("clipboard not available on this system")

// ErrNotDelivered is returned when neither the mail client nor the clipboard
// took the report.
var ErrNotDelivered = errors.New("could not open a mail client or copy to the clipboard")

// Result reports which delivery paths succeeded.
type Result struct {
	URL    string
	Opened bool
	Copied bool
}

// Service composes report emails.
type Service struct {
	opener    domain.Opener
	clipboard domain.Clipboard
	log       *zap.Logger
}

// New returns a delivery service. Nil collaborators fall back to the system
// implementations.
func New(opener domain.Opener, cb domain.Clipboard, log *zap.Logger) *Service {
	if opener == nil {
		opener = SystemOpener{}
	}
	if cb == nil {
		cb = SystemClipboard{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{opener: opener, clipboard: cb, log: log.Named("delivery")}
}

// Send validates to, opens a mailto: compose window and copies body to the
// clipboard. Failures of either step are logged; an error is returned only
// for an invalid address or when both steps failed.
func (s *Service) Send(ctx context.Context, to, subject, body string) (Result, error) {
	if err := ValidateEmail(to); err != nil {
		return Result{}, err
	}
	res := Result{URL: MailtoURL(to, subject, body)}

	if err := s.opener.Open(ctx, res.URL); err != nil {
		s.log.Warn("opening mail client failed", zap.Error(err))
	} else {
		res.Opened = true
	}

	if err := s.clipboard.WriteAll(body); err != nil {
		s.log.Debug("clipboard copy failed", zap.Error(err))
	} else {
		res.Copied = true
	}

	if !res.Opened && !res.Copied {
		return res, ErrNotDelivered
	}
	s.log.Info("report handed off",
		zap.Bool("opened", res.Opened),
		zap.Bool("copied", res.Copied),
		zap.Int("body_bytes", len(body)),
	)
	return res, nil
}

// Copy places text on the clipboard.
func (s *Service) Copy(text string) error {
	if err := s.clipboard.WriteAll(text); err != nil {
		s.log.Debug("clipboard copy failed", zap.Error(err))
		return err
	}
	return nil
}
