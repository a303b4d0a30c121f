package mailer

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	ErrBusy = errors.New("a send is already in flight")

	// ErrSendFailed is what callers see for any simulated delivery
	// failure; it is surfaced as a notice, never retried automatically.
	ErrSendFailed = errors.New("email send failed")
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Simulated logs the message after an artificial delay instead of
// delivering anything. At most one send is in flight at a time; overlap
// is rejected with ErrBusy rather than raced.
type Simulated struct {
	Delay time.Duration
	Log   *zap.Logger

	// Fail, when set, decides whether a send is reported as failed.
	Fail func(to string) bool

	inFlight atomic.Bool
}

func (m *Simulated) Send(ctx context.Context, to, subject, body string) error {
	if !m.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer m.inFlight.Store(false)

	if err := sleep(ctx, m.Delay); err != nil {
		return err
	}

	if m.Fail != nil && m.Fail(to) {
		return ErrSendFailed
	}

	if m.Log != nil {
		m.Log.Info("email sent",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Int("body_bytes", len(body)),
		)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
