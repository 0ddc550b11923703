package games

import (
	"context"
	"log/slog"
	"time"
)

// Loop drives a session at its tick cadence until the session terminates
// or the context is cancelled. Run blocks; callers usually start it in a
// goroutine and wait on Done.
type Loop struct {
	session Session
	logger  *slog.Logger
	done    chan struct{}
	outcome *Outcome
}

func NewLoop(s Session, logger *slog.Logger) *Loop {
	return &Loop{
		session: s,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Run ticks the session until it ends. A cancelled context abandons the
// session without an outcome.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.session.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("game loop cancelled")
			return
		case now := <-ticker.C:
			l.session.Advance(now)
			if out, ended := l.session.Outcome(); ended {
				l.outcome = out
				l.logger.Info("game ended",
					slog.String("game", string(out.GameType)),
					slog.String("result", string(out.Result)),
					slog.Int("score", out.RawScore),
					slog.Int64("stake", out.StakeAmount))
				return
			}
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Outcome returns the terminal outcome, nil if the loop was cancelled
// before the session ended.
func (l *Loop) Outcome() *Outcome { return l.outcome }
