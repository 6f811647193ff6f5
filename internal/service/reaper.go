package service

import (
	"context"
	"log/slog"
	"time"
)

type SessionPurger interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// sessionReaper periodically deletes expired sessions. Authentication
// only purges a stale session when its token shows up again, so
// without the reaper abandoned sessions pile up forever.
type sessionReaper struct {
	logger   *slog.Logger
	sessions SessionPurger
	interval time.Duration
}

func NewSessionReaper(logger *slog.Logger, sessions SessionPurger, interval time.Duration) *sessionReaper {
	return &sessionReaper{
		logger:   logger.With(slog.String("service", "session-reaper")),
		sessions: sessions,
		interval: interval,
	}
}

// Start launches the reap loop. Satisfies the application starter
// interface.
func (r *sessionReaper) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.reap(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (r *sessionReaper) reap(ctx context.Context) {
	reaped, err := r.sessions.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		r.logger.Error("failed to reap sessions", slog.Any("error", err))
		return
	}
	if reaped > 0 {
		r.logger.Info("expired sessions reaped", slog.Int64("count", reaped))
	}
}
