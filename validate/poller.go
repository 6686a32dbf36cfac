package validate

import (
	"context"
	"log/slog"
	"time"
)

// Poller runs a check immediately and then on every tick until its context is done.
// It replaces free-running intervals: the caller owns the lifetime through ctx.
type Poller struct {
	interval time.Duration
	logger   *slog.Logger
}

// NewPoller returns a Poller. Interval <= 0 uses 500ms. Nil logger uses slog.Default().
func NewPoller(interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{interval: interval, logger: logger}
}

// Run blocks, calling check once per interval, and returns ctx.Err() when ctx is done.
func (p *Poller) Run(ctx context.Context, check func(ctx context.Context)) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	p.logger.Debug("validation poller started", "interval", p.interval)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		check(ctx)
		select {
		case <-ctx.Done():
			p.logger.Debug("validation poller stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
