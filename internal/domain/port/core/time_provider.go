package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain. Every place the
// engine takes "now" goes through this port so tests can pin the clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
