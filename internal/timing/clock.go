// Package timing provides the clock, waits and pacing used by the game loop.
package timing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Clock is the time source of a game session.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// System returns the wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Measure runs f and reports how long it took, truncated to microseconds.
func Measure[T any](clock Clock, f func() (T, error)) (T, time.Duration, error) {
	start := clock.Now()
	ret, err := f()
	return ret, clock.Now().Sub(start).Truncate(time.Microsecond), err
}

// Pacer spaces out repeated actions.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a pacer whose every Wait, including the first, blocks for
// roughly every. A non-positive interval never blocks.
func NewPacer(every time.Duration) Pacer {
	if every <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	lim := rate.NewLimiter(rate.Every(every), 1)
	lim.Allow()
	return lim
}
