// Package scheduler runs a round's staged countdown: hint reveals at fixed
// offsets followed by a terminal "time's up" stage. A single goroutine sleeps
// between offsets so a round holds one timer regardless of stage count, and
// cancelling the context (session stopped, winner found) silences every
// remaining stage including the terminal one.
package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Stage is one scheduled point within a round.
type Stage struct {
	// After is the offset from countdown start at which Run fires
	After time.Duration

	// Run is the stage action. It is invoked on the countdown goroutine
	// and only if the countdown is still live at the stage's offset.
	Run func(ctx context.Context)
}

// Countdown is a running staged countdown.
type Countdown struct {
	cancel  context.CancelFunc
	expired chan struct{}
	once    sync.Once
}

// Start launches a countdown over the given stages. Stages are sorted by
// offset; the last stage is terminal. Expired is closed only after the
// terminal stage has run naturally, so callers can race it against their
// message inbox.
func Start(ctx context.Context, stages ...Stage) *Countdown {
	ctx, cancel := context.WithCancel(ctx)

	c := &Countdown{
		cancel:  cancel,
		expired: make(chan struct{}),
	}

	ordered := make([]Stage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].After < ordered[j].After
	})

	go c.run(ctx, ordered)

	return c
}

func (c *Countdown) run(ctx context.Context, stages []Stage) {
	if len(stages) == 0 {
		close(c.expired)
		return
	}

	start := time.Now()

	for i, stage := range stages {
		wait := stage.After - time.Since(start)
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return
			}
		}

		// Re-check after sleeping: a cancel that raced the timer must
		// still suppress the stage.
		select {
		case <-ctx.Done():
			return
		default:
		}

		if stage.Run != nil {
			stage.Run(ctx)
		}

		if i == len(stages)-1 {
			close(c.expired)
		}
	}
}

// Expired is closed after the terminal stage fires on natural expiry. It is
// never closed on a stopped countdown.
func (c *Countdown) Expired() <-chan struct{} {
	return c.expired
}

// Stop cancels all remaining stages. Safe to call multiple times and after
// natural expiry.
func (c *Countdown) Stop() {
	c.once.Do(c.cancel)
}
