// Package clock schedules the minute-aligned refresh of live views.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// EveryMinute fires at second zero of every minute.
const EveryMinute = "0 * * * * *"

// Ticker runs a callback on a cron schedule until stopped.
type Ticker struct {
	c *cron.Cron
}

// Minutely calls fn with the current time at the start of every minute. The
// first call happens at the next minute boundary, not immediately.
func Minutely(fn func(time.Time), opts ...cron.Option) (*Ticker, error) {
	return Every(EveryMinute, fn, opts...)
}

// Every calls fn on a seconds-resolution cron spec.
func Every(spec string, fn func(time.Time), opts ...cron.Option) (*Ticker, error) {
	c := cron.New(append([]cron.Option{cron.WithSeconds()}, opts...)...)
	if _, err := c.AddFunc(spec, func() { fn(time.Now()) }); err != nil {
		return nil, fmt.Errorf("clock: invalid schedule %q: %w", spec, err)
	}
	c.Start()
	return &Ticker{c: c}, nil
}

// Stop cancels future calls and waits for a running one to finish. It is safe
// to call more than once.
func (t *Ticker) Stop() {
	if t == nil || t.c == nil {
		return
	}
	<-t.c.Stop().Done()
}

// StopContext is Stop bounded by ctx.
func (t *Ticker) StopContext(ctx context.Context) error {
	if t == nil || t.c == nil {
		return nil
	}
	select {
	case <-t.c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
