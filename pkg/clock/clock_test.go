package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestEveryFiresUntilStopped(t *testing.T) {
	var calls atomic.Int32
	fired := make(chan struct{}, 8)
	tk, err := Every("* * * * * *", func(time.Time) {
		calls.Add(1)
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Every() = %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("ticker never fired")
	}

	tk.Stop()
	after := calls.Load()
	time.Sleep(1500 * time.Millisecond)
	if got := calls.Load(); got != after {
		t.Fatalf("fired %d times after Stop", got-after)
	}
	tk.Stop()
}

func TestInvalidSchedule(t *testing.T) {
	if _, err := Every("every minute", func(time.Time) {}); err == nil {
		t.Fatal("Every() accepted a malformed spec")
	}
}

func TestNilTickerStop(t *testing.T) {
	var tk *Ticker
	tk.Stop()
}

func TestMinutelyDoesNotFireImmediately(t *testing.T) {
	now := time.Now()
	if now.Second() >= 58 {
		t.Skip("too close to a minute boundary")
	}
	fired := make(chan struct{}, 1)
	tk, err := Minutely(func(time.Time) { fired <- struct{}{} })
	if err != nil {
		t.Fatalf("Minutely() = %v", err)
	}
	defer tk.Stop()
	select {
	case <-fired:
		t.Fatal("fired before the next minute boundary")
	case <-time.After(500 * time.Millisecond):
	}
}
