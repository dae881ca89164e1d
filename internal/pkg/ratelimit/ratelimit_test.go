package ratelimit

import (
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestLimiter_Allow(t *testing.T) {
	base := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	t.Run("denies everything when max is zero", func(t *testing.T) {
		// Arrange
		clk := &fakeClock{now: base}
		l := New(Config{Window: time.Hour, Max: 0, Cooldown: 0}, clk)

		// Act
		d := l.Allow()

		// Assert
		if d.Allowed {
			t.Fatal("expected denial with max=0")
		}
	})

	t.Run("cooldown blocks a second send and reports retry after", func(t *testing.T) {
		// Arrange
		clk := &fakeClock{now: base}
		l := New(Config{Window: time.Hour, Max: 5, Cooldown: time.Minute}, clk)

		// Act
		first := l.Allow()
		clk.advance(20 * time.Second)
		second := l.Allow()

		// Assert
		if !first.Allowed {
			t.Fatal("expected first send to be allowed")
		}
		if second.Allowed {
			t.Fatal("expected second send to hit the cooldown")
		}
		if second.RetryAfter != 40*time.Second {
			t.Fatalf("got retry after %v, want 40s", second.RetryAfter)
		}
		if !strings.Contains(second.Reason, "40 seconds") {
			t.Fatalf("reason %q does not mention the wait", second.Reason)
		}
	})

	t.Run("send allowed again once cooldown has elapsed", func(t *testing.T) {
		// Arrange
		clk := &fakeClock{now: base}
		l := New(Config{Window: time.Hour, Max: 5, Cooldown: time.Minute}, clk)

		// Act
		l.Allow()
		clk.advance(time.Minute)
		d := l.Allow()

		// Assert
		if !d.Allowed {
			t.Fatalf("expected allowance after cooldown, got reason %q", d.Reason)
		}
	})

	t.Run("window caps the number of sends", func(t *testing.T) {
		// Arrange
		clk := &fakeClock{now: base}
		l := New(Config{Window: time.Hour, Max: 3, Cooldown: time.Second}, clk)

		// Act
		for range 3 {
			if d := l.Allow(); !d.Allowed {
				t.Fatalf("unexpected denial while filling the window: %q", d.Reason)
			}
			clk.advance(time.Minute)
		}
		d := l.Allow()

		// Assert
		if d.Allowed {
			t.Fatal("expected fourth send to exceed the window")
		}
		if !strings.Contains(d.Reason, "at most 3 messages") {
			t.Fatalf("reason %q does not mention the cap", d.Reason)
		}
		// First send was 3 minutes ago, so its slot frees up in 57 minutes.
		if d.RetryAfter != 57*time.Minute {
			t.Fatalf("got retry after %v, want 57m", d.RetryAfter)
		}
	})

	t.Run("expired sends fall out of the window", func(t *testing.T) {
		// Arrange
		clk := &fakeClock{now: base}
		l := New(Config{Window: 10 * time.Minute, Max: 1, Cooldown: time.Second}, clk)

		// Act
		l.Allow()
		clk.advance(11 * time.Minute)
		d := l.Allow()

		// Assert
		if !d.Allowed {
			t.Fatalf("expected allowance after window expiry, got reason %q", d.Reason)
		}
	})

	t.Run("denied attempts do not consume window slots", func(t *testing.T) {
		// Arrange
		clk := &fakeClock{now: base}
		l := New(Config{Window: time.Hour, Max: 2, Cooldown: 5 * time.Minute}, clk)

		// Act
		l.Allow()
		clk.advance(time.Minute)
		for range 10 {
			l.Allow() // all rejected by cooldown
		}
		clk.advance(5 * time.Minute)
		d := l.Allow()

		// Assert
		if !d.Allowed {
			t.Fatalf("expected second slot to still be free, got reason %q", d.Reason)
		}
	})
}
