// Package ratelimit implements an in-process sliding-window limiter with a
// per-send cooldown, used to throttle outbound contact emails.
package ratelimit

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/archsol/portfolio-api/internal/pkg/clock"
)

// Config holds the limiter knobs.
type Config struct {
	// Window is the length of the sliding window.
	Window time.Duration
	// Max is the number of sends allowed inside Window. Zero allows nothing.
	Max int
	// Cooldown is the minimum gap between two consecutive sends.
	Cooldown time.Duration
}

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string
}

// Limiter tracks send timestamps behind a mutex. State lives in process
// memory only, so restarts reset it and replicas do not share counts.
type Limiter struct {
	mu    sync.Mutex
	clock clock.Clocker
	cfg   Config

	lastSend time.Time
	sends    []time.Time
}

// New creates a limiter using the given clock.
func New(cfg Config, clk clock.Clocker) *Limiter {
	return &Limiter{clock: clk, cfg: cfg}
}

// Allow records a send attempt and reports whether it may proceed.
// The cooldown is checked before the window, and a grant counts against
// both. The decision and the state mutation are a single atomic step.
func (l *Limiter) Allow() Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	if !l.lastSend.IsZero() && l.cfg.Cooldown > 0 {
		elapsed := now.Sub(l.lastSend)
		if elapsed < l.cfg.Cooldown {
			remaining := l.cfg.Cooldown - elapsed

			return Decision{
				Allowed:    false,
				RetryAfter: remaining,
				Reason: fmt.Sprintf("Please wait %d seconds before sending another message.",
					ceilSeconds(remaining)),
			}
		}
	}

	cutoff := now.Add(-l.cfg.Window)
	kept := l.sends[:0]
	for _, t := range l.sends {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.sends = kept

	if len(l.sends) >= l.cfg.Max {
		var retryAfter time.Duration
		if len(l.sends) > 0 {
			retryAfter = l.sends[0].Add(l.cfg.Window).Sub(now)
		}

		return Decision{
			Allowed:    false,
			RetryAfter: retryAfter,
			Reason: fmt.Sprintf("Rate limit reached: at most %d messages per %d minutes. Please try again later.",
				l.cfg.Max, int(l.cfg.Window.Minutes())),
		}
	}

	l.sends = append(l.sends, now)
	l.lastSend = now

	return Decision{Allowed: true}
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
