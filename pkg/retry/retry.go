// Package retry provides exponential backoff with jitter for reconnecting to
// external services (the Discord gateway in particular).
// No external dependencies - uses only standard library.
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Config holds backoff configuration.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	// Zero means unbounded.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows per attempt.
	Multiplier float64

	// JitterFactor adds randomness to delays (0.0 = none, 1.0 = full jitter).
	JitterFactor float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  0,
		InitialDelay: 1 * time.Second,
		MaxDelay:     2 * time.Minute,
		Multiplier:   2.0,
		JitterFactor: 0.2,
	}
}

// Backoff tracks the delay sequence across attempts. Not safe for concurrent
// use; each reconnect loop owns its own Backoff.
type Backoff struct {
	config  Config
	attempt int
}

// NewBackoff creates a Backoff from the given config.
func NewBackoff(config Config) *Backoff {
	if config.InitialDelay <= 0 {
		config.InitialDelay = DefaultConfig().InitialDelay
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = DefaultConfig().MaxDelay
	}
	if config.Multiplier < 1 {
		config.Multiplier = DefaultConfig().Multiplier
	}
	return &Backoff{config: config}
}

// Next returns the delay to wait before the next attempt and advances the
// sequence.
func (b *Backoff) Next() time.Duration {
	delay := float64(b.config.InitialDelay) * math.Pow(b.config.Multiplier, float64(b.attempt))
	if delay > float64(b.config.MaxDelay) {
		delay = float64(b.config.MaxDelay)
	}
	if b.config.JitterFactor > 0 {
		jitter := delay * b.config.JitterFactor
		delay = delay - jitter/2 + rand.Float64()*jitter
	}
	b.attempt++
	return time.Duration(delay)
}

// Attempt returns the number of delays handed out since the last Reset.
func (b *Backoff) Attempt() int {
	return b.attempt
}

// Exhausted reports whether MaxAttempts has been reached.
func (b *Backoff) Exhausted() bool {
	return b.config.MaxAttempts > 0 && b.attempt >= b.config.MaxAttempts
}

// Reset restarts the sequence, used after a successful (re)connect.
func (b *Backoff) Reset() {
	b.attempt = 0
}

// Wait sleeps for the next backoff delay, honoring context cancellation.
func (b *Backoff) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(b.Next()):
		return nil
	}
}
