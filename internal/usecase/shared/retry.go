package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"camp-pricing/internal/pkg/errs"
)

type RetryPolicy struct {
	MaxAttempts int
	Base        time.Duration
}

// RetryOnConflict runs fn until it succeeds, fails with a non-conflict error,
// or MaxAttempts is used up. The final conflict is returned marked transient.
func RetryOnConflict[T any](ctx context.Context, policy RetryPolicy, metrics Metrics, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(policy.MaxAttempts, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !errs.Is(err, errs.ErrConcurrencyConflict) {
			return zero, err
		}

		if attempt == attempts-1 {
			slog.Error("slot update failed after max attempts",
				"attempts", attempt+1,
				"error", err.Error())
			return zero, errs.Mark(err, errs.ErrTransient)
		}

		waitTime := Backoff(attempt, policy.Base)
		metrics.ConflictRetried()
		slog.Warn("retrying after slot version conflict",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds())

		select {
		case <-ctx.Done():
			return zero, errs.FromContext(ctx.Err())
		case <-time.After(waitTime):
		}
	}

	return zero, errs.ErrTransient
}

// Backoff doubles base per attempt and adds up to 20% jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}
