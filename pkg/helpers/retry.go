package helpers

import (
	"context"
	"math/rand"
	"time"
)

// Retry calls fn until it succeeds, up to times extra attempts. Only errors
// accepted by retryable are retried; anything else is returned at once.
func Retry(ctx context.Context, times int, interval time.Duration, retryable func(error) bool, fn func() error) error {
	i := 0

	for {
		err := fn()
		if err == nil {
			return nil
		}

		if i >= times || !retryable(err) {
			return err
		}

		// add 5% jitter
		select {
		case <-ctx.Done():
			return err
		case <-time.After(interval + jitter(interval)):
		}

		i++
	}
}

func jitter(interval time.Duration) time.Duration {
	if n := int64(interval / 20); n > 0 {
		return time.Duration(rand.Int63n(n))
	}

	return 0
}

// AwsErrorThrottled returns true for the error codes AWS uses to rate limit callers
func AwsErrorThrottled(err error) bool {
	switch AwsErrorCode(err) {
	case "RequestLimitExceeded", "Throttling", "ThrottlingException":
		return true
	}

	return false
}
