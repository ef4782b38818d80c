package functors

import "fmt"

// ErrMaxAttempts reports that a retried callable kept failing until its
// attempt budget ran out.
var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retried decorates a fallible callable with bounded retry: the returned
// callable re-runs fn until it succeeds or maxAttempts invocations have
// failed, then reports the exhaustion wrapped around the last error. Each
// call of the returned callable gets a fresh attempt budget. A
// non-positive maxAttempts is normalized to 1.
//
// Retry is opt-in decoration, never wrapper behavior: the plain wrappers
// propagate failures unchanged.
func Retried(maxAttempts int, fn func() error) func() error {
	if fn == nil {
		panic("functors.Retried: nil callable")
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return func() error {
		numAttempts := 0
		for {
			err := fn()
			if err == nil {
				return nil
			}
			numAttempts++
			if numAttempts >= maxAttempts {
				return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, numAttempts, err)
			}
		}
	}
}
