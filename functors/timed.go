package functors

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// TimeBounded is satisfied by values that can report the wall-clock window
// of their most recent invocation.
type TimeBounded interface {
	TimeSpan() TimeSpan
}

// TimedFn decorates a zero-argument callable so each invocation records its
// own wall-clock span. The span is zero until the first run and thereafter
// covers the latest completed run.
type TimedFn struct {
	fn   func()
	span TimeSpan
}

var (
	_ Invoker     = (*TimedFn)(nil)
	_ TimeBounded = (*TimedFn)(nil)
)

// NewTimedFn stores the callable by value. Panics if fn is nil.
func NewTimedFn(fn func()) *TimedFn {
	if fn == nil {
		panic("functors.NewTimedFn: nil callable")
	}
	return &TimedFn{fn: fn}
}

// Invoke calls the stored callable and records the invocation's span.
func (tf *TimedFn) Invoke() {
	from := time.Now()
	tf.fn()
	tf.span = timespan.BetweenTimes(from, time.Now())
}

// TimeSpan returns the span of the last invocation, zero before the first.
func (tf *TimedFn) TimeSpan() TimeSpan {
	return tf.span
}
