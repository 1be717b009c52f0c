package estimate

import (
	"fmt"
	"time"
)

// TimeEstimate specializes PIE to a millisecond-valued quantity.
type TimeEstimate struct {
	PIE
}

// ZeroTime is the certain estimate of zero elapsed time.
func ZeroTime() TimeEstimate {
	return TimeEstimate{PIE: Exact(0)}
}

// MinimumTime is the certain estimate of one millisecond, used as a floor
// so that ratios against a time estimate never divide by zero.
func MinimumTime() TimeEstimate {
	return TimeEstimate{PIE: Exact(1)}
}

// NewTime builds a TimeEstimate from millisecond bounds.
func NewTime(lowerMs, upperMs, p float64, opts ...Option) TimeEstimate {
	return TimeEstimate{PIE: New(lowerMs, upperMs, p, opts...)}
}

// LowerMs rounds the lower bound to whole milliseconds.
func (t TimeEstimate) LowerMs() int64 { return RoundHalfUp(t.Lower) }

// UpperMs rounds the upper bound to whole milliseconds.
func (t TimeEstimate) UpperMs() int64 { return RoundHalfUp(t.Upper) }

// String renders the interval as durations: "(lowerDur .. upperDur, p=xx.x%)".
func (t TimeEstimate) String() string {
	return fmt.Sprintf("(%s .. %s, p=%.1f%%)",
		time.Duration(t.LowerMs())*time.Millisecond,
		time.Duration(t.UpperMs())*time.Millisecond,
		t.P*100)
}
