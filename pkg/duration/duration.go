package duration

import (
	"fmt"

	"github.com/neono-dev/tstd/pkg/hashcode"
	"github.com/neono-dev/tstd/pkg/result"
	"github.com/neono-dev/tstd/pkg/taggederr"
)

// TagDivisionByZero is the tag stamped on zero-divisor failures.
const TagDivisionByZero = "DivisionByZeroError"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Duration is an immutable span of time with millisecond resolution. It
// implements compare.Hashable and compare.Ordered.
type Duration struct {
	ms float64
}

func FromMilliseconds(ms float64) Duration {
	return Duration{ms: ms}
}

func FromSeconds(s float64) Duration {
	return Duration{ms: s * msPerSecond}
}

func FromMinutes(m float64) Duration {
	return Duration{ms: m * msPerMinute}
}

func FromHours(h float64) Duration {
	return Duration{ms: h * msPerHour}
}

func FromDays(d float64) Duration {
	return Duration{ms: d * msPerDay}
}

func (d Duration) Milliseconds() float64 {
	return d.ms
}

func (d Duration) Seconds() float64 {
	return d.ms / msPerSecond
}

func (d Duration) Minutes() float64 {
	return d.ms / msPerMinute
}

func (d Duration) Hours() float64 {
	return d.ms / msPerHour
}

func (d Duration) Days() float64 {
	return d.ms / msPerDay
}

// Add returns the sum of the two durations.
func (d Duration) Add(other Duration) Duration {
	return Duration{ms: d.ms + other.ms}
}

// Sub returns the difference of the two durations.
func (d Duration) Sub(other Duration) Duration {
	return Duration{ms: d.ms - other.ms}
}

// Mul scales the duration by factor.
func (d Duration) Mul(factor float64) Duration {
	return Duration{ms: d.ms * factor}
}

// Div divides the duration by divisor. A zero divisor is a represented
// failure, not a panic: the Err carries a division-by-zero tagged error.
func (d Duration) Div(divisor float64) result.Result[Duration, *taggederr.Error] {
	if divisor == 0 {
		return result.Err[Duration](taggederr.New(TagDivisionByZero, "cannot divide a duration by zero"))
	}
	return result.Ok[*taggederr.Error](Duration{ms: d.ms / divisor})
}

// HashCode implements compare.Hashable.
func (d Duration) HashCode() uint64 {
	return hashcode.Of("duration", d.ms)
}

// CompareTo implements compare.Ordered.
func (d Duration) CompareTo(other Duration) int {
	switch {
	case d.ms < other.ms:
		return -1
	case d.ms > other.ms:
		return 1
	default:
		return 0
	}
}

func (d Duration) String() string {
	return fmt.Sprintf("%gms", d.ms)
}
