// Package detect infers the scale of a bare integer timestamp by proximity
// to the current wall-clock time.
package detect

import (
	"math"
	"strconv"
	"time"

	"github.com/hlop3z/dttm/internal/epoch"
)

// Unit identifies a timestamp scale. Declaration order is the tie-break
// order when two interpretations land equally close to now.
type Unit int

const (
	Milliseconds Unit = iota
	Seconds
	Microseconds
	Nanoseconds
)

// String returns the lowercase unit name.
func (u Unit) String() string {
	switch u {
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Microseconds:
		return "microseconds"
	case Nanoseconds:
		return "nanoseconds"
	}
	return "unknown"
}

// Scale returns the number of units per second.
func (u Unit) Scale() int64 {
	switch u {
	case Seconds:
		return 1
	case Milliseconds:
		return 1_000
	case Microseconds:
		return 1_000_000
	case Nanoseconds:
		return 1_000_000_000
	}
	return 0
}

// Result is a successful unit detection.
type Result struct {
	Unit   Unit
	Millis int64
	Time   epoch.DateTime // UTC, aware
}

// Detect infers which unit the integer string most plausibly represents.
//
// Each candidate interpretation is normalized to milliseconds and compared
// against now; the smallest absolute distance wins, ties going to the
// earlier Unit value. The heuristic assumes a recent timestamp, so inputs
// far from now are classified on a best-effort basis.
//
// Non-integer input declines with ok=false so callers can fall back to
// string parsing.
func Detect(s string, now time.Time) (Result, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Result{}, false
	}

	nowMillis := now.UnixMilli()

	candidates := []struct {
		unit   Unit
		millis int64
	}{
		{Milliseconds, n},
		{Seconds, mulSat(n, 1_000)},
		{Microseconds, floorDiv(n, 1_000)},
		{Nanoseconds, floorDiv(n, 1_000_000)},
	}

	best := candidates[0]
	bestDist := absDist(best.millis, nowMillis)
	for _, c := range candidates[1:] {
		if d := absDist(c.millis, nowMillis); d < bestDist {
			best = c
			bestDist = d
		}
	}

	return Result{
		Unit:   best.unit,
		Millis: best.millis,
		Time:   epoch.FromMillis(best.millis, true),
	}, true
}

// absDist returns |a-b| as uint64 so the spread of two distant int64 values
// cannot overflow.
func absDist(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// mulSat multiplies with saturation. An interpretation whose millisecond
// value overflows int64 is so far from now that saturating keeps it a loser
// without wrapping into a false winner.
func mulSat(n, factor int64) int64 {
	if n > math.MaxInt64/factor {
		return math.MaxInt64
	}
	if n < math.MinInt64/factor {
		return math.MinInt64
	}
	return n * factor
}

// floorDiv divides rounding toward negative infinity, matching the floor
// semantics used throughout the millisecond arithmetic.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
