// Package epoch provides millisecond-grid conversions between Unix epoch
// offsets and calendar datetimes, in both aware (zone-attached) and naive forms.
package epoch

import "time"

// ISO-8601 output layouts, exactly millisecond precision.
const (
	isoAwareLayout = "2006-01-02T15:04:05.000Z07:00"
	isoNaiveLayout = "2006-01-02T15:04:05.000"
)

// unixEpoch is the reference instant 1970-01-01T00:00:00 UTC.
// Memoized once at package init; pure and idempotent to recompute.
var unixEpoch = time.Unix(0, 0).UTC()

// Epoch returns the Unix epoch reference instant.
func Epoch() time.Time {
	return unixEpoch
}

// DateTime is a calendar datetime on the millisecond grid.
//
// Aware values are unambiguously mappable to a universal instant. Naive
// values carry no zone; their calendar fields are held against the epoch's
// naive form, so Millis on a naive value is the naive-calendar offset and no
// implicit UTC assumption leaks into the arithmetic.
type DateTime struct {
	Time  time.Time
	Aware bool
}

// FromMillis converts an epoch offset in milliseconds to a DateTime.
// Negative offsets floor to the correct earlier millisecond: FromMillis(-500)
// lands 500ms before the epoch, never rounding toward zero.
func FromMillis(ms int64, aware bool) DateTime {
	return DateTime{
		Time:  time.UnixMilli(ms).UTC(),
		Aware: aware,
	}
}

// FromTime wraps an aware instant as a DateTime.
func FromTime(t time.Time) DateTime {
	return DateTime{Time: t, Aware: true}
}

// Naive wraps calendar fields with no zone attached. The fields are read in
// whatever location t carries and reinterpreted against the naive epoch.
func Naive(t time.Time) DateTime {
	if t.Location() != time.UTC {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return DateTime{Time: t, Aware: false}
}

// Millis returns the offset from the epoch in milliseconds. Sub-millisecond
// remainders floor-divide rather than truncate toward zero, so negative
// offsets stay consistent with FromMillis.
func (dt DateTime) Millis() int64 {
	// time.Time.UnixMilli floors: whole seconds floor-divide and the
	// nanosecond field is always non-negative.
	return dt.Time.UnixMilli()
}

// ISO renders the datetime with exactly three fractional digits.
// The zone suffix is included only for aware values ("Z" for UTC).
func (dt DateTime) ISO() string {
	if dt.Aware {
		return dt.Time.Format(isoAwareLayout)
	}
	return dt.Time.Format(isoNaiveLayout)
}

// In rezones an aware datetime. Calling In on a naive value attaches the
// location first, reading the naive fields as local to loc.
func (dt DateTime) In(loc *time.Location) DateTime {
	if !dt.Aware {
		t := dt.Time
		return DateTime{
			Time:  time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc),
			Aware: true,
		}
	}
	return DateTime{Time: dt.Time.In(loc), Aware: true}
}

// NowMillis returns the current wall-clock time in milliseconds since epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
