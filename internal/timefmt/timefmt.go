// Package timefmt holds the fixed table of datetime string formats and the
// first-match parser over it.
package timefmt

import (
	"time"

	"github.com/hlop3z/dttm/internal/dterr"
	"github.com/hlop3z/dttm/internal/epoch"
)

// Format is one entry of the format table: a named time.Parse layout.
// Aware marks layouts that carry a zone offset.
type Format struct {
	Name   string
	Layout string
	Aware  bool
}

// formats is the fixed priority-ordered table. Order matters: the micro
// variants must precede their non-micro prefixes, and every layout is
// anchored (time.Parse rejects trailing input), so each match is
// all-or-nothing.
var formats = []Format{
	{"basic", "2006-01-02 15:04:05", false},
	{"iso_8601_no_tz_micro", "2006-01-02T15:04:05.000000", false},
	{"iso_8601_no_tz", "2006-01-02T15:04:05", false},
	{"iso_8601_tz_micro", "2006-01-02T15:04:05.000000Z07:00", true},
	{"iso_8601_tz", "2006-01-02T15:04:05Z07:00", true},
	{"rfc_2822", "Mon, 2 Jan 2006 15:04:05 -0700", true},
	{"slash_date_time", "01/02/2006 15:04:05", false},
	{"slash_date", "01/02/2006", false},
	{"month_name_time", "January 2, 2006 15:04:05", false},
	{"month_name", "January 2, 2006", false},
}

// Formats returns a copy of the format table in priority order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Parsed is a successful string parse: the resulting datetime and the name
// of the format entry that matched.
type Parsed struct {
	DateTime epoch.DateTime
	Format   string
}

// Parse tries each format in table order and returns the first success.
// When nothing matches, the error identifies the original input, not the
// patterns that were tried.
func Parse(s string) (Parsed, error) {
	for _, f := range formats {
		t, err := time.Parse(f.Layout, s)
		if err != nil {
			continue
		}

		dt := epoch.Naive(t)
		if f.Aware {
			dt = epoch.FromTime(t)
		}
		return Parsed{DateTime: dt, Format: f.Name}, nil
	}

	return Parsed{}, dterr.New(dterr.ErrUnknownFormat, "unable to parse timestamp").WithInput(s)
}
