// Package trail computes trail day identifiers. A trail day is the calendar
// date in New Zealand, so comments posted on the same local day group
// together no matter where the caller runs.
package trail

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Zone is the timezone every trail id is computed in.
const Zone = "Pacific/Auckland"

const (
	defaultYear  = "0000"
	defaultMonth = "01"
	defaultDay   = "01"
)

var location, locationErr = time.LoadLocation(Zone)

// ID formats t as YYYY-MM-DD in the trail timezone. Components that cannot
// be determined fall back to 0000, 01 and 01.
func ID(t time.Time) string {
	if locationErr != nil || location == nil {
		return defaultYear + "-" + defaultMonth + "-" + defaultDay
	}
	return format(t.In(location))
}

func format(local time.Time) string {
	year, month, day := defaultYear, defaultMonth, defaultDay

	if y := local.Year(); y >= 0 && y <= 9999 {
		year = fmt.Sprintf("%04d", y)
	}
	if m := int(local.Month()); m >= 1 && m <= 12 {
		month = fmt.Sprintf("%02d", m)
	}
	if d := local.Day(); d >= 1 && d <= 31 {
		day = fmt.Sprintf("%02d", d)
	}

	return year + "-" + month + "-" + day
}

// Today returns the trail id for the instant reported by now.
func Today(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return ID(now())
}
