// Package dateutil provides the UTC yyyy-mm-dd date strings used as
// release-date keys throughout the API.
package dateutil

import "time"

const layout = "2006-01-02"

// Format renders t as a yyyy-mm-dd string in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(layout)
}

// Today returns the current UTC date as a yyyy-mm-dd string.
func Today() string {
	return Format(time.Now())
}

// AddDays returns the yyyy-mm-dd string n days away from t (n may be negative).
func AddDays(t time.Time, n int) string {
	return Format(t.AddDate(0, 0, n))
}
