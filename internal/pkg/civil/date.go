// Package civil provides a calendar-date value with no time-of-day
// component. Occupancy accounting works in whole hotel nights, so every
// date in the system is normalized to UTC midnight before comparison or
// arithmetic.
package civil

import (
	"encoding/json"
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is an immutable calendar date. The zero value is reported by
// IsZero and must not be used in arithmetic.
type Date struct {
	t time.Time
}

// DateOf truncates t to its calendar date, discarding time-of-day and
// location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(layout) }

func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// DayNumber is the number of whole days since the Unix epoch. Subtracting
// two day numbers gives the span between dates in days.
func (d Date) DayNumber() int {
	return int(d.t.Unix() / (24 * 60 * 60))
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns other - d in whole days; negative when other precedes d.
func (d Date) DaysUntil(other Date) int {
	return other.DayNumber() - d.DayNumber()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
