package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is the canonical representation for slot start times both in the API
// and in the database (stored as a Postgres TIME column).
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses s as "HH:MM".
// Returns an error for anything that does not parse; callers are expected
// to treat an unparsable slot time as unusable rather than substituting a default.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("invalid time string %q: %w", s, err)
	}
	return TimeString(s), nil
}

// String returns the "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// Parse returns the time-of-day as a time.Time on the zero date.
func (t TimeString) Parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string %q: %w", string(t), err)
	}
	return parsed, nil
}

// Minutes returns the number of minutes since midnight, or an error for
// malformed values.
func (t TimeString) Minutes() (int, error) {
	parsed, err := t.Parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// AddMinutes returns the time-of-day minutes later than t.
// Wrapping past midnight is not supported: adding past 23:59 returns an
// error, since a slot never crosses midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %dm is outside the day", t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At anchors the time-of-day onto the given date in the date's location.
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := t.Parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	), nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts TIME column values in "HH:MM" or
// "HH:MM:SS" form, and time.Time values from drivers that parse TIME columns.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
