package usecase

import (
	"time"

	"backlot/internal/errors"
)

const (
	dateOnlyLayout = "02/01/2006"
	dateTimeLayout = "02/01/2006:15:04"
)

// DateOnly is a calendar date carried on the wire as "dd/MM/yyyy".
type DateOnly struct {
	time.Time
}

// NewDateOnly builds a DateOnly from a time.Time, dropping the clock part.
func NewDateOnly(t time.Time) DateOnly {
	y, m, d := t.Date()

	return DateOnly{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "dd/MM/yyyy", or null for the zero value.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

// UnmarshalJSON parses "dd/MM/yyyy"; null yields the zero value.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = DateOnly{}

		return nil
	}

	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid date %s, expected \"dd/MM/yyyy\"", s)
	}

	t, err := time.Parse(dateOnlyLayout, s[1:len(s)-1])
	if err != nil {
		return errors.Wrapf(err, "invalid date %s, expected dd/MM/yyyy", s)
	}

	d.Time = t

	return nil
}

// DateTime is a timestamp carried on the wire as "dd/MM/yyyy:HH:mm".
type DateTime struct {
	time.Time
}

// NewDateTime builds a DateTime truncated to minute precision.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Minute)}
}

// MarshalJSON renders the timestamp as "dd/MM/yyyy:HH:mm", or null for the
// zero value.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}

// UnmarshalJSON parses "dd/MM/yyyy:HH:mm"; null yields the zero value.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = DateTime{}

		return nil
	}

	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid date-time %s, expected \"dd/MM/yyyy:HH:mm\"", s)
	}

	t, err := time.Parse(dateTimeLayout, s[1:len(s)-1])
	if err != nil {
		return errors.Wrapf(err, "invalid date-time %s, expected dd/MM/yyyy:HH:mm", s)
	}

	d.Time = t

	return nil
}
