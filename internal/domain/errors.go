package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyUnit is returned when an optional value is supplied without a unit.
	ErrEmptyUnit = errors.New("empty unit")

	// ErrUnrecognizedUnit is returned when a unit string does not resolve to a
	// unit accepted for its field. Unknown abbreviations and known units of the
	// wrong quantity both map here.
	ErrUnrecognizedUnit = errors.New("unit not recognized for this field")

	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidWindHeight is returned for a zero or negative anemometer height.
	ErrInvalidWindHeight = errors.New("wind height must be positive")

	// ErrMissingStationKey is returned for payloads with neither id nor name.
	ErrMissingStationKey = errors.New("station payload has neither id nor name")
)

// UnitError describes a unit problem on one field of one reading.
type UnitError struct {
	Field Field
	Date  time.Time
	Unit  string
	Err   error // ErrEmptyUnit or ErrUnrecognizedUnit
	Cause error // underlying units error, if any
}

func (e *UnitError) Error() string {
	if errors.Is(e.Err, ErrEmptyUnit) {
		return fmt.Sprintf("%s units must not be empty when including a value", e.Field.Quantity())
	}
	return fmt.Sprintf("%s on %s: unit %q not recognized for %s",
		e.Field, e.Date.Format(DateLayout), e.Unit, strings.ToLower(e.Field.Quantity()))
}

func (e *UnitError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
