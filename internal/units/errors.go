package units

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized is matched by errors returned from Parse.
	ErrUnrecognized = errors.New("unrecognized unit")

	// ErrUnsupportedConversion is matched by errors returned from Convert.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// UnrecognizedError reports an abbreviation with no table entry.
type UnrecognizedError struct {
	Abbreviation string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("invalid unit: %q", e.Abbreviation)
}

func (e *UnrecognizedError) Is(target error) bool {
	return target == ErrUnrecognized
}

// UnsupportedConversionError reports a (from, to) pair with no table entry.
type UnsupportedConversionError struct {
	From Unit
	To   Unit
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion from %s to %s", e.From, e.To)
}

func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}
