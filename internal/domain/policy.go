package domain

import (
	"slices"
	"time"

	"github.com/couchcryptid/refet-weather-etl/internal/units"
)

// fieldPolicy lists the units a field may be recorded in and the canonical
// unit it is normalized to.
type fieldPolicy struct {
	accepted []units.Unit
	target   units.Unit
}

var (
	temperaturePolicy = fieldPolicy{
		accepted: []units.Unit{units.Celsius, units.Fahrenheit},
		target:   units.Celsius,
	}
	humidityPolicy = fieldPolicy{
		accepted: []units.Unit{units.Percent},
		target:   units.Percent,
	}
)

// policies drives normalization. Precipitation has no canonical field and is
// absent.
var policies = map[Field]fieldPolicy{
	FieldTmin:     temperaturePolicy,
	FieldTmax:     temperaturePolicy,
	FieldDewpoint: temperaturePolicy,
	FieldRHMin:    humidityPolicy,
	FieldRHMax:    humidityPolicy,
	FieldVaporPressure: {
		accepted: []units.Unit{units.KiloPascals, units.Pascals},
		target:   units.KiloPascals,
	},
	FieldSolarRadiation: {
		accepted: []units.Unit{units.MegaJoulesPerSquareMeter, units.WattsPerSquareMeter, units.Langley},
		target:   units.MegaJoulesPerSquareMeter,
	},
	FieldWindSpeed: {
		accepted: []units.Unit{units.MetersPerSecond, units.MilesPerHour, units.Miles, units.Meters, units.Kilometers},
		target:   units.MetersPerSecond,
	},
}

// AcceptedUnits returns the units f may be recorded in, or nil when f is not
// normalized.
func AcceptedUnits(f Field) []units.Unit {
	p, ok := policies[f]
	if !ok {
		return nil
	}
	return slices.Clone(p.accepted)
}

// CanonicalUnit returns the unit f is normalized to.
func CanonicalUnit(f Field) (units.Unit, bool) {
	p, ok := policies[f]
	return p.target, ok
}

// canonicalize resolves raw, checks it against the field policy and converts
// value into the canonical unit.
func (p fieldPolicy) canonicalize(f Field, date time.Time, m Measurement) (float64, error) {
	u, err := units.Parse(m.Unit)
	if err != nil {
		return 0, &UnitError{Field: f, Date: date, Unit: m.Unit, Err: ErrUnrecognizedUnit, Cause: err}
	}
	if !slices.Contains(p.accepted, u) {
		return 0, &UnitError{Field: f, Date: date, Unit: m.Unit, Err: ErrUnrecognizedUnit}
	}
	if u == p.target {
		return m.Value, nil
	}
	v, err := units.Convert(m.Value, u, p.target)
	if err != nil {
		return 0, &UnitError{Field: f, Date: date, Unit: m.Unit, Err: ErrUnrecognizedUnit, Cause: err}
	}
	return v, nil
}
