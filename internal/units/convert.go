package units

import "math"

// secondsPerDay converts daily wind run totals to an average speed.
const secondsPerDay = 86400.0

type pair struct {
	from Unit
	to   Unit
}

// conversions holds every supported directed conversion. It is not closed
// under composition: Convert never chains two entries, and a pair that needs
// both directions has two entries.
var conversions = map[pair]func(float64) float64{
	{Celsius, Fahrenheit}: func(v float64) float64 { return v*9.0/5.0 + 32.0 },
	{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32.0) * 5.0 / 9.0 },

	{Millimeters, Centimeters}: func(v float64) float64 { return v / 10.0 },
	{Centimeters, Millimeters}: func(v float64) float64 { return v * 10.0 },
	{Meters, Kilometers}:       func(v float64) float64 { return v / 1000.0 },
	{Kilometers, Meters}:       func(v float64) float64 { return v * 1000.0 },
	{Inches, Feet}:             func(v float64) float64 { return v / 12.0 },
	{Feet, Inches}:             func(v float64) float64 { return v * 12.0 },
	{Yards, Meters}:            func(v float64) float64 { return v * 0.9144 },
	{Meters, Yards}:            func(v float64) float64 { return v / 0.9144 },
	{Miles, Kilometers}:        func(v float64) float64 { return v * 1.60934 },
	{Kilometers, Miles}:        func(v float64) float64 { return v / 1.60934 },

	{Langley, MegaJoulesPerSquareMeter}:             func(v float64) float64 { return v * 0.04184 },
	{MegaJoulesPerSquareMeter, Langley}:             func(v float64) float64 { return v / 0.04184 },
	{WattsPerSquareMeter, MegaJoulesPerSquareMeter}: func(v float64) float64 { return v / 3600000.0 },
	{MegaJoulesPerSquareMeter, WattsPerSquareMeter}: func(v float64) float64 { return v * 3600000.0 },

	{KiloPascals, Pascals}: func(v float64) float64 { return v * 1000.0 },
	{Pascals, KiloPascals}: func(v float64) float64 { return v / 1000.0 },

	{Degrees, Radians}: func(v float64) float64 { return v * math.Pi / 180.0 },
	{Radians, Degrees}: func(v float64) float64 { return v * 180.0 / math.Pi },

	{MetersPerSecond, MilesPerHour}: func(v float64) float64 { return v * 2.23694 },
	{MilesPerHour, MetersPerSecond}: func(v float64) float64 { return v / 2.23694 },

	// Length to speed: the value is a total distance travelled over one day.
	{Miles, MetersPerSecond}:      func(v float64) float64 { return v * 1609.344 / secondsPerDay },
	{Meters, MetersPerSecond}:     func(v float64) float64 { return v / secondsPerDay },
	{Kilometers, MetersPerSecond}: func(v float64) float64 { return v * 1000.0 / secondsPerDay },

	{Acres, SquareMeters}:      func(v float64) float64 { return v * 4046.86 },
	{SquareMeters, Acres}:      func(v float64) float64 { return v / 4046.86 },
	{Hectares, SquareMeters}:   func(v float64) float64 { return v * 10000.0 },
	{SquareMeters, Hectares}:   func(v float64) float64 { return v / 10000.0 },
	{SquareFeet, SquareMeters}: func(v float64) float64 { return v / 10.7639 },
	{SquareMeters, SquareFeet}: func(v float64) float64 { return v * 10.7639 },
	{Hectares, Acres}:          func(v float64) float64 { return v * 2.47105 },
	{Acres, Hectares}:          func(v float64) float64 { return v / 2.47105 },
}

// Convert converts value from one unit to another using a single table entry.
// Pairs without a direct entry fail with *UnsupportedConversionError, including
// from == to and pairs reachable only through an intermediate unit.
func Convert(value float64, from, to Unit) (float64, error) {
	fn, ok := conversions[pair{from, to}]
	if !ok {
		return 0, &UnsupportedConversionError{From: from, To: to}
	}
	return fn(value), nil
}

// CanConvert reports whether a direct conversion entry exists.
func CanConvert(from, to Unit) bool {
	_, ok := conversions[pair{from, to}]
	return ok
}
