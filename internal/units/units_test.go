package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		abbr     string
		expected Unit
	}{
		{"°C", Celsius},
		{"C", Celsius},
		{"c", Celsius},
		{"degC", Celsius},
		{"°F", Fahrenheit},
		{"F", Fahrenheit},
		{"f", Fahrenheit},
		{"degF", Fahrenheit},
		{"mm", Millimeters},
		{"cm", Centimeters},
		{"m", Meters},
		{"km", Kilometers},
		{"KM", Kilometers},
		{"in", Inches},
		{"ft", Feet},
		{"yd", Yards},
		{"mi", Miles},
		{"L", Langley},
		{"MJ/m²", MegaJoulesPerSquareMeter},
		{"mj/m²", MegaJoulesPerSquareMeter},
		{"mj/m2", MegaJoulesPerSquareMeter},
		{"mj/m^2", MegaJoulesPerSquareMeter},
		{"mJ/m^2", MegaJoulesPerSquareMeter},
		{"W/m²", WattsPerSquareMeter},
		{"w/m²", WattsPerSquareMeter},
		{"W/m-2", WattsPerSquareMeter},
		{"w/m-2", WattsPerSquareMeter},
		{"Pa", Pascals},
		{"pa", Pascals},
		{"kpa", KiloPascals},
		{"kPa", KiloPascals},
		{"KPA", KiloPascals},
		{"KPa", KiloPascals},
		{"°", Degrees},
		{"deg", Degrees},
		{"rad", Radians},
		{"m/s", MetersPerSecond},
		{"mph", MilesPerHour},
		{"acres", Acres},
		{"ha", Hectares},
		{"ft²", SquareFeet},
		{"sq ft", SquareFeet},
		{"ft2", SquareFeet},
		{"m²", SquareMeters},
		{"sq m", SquareMeters},
		{"m2", SquareMeters},
		{"%", Percent},
		{"percent", Percent},
		{"Percent", Percent},
	}

	for _, tt := range tests {
		t.Run(tt.abbr, func(t *testing.T) {
			u, err := Parse(tt.abbr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	for _, abbr := range []string{"", "celsius", " C", "C ", "MPH", "Kpa", "hPa", "K"} {
		t.Run(abbr, func(t *testing.T) {
			_, err := Parse(abbr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnrecognized)

			var ue *UnrecognizedError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, abbr, ue.Abbreviation)
		})
	}
}

func TestUnitMetadata(t *testing.T) {
	assert.Equal(t, "°C", Celsius.Abbreviation())
	assert.Equal(t, "Celsius", Celsius.String())
	assert.Equal(t, KindTemperature, Celsius.Kind())
	assert.Equal(t, "MJ/m²", MegaJoulesPerSquareMeter.Abbreviation())
	assert.Equal(t, "MegaJoules/Meter²", MegaJoulesPerSquareMeter.String())
	assert.Equal(t, KindSpeed, MilesPerHour.Kind())
	assert.Equal(t, KindRatio, Percent.Kind())
	assert.Equal(t, "Unknown", Unit(0).String())
	assert.False(t, Unit(0).Valid())
	assert.True(t, Percent.Valid())
}

func TestAll_CanonicalAbbreviationsParse(t *testing.T) {
	all := All()
	require.Len(t, all, 24)
	for _, u := range all {
		parsed, err := Parse(u.Abbreviation())
		require.NoError(t, err, u.String())
		assert.Equal(t, u, parsed)
	}
}

func TestAbbreviations(t *testing.T) {
	assert.Equal(t, []string{"C", "c", "degC", "°C"}, Abbreviations(Celsius))
	assert.Equal(t, []string{"%", "Percent", "percent"}, Abbreviations(Percent))
	assert.Empty(t, Abbreviations(Unit(0)))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to Unit
		expected float64
	}{
		{"celsius to fahrenheit", 25, Celsius, Fahrenheit, 77},
		{"fahrenheit to celsius", 77, Fahrenheit, Celsius, 25},
		{"meters to kilometers", 25000, Meters, Kilometers, 25},
		{"millimeters to centimeters", 25.4, Millimeters, Centimeters, 2.54},
		{"feet to inches", 2, Feet, Inches, 24},
		{"yards to meters", 1, Yards, Meters, 0.9144},
		{"miles to kilometers", 1, Miles, Kilometers, 1.60934},
		{"langley to MJ", 1000, Langley, MegaJoulesPerSquareMeter, 41.84},
		{"MJ to langley", 41.84, MegaJoulesPerSquareMeter, Langley, 1000},
		{"zero langley", 0, Langley, MegaJoulesPerSquareMeter, 0},
		{"watts to MJ", 3600000, WattsPerSquareMeter, MegaJoulesPerSquareMeter, 1},
		{"pascals to kilopascals", 1500, Pascals, KiloPascals, 1.5},
		{"degrees to radians", 45, Degrees, Radians, math.Pi / 4},
		{"radians to degrees", math.Pi / 4, Radians, Degrees, 45},
		{"meters per second to mph", 10, MetersPerSecond, MilesPerHour, 22.3694},
		{"mph to meters per second", 22.3694, MilesPerHour, MetersPerSecond, 10},
		{"daily meters to speed", 86400, Meters, MetersPerSecond, 1},
		{"daily kilometers to speed", 172.8, Kilometers, MetersPerSecond, 2},
		{"daily miles to speed", 100, Miles, MetersPerSecond, 1.86266667},
		{"hectares to square meters", 2, Hectares, SquareMeters, 20000},
		{"acres to square meters", 1, Acres, SquareMeters, 4046.86},
		{"square feet to square meters", 10.7639, SquareFeet, SquareMeters, 1},
		{"hectares to acres", 1, Hectares, Acres, 2.47105},
		{"acres to hectares", 2.47105, Acres, Hectares, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-6)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for p := range conversions {
		if !CanConvert(p.to, p.from) {
			continue
		}
		t.Run(p.from.String()+"->"+p.to.String(), func(t *testing.T) {
			for _, x := range []float64{-40, 0, 1, 25, 1234.5} {
				there, err := Convert(x, p.from, p.to)
				require.NoError(t, err)
				back, err := Convert(there, p.to, p.from)
				require.NoError(t, err)
				assert.InDelta(t, x, back, 1e-9*math.Max(1, math.Abs(x)))
			}
		})
	}
}

func TestConvert_Unsupported(t *testing.T) {
	tests := []struct {
		name     string
		from, to Unit
	}{
		{"temperature to length", Celsius, Meters},
		{"identity", Celsius, Celsius},
		{"no chaining through meters", Yards, Kilometers},
		{"no chaining through kilometers", Miles, Meters},
		{"speed is one way for daily totals", MetersPerSecond, Miles},
		{"no pascal to langley", Pascals, Langley},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(25, tt.from, tt.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedConversion)
			assert.False(t, CanConvert(tt.from, tt.to))
		})
	}
}

func TestConvert_UnsupportedMessageNamesBothUnits(t *testing.T) {
	_, err := Convert(25, Celsius, Meters)
	require.Error(t, err)
	assert.Equal(t, "unsupported conversion from Celsius to Meters", err.Error())

	var ce *UnsupportedConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Celsius, ce.From)
	assert.Equal(t, Meters, ce.To)
}
