package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNewDailyReading(t *testing.T) {
	tmin := Measurement{Value: 10, Unit: "°C"}
	tmax := Measurement{Value: 20, Unit: "°C"}

	t.Run("mandatory only", func(t *testing.T) {
		r, err := NewDailyReading(testDate, tmin, tmax, Observations{})
		require.NoError(t, err)
		assert.Equal(t, testDate, r.Date())
		assert.Equal(t, tmin, r.Tmin())
		assert.Equal(t, tmax, r.Tmax())
		_, ok := r.Measurement(FieldWindSpeed)
		assert.False(t, ok)
	})

	t.Run("unrecognized unit accepted at construction", func(t *testing.T) {
		obs := Observations{WindSpeed: &Measurement{Value: 3, Unit: "knots"}}
		r, err := NewDailyReading(testDate, tmin, tmax, obs)
		require.NoError(t, err)
		m, ok := r.Measurement(FieldWindSpeed)
		require.True(t, ok)
		assert.Equal(t, "knots", m.Unit)
	})

	t.Run("observations copy", func(t *testing.T) {
		obs := Observations{RHMin: &Measurement{Value: 45, Unit: "%"}}
		r, err := NewDailyReading(testDate, tmin, tmax, obs)
		require.NoError(t, err)

		obs.RHMin.Value = 99
		got := r.Observations()
		require.NotNil(t, got.RHMin)
		assert.Equal(t, 45.0, got.RHMin.Value)
		assert.Nil(t, got.RHMax)

		got.RHMin.Value = 12
		again, _ := r.Measurement(FieldRHMin)
		assert.Equal(t, 45.0, again.Value)
	})
}

func TestNewDailyReading_EmptyUnit(t *testing.T) {
	tests := []struct {
		name    string
		obs     Observations
		field   Field
		message string
	}{
		{"rhmin", Observations{RHMin: &Measurement{Value: 40}}, FieldRHMin, "Relative humidity min units must not be empty when including a value"},
		{"rhmax", Observations{RHMax: &Measurement{Value: 90}}, FieldRHMax, "Relative humidity max units must not be empty when including a value"},
		{"dewpoint", Observations{Dewpoint: &Measurement{Value: 5}}, FieldDewpoint, "Dewpoint units must not be empty when including a value"},
		{"precip", Observations{Precip: &Measurement{Value: 1}}, FieldPrecip, "Precipitation units must not be empty when including a value"},
		{"rs", Observations{SolarRadiation: &Measurement{Value: 20}}, FieldSolarRadiation, "Solar radiation units must not be empty when including a value"},
		{"ea", Observations{VaporPressure: &Measurement{Value: 1.2}}, FieldVaporPressure, "Vapor pressure units must not be empty when including a value"},
		{"wind speed", Observations{WindSpeed: &Measurement{Value: 2}}, FieldWindSpeed, "Wind speed units must not be empty when including a value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDailyReading(testDate, Measurement{10, "C"}, Measurement{20, "C"}, tt.obs)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptyUnit)
			assert.EqualError(t, err, tt.message)

			var ue *UnitError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.field, ue.Field)
		})
	}
}

func TestNewDailyReading_FirstEmptyUnitWins(t *testing.T) {
	obs := Observations{
		RHMin:     &Measurement{Value: 40},
		WindSpeed: &Measurement{Value: 2},
	}
	_, err := NewDailyReading(testDate, Measurement{10, "C"}, Measurement{20, "C"}, obs)
	var ue *UnitError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, FieldRHMin, ue.Field)
}
