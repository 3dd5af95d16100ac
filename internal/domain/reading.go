package domain

import "time"

// DailyReading is one station-day of raw values. It is immutable after
// construction; use NewDailyReading to build one.
type DailyReading struct {
	date         time.Time
	measurements map[Field]Measurement
}

// NewDailyReading validates and builds a reading. Every optional measurement
// that is present must carry a non-empty unit string. Whether the unit is
// recognized is checked later, by Normalize.
func NewDailyReading(date time.Time, tmin, tmax Measurement, obs Observations) (DailyReading, error) {
	r := DailyReading{
		date: date,
		measurements: map[Field]Measurement{
			FieldTmin: tmin,
			FieldTmax: tmax,
		},
	}

	for _, f := range optionalFields {
		m := obs.get(f)
		if m == nil {
			continue
		}
		if m.Unit == "" {
			return DailyReading{}, &UnitError{Field: f, Date: date, Err: ErrEmptyUnit}
		}
		r.measurements[f] = *m
	}

	return r, nil
}

// Date returns the observation date.
func (r DailyReading) Date() time.Time { return r.date }

// Tmin returns the minimum temperature as recorded.
func (r DailyReading) Tmin() Measurement { return r.measurements[FieldTmin] }

// Tmax returns the maximum temperature as recorded.
func (r DailyReading) Tmax() Measurement { return r.measurements[FieldTmax] }

// Measurement returns the raw measurement for f and whether it was reported.
func (r DailyReading) Measurement(f Field) (Measurement, bool) {
	m, ok := r.measurements[f]
	return m, ok
}

// Observations returns a copy of the optional measurements.
func (r DailyReading) Observations() Observations {
	pick := func(f Field) *Measurement {
		m, ok := r.measurements[f]
		if !ok {
			return nil
		}
		return &m
	}
	return Observations{
		RHMin:          pick(FieldRHMin),
		RHMax:          pick(FieldRHMax),
		Dewpoint:       pick(FieldDewpoint),
		Precip:         pick(FieldPrecip),
		SolarRadiation: pick(FieldSolarRadiation),
		VaporPressure:  pick(FieldVaporPressure),
		WindSpeed:      pick(FieldWindSpeed),
	}
}
