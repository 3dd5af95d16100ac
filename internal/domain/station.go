package domain

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

// Station groups the daily readings of one weather station with the site
// metadata needed to normalize them.
type Station struct {
	ID         *int
	Name       string
	Source     string
	Latitude   float64 // degrees
	Longitude  float64 // degrees
	Elevation  float64 // meters
	WindHeight float64 // meters

	readings []DailyReading
}

// NewStation returns a station with no readings.
func NewStation(name, source string, lat, lon, elevation, windHeight float64, id *int) *Station {
	var idCopy *int
	if id != nil {
		v := *id
		idCopy = &v
	}
	return &Station{
		ID:         idCopy,
		Name:       name,
		Source:     source,
		Latitude:   lat,
		Longitude:  lon,
		Elevation:  elevation,
		WindHeight: windHeight,
	}
}

// AddDailyReading validates and appends one reading. The station is left
// unchanged on error.
func (s *Station) AddDailyReading(date time.Time, tmin, tmax Measurement, obs Observations) error {
	r, err := NewDailyReading(date, tmin, tmax, obs)
	if err != nil {
		return err
	}
	s.readings = append(s.readings, r)
	return nil
}

// SetReadings replaces all readings. Readings are already validated by
// construction and are not checked again.
func (s *Station) SetReadings(rs []DailyReading) {
	s.readings = slices.Clone(rs)
}

// Readings returns a copy of the readings in insertion order.
func (s *Station) Readings() []DailyReading {
	return slices.Clone(s.readings)
}

// Key identifies the station on the wire: the numeric id when present,
// otherwise the name.
func (s *Station) Key() string {
	return stationKey(s.ID, s.Name)
}

func stationKey(id *int, name string) string {
	if id != nil {
		return strconv.Itoa(*id)
	}
	return name
}

// Normalize converts every reading, in order, and attaches the station's
// latitude, elevation and wind height. The first failing reading aborts the
// whole station and no records are returned.
func (s *Station) Normalize() ([]Record, error) {
	if s.WindHeight <= 0 {
		return nil, fmt.Errorf("station %s: %w: %g", s.Key(), ErrInvalidWindHeight, s.WindHeight)
	}
	records := make([]Record, 0, len(s.readings))
	wz := s.WindHeight
	for i, r := range s.readings {
		rec, err := r.Normalize()
		if err != nil {
			return nil, fmt.Errorf("station %s reading %d: %w", s.Key(), i, err)
		}
		rec.SetLatitude(s.Latitude)
		rec.SetElevation(s.Elevation)
		rec.SetWindHeight(&wz)
		records = append(records, rec)
	}
	return records, nil
}
