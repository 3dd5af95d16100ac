package domain

import (
	"encoding/json"
	"fmt"
)

// ParseStationPayload decodes a raw message into a Station. Every reading
// goes through AddDailyReading, so construction-time validation applies.
func ParseStationPayload(raw RawEvent) (*Station, error) {
	var p StationPayload
	if err := json.Unmarshal(raw.Value, &p); err != nil {
		return nil, fmt.Errorf("parse station payload: %w", err)
	}
	return p.Station()
}

// Station builds a validated Station from the payload.
func (p StationPayload) Station() (*Station, error) {
	if p.ID == nil && p.Name == "" {
		return nil, ErrMissingStationKey
	}

	wz := DefaultWindHeight
	if p.WindHeight != nil {
		wz = *p.WindHeight
	}
	if wz <= 0 {
		return nil, fmt.Errorf("station %s: %w: %g", stationKey(p.ID, p.Name), ErrInvalidWindHeight, wz)
	}
	s := NewStation(p.Name, p.Source, p.Latitude, p.Longitude, p.Elevation, wz, p.ID)

	for i, rp := range p.Readings {
		date, err := ParseDate(rp.Date)
		if err != nil {
			return nil, fmt.Errorf("station %s reading %d: %w", s.Key(), i, err)
		}
		obs := Observations{
			RHMin:          rp.RHMin,
			RHMax:          rp.RHMax,
			Dewpoint:       rp.Dewpoint,
			Precip:         rp.Precip,
			SolarRadiation: rp.SolarRadiation,
			VaporPressure:  rp.VaporPressure,
			WindSpeed:      rp.WindSpeed,
		}
		if err := s.AddDailyReading(date, rp.Tmin, rp.Tmax, obs); err != nil {
			return nil, fmt.Errorf("station %s reading %d: %w", s.Key(), i, err)
		}
	}
	return s, nil
}

// NormalizeStation converts a station into its canonical output form,
// stamped with the current time.
func NormalizeStation(s *Station) (NormalizedStation, error) {
	records, err := s.Normalize()
	if err != nil {
		return NormalizedStation{}, err
	}
	return NormalizedStation{
		StationKey:  s.Key(),
		Name:        s.Name,
		Source:      s.Source,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Elevation:   s.Elevation,
		WindHeight:  s.WindHeight,
		Records:     records,
		ProcessedAt: clock.Now().UTC(),
	}, nil
}
