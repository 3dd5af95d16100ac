package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// StationPayload is the JSON document published by upstream collectors, one
// station with its daily readings.
type StationPayload struct {
	ID         *int             `json:"id,omitempty"`
	Name       string           `json:"name"`
	Source     string           `json:"source"`
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	Elevation  float64          `json:"elevation"`
	WindHeight *float64         `json:"wind_height,omitempty"`
	Readings   []ReadingPayload `json:"readings"`
}

// ReadingPayload is one station-day as published. Values keep the station's
// own units.
type ReadingPayload struct {
	Date           string       `json:"date"`
	Tmin           Measurement  `json:"tmin"`
	Tmax           Measurement  `json:"tmax"`
	RHMin          *Measurement `json:"rhmin,omitempty"`
	RHMax          *Measurement `json:"rhmax,omitempty"`
	Dewpoint       *Measurement `json:"dewpoint,omitempty"`
	Precip         *Measurement `json:"precip,omitempty"`
	SolarRadiation *Measurement `json:"rs,omitempty"`
	VaporPressure  *Measurement `json:"ea,omitempty"`
	WindSpeed      *Measurement `json:"wind_speed,omitempty"`
}

// NormalizedStation is the canonical form destined for the sink topic.
type NormalizedStation struct {
	StationKey  string    `json:"station_key"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Elevation   float64   `json:"elevation"`
	WindHeight  float64   `json:"wind_height"`
	Records     []Record  `json:"records"`
	ProcessedAt time.Time `json:"processed_at"`
}
