package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchcryptid/refet-weather-etl/internal/units"
)

// DefaultWindHeight is the standard anemometer height in meters, assumed when
// a station does not report one.
const DefaultWindHeight = 2.0

// Record is one normalized station-day in canonical units, ready for RefET.
type Record struct {
	tmax     float64  // °C
	tmin     float64  // °C
	rhmax    *float64 // %
	rhmin    *float64 // %
	dewpoint *float64 // °C
	ea       *float64 // kPa
	rs       *float64 // MJ/m²
	ws       *float64 // m/s
	wz       *float64 // m
	z        float64  // elevation, m
	latitude float64  // radians
	date     time.Time
}

// NewRecord returns an empty record dated now.
func NewRecord() Record {
	return Record{date: clock.Now().UTC()}
}

// NewRecordWithValues builds a fully specified record. latitude is already in
// radians.
func NewRecordWithValues(tmax, tmin float64, rhmax, rhmin, dewpoint, ea, rs, ws, wz *float64,
	z, latitude float64, date time.Time) Record {
	return Record{
		tmax:     tmax,
		tmin:     tmin,
		rhmax:    copyFloat(rhmax),
		rhmin:    copyFloat(rhmin),
		dewpoint: copyFloat(dewpoint),
		ea:       copyFloat(ea),
		rs:       copyFloat(rs),
		ws:       copyFloat(ws),
		wz:       copyFloat(wz),
		z:        z,
		latitude: latitude,
		date:     date,
	}
}

func (r Record) Tmax() float64      { return r.tmax }
func (r *Record) SetTmax(v float64) { r.tmax = v }
func (r Record) Tmin() float64      { return r.tmin }
func (r *Record) SetTmin(v float64) { r.tmin = v }

func (r Record) RHMax() (float64, bool)    { return deref(r.rhmax) }
func (r *Record) SetRHMax(v *float64)      { r.rhmax = copyFloat(v) }
func (r Record) RHMin() (float64, bool)    { return deref(r.rhmin) }
func (r *Record) SetRHMin(v *float64)      { r.rhmin = copyFloat(v) }
func (r Record) Dewpoint() (float64, bool) { return deref(r.dewpoint) }
func (r *Record) SetDewpoint(v *float64)   { r.dewpoint = copyFloat(v) }

// VaporPressure is the actual vapor pressure (ea) in kPa.
func (r Record) VaporPressure() (float64, bool) { return deref(r.ea) }
func (r *Record) SetVaporPressure(v *float64)   { r.ea = copyFloat(v) }

// SolarRadiation is the daily solar radiation (rs) in MJ/m².
func (r Record) SolarRadiation() (float64, bool) { return deref(r.rs) }
func (r *Record) SetSolarRadiation(v *float64)   { r.rs = copyFloat(v) }

func (r Record) WindSpeed() (float64, bool) { return deref(r.ws) }
func (r *Record) SetWindSpeed(v *float64)   { r.ws = copyFloat(v) }

// WindHeight returns the anemometer height, DefaultWindHeight when unset.
func (r Record) WindHeight() float64 {
	if r.wz == nil {
		return DefaultWindHeight
	}
	return *r.wz
}

func (r *Record) SetWindHeight(v *float64) { r.wz = copyFloat(v) }

// Elevation is the station elevation (z) in meters.
func (r Record) Elevation() float64      { return r.z }
func (r *Record) SetElevation(v float64) { r.z = v }

// Latitude returns the station latitude in radians.
func (r Record) Latitude() float64 { return r.latitude }

// SetLatitude takes degrees and stores radians.
func (r *Record) SetLatitude(degrees float64) {
	// Degrees->Radians is always in the conversion table.
	rad, _ := units.Convert(degrees, units.Degrees, units.Radians)
	r.latitude = rad
}

func (r Record) Date() time.Time      { return r.date }
func (r *Record) SetDate(d time.Time) { r.date = d }

type recordJSON struct {
	Date           string   `json:"date"`
	Tmax           float64  `json:"tmax"`
	Tmin           float64  `json:"tmin"`
	RHMax          *float64 `json:"rhmax,omitempty"`
	RHMin          *float64 `json:"rhmin,omitempty"`
	Dewpoint       *float64 `json:"dewpoint,omitempty"`
	VaporPressure  *float64 `json:"ea,omitempty"`
	SolarRadiation *float64 `json:"rs,omitempty"`
	WindSpeed      *float64 `json:"wind_speed,omitempty"`
	WindHeight     float64  `json:"wind_height"`
	Elevation      float64  `json:"elevation"`
	Latitude       float64  `json:"latitude_rad"`
}

// MarshalJSON encodes the record in canonical units. Absent optional values
// are omitted; wind_height always carries the effective height.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Date:           r.date.Format(DateLayout),
		Tmax:           r.tmax,
		Tmin:           r.tmin,
		RHMax:          r.rhmax,
		RHMin:          r.rhmin,
		Dewpoint:       r.dewpoint,
		VaporPressure:  r.ea,
		SolarRadiation: r.rs,
		WindSpeed:      r.ws,
		WindHeight:     r.WindHeight(),
		Elevation:      r.z,
		Latitude:       r.latitude,
	})
}

// UnmarshalJSON decodes the MarshalJSON form. latitude_rad is taken as radians.
func (r *Record) UnmarshalJSON(data []byte) error {
	var v recordJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	date, err := ParseDate(v.Date)
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	wz := v.WindHeight
	*r = NewRecordWithValues(v.Tmax, v.Tmin, v.RHMax, v.RHMin, v.Dewpoint, v.VaporPressure,
		v.SolarRadiation, v.WindSpeed, &wz, v.Elevation, v.Latitude, date)
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
