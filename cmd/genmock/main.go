// Command genmock writes the station payload fixture used by the pipeline and
// integration test suites. Values are derived from fixed canonical baselines
// and converted into each station's own units with the units package, so the
// fixture covers every accepted unit family and normalizes back to the
// baselines.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/stations.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
	"github.com/couchcryptid/refet-weather-etl/internal/units"
)

const days = 3

var baseDate = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

// unitSet names the unit each station reports a field in. An empty string
// omits the field.
type unitSet struct {
	temp, dewpoint, rh, ea, rs, wind, precip string
}

type stationDef struct {
	id         *int
	name       string
	source     string
	lat, lon   float64
	elevation  float64
	windHeight *float64
	units      unitSet
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

var defs = []stationDef{
	{intPtr(101), "Fort Collins", "CoAgMet", 40.5853, -105.0844, 1525, floatPtr(2),
		unitSet{"°C", "C", "%", "kPa", "MJ/m²", "m/s", "mm"}},
	{intPtr(102), "Greeley", "NOAA", 40.4233, -104.7091, 1419, floatPtr(3),
		unitSet{"°F", "F", "percent", "Pa", "W/m²", "mph", "cm"}},
	{nil, "Kersey", "AgriMet", 40.3875, -104.5619, 1410, nil,
		unitSet{"degC", "degF", "Percent", "KPa", "L", "mi", "mm"}},
	{intPtr(104), "Akron", "CoAgMet", 40.1603, -103.2144, 1384, floatPtr(2),
		unitSet{"f", "c", "%", "pa", "mj/m2", "km", "mm"}},
	{intPtr(105), "Yuma", "NOAA", 40.1222, -102.7252, 1259, floatPtr(10),
		unitSet{"C", "", "%", "kpa", "w/m-2", "m", ""}},
}

// dayValues are the canonical values of one day, shared by every station.
type dayValues struct {
	Tmin, Tmax, RHMin, RHMax, Dewpoint, EA, RS, WindSpeed, PrecipMM float64
}

func baseline(d int) dayValues {
	f := float64(d)
	return dayValues{
		Tmin:      8 + f,
		Tmax:      24 + f,
		RHMin:     25 + 2*f,
		RHMax:     85 - 2*f,
		Dewpoint:  5 + 0.5*f,
		EA:        0.9 + 0.05*f,
		RS:        22 + f,
		WindSpeed: 2.5 + 0.25*f,
		PrecipMM:  1.5 * f,
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/mock/stations.json", "output path for the station payload fixture")
	flag.Parse()

	payloads := make([]domain.StationPayload, 0, len(defs))
	for _, def := range defs {
		p, err := buildPayload(def)
		if err != nil {
			return fmt.Errorf("station %s: %w", def.name, err)
		}
		payloads = append(payloads, p)
	}

	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o600); err != nil {
		return err
	}
	log.Printf("wrote %d stations to %s", len(payloads), *out)
	return nil
}

func buildPayload(def stationDef) (domain.StationPayload, error) {
	p := domain.StationPayload{
		ID:         def.id,
		Name:       def.name,
		Source:     def.source,
		Latitude:   def.lat,
		Longitude:  def.lon,
		Elevation:  def.elevation,
		WindHeight: def.windHeight,
	}

	for d := range days {
		b := baseline(d)
		u := def.units
		var err error
		r := domain.ReadingPayload{Date: baseDate.AddDate(0, 0, d).Format(domain.DateLayout)}

		if r.Tmin, err = measure(b.Tmin, units.Celsius, u.temp); err != nil {
			return p, err
		}
		if r.Tmax, err = measure(b.Tmax, units.Celsius, u.temp); err != nil {
			return p, err
		}
		if r.RHMin, err = optional(b.RHMin, units.Percent, u.rh); err != nil {
			return p, err
		}
		if r.RHMax, err = optional(b.RHMax, units.Percent, u.rh); err != nil {
			return p, err
		}
		if r.Dewpoint, err = optional(b.Dewpoint, units.Celsius, u.dewpoint); err != nil {
			return p, err
		}
		if r.VaporPressure, err = optional(b.EA, units.KiloPascals, u.ea); err != nil {
			return p, err
		}
		if r.SolarRadiation, err = optional(b.RS, units.MegaJoulesPerSquareMeter, u.rs); err != nil {
			return p, err
		}
		if r.Precip, err = optional(b.PrecipMM, units.Millimeters, u.precip); err != nil {
			return p, err
		}
		if r.WindSpeed, err = windMeasure(b.WindSpeed, u.wind); err != nil {
			return p, err
		}
		p.Readings = append(p.Readings, r)
	}
	return p, nil
}

// measure expresses a canonical value in the unit named by abbr.
func measure(v float64, canonical units.Unit, abbr string) (domain.Measurement, error) {
	target, err := units.Parse(abbr)
	if err != nil {
		return domain.Measurement{}, err
	}
	if target != canonical {
		if v, err = units.Convert(v, canonical, target); err != nil {
			return domain.Measurement{}, err
		}
	}
	return domain.Measurement{Value: round(v), Unit: abbr}, nil
}

func optional(v float64, canonical units.Unit, abbr string) (*domain.Measurement, error) {
	if abbr == "" {
		return nil, nil
	}
	m, err := measure(v, canonical, abbr)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// windMeasure reports wind speed either as a speed or as a daily wind run in
// a length unit.
func windMeasure(ms float64, abbr string) (*domain.Measurement, error) {
	u, err := units.Parse(abbr)
	if err != nil {
		return nil, err
	}
	if u.Kind() == units.KindSpeed {
		return optional(ms, units.MetersPerSecond, abbr)
	}
	runKM := ms * 86.4
	if u == units.Kilometers {
		return &domain.Measurement{Value: round(runKM), Unit: abbr}, nil
	}
	return optional(runKM, units.Kilometers, abbr)
}

func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
