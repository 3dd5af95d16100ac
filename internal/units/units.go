package units

import "slices"

// Unit is a physical unit recognized by the normalizer.
type Unit int

const (
	Celsius Unit = iota + 1
	Fahrenheit
	Millimeters
	Centimeters
	Meters
	Kilometers
	Inches
	Feet
	Yards
	Miles
	Langley
	MegaJoulesPerSquareMeter
	WattsPerSquareMeter
	Pascals
	KiloPascals
	Degrees
	Radians
	MetersPerSecond
	MilesPerHour
	Acres
	Hectares
	SquareFeet
	SquareMeters
	Percent
)

// Kind groups units by the physical quantity they measure.
type Kind string

const (
	KindTemperature Kind = "temperature"
	KindLength      Kind = "length"
	KindRadiation   Kind = "radiation"
	KindPressure    Kind = "pressure"
	KindAngle       Kind = "angle"
	KindSpeed       Kind = "speed"
	KindArea        Kind = "area"
	KindRatio       Kind = "ratio"
)

type unitInfo struct {
	abbreviation string
	name         string
	kind         Kind
}

var unitTable = map[Unit]unitInfo{
	Celsius:                  {"°C", "Celsius", KindTemperature},
	Fahrenheit:               {"°F", "Fahrenheit", KindTemperature},
	Millimeters:              {"mm", "Millimeters", KindLength},
	Centimeters:              {"cm", "Centimeters", KindLength},
	Meters:                   {"m", "Meters", KindLength},
	Kilometers:               {"km", "Kilometers", KindLength},
	Inches:                   {"in", "Inches", KindLength},
	Feet:                     {"ft", "Feet", KindLength},
	Yards:                    {"yd", "Yards", KindLength},
	Miles:                    {"mi", "Miles", KindLength},
	Langley:                  {"L", "Langley", KindRadiation},
	MegaJoulesPerSquareMeter: {"MJ/m²", "MegaJoules/Meter²", KindRadiation},
	WattsPerSquareMeter:      {"W/m²", "Watts", KindRadiation},
	Pascals:                  {"Pa", "Pascals", KindPressure},
	KiloPascals:              {"kPa", "KiloPascals", KindPressure},
	Degrees:                  {"°", "Degrees", KindAngle},
	Radians:                  {"rad", "Radians", KindAngle},
	MetersPerSecond:          {"m/s", "Meters/Second", KindSpeed},
	MilesPerHour:             {"mph", "Miles/Hour", KindSpeed},
	Acres:                    {"acres", "Acres", KindArea},
	Hectares:                 {"ha", "Hectares", KindArea},
	SquareFeet:               {"ft²", "Square Feet", KindArea},
	SquareMeters:             {"m²", "Square Meters", KindArea},
	Percent:                  {"%", "Percent", KindRatio},
}

// abbreviations maps every accepted input spelling to its unit. Matching is
// exact: supporting a new spelling means adding an entry here.
var abbreviations = map[string]Unit{
	"°C":   Celsius,
	"C":    Celsius,
	"c":    Celsius,
	"degC": Celsius,
	"°F":   Fahrenheit,
	"F":    Fahrenheit,
	"f":    Fahrenheit,
	"degF": Fahrenheit,

	"mm": Millimeters,
	"cm": Centimeters,
	"m":  Meters,
	"km": Kilometers,
	"KM": Kilometers,
	"in": Inches,
	"ft": Feet,
	"yd": Yards,
	"mi": Miles,

	"L":      Langley,
	"MJ/m²":  MegaJoulesPerSquareMeter,
	"mj/m²":  MegaJoulesPerSquareMeter,
	"mj/m2":  MegaJoulesPerSquareMeter,
	"mj/m^2": MegaJoulesPerSquareMeter,
	"mJ/m^2": MegaJoulesPerSquareMeter,
	"W/m²":   WattsPerSquareMeter,
	"w/m²":   WattsPerSquareMeter,
	"W/m-2":  WattsPerSquareMeter,
	"w/m-2":  WattsPerSquareMeter,

	"Pa":  Pascals,
	"pa":  Pascals,
	"kpa": KiloPascals,
	"kPa": KiloPascals,
	"KPA": KiloPascals,
	"KPa": KiloPascals,

	"°":   Degrees,
	"deg": Degrees,
	"rad": Radians,

	"m/s": MetersPerSecond,
	"mph": MilesPerHour,

	"acres": Acres,
	"ha":    Hectares,
	"ft²":   SquareFeet,
	"sq ft": SquareFeet,
	"ft2":   SquareFeet,
	"m²":    SquareMeters,
	"sq m":  SquareMeters,
	"m2":    SquareMeters,

	"%":       Percent,
	"percent": Percent,
	"Percent": Percent,
}

// Parse resolves an abbreviation to its Unit.
func Parse(abbreviation string) (Unit, error) {
	u, ok := abbreviations[abbreviation]
	if !ok {
		return 0, &UnrecognizedError{Abbreviation: abbreviation}
	}
	return u, nil
}

// Abbreviation returns the canonical display abbreviation, e.g. "°C".
func (u Unit) Abbreviation() string {
	return unitTable[u].abbreviation
}

// String returns the human-readable unit name.
func (u Unit) String() string {
	if info, ok := unitTable[u]; ok {
		return info.name
	}
	return "Unknown"
}

// Kind returns the quantity kind, or "" for an invalid unit.
func (u Unit) Kind() Kind {
	return unitTable[u].kind
}

// Valid reports whether u is a member of the enumeration.
func (u Unit) Valid() bool {
	_, ok := unitTable[u]
	return ok
}

// All returns every unit in declaration order.
func All() []Unit {
	out := make([]Unit, 0, len(unitTable))
	for u := Celsius; u <= Percent; u++ {
		out = append(out, u)
	}
	return out
}

// Abbreviations returns the accepted input spellings for u, sorted.
func Abbreviations(u Unit) []string {
	var out []string
	for abbr, v := range abbreviations {
		if v == u {
			out = append(out, abbr)
		}
	}
	slices.Sort(out)
	return out
}
