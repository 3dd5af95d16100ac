package domain

// Measurement is a raw magnitude paired with the unit string it was recorded in.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Observations holds the optional measurements of a station-day. A nil field
// means the station did not report that quantity.
type Observations struct {
	RHMin          *Measurement
	RHMax          *Measurement
	Dewpoint       *Measurement
	Precip         *Measurement
	SolarRadiation *Measurement
	VaporPressure  *Measurement
	WindSpeed      *Measurement
}

// Field identifies one quantity of a daily reading.
type Field int

const (
	FieldTmin Field = iota + 1
	FieldTmax
	FieldRHMin
	FieldRHMax
	FieldDewpoint
	FieldPrecip
	FieldSolarRadiation
	FieldVaporPressure
	FieldWindSpeed
)

var fieldLabels = map[Field]struct {
	key      string
	quantity string
}{
	FieldTmin:           {"tmin", "Minimum temperature"},
	FieldTmax:           {"tmax", "Maximum temperature"},
	FieldRHMin:          {"rhmin", "Relative humidity min"},
	FieldRHMax:          {"rhmax", "Relative humidity max"},
	FieldDewpoint:       {"dewpoint", "Dewpoint"},
	FieldPrecip:         {"precip", "Precipitation"},
	FieldSolarRadiation: {"rs", "Solar radiation"},
	FieldVaporPressure:  {"ea", "Vapor pressure"},
	FieldWindSpeed:      {"wind_speed", "Wind speed"},
}

// String returns the short field key used in payloads, logs and metrics.
func (f Field) String() string {
	if l, ok := fieldLabels[f]; ok {
		return l.key
	}
	return "unknown"
}

// Quantity returns the human-readable quantity name, e.g. "Vapor pressure".
func (f Field) Quantity() string {
	if l, ok := fieldLabels[f]; ok {
		return l.quantity
	}
	return "Unknown quantity"
}

// optionalFields lists the optional fields in validation order.
var optionalFields = []Field{
	FieldRHMin,
	FieldRHMax,
	FieldDewpoint,
	FieldPrecip,
	FieldSolarRadiation,
	FieldVaporPressure,
	FieldWindSpeed,
}

func (o Observations) get(f Field) *Measurement {
	switch f {
	case FieldRHMin:
		return o.RHMin
	case FieldRHMax:
		return o.RHMax
	case FieldDewpoint:
		return o.Dewpoint
	case FieldPrecip:
		return o.Precip
	case FieldSolarRadiation:
		return o.SolarRadiation
	case FieldVaporPressure:
		return o.VaporPressure
	case FieldWindSpeed:
		return o.WindSpeed
	default:
		return nil
	}
}

// Fields returns every field in payload order.
func Fields() []Field {
	return []Field{
		FieldTmin,
		FieldTmax,
		FieldRHMin,
		FieldRHMax,
		FieldDewpoint,
		FieldPrecip,
		FieldSolarRadiation,
		FieldVaporPressure,
		FieldWindSpeed,
	}
}
