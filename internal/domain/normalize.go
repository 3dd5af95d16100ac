package domain

// Normalize converts the reading into a canonical Record. Station context
// (latitude, elevation, wind height) is attached by Station.Normalize.
func (r DailyReading) Normalize() (Record, error) {
	rec := NewRecord()
	rec.SetDate(r.date)

	// A zero-value reading has no tmin/tmax entry; its empty unit fails here.
	tmin, err := policies[FieldTmin].canonicalize(FieldTmin, r.date, r.Tmin())
	if err != nil {
		return Record{}, err
	}
	tmax, err := policies[FieldTmax].canonicalize(FieldTmax, r.date, r.Tmax())
	if err != nil {
		return Record{}, err
	}
	rec.SetTmin(tmin)
	rec.SetTmax(tmax)

	optional := []struct {
		field Field
		set   func(*float64)
	}{
		{FieldDewpoint, rec.SetDewpoint},
		{FieldRHMin, rec.SetRHMin},
		{FieldRHMax, rec.SetRHMax},
		{FieldVaporPressure, rec.SetVaporPressure},
		{FieldSolarRadiation, rec.SetSolarRadiation},
		{FieldWindSpeed, rec.SetWindSpeed},
	}
	for _, o := range optional {
		v, ok, err := r.canonical(o.field)
		if err != nil {
			return Record{}, err
		}
		if ok {
			o.set(&v)
		}
	}

	return rec, nil
}

// canonical returns an optional field's value in its canonical unit and
// whether the field was reported.
func (r DailyReading) canonical(f Field) (float64, bool, error) {
	m, ok := r.measurements[f]
	if !ok {
		return 0, false, nil
	}
	v, err := policies[f].canonicalize(f, r.date, m)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}
