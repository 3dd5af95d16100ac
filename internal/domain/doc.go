// Package domain models daily weather station observations and their
// normalization into the canonical record consumed by RefET.
//
// # Data Source
//
// Upstream collectors publish one JSON document per station to the Kafka
// source topic (see [StationPayload]). Each value carries the unit the station
// recorded it in, e.g. {"value": 5, "unit": "mph"}. Unit strings are matched
// exactly against the abbreviation table in package units.
//
// # Validation
//
// Validation happens in two phases:
//
//	Construction ([NewDailyReading]): an optional value present with an empty
//	unit string is rejected. Recognizability is not checked yet.
//
//	Normalization ([DailyReading.Normalize]): each field's unit must parse and
//	belong to the field's accepted set. Every failure is a [*UnitError]
//	matching [ErrUnrecognizedUnit], carrying field, date and raw unit.
//
// # Canonical Units
//
//	tmin, tmax, dewpoint:  C, F            -> Celsius
//	rhmin, rhmax:          %               -> Percent
//	ea:                    kPa, Pa         -> KiloPascals
//	rs:                    MJ/m², W/m², L  -> MegaJoules/m²
//	wind_speed:            m/s, mph, and daily wind run in mi, m, km -> m/s
//	latitude:              degrees         -> radians
//
// Precipitation is validated but has no canonical field and is dropped.
//
// Daily wind run values (mi, m, km) are treated as totals over one day and
// divided by 86400 seconds.
package domain
