// Package units enumerates the physical units that weather stations report in
// and converts values between them.
//
// # Abbreviations
//
// Upstream station feeds label values with free-form unit strings. [Parse]
// accepts a fixed set of spellings per unit, matched exactly with no trimming
// or case folding:
//
//	temperature  °C C c degC | °F F f degF
//	length       mm cm m km KM in ft yd mi
//	radiation    L | MJ/m² mj/m² mj/m2 mj/m^2 mJ/m^2 | W/m² w/m² W/m-2 w/m-2
//	pressure     Pa pa | kpa kPa KPA KPa
//	angle        ° deg | rad
//	speed        m/s | mph
//	area         acres ha ft² "sq ft" ft2 m² "sq m" m2
//	ratio        % percent Percent
//
// # Conversions
//
// [Convert] looks up a single directed (from, to) entry. There is no chaining
// through intermediate units and no identity entry, so Convert(v, Celsius,
// Celsius) fails. Callers that may already hold the target unit check for it
// first.
//
// Miles, Meters and Kilometers convert to MetersPerSecond as daily wind run:
// the distance is assumed to be the total travelled in one day and is divided
// by 86400 seconds.
package units
