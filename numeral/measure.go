package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is a measurement unit supported by ConvertMeasure.
type Unit string

const (
	UnitPounds     Unit = "lbs"
	UnitKilograms  Unit = "kg"
	UnitMiles      Unit = "miles"
	UnitKilometers Unit = "km"
	UnitFeet       Unit = "feet"
	UnitMeters     Unit = "meters"
)

// ErrUnsupportedConversion is returned for unit pairs without a fixed
// conversion factor.
var ErrUnsupportedConversion = errors.New("unsupported conversion")

type unitPair struct {
	from, to Unit
}

var conversionFactors = map[unitPair]float64{
	{UnitPounds, UnitKilograms}:  0.453592,
	{UnitKilograms, UnitPounds}:  2.20462,
	{UnitMiles, UnitKilometers}:  1.60934,
	{UnitKilometers, UnitMiles}:  0.621371,
	{UnitFeet, UnitMeters}:       0.3048,
	{UnitMeters, UnitFeet}:       3.28084,
}

// AllUnits returns the supported unit set.
func AllUnits() []Unit {
	return []Unit{
		UnitPounds, UnitKilograms, UnitMiles, UnitKilometers,
		UnitFeet, UnitMeters,
	}
}

// ParseUnit maps a unit name to its Unit, case-insensitively.
func ParseUnit(name string) (Unit, bool) {
	u := Unit(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllUnits() {
		if u == known {
			return u, true
		}
	}
	return "", false
}

// ConvertMeasure converts value between units and formats the result to
// two decimal places, e.g. "5 lbs = 2.27 kg". Only the fixed pairs
// lbs/kg, miles/km, and feet/meters are supported.
func ConvertMeasure(value float64, from, to Unit) (string, error) {
	factor, ok := conversionFactors[unitPair{from, to}]
	if !ok {
		return "", fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	return fmt.Sprintf("%g %s = %.2f %s", value, from, value*factor, to), nil
}
