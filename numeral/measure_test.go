package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMeasure(t *testing.T) {
	tests := []struct {
		value    float64
		from, to Unit
		want     string
	}{
		{5, UnitPounds, UnitKilograms, "5 lbs = 2.27 kg"},
		{10, UnitKilograms, UnitPounds, "10 kg = 22.05 lbs"},
		{3, UnitMiles, UnitKilometers, "3 miles = 4.83 km"},
		{42, UnitKilometers, UnitMiles, "42 km = 26.10 miles"},
		{6, UnitFeet, UnitMeters, "6 feet = 1.83 meters"},
		{100, UnitMeters, UnitFeet, "100 meters = 328.08 feet"},
		{2.5, UnitPounds, UnitKilograms, "2.5 lbs = 1.13 kg"},
	}
	for _, tt := range tests {
		got, err := ConvertMeasure(tt.value, tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestConvertMeasureUnsupported(t *testing.T) {
	_, err := ConvertMeasure(1, UnitPounds, UnitMiles)
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
	_, err = ConvertMeasure(1, UnitPounds, UnitPounds)
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
	_, err = ConvertMeasure(1, Unit("stones"), UnitKilograms)
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestParseUnit(t *testing.T) {
	u, ok := ParseUnit("KG")
	require.True(t, ok)
	assert.Equal(t, UnitKilograms, u)

	u, ok = ParseUnit(" miles ")
	require.True(t, ok)
	assert.Equal(t, UnitMiles, u)

	_, ok = ParseUnit("furlongs")
	assert.False(t, ok)
}
