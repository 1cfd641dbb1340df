package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointClamps(t *testing.T) {
	tests := []struct {
		name		string
		lat, lon, alt	float64
		wantLat		float64
		wantLon		float64
	}{
		{"in range", 48.8583, 2.2945, 35, 48.8583, 2.2945},
		{"north overflow", 100, 0, 0, 90, 0},
		{"south overflow", -91, 0, 0, -90, 0},
		{"east overflow", 0, 200, 0, 0, 180},
		{"west overflow", 0, -180.5, 0, 0, -180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoint(tt.lat, tt.lon, tt.alt)
			assert.Equal(t, tt.wantLat, p.Lat)
			assert.Equal(t, tt.wantLon, p.Lon)
			assert.Equal(t, tt.alt, p.Alt, "altitude is never clamped")
		})
	}
}

func TestPointArithmeticDoesNotReclamp(t *testing.T) {
	sum := NewPoint(80, 170, 0).Add(NewPoint(20, 20, 10))
	assert.Equal(t, Point{Lat: 100, Lon: 190, Alt: 10}, sum)

	diff := NewPoint(-80, -170, 5).Sub(NewPoint(20, 20, 10))
	assert.Equal(t, Point{Lat: -100, Lon: -190, Alt: -5}, diff)

	half := Point{Lat: 100, Lon: 190, Alt: 10}.Div(2)
	assert.Equal(t, Point{Lat: 50, Lon: 95, Alt: 5}, half)

	// Feeding the components back through the constructor clamps again.
	assert.Equal(t, NewPoint(90, 180, 10), NewPoint(sum.Lat, sum.Lon, sum.Alt))
}

func TestPointWithAltitude(t *testing.T) {
	p := NewPoint(1, 2, 3).WithAltitude(42)
	assert.Equal(t, NewPoint(1, 2, 42), p)
}

func TestPointEquality(t *testing.T) {
	assert.True(t, NewPoint(1, 2, 3) == NewPoint(1, 2, 3))
	assert.False(t, NewPoint(1, 2, 3) == NewPoint(1, 2, 4))
}

func TestPointDMS(t *testing.T) {
	tests := []struct {
		name	string
		p	Point
		wantLat	string
		wantLon	string
	}{
		{"paris", NewPoint(48.8583, 2.2945, 0), `48° 51' 30" N`, `2° 17' 40" E`},
		{"sydney", NewPoint(-33.8688, 151.2093, 0), `33° 52' 08" S`, `151° 12' 33" E`},
		{"origin", NewPoint(0, 0, 0), `0° 00' 00" N`, `0° 00' 00" E`},
		{"west", NewPoint(40.7128, -74.0060, 0), `40° 42' 46" N`, `74° 00' 22" W`},
		{"carry", NewPoint(0.999999, -0.999999, 0), `1° 00' 00" N`, `1° 00' 00" W`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLat, tt.p.LatDMS())
			assert.Equal(t, tt.wantLon, tt.p.LonDMS())
		})
	}
}

func TestParsePoint(t *testing.T) {
	got, err := ParsePoint("(1, 2)")
	require.NoError(t, err)
	assert.Equal(t, NewPoint(1, 2, 0), got, "altitude defaults to 0")

	got, err = ParsePoint("(1.2, 2.5, 350)")
	require.NoError(t, err)
	assert.Equal(t, NewPoint(1.2, 2.5, 350), got)

	got, err = ParsePoint("(-91, 200)")
	require.NoError(t, err)
	assert.Equal(t, NewPoint(-90, 180, 0), got, "parsed points clamp like constructed ones")
}

func TestParsePointFormatErrors(t *testing.T) {
	for _, input := range []string{
		"1, 2)",
		"(1)",
		"(1, 2, 3, 4)",
		"(1; 2)",
		"",
	} {
		_, err := ParsePoint(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrFormat, "input %q", input)
	}
}
