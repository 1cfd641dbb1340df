package geo

import (
	"fmt"
	"math"
	"regexp"

	"github.com/pkg/errors"
)

// Valid coordinate ranges on the globe.
var (
	LatitudeBounds  = Bounds[float64]{Min: -90, Max: 90}
	LongitudeBounds = Bounds[float64]{Min: -180, Max: 180}
)

// Point is a geographic coordinate: latitude and longitude in degrees,
// altitude in meters. Points compare with ==.
type Point struct {
	Lat float64
	Lon float64
	Alt float64
}

// NewPoint builds a Point, clamping latitude into [-90, 90] and longitude
// into [-180, 180]. Out-of-range input is silently normalized, never
// rejected. Altitude is unrestricted.
func NewPoint(lat, lon, alt float64) Point {
	return Point{
		Lat: LatitudeBounds.Clamp(lat),
		Lon: LongitudeBounds.Clamp(lon),
		Alt: alt,
	}
}

// Add combines the points componentwise, altitude included. The result is
// not re-clamped; chained arithmetic may leave the canonical ranges until
// fed back through NewPoint.
func (p Point) Add(o Point) Point {
	return Point{Lat: p.Lat + o.Lat, Lon: p.Lon + o.Lon, Alt: p.Alt + o.Alt}
}

// Sub subtracts o componentwise without re-clamping.
func (p Point) Sub(o Point) Point {
	return Point{Lat: p.Lat - o.Lat, Lon: p.Lon - o.Lon, Alt: p.Alt - o.Alt}
}

// Div divides all three components by s without re-clamping.
func (p Point) Div(s float64) Point {
	return Point{Lat: p.Lat / s, Lon: p.Lon / s, Alt: p.Alt / s}
}

// WithAltitude returns a copy of p at the given altitude.
func (p Point) WithAltitude(alt float64) Point {
	return Point{Lat: p.Lat, Lon: p.Lon, Alt: alt}
}

// LatDMS renders the latitude as degrees, minutes and seconds with an N/S
// hemisphere suffix.
func (p Point) LatDMS() string {
	return degreesToDMS(p.Lat, 'N', 'S')
}

// LonDMS renders the longitude as degrees, minutes and seconds with an E/W
// hemisphere suffix.
func (p Point) LonDMS() string {
	return degreesToDMS(p.Lon, 'E', 'W')
}

// degreesToDMS formats the absolute angle as whole degrees, whole minutes
// and rounded seconds. Rounding happens on the total seconds so a value
// just below a full minute carries over instead of printing 60".
func degreesToDMS(deg float64, positive, negative byte) string {
	hemisphere := positive
	if deg < 0 {
		hemisphere = negative
	}
	total := int(math.Round(math.Abs(deg) * 3600))
	d := total / 3600
	m := total / 60 % 60
	s := total % 60
	return fmt.Sprintf("%d° %02d' %02d\" %c", d, m, s, hemisphere)
}

func (p Point) String() string {
	if p.Alt == 0 {
		return fmt.Sprintf("(%g, %g)", p.Lat, p.Lon)
	}
	return fmt.Sprintf("(%g, %g, %g)", p.Lat, p.Lon, p.Alt)
}

var pointRe = regexp.MustCompile(`^\(\s*(` + numberPattern + `)\s*,\s*(` + numberPattern + `)(?:\s*,\s*(` + numberPattern + `))?\s*\)$`)

// ParsePoint parses "(lat, lon)" or "(lat, lon, alt)"; the altitude
// defaults to 0. The result is clamped like any constructed Point.
func ParsePoint(s string) (Point, error) {
	m := pointRe.FindStringSubmatch(s)
	if m == nil {
		return Point{}, errors.Wrapf(ErrFormat, "point %q", s)
	}
	lat, err := parseNumber[float64](m[1])
	if err != nil {
		return Point{}, err
	}
	lon, err := parseNumber[float64](m[2])
	if err != nil {
		return Point{}, err
	}
	alt := 0.0
	if m[3] != "" {
		if alt, err = parseNumber[float64](m[3]); err != nil {
			return Point{}, err
		}
	}
	return NewPoint(lat, lon, alt), nil
}
