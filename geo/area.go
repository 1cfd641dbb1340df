package geo

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/pkg/errors"
)

// Area is an axis-aligned rectangle on the globe, held as independent
// latitude and longitude bounds. Lat.Min is the southern edge, Lat.Max the
// northern; Lon.Min is the western edge, Lon.Max the eastern.
type Area struct {
	Lat Bounds[float64]
	Lon Bounds[float64]
}

// NewArea builds the rectangle spanned by two opposite corner points, in
// any order; the bounds normalize themselves.
func NewArea(a, b Point) Area {
	return Area{
		Lat: NewBounds(a.Lat, b.Lat),
		Lon: NewBounds(a.Lon, b.Lon),
	}
}

// MidPoint returns the center of the area at altitude zero.
func (a Area) MidPoint() Point {
	return NewPoint(a.Lat.Min+a.Lat.Size()/2, a.Lon.Min+a.Lon.Size()/2, 0)
}

// NorthEast returns the (latMax, lonMax) corner.
func (a Area) NorthEast() Point { return NewPoint(a.Lat.Max, a.Lon.Max, 0) }

// NorthWest returns the (latMax, lonMin) corner.
func (a Area) NorthWest() Point { return NewPoint(a.Lat.Max, a.Lon.Min, 0) }

// SouthEast returns the (latMin, lonMax) corner.
func (a Area) SouthEast() Point { return NewPoint(a.Lat.Min, a.Lon.Max, 0) }

// SouthWest returns the (latMin, lonMin) corner.
func (a Area) SouthWest() Point { return NewPoint(a.Lat.Min, a.Lon.Min, 0) }

// Corners returns the four corners in NE, NW, SE, SW order.
func (a Area) Corners() [4]Point {
	return [4]Point{a.NorthEast(), a.NorthWest(), a.SouthEast(), a.SouthWest()}
}

// Contains reports whether the point lies inside the area, edges included.
func (a Area) Contains(p Point) bool {
	return a.Lat.Contains(p.Lat) && a.Lon.Contains(p.Lon)
}

// ContainsArea reports whether other lies entirely inside a. An area
// contains itself.
func (a Area) ContainsArea(other Area) bool {
	return a.Lat.ContainsBounds(other.Lat) && a.Lon.ContainsBounds(other.Lon)
}

// Intersects reports whether the two areas overlap on both axes. Areas
// that only share an edge do not intersect.
func (a Area) Intersects(other Area) bool {
	return a.Lat.Overlaps(other.Lat) && a.Lon.Overlaps(other.Lon)
}

// ClosestPoint clamps p componentwise into the area, keeping its altitude.
func (a Area) ClosestPoint(p Point) Point {
	return NewPoint(a.Lat.Clamp(p.Lat), a.Lon.Clamp(p.Lon), p.Alt)
}

// PointGrid returns a lazy resolution×resolution grid of evenly spaced
// points covering the area, inclusive of all four edges and iterated
// row-major from the south-west. A resolution below 2 has no defined step
// and is a domain error.
func (a Area) PointGrid(resolution int) (iter.Seq[Point], error) {
	if resolution < 2 {
		return nil, errors.Wrapf(ErrDomain, "point grid resolution %d", resolution)
	}
	latStep := a.Lat.Size() / float64(resolution-1)
	lonStep := a.Lon.Size() / float64(resolution-1)
	return func(yield func(Point) bool) {
		for i := 0; i < resolution; i++ {
			for j := 0; j < resolution; j++ {
				p := NewPoint(a.Lat.Min+float64(i)*latStep, a.Lon.Min+float64(j)*lonStep, 0)
				if !yield(p) {
					return
				}
			}
		}
	}, nil
}

func (a Area) String() string {
	return fmt.Sprintf("(%s, %s)", a.SouthWest(), a.NorthEast())
}

var areaRe = regexp.MustCompile(`^\(\s*(\([^()]*\))\s*,\s*(\([^()]*\))\s*\)$`)

// ParseArea parses the nested "((lat, lon), (lat, lon))" form. Corner
// order does not matter.
func ParseArea(s string) (Area, error) {
	m := areaRe.FindStringSubmatch(s)
	if m == nil {
		return Area{}, errors.Wrapf(ErrFormat, "area %q", s)
	}
	first, err := ParsePoint(m[1])
	if err != nil {
		return Area{}, err
	}
	second, err := ParsePoint(m[2])
	if err != nil {
		return Area{}, err
	}
	return NewArea(first, second), nil
}
