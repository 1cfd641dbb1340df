package tile

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/LGK-Productions/LgkProductions.Geo/geo"
)

// ID identifies one tile in the pyramid by grid coordinate and zoom level.
// Out-of-range IDs can be constructed freely; Inbounds reports whether the
// coordinate actually exists at the zoom level.
type ID struct {
	Coord Coordinate
	Zoom  int
}

// NewID builds a tile ID from x, y and zoom.
func NewID(x, y, zoom int) ID {
	return ID{Coord: Coordinate{X: x, Y: y}, Zoom: zoom}
}

// SubTile returns the top-left-most descendant dz levels deeper.
func (t ID) SubTile(dz int) ID {
	return ID{Coord: t.Coord.ShiftLeft(dz), Zoom: t.Zoom + dz}
}

// SubTiles returns the full 2^dz × 2^dz block of descendants dz levels
// deeper as a lazy sequence, row-major from the top-left. Each call yields
// an independent, restartable iteration.
func (t ID) SubTiles(dz int) iter.Seq[ID] {
	anchor := t.SubTile(dz)
	n := 1 << dz
	return func(yield func(ID) bool) {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				sub := ID{Coord: anchor.Coord.Add(Coordinate{X: x, Y: y}), Zoom: anchor.Zoom}
				if !yield(sub) {
					return
				}
			}
		}
	}
}

// Parent returns the ancestor dz levels shallower. A negative dz counts as
// its absolute value; Parent(0) is the identity. The zoom is not validated
// against underflow.
func (t ID) Parent(dz int) ID {
	dz = abs(dz)
	return ID{Coord: t.Coord.ShiftRight(dz), Zoom: t.Zoom - dz}
}

// Neighbour returns the tile offset by dir at the same zoom, without
// checking bounds.
func (t ID) Neighbour(dir Coordinate) ID {
	return ID{Coord: t.Coord.Add(dir), Zoom: t.Zoom}
}

// IsNeighbourOf reports whether t and other touch across exactly one edge
// once their zoom levels are aligned, and returns the direction from t
// toward other. Diagonal contact does not count, and neither does a tile
// that merely sits next to a sibling inside the same aligned parent: the
// step toward other has to cross the parent's edge.
func (t ID) IsNeighbourOf(other ID) (Coordinate, bool) {
	if t.Zoom < other.Zoom {
		dir, ok := other.IsNeighbourOf(t)
		return dir.Neg(), ok
	}
	dz := t.Zoom - other.Zoom
	aligned := t.Parent(dz)
	delta := other.Coord.Sub(aligned.Coord)
	if abs(delta.X)+abs(delta.Y) != 1 {
		return Coordinate{}, false
	}
	if t.Neighbour(delta).Parent(dz).Coord == aligned.Coord {
		return Coordinate{}, false
	}
	return delta, true
}

// IsCoveredBy reports whether other is t itself or one of its ancestors.
func (t ID) IsCoveredBy(other ID) bool {
	if other.Zoom > t.Zoom {
		return false
	}
	return t.Coord.ShiftRight(t.Zoom-other.Zoom) == other.Coord
}

// Inbounds reports whether the coordinates exist at the zoom level: zoom z
// has 2^z tiles per axis, so 0 <= x,y < 2^z.
func (t ID) Inbounds() bool {
	if t.Zoom < 0 {
		return false
	}
	n := 1 << t.Zoom
	return t.Coord.X >= 0 && t.Coord.X < n && t.Coord.Y >= 0 && t.Coord.Y < n
}

// QuadKey encodes the path from the root down to t as one base-4 digit per
// zoom level. The root tile has no path, so zoom 0 is a domain error.
func (t ID) QuadKey() (string, error) {
	if t.Zoom == 0 {
		return "", errors.Wrap(geo.ErrDomain, "quadkey of the zoom-0 root tile")
	}
	var key strings.Builder
	for i := t.Zoom; i > 0; i-- {
		digit := byte('0')
		mask := 1 << (i - 1)
		if t.Coord.X&mask != 0 {
			digit++
		}
		if t.Coord.Y&mask != 0 {
			digit += 2
		}
		key.WriteByte(digit)
	}
	return key.String(), nil
}

// FromQuadKey decodes a base-4 quadkey back into the tile it addresses.
func FromQuadKey(key string) (ID, error) {
	if key == "" {
		return ID{}, errors.Wrap(geo.ErrFormat, "empty quadkey")
	}
	var c Coordinate
	for i := 0; i < len(key); i++ {
		d := key[i] - '0'
		if d > 3 {
			return ID{}, errors.Wrapf(geo.ErrFormat, "quadkey %q", key)
		}
		c = c.ShiftLeft(1).Add(Coordinate{X: int(d & 1), Y: int(d >> 1)})
	}
	return ID{Coord: c, Zoom: len(key)}, nil
}

// String renders the canonical "{zoom}_{x}_{y}" form.
func (t ID) String() string {
	return fmt.Sprintf("%d_%d_%d", t.Zoom, t.Coord.X, t.Coord.Y)
}

// ParseID parses the canonical "{zoom}_{x}_{y}" form produced by String.
// Anything that does not split into exactly three integer fields is a
// format error.
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return ID{}, errors.Wrapf(geo.ErrFormat, "tile id %q", s)
	}
	fields := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return ID{}, errors.Wrapf(geo.ErrFormat, "tile id %q", s)
		}
		fields[i] = v
	}
	return NewID(fields[1], fields[2], fields[0]), nil
}

var idTupleRe = regexp.MustCompile(`^\(\s*(-?[0-9]+)\s*,\s*(-?[0-9]+)\s*,\s*(-?[0-9]+)\s*\)$`)

// ParseIDTuple parses the legacy "(x, y, zoom)" tuple form. It exists only
// as a compatibility adapter at the text boundary; String and ParseID are
// the canonical pair.
func ParseIDTuple(s string) (ID, error) {
	m := idTupleRe.FindStringSubmatch(s)
	if m == nil {
		return ID{}, errors.Wrapf(geo.ErrFormat, "tile tuple %q", s)
	}
	x, _ := strconv.Atoi(m[1])
	y, _ := strconv.Atoi(m[2])
	zoom, _ := strconv.Atoi(m[3])
	return NewID(x, y, zoom), nil
}
