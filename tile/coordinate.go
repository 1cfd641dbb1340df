// Package tile implements the quadtree tile pyramid used by slippy-map
// tile services: zoom 0 is a single tile covering the world and every
// deeper zoom level quadruples the tile count. X grows eastward, Y grows
// southward, (0,0) is the north-west corner tile.
package tile

import "fmt"

// Coordinate is an integer vector on the tile grid.
type Coordinate struct {
	X int
	Y int
}

// Direction constants on the tile grid; Y increases southward.
var (
	One   = Coordinate{X: 1, Y: 1}
	Up    = Coordinate{X: 0, Y: -1}
	Down  = Coordinate{X: 0, Y: 1}
	Left  = Coordinate{X: -1, Y: 0}
	Right = Coordinate{X: 1, Y: 0}
)

// Add returns the componentwise sum.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the componentwise difference.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg negates both components.
func (c Coordinate) Neg() Coordinate {
	return Coordinate{X: -c.X, Y: -c.Y}
}

// Mul scales both components by s.
func (c Coordinate) Mul(s int) Coordinate {
	return Coordinate{X: c.X * s, Y: c.Y * s}
}

// Div divides both components by s using native integer division.
func (c Coordinate) Div(s int) Coordinate {
	return Coordinate{X: c.X / s, Y: c.Y / s}
}

// ShiftLeft multiplies both components by 2^d.
func (c Coordinate) ShiftLeft(d int) Coordinate {
	return Coordinate{X: c.X << d, Y: c.Y << d}
}

// ShiftRight divides both components by 2^d, flooring toward negative
// infinity. Native integer division rounds toward zero instead and breaks
// parent-tile math for negative coordinates; zoom scaling must always go
// through the shifts.
func (c Coordinate) ShiftRight(d int) Coordinate {
	return Coordinate{X: c.X >> d, Y: c.Y >> d}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
