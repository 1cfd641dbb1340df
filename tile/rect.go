package tile

import (
	"fmt"
	"iter"
)

// Rect is an inclusive rectangle of tiles at a single zoom level.
type Rect struct {
	Min  Coordinate
	Max  Coordinate
	Zoom int
}

// NewRect builds the rectangle spanned by two opposite corners, given in
// either order.
func NewRect(a, b Coordinate, zoom int) Rect {
	if b.X < a.X {
		a.X, b.X = b.X, a.X
	}
	if b.Y < a.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{Min: a, Max: b, Zoom: zoom}
}

// Cols returns the number of tile columns in the rectangle.
func (r Rect) Cols() int {
	return r.Max.X - r.Min.X + 1
}

// Rows returns the number of tile rows in the rectangle.
func (r Rect) Rows() int {
	return r.Max.Y - r.Min.Y + 1
}

// Count returns the number of tiles covered.
func (r Rect) Count() int {
	return r.Cols() * r.Rows()
}

// Contains reports whether the coordinate lies inside the rectangle.
func (r Rect) Contains(c Coordinate) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Tiles enumerates the rectangle lazily, row-major from the north-west
// corner. Each call yields an independent, restartable iteration.
func (r Rect) Tiles() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				if !yield(ID{Coord: Coordinate{X: x, Y: y}, Zoom: r.Zoom}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%d_%d_%d to %d_%d_%d", r.Zoom, r.Min.X, r.Min.Y, r.Zoom, r.Max.X, r.Max.Y)
}
