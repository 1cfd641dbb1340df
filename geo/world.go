package geo

import "fmt"

// WorldPosition is a point on the planar Mercator world. X and Z span the
// map plane, Y is height. The zero value is the origin.
type WorldPosition struct {
	X float64
	Y float64
	Z float64
}

// Add returns the componentwise sum.
func (w WorldPosition) Add(o WorldPosition) WorldPosition {
	return WorldPosition{X: w.X + o.X, Y: w.Y + o.Y, Z: w.Z + o.Z}
}

// Sub returns the componentwise difference.
func (w WorldPosition) Sub(o WorldPosition) WorldPosition {
	return WorldPosition{X: w.X - o.X, Y: w.Y - o.Y, Z: w.Z - o.Z}
}

// Mul scales all three components by s.
func (w WorldPosition) Mul(s float64) WorldPosition {
	return WorldPosition{X: w.X * s, Y: w.Y * s, Z: w.Z * s}
}

// Div divides all three components by s.
func (w WorldPosition) Div(s float64) WorldPosition {
	return WorldPosition{X: w.X / s, Y: w.Y / s, Z: w.Z / s}
}

func (w WorldPosition) String() string {
	return fmt.Sprintf("(%g, %g, %g)", w.X, w.Y, w.Z)
}
