package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorldPositionArithmetic(t *testing.T) {
	a := WorldPosition{X: 1, Y: 2, Z: 3}
	b := WorldPosition{X: 4, Y: 5, Z: 6}

	assert.Equal(t, WorldPosition{X: 5, Y: 7, Z: 9}, a.Add(b))
	assert.Equal(t, WorldPosition{X: 3, Y: 3, Z: 3}, b.Sub(a))
	assert.Equal(t, WorldPosition{X: 2, Y: 4, Z: 6}, a.Mul(2))
	assert.Equal(t, WorldPosition{X: 2, Y: 2.5, Z: 3}, b.Div(2))
}

func TestWorldPositionZeroValue(t *testing.T) {
	var zero WorldPosition
	a := WorldPosition{X: 1, Y: 2, Z: 3}
	assert.Equal(t, a, a.Add(zero), "the zero value is the origin")
}
