package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDecodeMovementBoundaries(t *testing.T) {
	cases := []struct {
		code     int
		wantOK   bool
		wantKnot float64
	}{
		{0, false, 0},
		{1, true, 0},
		{2, true, 0},
		{8, true, 0.75},
		{124, true, 175},
		{125, false, 0},
		{127, false, 0},
	}
	for _, c := range cases {
		knots, ok := decodeMovement(c.code)
		assert.Equal(t, c.wantOK, ok, "code %d", c.code)
		if c.wantOK {
			assert.InDelta(t, c.wantKnot, knots, 0.01, "code %d", c.code)
		}
	}
}

func TestDecodeMovementMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(1, 123).Draw(rt, "a")
		b := rapid.IntRange(a, 124).Draw(rt, "b")
		ka, okA := decodeMovement(a)
		kb, okB := decodeMovement(b)
		if okA && okB {
			assert.LessOrEqual(t, ka, kb)
		}
	})
}

func TestSurfacePositionHeadingScale(t *testing.T) {
	me := make([]byte, 7)
	me[1] = 0b00001100 // bit13 (heading-valid) set, heading bits14-20 = 1000000 = 64
	sp := decodeSurfacePosition(me, 6)
	assert.True(t, sp.HeadingValid)
	assert.InDelta(t, 180.0, sp.Heading, 1e-9) // 64 * 360/128

}
