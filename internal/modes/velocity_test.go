package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeVelocitySubtype3Airspeed(t *testing.T) {
	me := make([]byte, 7)
	me[0] = 0b00010011 // TC=19 irrelevant here, subtype bits6-8=011=3
	// Heading-valid bit14=1, heading raw bits15-24.
	// byte1 bits9-16, byte2 bits17-24.
	me[1] = 0b00000100 // bit14=1 (6th bit of byte1: bits9..16)
	me[2] = 0b00000000
	me[3] = 0b10000000 // airspeed type bit25=1 (TAS), airspeed raw bits26-35
	v := decodeVelocity(me)

	assert.Equal(t, 3, v.Subtype)
	assert.True(t, v.HeadingValid)
	assert.Equal(t, "TAS", v.AirspeedType)
}

func TestGroundSpeedKnotsFalseWhenUnavailable(t *testing.T) {
	v := AirborneVelocity{Subtype: 1}
	_, ok := v.GroundSpeedKnots()
	assert.False(t, ok)

	_, ok = v.Track()
	assert.False(t, ok)
}
