package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOperationalStatusVersionAndNIC(t *testing.T) {
	me := make([]byte, 7)
	// bits41-43 = ADS-B version, byte index (41-1)/8=5, within byte5 (bits41-48).
	me[5] = 0b00110000 // version bits41-43 = 001 = 1, NIC supplement A bit44 = 1
	v := decodeOperationalStatus(me)
	assert.Equal(t, 1, v.ADSBVersion)
	assert.True(t, v.NICSupplementA)
}

func TestHas1090ESInOnlyForAirborneSubtype(t *testing.T) {
	surface := OperationalStatus{Subtype: 1, CapabilityClass: 0xffff}
	assert.False(t, surface.Has1090ESIn())

	airborne := OperationalStatus{Subtype: 0, CapabilityClass: 1 << 6}
	assert.True(t, airborne.Has1090ESIn())
}
