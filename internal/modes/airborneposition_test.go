package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirbornePositionNICTable(t *testing.T) {
	p9 := AirbornePosition{TypeCode: 9}
	assert.Equal(t, 0.05, p9.NIC(false))

	p11WithA := AirbornePosition{TypeCode: 11}
	assert.Equal(t, 0.2, p11WithA.NIC(true))

	p11NoA := AirbornePosition{TypeCode: 11}
	assert.Equal(t, 0.3, p11NoA.NIC(false))

	p18 := AirbornePosition{TypeCode: 18}
	assert.Equal(t, 0.0, p18.NIC(false))
}

func TestDecodeAirbornePositionFields(t *testing.T) {
	me := make([]byte, 7)
	me[0] = 0b00000010 // tc irrelevant, surveillance status bits6-7=01
	sp := decodeAirbornePosition(me, 11)
	assert.Equal(t, 11, sp.TypeCode)
	assert.Equal(t, 1, sp.SurveillanceStatus)
}
