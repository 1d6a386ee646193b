package bds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCallsign(t *testing.T) {
	// Selector byte 0x20 followed by "GNH2015 " packed as eight 6-bit
	// characters (the encoding BDS 2,0 actually shares with the
	// Identification squitter's callsign field).
	p := [7]byte{0x20, 0x1c, 0xe2, 0x32, 0xc3, 0x1d, 0x60}
	cs := DecodeCallsign(p)
	assert.Equal(t, "GNH2015 ", cs.Callsign)
}

func TestDecodeActiveRAModeSThreat(t *testing.T) {
	var payload [7]byte
	raw := []byte{0x30, 0x00, 0x80, 0x30, 0xA8, 0x00, 0x00}
	copy(payload[:], raw)

	ra, err := DecodeActiveRA(payload)
	assert.NoError(t, err)
	assert.Equal(t, ThreatModeS, ra.ThreatType)
	assert.Equal(t, "Mode-S address", ra.ThreatType.String())
	assert.True(t, ra.HasRA())
	assert.False(t, ra.Terminated)
	assert.Equal(t, uint32(0xA80000), ra.ThreatAddress)
}

func TestDecodeActiveRANoThreat(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x30
	ra, err := DecodeActiveRA(payload)
	assert.NoError(t, err)
	assert.Equal(t, ThreatNone, ra.ThreatType)
	assert.False(t, ra.HasRA())
}

func TestDecodeActiveRAReservedThreatType(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x30
	// Bits 17 and 18 both set: Mode-S-threat flag and bearing-valid flag
	// together name the reserved threat-identity type 3.
	payload[1] = 0x00
	payload[2] = 0xC0

	_, err := DecodeActiveRA(payload)
	assert.Error(t, err)
	var bf *BadFormat
	assert.ErrorAs(t, err, &bf)
}

func TestDecodeDataLinkCapability(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x10
	// bits 9-14 data link layer cap, bit 11 ACAS operational = 1, rest zero,
	// subnetwork version 1, uplink ELM 3, downlink ELM 4.
	payload[1] = 0x20           // bit 11 = 1 (ACAS operational)
	payload[3] = byte(1)        // subnetwork version bits 25-32 = 1
	payload[4] = byte(3<<3) | 4 // uplink ELM bits 35-37 = 3, downlink ELM bits 38-40 = 4

	dlc, err := DecodeDataLinkCapability(payload)
	assert.NoError(t, err)
	assert.True(t, dlc.ACASOperational)
	assert.Equal(t, 1, dlc.SubnetworkVersion)
	assert.Equal(t, 3, dlc.UplinkELMThroughput)
	assert.Equal(t, 4, dlc.DownlinkELMCapability)
}

func TestDecodeDataLinkCapabilityReservedSubnetworkVersion(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x10
	payload[3] = byte(3) // subnetwork version bits 25-32 = 3 (reserved)

	_, err := DecodeDataLinkCapability(payload)
	assert.Error(t, err)
	var bf *BadFormat
	assert.ErrorAs(t, err, &bf)
}

func TestDecodeDataLinkCapabilityReservedUplinkELM(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x10
	payload[4] = byte(7 << 3) // uplink ELM bits 35-37 = 7 (reserved)

	_, err := DecodeDataLinkCapability(payload)
	assert.Error(t, err)
	var bf *BadFormat
	assert.ErrorAs(t, err, &bf)
}

func TestDecodeDataLinkCapabilityReservedDownlinkELM(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x10
	payload[4] = byte(7) // downlink ELM bits 38-40 = 7 (reserved)

	_, err := DecodeDataLinkCapability(payload)
	assert.Error(t, err)
	var bf *BadFormat
	assert.ErrorAs(t, err, &bf)
}

func TestDetectSelector(t *testing.T) {
	var payload [7]byte
	payload[0] = 0x20
	assert.Equal(t, Selector20, DetectSelector(payload))
}
