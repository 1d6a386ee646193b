package bds

import (
	"github.com/openskynetwork/go-modes/internal/altitude"
	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// ThreatType identifies what kind of identity data the TID field of a
// BDS 3,0 register carries.
type ThreatType int

const (
	ThreatNone ThreatType = iota
	ThreatModeS
	ThreatBearingRangeAltitude
	threatReserved
)

func (t ThreatType) String() string {
	switch t {
	case ThreatNone:
		return "none"
	case ThreatModeS:
		return "Mode-S address"
	case ThreatBearingRangeAltitude:
		return "bearing/range/altitude"
	default:
		return "reserved"
	}
}

// ActiveRA is BDS 3,0: the ACAS active resolution advisory register,
// broadcast by a transponder while ACAS II is currently issuing an RA to
// its own flight crew.
//
// The register's own threat-identity sub-field changes shape depending
// on the threat type it carries (a Mode S address identifying the
// intruder, versus that intruder's bearing/range/altitude when no Mode S
// address is available) so both raw bits and the decoded interpretation
// are exposed.
type ActiveRA struct {
	ActiveRABits uint32 // raw 7-bit active RA indicator (vertical/turn advisories in force)

	ThreatType ThreatType
	RAC        uint8 // RA complement: no-pass-below/above, no-turn-left/right, one bit each
	Terminated bool  // RA has ceased being displayed to the crew
	Multiple   bool  // multiple-threat encounter

	// Valid when ThreatType == ThreatModeS.
	ThreatAddress uint32

	// Valid when ThreatType == ThreatBearingRangeAltitude.
	ThreatAltitudeFeet int
	ThreatAltitudeOK   bool
	ThreatRangeNM      float64
	ThreatBearingDeg   float64
}

// DecodeActiveRA parses a raw BDS 3,0 payload (byte 0 is the BDS
// selector 0x30 and is skipped). It fails with BadFormat when both the
// Mode-S-threat and bearing-valid flags are set, since that combination
// names threat-identity type 3, which DO-260B reserves.
func DecodeActiveRA(payload [7]byte) (ActiveRA, error) {
	b := payload[:]

	ra := ActiveRA{
		ActiveRABits: bitfield.Bits(b, 9, 15),
		RAC:          uint8(bitfield.Bits(b, 19, 22)),
		Terminated:   bitfield.Bit(b, 23) == 1,
		Multiple:     bitfield.Bit(b, 24) == 1,
	}

	modeS := bitfield.Bit(b, 17) == 1
	bearing := bitfield.Bit(b, 18) == 1
	switch {
	case modeS && !bearing:
		ra.ThreatType = ThreatModeS
		ra.ThreatAddress = bitfield.Bits(b, 33, 56)
	case bearing && !modeS:
		ra.ThreatType = ThreatBearingRangeAltitude
		tid := bitfield.Bits(b, 25, 56)
		altCode := (tid >> 19) & 0x1fff // 13 bits
		rangeCode := (tid >> 12) & 0x7f // 7 bits
		bearingCode := (tid >> 6) & 0x3f // 6 bits
		ra.ThreatAltitudeFeet, ra.ThreatAltitudeOK = altitude.DecodeAC13Field(altCode)
		ra.ThreatRangeNM = decodeThreatRange(rangeCode)
		ra.ThreatBearingDeg = decodeThreatBearing(bearingCode)
	case modeS && bearing:
		return ActiveRA{}, badFormat("reserved threat-identity type 3 (both Mode-S and bearing flags set)")
	default:
		ra.ThreatType = ThreatNone
	}

	return ra, nil
}

// HasRA reports whether an active RA is currently in force: either the
// active-RA bits name a vertical/turn sense, a threat has been
// identified, or an RA complement restricts the crew's maneuver.
func (ra ActiveRA) HasRA() bool {
	return ra.ThreatType != ThreatNone || ra.ActiveRABits != 0 || ra.RAC != 0
}

// decodeThreatRange converts the 7-bit range code per DO-260B Table
// 2-42: 0 unavailable, 1 means <0.05 NM, 2-126 give (n-1)/10 NM (0.1 NM
// for code 2, in 0.1 NM steps), 127 means >12.55 NM.
func decodeThreatRange(n uint32) float64 {
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 0.05
	case n == 127:
		return 12.55
	default:
		return float64(n-1) / 10.0
	}
}

// decodeThreatBearing converts the 6-bit bearing code per DO-260B Table
// 2-43: 0 unavailable, n in 1-60 means (6n - 0.5) degrees.
func decodeThreatBearing(n uint32) float64 {
	if n == 0 || n > 60 {
		return 0
	}
	return float64(n)*6 - 0.5
}
