package modes

import (
	"github.com/openskynetwork/go-modes/internal/altitude"
	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// AirbornePosition is ADS-B type codes 9-18 (barometric altitude) and
// 20-22 (GNSS height).
type AirbornePosition struct {
	TypeCode          int
	SurveillanceStatus int // 0 none, 1 permanent alert, 2 temporary alert, 3 SPI
	NICSupplementB    bool
	AltitudeCode      uint32 // raw 12-bit AC field
	TimeSync          bool
	CPRFormat         CPRFormat
	EncodedLat        uint32
	EncodedLon        uint32
}

func decodeAirbornePosition(me []byte, tc int) AirbornePosition {
	return AirbornePosition{
		TypeCode:           tc,
		SurveillanceStatus: int(bitfield.Bits(me, 6, 7)),
		NICSupplementB:     bitfield.Bit(me, 8) == 1,
		AltitudeCode:       bitfield.Bits(me, 9, 20),
		TimeSync:           bitfield.Bit(me, 21) == 1,
		CPRFormat:          cprFormat(bitfield.Bit(me, 22)),
		EncodedLat:         bitfield.Bits(me, 23, 39),
		EncodedLon:         bitfield.Bits(me, 40, 56),
	}
}

// AltitudeFeet decodes this message's 12-bit AC field into feet using the
// Q-bit/Gillham codec (type codes 9-18 carry barometric altitude; type
// codes 20-22 carry GNSS height with the same field encoding).
func (p AirbornePosition) AltitudeFeet() (feet int, ok bool) {
	return altitude.DecodeAC12Field(p.AltitudeCode)
}

// NIC returns the Navigation Integrity Category implied by this message's
// type code together with the caller-supplied NIC Supplement A bit (an
// Operational Status field tracked per-aircraft, not carried here) and
// this message's own NIC Supplement B bit, per DO-260B Table 2-7/2-8.
// Returned as the horizontal containment radius limit in nautical miles;
// 0 means "unknown/no integrity claim".
func (p AirbornePosition) NIC(nicSupplementA bool) float64 {
	switch p.TypeCode {
	case 9, 20:
		return 0.05 // RC < 0.05 NM (very high integrity, type code 9/20)
	case 10, 21:
		return 0.1
	case 11:
		if nicSupplementA {
			return 0.2
		}
		return 0.3
	case 12:
		return 0.6
	case 13:
		if p.NICSupplementB {
			return 0.6
		}
		return 1.0
	case 14:
		return 2.0
	case 15:
		return 4.0
	case 16:
		if nicSupplementA {
			return 6.0
		}
		return 8.0
	case 17:
		return 20.0
	case 18, 22:
		return 0 // unknown integrity
	default:
		return 0
	}
}
