package modes

import "github.com/openskynetwork/go-modes/internal/bitfield"

// SurfacePosition is ADS-B type codes 5-8: ground movement, heading, and
// surface-encoded CPR position.
type SurfacePosition struct {
	TypeCode     int
	Movement     int // raw 7-bit movement code
	HeadingValid bool
	Heading      float64 // degrees [0, 360), valid only if HeadingValid
	TimeSync     bool
	CPRFormat    CPRFormat
	EncodedLat   uint32
	EncodedLon   uint32
}

func decodeSurfacePosition(me []byte, tc int) SurfacePosition {
	movement := int(bitfield.Bits(me, 6, 12))
	headingValid := bitfield.Bit(me, 13) == 1
	headingRaw := bitfield.Bits(me, 14, 20)

	return SurfacePosition{
		TypeCode:     tc,
		Movement:     movement,
		HeadingValid: headingValid,
		Heading:      float64(headingRaw) * 360.0 / 128.0,
		TimeSync:     bitfield.Bit(me, 21) == 1,
		CPRFormat:    cprFormat(bitfield.Bit(me, 22)),
		EncodedLat:   bitfield.Bits(me, 23, 39),
		EncodedLon:   bitfield.Bits(me, 40, 56),
	}
}

// GroundSpeedKnots decodes the 7-bit piecewise-linear movement code into a
// ground speed in knots. ok is false when the code is unavailable (0) or
// reserved (125-127).
func (s SurfacePosition) GroundSpeedKnots() (knots float64, ok bool) {
	return decodeMovement(s.Movement)
}

// decodeMovement implements the movement field's piecewise-linear scale:
// 0 unavailable, 1 stopped (<0.125 kn), 2-8 in 0.125 kn steps, 9-12 in
// 0.25 kn steps, 13-38 in 0.5 kn steps, 39-93 in 1 kn steps, 94-108 in
// 2 kn steps, 109-123 in 5 kn steps, 124 >175 kn, 125-127 reserved.
func decodeMovement(m int) (knots float64, ok bool) {
	switch {
	case m == 0:
		return 0, false
	case m == 1:
		return 0, true
	case m >= 2 && m <= 8:
		return 0.125 * float64(m-2), true
	case m >= 9 && m <= 12:
		return 0.875 + 0.25*float64(m-9), true
	case m >= 13 && m <= 38:
		return 1.875 + 0.5*float64(m-13), true
	case m >= 39 && m <= 93:
		return 15 + 1*float64(m-39), true
	case m >= 94 && m <= 108:
		return 70 + 2*float64(m-94), true
	case m >= 109 && m <= 123:
		return 100 + 5*float64(m-109), true
	case m == 124:
		return 175, true
	default: // 125-127 reserved
		return 0, false
	}
}
