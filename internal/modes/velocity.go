package modes

import (
	"math"

	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// AirborneVelocity is ADS-B type code 19: either a ground-speed report
// (subtype 1/2) or an airspeed/heading report (subtype 3/4), plus a
// vertical rate common to all subtypes.
type AirborneVelocity struct {
	Subtype int

	// Ground speed subtypes (1, 2).
	EastVelocity  int // knots, signed, valid only if HasVelocity
	NorthVelocity int // knots, signed, valid only if HasVelocity
	HasVelocity   bool

	// Airspeed subtypes (3, 4).
	HeadingValid bool
	Heading      float64 // degrees [0, 360)
	AirspeedType string  // "IAS" or "TAS"
	Airspeed     int     // knots, valid only if HasAirspeed
	HasAirspeed  bool

	VerticalRateSource string // "barometric" or "GNSS"
	VerticalRate       int    // ft/min, signed
	HasVerticalRate    bool

	GNSSBaroDiff    int // feet, signed
	HasGNSSBaroDiff bool
}

func decodeVelocity(me []byte) AirborneVelocity {
	subtype := int(bitfield.Bits(me, 6, 8))
	v := AirborneVelocity{Subtype: subtype}

	switch subtype {
	case 1, 2:
		scale := 1
		if subtype == 2 {
			scale = 4
		}
		ewSign := bitfield.Bit(me, 14)
		ewRaw := int(bitfield.Bits(me, 15, 24))
		nsSign := bitfield.Bit(me, 25)
		nsRaw := int(bitfield.Bits(me, 26, 35))

		if ewRaw != 0 && nsRaw != 0 {
			ew := (ewRaw - 1) * scale
			if ewSign == 1 {
				ew = -ew
			}
			ns := (nsRaw - 1) * scale
			if nsSign == 1 {
				ns = -ns
			}
			v.EastVelocity = ew
			v.NorthVelocity = ns
			v.HasVelocity = true
		}

	case 3, 4:
		scale := 1
		if subtype == 4 {
			scale = 4
		}
		v.HeadingValid = bitfield.Bit(me, 14) == 1
		if v.HeadingValid {
			v.Heading = float64(bitfield.Bits(me, 15, 24)) * 360.0 / 1024.0
		}
		if bitfield.Bit(me, 25) == 1 {
			v.AirspeedType = "TAS"
		} else {
			v.AirspeedType = "IAS"
		}
		asRaw := int(bitfield.Bits(me, 26, 35))
		if asRaw != 0 {
			v.Airspeed = (asRaw - 1) * scale
			v.HasAirspeed = true
		}
	}

	if bitfield.Bit(me, 36) == 1 {
		v.VerticalRateSource = "GNSS"
	} else {
		v.VerticalRateSource = "barometric"
	}
	vrRaw := int(bitfield.Bits(me, 38, 46))
	if vrRaw != 0 {
		rate := (vrRaw - 1) * 64
		if bitfield.Bit(me, 37) == 1 {
			rate = -rate
		}
		v.VerticalRate = rate
		v.HasVerticalRate = true
	}

	diffRaw := int(bitfield.Bits(me, 50, 56))
	if diffRaw != 0 {
		diff := (diffRaw - 1) * 25
		if bitfield.Bit(me, 49) == 1 {
			diff = -diff
		}
		v.GNSSBaroDiff = diff
		v.HasGNSSBaroDiff = true
	}

	return v
}

// GroundSpeedKnots returns the resultant ground speed for subtype 1/2
// messages, derived from the signed east/north velocity components.
func (v AirborneVelocity) GroundSpeedKnots() (knots float64, ok bool) {
	if !v.HasVelocity {
		return 0, false
	}
	return math.Sqrt(float64(v.EastVelocity*v.EastVelocity + v.NorthVelocity*v.NorthVelocity)), true
}

// Track returns the ground track angle in degrees [0, 360) for subtype
// 1/2 messages.
func (v AirborneVelocity) Track() (degrees float64, ok bool) {
	if !v.HasVelocity {
		return 0, false
	}
	t := math.Atan2(float64(v.EastVelocity), float64(v.NorthVelocity)) * 180.0 / math.Pi
	if t < 0 {
		t += 360
	}
	return t, true
}
