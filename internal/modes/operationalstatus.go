package modes

import "github.com/openskynetwork/go-modes/internal/bitfield"

// OperationalStatus is ADS-B type code 31: the emitting system's own
// capability and operational mode, plus the ADS-B version it conforms
// to. Subtype 0 describes an airborne-capable aircraft, subtype 1 a
// surface vehicle; both share the version/NIC-A/capability/mode layout
// used here.
type OperationalStatus struct {
	Subtype int // 0 airborne, 1 surface

	CapabilityClass  uint32 // bits 9-24, raw (same bits for both subtypes)
	OperationalMode  uint32 // bits 25-40, raw (same bits for both subtypes)

	ADSBVersion     int  // bits 41-43
	NICSupplementA  bool // bit 44
	NACp            int  // bits 45-48: navigation accuracy category, position
	GVA             int  // bits 51-52: geometric vertical accuracy
	SIL             int  // bits 53-54: source integrity level
	HorizontalRefDir bool // bit 55: 0 true north, 1 magnetic north
	SILSupplement   bool // bit 56: 0 per-hour, 1 per-sample
}

func decodeOperationalStatus(me []byte) OperationalStatus {
	return OperationalStatus{
		Subtype:          int(bitfield.Bits(me, 6, 8)),
		CapabilityClass:  bitfield.Bits(me, 9, 24),
		OperationalMode:  bitfield.Bits(me, 25, 40),
		ADSBVersion:      int(bitfield.Bits(me, 41, 43)),
		NICSupplementA:   bitfield.Bit(me, 44) == 1,
		NACp:             int(bitfield.Bits(me, 45, 48)),
		GVA:              int(bitfield.Bits(me, 51, 52)),
		SIL:              int(bitfield.Bits(me, 53, 54)),
		HorizontalRefDir: bitfield.Bit(me, 55) == 1,
		SILSupplement:    bitfield.Bit(me, 56) == 1,
	}
}

// Has1090ESIn reports whether the capability class field's 1090ES-IN bit
// is set (bit 18 for the airborne subtype), meaning the aircraft's own
// receiver can hear 1090ES traffic from other aircraft.
func (o OperationalStatus) Has1090ESIn() bool {
	if o.Subtype != 0 {
		return false
	}
	// Capability class occupies bits 9-24; 1090ES-IN is bit 18, the 10th
	// bit of that 16-bit field (bit index 9 from the field's MSB).
	return o.CapabilityClass&(1<<(24-18)) != 0
}
