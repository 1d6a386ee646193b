package modes

import (
	"github.com/openskynetwork/go-modes/internal/altitude"
	"github.com/openskynetwork/go-modes/internal/bds"
	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// EmergencyState is the 3-bit emergency/priority status reported by an
// AircraftStatus subtype-1 message.
type EmergencyState int

const (
	EmergencyNone EmergencyState = iota
	EmergencyGeneral
	EmergencyLifeguard
	EmergencyMinFuel
	EmergencyNoComm
	EmergencyUnlawfulInterference
	EmergencyDownedAircraft
)

func (e EmergencyState) String() string {
	switch e {
	case EmergencyNone:
		return "none"
	case EmergencyGeneral:
		return "general emergency"
	case EmergencyLifeguard:
		return "lifeguard/medical emergency"
	case EmergencyMinFuel:
		return "minimum fuel"
	case EmergencyNoComm:
		return "no communications"
	case EmergencyUnlawfulInterference:
		return "unlawful interference"
	case EmergencyDownedAircraft:
		return "downed aircraft"
	default:
		return "reserved"
	}
}

// AircraftStatus is ADS-B type code 28: subtype 1 carries emergency and
// priority status plus the Mode A code; subtype 2 carries an ACAS active
// resolution advisory, whose register layout matches BDS 3,0 and is
// decoded by delegating to the bds package.
type AircraftStatus struct {
	Subtype int

	// Subtype 1.
	Emergency    EmergencyState
	ModeACode    uint32
	HasModeACode bool

	// Subtype 2.
	ActiveRA    bds.ActiveRA
	HasActiveRA bool
}

func decodeAircraftStatus(me []byte) (AircraftStatus, error) {
	subtype := int(bitfield.Bits(me, 6, 8))
	st := AircraftStatus{Subtype: subtype}

	switch subtype {
	case 1:
		st.Emergency = EmergencyState(bitfield.Bits(me, 9, 11))
		code := bitfield.Bits(me, 12, 24)
		if code != 0 {
			st.ModeACode = code
			st.HasModeACode = true
		}
	case 2:
		// The ME field's bits 9-56 mirror a BDS 3,0 register's post-selector
		// layout (bits 9-56 of the 7-byte register payload), so a 7-byte
		// payload is reassembled with a zero selector byte for bds.DecodeActiveRA.
		var payload [7]byte
		copy(payload[1:], me[1:7])
		ra, err := bds.DecodeActiveRA(payload)
		if err != nil {
			return AircraftStatus{}, badFormat("%v", err)
		}
		st.ActiveRA = ra
		st.HasActiveRA = ra.HasRA()
	}

	return st, nil
}

// Squawk returns the subtype-1 Mode A code as a four-digit squawk
// string.
func (s AircraftStatus) Squawk() (code string, ok bool) {
	if s.Subtype != 1 || !s.HasModeACode {
		return "", false
	}
	return altitude.Squawk(s.ModeACode), true
}
