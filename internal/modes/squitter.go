package modes

import "github.com/openskynetwork/go-modes/internal/bitfield"

// Squitter is an ADS-B Extended Squitter reply (DF 17/18): the common
// Reply header plus the type code and ME (Message, Extended squitter)
// payload, sub-dispatched by type code into one of the message variants.
type Squitter struct {
	Reply
	TypeCode int
	ME       [7]byte
	Variant  interface{}
}

// UnknownExtendedSquitter preserves the raw ME field of a well-formed but
// unrecognized or explicitly out-of-scope type code (including 29, target
// state and status, and 23-27 unassigned), for forward compatibility.
type UnknownExtendedSquitter struct {
	TypeCode int
	ME       [7]byte
}

func decodeSquitter(base *Reply) (*Squitter, error) {
	if len(base.Frame) < 11 {
		return nil, badFormat("extended squitter frame too short for an ME field: %d bytes", len(base.Frame))
	}
	me := base.Frame[4:11]
	var meArr [7]byte
	copy(meArr[:], me)

	tc := int(bitfield.Bits(me, 1, 5))
	sq := &Squitter{Reply: *base, TypeCode: tc, ME: meArr}

	switch {
	case tc >= 1 && tc <= 4:
		sq.Variant = decodeIdentification(me, tc)
	case tc >= 5 && tc <= 8:
		sq.Variant = decodeSurfacePosition(me, tc)
	case (tc >= 9 && tc <= 18) || (tc >= 20 && tc <= 22):
		sq.Variant = decodeAirbornePosition(me, tc)
	case tc == 19:
		sq.Variant = decodeVelocity(me)
	case tc == 28:
		status, err := decodeAircraftStatus(me)
		if err != nil {
			return nil, err
		}
		sq.Variant = status
	case tc == 31:
		sq.Variant = decodeOperationalStatus(me)
	default:
		sq.Variant = UnknownExtendedSquitter{TypeCode: tc, ME: meArr}
	}

	return sq, nil
}
