// Package modes decodes Mode S downlink replies and their ADS-B Extended
// Squitter payloads into a typed, discriminated hierarchy with semantic
// accessors. It is a pure library: no logging, no I/O, no hidden state.
package modes

import (
	"github.com/openskynetwork/go-modes/internal/altitude"
	"github.com/openskynetwork/go-modes/internal/bitfield"
	"github.com/openskynetwork/go-modes/internal/parity"
)

// Reply is the header shared by every Mode S downlink reply: downlink
// format, the raw first-field bits (CA/CF/FS/VS/DR/UM/AQ/RI depending on
// DF), the recovered ICAO-24 address, and the full wire frame (payload
// plus trailing parity).
type Reply struct {
	DownlinkFormat int
	FirstField     uint8
	ICAO24         uint32
	Frame          []byte
	ParityOK       bool
}

// decodeFrame builds the common header and validates frame length against
// the downlink format. DF values of 24 and above ("Comm-D") all clamp to
// 24 per the generic dispatcher's contract.
func decodeFrame(data []byte) (*Reply, error) {
	if len(data) != 7 && len(data) != 14 {
		return nil, badFormat("frame length %d is neither 7 nor 14 bytes", len(data))
	}

	df := int(bitfield.Bits(data, 1, 5))
	clamped := df
	if clamped >= 24 {
		clamped = 24
	}

	short := clamped < 16
	if short && len(data) != 7 {
		return nil, badFormat("DF %d requires a 7-byte frame, got %d", clamped, len(data))
	}
	if !short && len(data) != 14 {
		return nil, badFormat("DF %d requires a 14-byte frame, got %d", clamped, len(data))
	}

	r := &Reply{
		DownlinkFormat: clamped,
		FirstField:     uint8(bitfield.Bits(data, 6, 8)),
		Frame:          data,
	}

	switch clamped {
	case 11, 17, 18:
		// Address carried directly; parity is pure CRC (DF11 masks off the
		// low 7 bits, which carry the interrogator identifier instead).
		r.ICAO24 = bitfield.Bits(data, 9, 32)
		if clamped == 11 {
			r.ParityOK = parity.RecoverAddress(data)&0xffff80 == 0
		} else {
			r.ParityOK = parity.ParityIsZero(data)
		}
	case 0, 4, 5, 16, 20, 21:
		// Address-overlaid: AP = ICAO-24 XOR parity. Validity against a
		// specific known address is the caller's job (see CheckAddress);
		// ParityOK here only captures the zeroed-parity special case some
		// receivers produce when they strip the overlay.
		r.ICAO24 = parity.RecoverAddress(data)
		r.ParityOK = parity.ParityIsZero(data)
	default:
		r.ICAO24 = parity.RecoverAddress(data)
	}

	return r, nil
}

// Decode parses a raw Mode S frame (wire order, parity included) into its
// typed reply: *Squitter for DF 17/18, *Reply otherwise.
func Decode(data []byte) (interface{}, error) {
	base, err := decodeFrame(data)
	if err != nil {
		return nil, err
	}
	if base.DownlinkFormat == 17 || base.DownlinkFormat == 18 {
		return decodeSquitter(base)
	}
	return base, nil
}

// DecodeHex parses a hex-encoded frame (14 or 28 nibbles, case-insensitive)
// the same way Decode does.
func DecodeHex(s string) (interface{}, error) {
	data, err := bitfield.DecodeHex(s)
	if err != nil {
		return nil, badFormat("%v", err)
	}
	return Decode(data)
}

// Altitude returns the decoded altitude, in feet, for downlink formats
// that carry the 13-bit AC surveillance altitude field (DF 0, 4, 16, 20).
// ok is false for DF without an AC field or for an unavailable/metric code.
func (r *Reply) Altitude() (feet int, ok bool) {
	switch r.DownlinkFormat {
	case 0, 4, 16, 20:
		code := bitfield.Bits(r.Frame, 20, 32)
		return altitude.DecodeAC13Field(code)
	default:
		return 0, false
	}
}

// CheckAddress reports whether frame's parity overlay, once resolved,
// matches a known ICAO-24 address — the check_parity contract for
// address-overlaid downlink formats (DF 0, 4, 5, 16, 20, 21), where the
// parity engine alone cannot distinguish a valid transmission from noise.
func (r *Reply) CheckAddress(icao uint32) bool {
	return r.ICAO24 == icao
}

// Squawk returns the decoded Mode-A identity code for downlink formats
// that carry the 13-bit identity field (DF 5, 21).
func (r *Reply) Squawk() (code string, ok bool) {
	switch r.DownlinkFormat {
	case 5, 21:
		id := bitfield.Bits(r.Frame, 20, 32)
		return altitude.Squawk(id), true
	default:
		return "", false
	}
}
