package bds

import (
	"strings"

	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// Identification is BDS 0,8: the aircraft identification register used
// by Mode S Comm-B interrogation (the ground-interrogated counterpart of
// the broadcast Identification squitter), sharing the same 6-bit
// callsign alphabet and emitter category field layout as ADS-B type
// codes 1-4.
type Identification struct {
	Category int
	Callsign string
}

// DecodeIdentification parses a raw BDS 0,8 payload: emitter category at
// bits 6-8, eight 6-bit callsign characters at bits 9-56.
func DecodeIdentification(payload [7]byte) Identification {
	b := payload[:]
	chars := bitfield.SixBitChars(b, 9, 8)

	var sb strings.Builder
	for _, c := range chars {
		sb.WriteByte(bitfield.CallsignChar(c))
	}

	return Identification{
		Category: int(bitfield.Bits(b, 6, 8)),
		Callsign: sb.String(),
	}
}

// Trimmed returns the callsign with trailing fill characters removed.
func (id Identification) Trimmed() string {
	return strings.TrimRight(strings.ReplaceAll(id.Callsign, "#", " "), " ")
}
