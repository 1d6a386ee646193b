package bds

import (
	"strings"

	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// Callsign is BDS 2,0: the aircraft identification register. It carries
// the same callsign as the ADS-B Identification squitter (type codes
// 1-4), but arrives via a ground Comm-B interrogation instead of a
// broadcast squitter.
type Callsign struct {
	Callsign string
}

// DecodeCallsign parses a raw BDS 2,0 payload (byte 0 is the BDS
// selector 0x20 and is skipped; the callsign occupies bits 9-56, eight
// 6-bit characters).
func DecodeCallsign(payload [7]byte) Callsign {
	b := payload[:]
	chars := bitfield.SixBitChars(b, 9, 8)

	var sb strings.Builder
	for _, c := range chars {
		sb.WriteByte(bitfield.CallsignChar(c))
	}

	return Callsign{Callsign: sb.String()}
}

// Trimmed returns the callsign with trailing fill characters removed.
func (c Callsign) Trimmed() string {
	return strings.TrimRight(strings.ReplaceAll(c.Callsign, "#", " "), " ")
}
