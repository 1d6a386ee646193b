package altitude

import "fmt"

// Bit masks within a 13-bit AC field, symbol order MSB to LSB:
// C1 A1 C2 A2 C4 A4 M B1 Q B2 D2 B4 D4.
const (
	acBitD4 = 1 << 0
	acBitB4 = 1 << 1
	acBitD2 = 1 << 2
	acBitB2 = 1 << 3
	acBitQ  = 1 << 4
	acBitB1 = 1 << 5
	acBitM  = 1 << 6
	acBitA4 = 1 << 7
	acBitC4 = 1 << 8
	acBitA2 = 1 << 9
	acBitC2 = 1 << 10
	acBitA1 = 1 << 11
	acBitC1 = 1 << 12
)

// DecodeAC13Field decodes a genuine 13-bit altitude code — the AC field of
// DF 0/4/16/20 surveillance replies, which carries a real M bit — into
// feet. ok is false for the metric encoding (M=1, unused in practice) or
// for an unavailable/out-of-range code.
func DecodeAC13Field(code uint32) (feet int, ok bool) {
	code &= 0x1fff
	if code == 0 {
		return 0, false
	}
	if code&acBitM != 0 {
		return 0, false // metric altitude, unused in practice
	}
	return decodeAC12Core(removeBit(code, 6))
}

// DecodeAC12Field decodes the 12-bit AC field carried in an ADS-B airborne
// position ME (type codes 9-18, 20-22), which never carries an M bit.
func DecodeAC12Field(code uint32) (feet int, ok bool) {
	return decodeAC12Core(code & 0xfff)
}

// decodeAC12Core implements the Q-bit/Gillham split shared by both field
// widths once any M bit has been stripped out.
func decodeAC12Core(code uint32) (feet int, ok bool) {
	if code == 0 {
		return 0, false
	}
	if code&acBitQ != 0 {
		n := ((code & 0x0fe0) >> 1) | (code & 0x000f)
		return int(n)*25 - 1000, true
	}

	// Re-insert a zero M bit so the Gillham bit names above line up with
	// the 13-bit pattern decodeGillham expects.
	n13 := ((code & 0x0fc0) << 1) | (code & 0x003f)
	return decodeGillham(n13)
}

func removeBit(v uint32, bit uint) uint32 {
	lower := v & (1<<bit - 1)
	upper := v >> (bit + 1)
	return upper<<bit | lower
}

// decodeGillham converts a reflected-Gray Mode-C altitude pattern — the
// 500 ft group from D2 D4 A1 A2 A4 B1 B2 B4, the 100 ft group from
// C1 C2 C4 — into feet. Altitudes outside [-1200, 126700] ft indicate a
// corrupted or nonsensical code and are rejected.
func decodeGillham(n13 uint32) (feet int, ok bool) {
	var oneHundreds int
	if n13&acBitC1 != 0 {
		oneHundreds ^= 7
	}
	if n13&acBitC2 != 0 {
		oneHundreds ^= 3
	}
	if n13&acBitC4 != 0 {
		oneHundreds ^= 1
	}
	if oneHundreds&5 == 5 {
		oneHundreds ^= 2
	}
	if oneHundreds > 5 {
		return 0, false
	}

	var fiveHundreds int
	if n13&acBitD2 != 0 {
		fiveHundreds ^= 0xff
	}
	if n13&acBitD4 != 0 {
		fiveHundreds ^= 0x7f
	}
	if n13&acBitA1 != 0 {
		fiveHundreds ^= 0x3f
	}
	if n13&acBitA2 != 0 {
		fiveHundreds ^= 0x1f
	}
	if n13&acBitA4 != 0 {
		fiveHundreds ^= 0x0f
	}
	if n13&acBitB1 != 0 {
		fiveHundreds ^= 0x07
	}
	if n13&acBitB2 != 0 {
		fiveHundreds ^= 0x03
	}
	if n13&acBitB4 != 0 {
		fiveHundreds ^= 0x01
	}

	if fiveHundreds&1 != 0 {
		oneHundreds = 6 - oneHundreds
	}

	alt := fiveHundreds*500 + oneHundreds*100 - 1300
	if alt < -1200 || alt > 126700 {
		return 0, false
	}
	return alt, true
}

// DecodeModeA decodes the 13-bit Mode-A identity field (squawk) into four
// octal digits A, B, C, D per ICAO Annex 10 bit ordering
// A4 A2 A1 B4 B2 B1 C4 C2 C1 D4 D2 D1 (the spare X bit is ignored).
func DecodeModeA(code uint32) (a, b, c, d int) {
	a = int((code >> 9) & 0x07)
	b = int((code >> 6) & 0x07)
	c = int((code >> 3) & 0x07)
	d = int(code & 0x07)
	return a, b, c, d
}

// Squawk formats the four Mode-A digits as a conventional 4-digit string.
func Squawk(code uint32) string {
	a, b, c, d := DecodeModeA(code)
	return fmt.Sprintf("%d%d%d%d", a, b, c, d)
}

// FeetToMetres converts an altitude in feet to metres. The library's
// altitude accessors (Reply.Altitude, AirbornePosition.AltitudeFeet,
// the BDS 3,0 threat altitude) all return feet; none returns metres.
func FeetToMetres(feet int) float64 {
	return float64(feet) * 0.3048
}
