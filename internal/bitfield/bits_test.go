package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr bool
	}{
		{name: "short frame", in: "8D4840D6202CC371C32CE0576098"[:14], wantLen: 7},
		{name: "long frame lowercase", in: "8d4840d6202cc371c32ce0576098", wantLen: 14},
		{name: "long frame uppercase", in: "8D4840D6202CC371C32CE0576098", wantLen: 14},
		{name: "odd nibbles", in: "8D4", wantErr: true},
		{name: "wrong length", in: "8D48", wantErr: true},
		{name: "non-hex", in: "8D4840D6202CC371C32CE057609Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require := assert.New(t)
			require.NoError(err)
			require.Len(got, tt.wantLen)
		})
	}
}

func TestBitsDFField(t *testing.T) {
	// 0x8D = 1000 1101, DF (bits 1-5) = 10001 = 17
	data := []byte{0x8D}
	assert.Equal(t, uint32(17), Bits(data, 1, 5))
}

func TestBitsCrossesBytes(t *testing.T) {
	// bits 15-24 spanning two bytes
	data := []byte{0x00, 0x01, 0xFF, 0x00}
	got := Bits(data, 15, 24)
	assert.Equal(t, uint32(0x1FF), got)
}

func TestBitRoundTripsAgainstBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 14, 14).Draw(t, "data")
		pos := rapid.IntRange(1, 112).Draw(t, "pos")
		got := Bit(data, pos)
		assert.LessOrEqual(t, got, uint8(1))

		wide := Bits(data, pos, pos)
		assert.Equal(t, uint32(got), wide)
	})
}

func TestSixBitChars(t *testing.T) {
	// Two 6-bit groups: 0b000001 ('A'=1), 0b000010 ('B'=2) packed MSB-first.
	data := []byte{0b00000100, 0b00100000}
	got := SixBitChars(data, 1, 2)
	assert.Equal(t, []uint8{1, 2}, got)
}
