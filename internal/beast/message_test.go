package beast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageGetICAOAndDF(t *testing.T) {
	frame, _ := hexBytes("8D4840D6202CC371C32CE0576098"[:14])
	m := &Message{MessageType: ModeS, Data: frame}

	assert.Equal(t, byte(17), m.GetDF())
	assert.Equal(t, uint32(0x4840D6), m.GetICAO())
}

func TestMessageGetICAOReturnsZeroForNonModeS(t *testing.T) {
	m := &Message{MessageType: ModeAC, Data: []byte{0x00, 0x00}}
	assert.Equal(t, uint32(0), m.GetICAO())
	assert.Equal(t, byte(0), m.GetDF())
}

func TestMessageDecodeRejectsNonModeSType(t *testing.T) {
	m := &Message{MessageType: ModeStatus, Data: []byte{0x00, 0x00}}
	_, err := m.Decode()
	require.Error(t, err)
}

func TestMessageDecodeParsesModeSFrame(t *testing.T) {
	frame, _ := hexBytes("8D4840D6202CC371C32CE0576098")
	m := &Message{MessageType: ModeSLong, Data: frame}

	reply, err := m.Decode()
	require.NoError(t, err)
	assert.NotNil(t, reply)
}
