package basestation

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openskynetwork/go-modes/internal/beast"
	"github.com/openskynetwork/go-modes/internal/logging"
)

func testWriter(t *testing.T) *Writer {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	dir := t.TempDir()
	rotator, err := logging.NewLogRotator(dir, false, logger)
	require.NoError(t, err)
	t.Cleanup(func() { rotator.Close() })

	return NewWriter(rotator, logger)
}

func hexFrame(t *testing.T, s string) []byte {
	out := make([]byte, len(s)/2)
	for i := range out {
		var b byte
		for j := 0; j < 2; j++ {
			c := s[i*2+j]
			var v byte
			switch {
			case c >= '0' && c <= '9':
				v = c - '0'
			case c >= 'A' && c <= 'F':
				v = c - 'A' + 10
			case c >= 'a' && c <= 'f':
				v = c - 'a' + 10
			}
			b = b<<4 | v
		}
		out[i] = b
	}
	return out
}

func readLastLine(t *testing.T, w *Writer) string {
	path := w.logRotator.GetCurrentLogFile()
	f, err := os.Open(filepath.Clean(path))
	require.NoError(t, err)
	defer f.Close()

	var last string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		last = scanner.Text()
	}
	require.NotEmpty(t, last)
	return last
}

func TestWriteMessageIdentification(t *testing.T) {
	w := testWriter(t)
	frame := hexFrame(t, "8D4840D6202CC371C32CE0576098")

	msg := &beast.Message{MessageType: beast.ModeSLong, Data: frame, Timestamp: time.Now()}
	require.NoError(t, w.WriteMessage(msg))

	line := readLastLine(t, w)
	fields := strings.Split(line, ",")
	assert.Equal(t, MSG, fields[0])
	assert.Equal(t, "4840D6", fields[4])
	assert.Contains(t, fields[10], "KLM1023")
}

func TestWriteMessageRejectsNilAndInvalid(t *testing.T) {
	w := testWriter(t)
	assert.Error(t, w.WriteMessage(nil))
	assert.Error(t, w.WriteMessage(&beast.Message{MessageType: beast.ModeS, Data: []byte{0x01}}))
}

func TestWriteMessageModeACSquawk(t *testing.T) {
	w := testWriter(t)
	msg := &beast.Message{MessageType: beast.ModeAC, Data: []byte{0x12, 0x34}, Timestamp: time.Now()}
	require.NoError(t, w.WriteMessage(msg))

	line := readLastLine(t, w)
	fields := strings.Split(line, ",")
	assert.Equal(t, "5", fields[1])
}
