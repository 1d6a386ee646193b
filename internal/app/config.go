package app

// InputMode selects how Application reads Mode S frames from Input.
type InputMode string

const (
	// InputBeast reads a Beast binary protocol stream (the default for a
	// receiver feed, e.g. dump1090's raw TCP output on port 30005).
	InputBeast InputMode = "beast"
	// InputHex reads one hex-encoded frame per line.
	InputHex InputMode = "hex"
)

// Config holds application configuration
type Config struct {
	InputMode    InputMode
	Input        string // file path, or "-" for stdin, or host:port for a beast-tcp source
	LogDir       string
	LogRotateUTC bool
	Verbose      bool
	ShowVersion  bool
}
