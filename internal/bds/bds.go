// Package bds decodes Mode S Comm-B Data Selector registers: BDS 0,8
// (identification), 1,0 (data-link capability), 2,0 (identification),
// and 3,0 (ACAS active resolution advisory).
package bds

import "fmt"

// BadFormat reports a reserved-zero-field violation or an out-of-range
// enum value inside a register parser.
type BadFormat struct {
	Reason string
}

func (e *BadFormat) Error() string { return fmt.Sprintf("bds: %s", e.Reason) }

func badFormat(format string, args ...interface{}) error {
	return &BadFormat{Reason: fmt.Sprintf(format, args...)}
}

// Selector identifies which Comm-B register a 7-byte payload holds.
type Selector uint8

const (
	Selector08 Selector = 0x08 // Identification (aircraft and airline registration markings)
	Selector10 Selector = 0x10 // Data-link capability report
	Selector20 Selector = 0x20 // Identification (callsign)
	Selector30 Selector = 0x30 // ACAS active resolution advisory
)

// DetectSelector reads the register's selector byte out of a raw 7-byte
// Comm-B payload, for callers auto-detecting register type rather than
// being told by the caller which parser to invoke.
func DetectSelector(payload [7]byte) Selector {
	return Selector(payload[0])
}
