package modes

import "fmt"

// BadFormat is returned for any frame that cannot be parsed at all: wrong
// length, non-hex input, or a reserved/invalid field value inside a
// register parser. It is the only error kind this package returns;
// well-formed-but-unrecognized type codes decode to an Unknown variant
// instead of failing.
type BadFormat struct {
	Reason string
}

func (e *BadFormat) Error() string {
	return fmt.Sprintf("modes: %s", e.Reason)
}

func badFormat(format string, args ...interface{}) error {
	return &BadFormat{Reason: fmt.Sprintf(format, args...)}
}
