package modes

// CPRFormat discriminates the two halves of a Compact Position Reporting
// frame pair.
type CPRFormat int

const (
	CPREven CPRFormat = 0
	CPROdd  CPRFormat = 1
)

func (f CPRFormat) String() string {
	if f == CPROdd {
		return "odd"
	}
	return "even"
}

func cprFormat(bit uint8) CPRFormat {
	if bit == 1 {
		return CPROdd
	}
	return CPREven
}
