// Package cpr implements Compact Position Reporting per DO-260B
// §2.2.3.2.3-4: globally-unambiguous decoding from an even/odd frame
// pair, and locally-unambiguous decoding from a single frame relative to
// a reference position.
package cpr

import "math"

const (
	nz       = 15
	cprScale = 131072.0 // 2^17, the 17-bit field's resolution

	dlatEven = 360.0 / (4 * nz)
	dlatOdd  = 360.0 / (4*nz - 1)
)

// Format discriminates the two halves of an even/odd CPR frame pair.
type Format int

const (
	Even Format = 0
	Odd  Format = 1
)

// Frame is one CPR-encoded position report.
type Frame struct {
	Format     Format
	EncodedLat uint32 // 17 bits
	EncodedLon uint32 // 17 bits
	Surface    bool
	Timestamp  float64 // seconds, caller's clock; only relative differences matter
}

// Position is a decoded WGS-84 point.
type Position struct {
	Latitude  float64
	Longitude float64
}

func zoneScale(surface bool) float64 {
	if surface {
		return 4 // surface zones are 1/4 the airborne zone size in both dimensions
	}
	return 1
}

func dlat(format Format, surface bool) float64 {
	d := dlatEven
	if format == Odd {
		d = dlatOdd
	}
	return d / zoneScale(surface)
}

func modInt(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// nlBoundaries holds the transition latitude below which NL takes the
// value 59 minus its index (so nlBoundaries[0] is the upper bound for NL=59,
// nlBoundaries[1] for NL=58, and so on down to NL=2). Latitudes at or
// above 87.0 always resolve to NL=1. Values per DO-260B Appendix A.
var nlBoundaries = [...]float64{
	10.47047130, 14.82817437, 18.18626357, 21.02939493, 23.54504487,
	25.82924707, 27.93898710, 29.91135686, 31.77209708, 33.53993436,
	35.22899598, 36.85025108, 38.41241892, 39.92256684, 41.38651832,
	42.80914012, 44.19454951, 45.54626723, 46.86733252, 48.16039128,
	49.42776439, 50.67150166, 51.89342469, 53.09516153, 54.27817472,
	55.44378444, 56.59318756, 57.72747354, 58.84763776, 59.95459277,
	61.04917774, 62.13216659, 63.20427479, 64.26616523, 65.31845310,
	66.36171008, 67.39646774, 68.42322022, 69.44242631, 70.45451075,
	71.45986473, 72.45884545, 73.45177442, 74.43893416, 75.42056257,
	76.39684391, 77.36789461, 78.33374083, 79.29428225, 80.24923213,
	81.19801349, 82.13956981, 83.07199445, 83.99173563, 84.89166191,
	85.75541621, 86.53536998, 87.00000000,
}

// NL returns the number of longitude zones at latitude lat: the
// DO-260B "transition latitude" table, embedded as its 58 tabulated
// boundaries rather than the closed-form expression, to avoid floating
// point disagreement with callers comparing against the same table.
func NL(lat float64) int {
	absLat := math.Abs(lat)
	for i, boundary := range nlBoundaries {
		if absLat < boundary {
			return 59 - i
		}
	}
	return 1
}

func nFunction(lat float64, odd bool) int {
	n := NL(lat)
	if odd {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

// GlobalDecode resolves an unambiguous position from one even and one odd
// frame of the same aircraft, surface state, and NIC. ok is false when the
// two frames disagree on latitude zone ("unresolvable": caller keeps
// waiting for a fresher pair).
func GlobalDecode(even, odd Frame) (pos Position, ok bool) {
	surface := even.Surface
	scale := zoneScale(surface)

	yzEven := float64(even.EncodedLat) / cprScale
	yzOdd := float64(odd.EncodedLat) / cprScale

	j := math.Floor(59*yzEven - 60*yzOdd + 0.5)

	rlatEven := (dlatEven / scale) * (float64(modInt(int(j), 60)) + yzEven)
	rlatOdd := (dlatOdd / scale) * (float64(modInt(int(j), 59)) + yzOdd)

	if rlatEven >= 270 {
		rlatEven -= 360
	}
	if rlatOdd >= 270 {
		rlatOdd -= 360
	}
	if rlatEven < -90 || rlatEven > 90 || rlatOdd < -90 || rlatOdd > 90 {
		return Position{}, false
	}
	if NL(rlatEven) != NL(rlatOdd) {
		return Position{}, false
	}

	var rlat float64
	var useOdd bool
	var xzMore, xzLess float64
	if odd.Timestamp >= even.Timestamp {
		rlat = rlatOdd
		useOdd = true
		xzMore = float64(odd.EncodedLon) / cprScale
		xzLess = float64(even.EncodedLon) / cprScale
	} else {
		rlat = rlatEven
		useOdd = false
		xzMore = float64(even.EncodedLon) / cprScale
		xzLess = float64(odd.EncodedLon) / cprScale
	}

	nlPrime := NL(rlat)
	ni := nFunction(rlat, useOdd)
	dlon := 360.0 / float64(ni)
	if surface {
		dlon = 90.0 / float64(ni)
	}

	m := math.Floor(xzMore*float64(nlPrime-1) - xzLess*float64(nlPrime) + 0.5)
	lon := dlon * (float64(modInt(int(m), ni)) + xzMore)
	lon -= math.Ceil((lon-180)/360) * 360

	return Position{Latitude: rlat, Longitude: lon}, true
}

// LocalDecode resolves a position from a single frame using a reference
// point known to be within the same CPR zone (180 NM for airborne, 45 NM
// for surface).
func LocalDecode(frame Frame, ref Position) Position {
	surface := frame.Surface
	d := dlat(frame.Format, surface)
	yz := float64(frame.EncodedLat) / cprScale

	j := math.Floor(ref.Latitude/d) + math.Floor(0.5+math.Mod(ref.Latitude, d)/d-yz)
	rlat := d * (j + yz)

	ni := nFunction(rlat, frame.Format == Odd)
	dlon := 360.0 / float64(ni)
	if surface {
		dlon = 90.0 / float64(ni)
	}

	xz := float64(frame.EncodedLon) / cprScale
	m := math.Floor(ref.Longitude/dlon) + math.Floor(0.5+math.Mod(ref.Longitude, dlon)/dlon-xz)
	lon := dlon * (m + xz)

	return Position{Latitude: rlat, Longitude: lon}
}

// SurfaceCandidates returns the (up to) four longitude candidates a
// surface local decode admits in the absence of a reference point, per
// the 90°-zone-size ambiguity: the raw local longitude, shifted by each
// multiple of 90°.
func SurfaceCandidates(frame Frame) []Position {
	base := LocalDecode(frame, Position{})
	out := make([]Position, 0, 4)
	for _, shift := range [4]float64{0, 90, 180, 270} {
		lon := base.Longitude + shift
		lon -= math.Ceil((lon-180)/360) * 360
		out = append(out, Position{Latitude: base.Latitude, Longitude: lon})
	}
	return out
}

// NearestSurfaceCandidate picks the candidate closest in longitude to a
// known reference, the usual case when a stale-but-present reference
// exists for a surface-moving aircraft.
func NearestSurfaceCandidate(frame Frame, ref Position) Position {
	best := LocalDecode(frame, ref)
	bestDist := math.Abs(best.Longitude - ref.Longitude)
	for _, c := range SurfaceCandidates(frame) {
		d := math.Abs(c.Longitude - ref.Longitude)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
