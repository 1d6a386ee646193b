package modes

import (
	"fmt"
	"strings"

	"github.com/openskynetwork/go-modes/internal/bitfield"
)

// Identification is ADS-B type codes 1-4: aircraft callsign plus emitter
// category.
type Identification struct {
	TypeCode int
	Category int
	Callsign string
}

func decodeIdentification(me []byte, tc int) Identification {
	cat := int(bitfield.Bits(me, 6, 8))
	chars := bitfield.SixBitChars(me, 9, 8)

	var sb strings.Builder
	for _, c := range chars {
		sb.WriteByte(bitfield.CallsignChar(c))
	}

	return Identification{
		TypeCode: tc,
		Category: cat,
		Callsign: sb.String(),
	}
}

// EmitterCategory returns the human-readable description of this
// Identification message's {type_code, category} pair per DO-260B
// Table 2-13.
func (id Identification) EmitterCategory() string {
	if desc, ok := emitterCategories[emitterKey{id.TypeCode, id.Category}]; ok {
		return desc
	}
	return "Reserved"
}

type emitterKey struct {
	typeCode int
	category int
}

var emitterCategories = map[emitterKey]string{
	{2, 0}: "No ADS-B emitter category information",
	{2, 1}: "Surface vehicle - emergency vehicle",
	{2, 2}: "Surface vehicle - service vehicle",
	{2, 3}: "Fixed ground or tethered obstruction - point obstacle",
	{2, 4}: "Fixed ground or tethered obstruction - cluster obstacle",
	{2, 5}: "Fixed ground or tethered obstruction - line obstacle",

	{3, 0}: "No ADS-B emitter category information",
	{3, 1}: "Glider / sailplane",
	{3, 2}: "Lighter-than-air",
	{3, 3}: "Parachutist / skydiver",
	{3, 4}: "Ultralight / hang-glider / paraglider",
	{3, 6}: "Unmanned aerial vehicle",
	{3, 7}: "Space or transatmospheric vehicle",

	{4, 0}: "No ADS-B emitter category information",
	{4, 1}: "Light aircraft (< 15500 lbs)",
	{4, 2}: "Small aircraft (15500 to 75000 lbs)",
	{4, 3}: "Large aircraft (75000 to 300000 lbs)",
	{4, 4}: "High vortex large aircraft",
	{4, 5}: "Heavy aircraft (> 300000 lbs)",
	{4, 6}: "High performance aircraft (>5g, high speed)",
	{4, 7}: "Rotorcraft",
}

// TrimmedCallsign returns the callsign with trailing fill characters
// ('#' and spaces) removed, the form most callers want to display.
func (id Identification) TrimmedCallsign() string {
	return strings.TrimRight(strings.ReplaceAll(id.Callsign, "#", " "), " ")
}

func (id Identification) String() string {
	return fmt.Sprintf("Identification{callsign=%q, category=%s}", id.Callsign, id.EmitterCategory())
}
