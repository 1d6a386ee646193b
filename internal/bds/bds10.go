package bds

import "github.com/openskynetwork/go-modes/internal/bitfield"

// DataLinkCapability is BDS 1,0: the data-link capability report, a
// ground-interrogated summary of what Comm-B/Comm-C/Comm-D services and
// ELM throughput an aircraft's transponder supports.
type DataLinkCapability struct {
	ContinuationFlag    bool // bit 9: BDS 1,0 message is one of a linked pair
	OverlayCapability    bool // bit 10: transponder overlays ICAO address capability report
	ACASOperational       bool
	Mode5TransponderCapable bool
	DataLinkLayerCap      uint32 // bits 9-14: data link layer capability report
	CommBCapable          bool
	Mode6MessageCapable   bool
	SubnetworkVersion     int  // bits 25-32: Mode S subnetwork version number
	TransponderEnhancedProtocol bool
	ModeSSpecificServices bool
	UplinkELMThroughput   int // bits 35-37: uplink ELM average throughput capability
	DownlinkELMCapability int // bits 38-40: downlink ELM throughput capability
	AircraftIdentCapable  bool
	SquitterOnCapable     bool
	SurveillanceIdentCode bool
	CommonUsageGICBCap    bool
}

// DecodeDataLinkCapability parses a raw BDS 1,0 payload (register bits
// 1-56, byte 0 is the BDS selector and is ignored here). It rejects the
// reserved ELM throughput codes and reserved subnetwork version numbers
// per spec.md §4.6: uplink ELM throughput 7, downlink ELM capability 7,
// and subnetwork version 3 and above are all reserved, not merely
// large-but-valid values.
func DecodeDataLinkCapability(payload [7]byte) (DataLinkCapability, error) {
	b := payload[:]

	subnetworkVersion := int(bitfield.Bits(b, 25, 32))
	uplinkELM := int(bitfield.Bits(b, 35, 37))
	downlinkELM := int(bitfield.Bits(b, 38, 40))

	if subnetworkVersion >= 3 {
		return DataLinkCapability{}, badFormat("reserved subnetwork version %d", subnetworkVersion)
	}
	if uplinkELM == 7 {
		return DataLinkCapability{}, badFormat("reserved uplink ELM throughput code %d", uplinkELM)
	}
	if downlinkELM == 7 {
		return DataLinkCapability{}, badFormat("reserved downlink ELM capability code %d", downlinkELM)
	}

	return DataLinkCapability{
		ContinuationFlag:            bitfield.Bit(b, 9) == 1,
		OverlayCapability:           bitfield.Bit(b, 10) == 1,
		ACASOperational:             bitfield.Bit(b, 11) == 1,
		Mode5TransponderCapable:     bitfield.Bit(b, 12) == 1,
		DataLinkLayerCap:            bitfield.Bits(b, 9, 14),
		CommBCapable:                bitfield.Bit(b, 16) == 1,
		Mode6MessageCapable:         bitfield.Bit(b, 17) == 1,
		SubnetworkVersion:           subnetworkVersion,
		TransponderEnhancedProtocol: bitfield.Bit(b, 33) == 1,
		ModeSSpecificServices:       bitfield.Bit(b, 34) == 1,
		UplinkELMThroughput:         uplinkELM,
		DownlinkELMCapability:       downlinkELM,
		AircraftIdentCapable:        bitfield.Bit(b, 41) == 1,
		SquitterOnCapable:           bitfield.Bit(b, 42) == 1,
		SurveillanceIdentCode:       bitfield.Bit(b, 43) == 1,
		CommonUsageGICBCap:          bitfield.Bit(b, 44) == 1,
	}, nil
}
