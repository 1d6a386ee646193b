// Package basestation renders decoded Mode S/ADS-B replies as BaseStation
// format (SBS-1) CSV lines, the de facto text format most ADS-B tooling
// consumes.
package basestation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openskynetwork/go-modes/internal/beast"
	"github.com/openskynetwork/go-modes/internal/cpr"
	"github.com/openskynetwork/go-modes/internal/logging"
	"github.com/openskynetwork/go-modes/internal/modes"
)

// BaseStation message types
const (
	SEL = "SEL" // Selection Change
	ID  = "ID"  // New ID
	AIR = "AIR" // New Aircraft
	STA = "STA" // Status Change
	CLK = "CLK" // Click
	MSG = "MSG" // Transmission
)

// BaseStation transmission types
const (
	TransmissionES_ID_CAT       = 1 // Extended Squitter Aircraft ID and Category
	TransmissionES_SURFACE      = 2 // Extended Squitter Surface Position
	TransmissionES_AIRBORNE     = 3 // Extended Squitter Airborne Position
	TransmissionES_VELOCITY     = 4 // Extended Squitter Airborne Velocity
	TransmissionSURVEILLANCE    = 5 // Surveillance Alt, Squawk change
	TransmissionSURVEILLANCE_ID = 6 // Surveillance ID change
	TransmissionAIR_TO_AIR      = 7 // Air-to-Air Message
	TransmissionALL_CALL        = 8 // All Call Reply
)

// Message represents a BaseStation format message
type Message struct {
	MessageType      string
	TransmissionType int
	SessionID        int
	AircraftID       int
	HexIdent         string
	FlightID         int
	DateGenerated    time.Time
	TimeGenerated    time.Time
	DateLogged       time.Time
	TimeLogged       time.Time
	Callsign         string
	Altitude         string
	GroundSpeed      string
	Track            string
	Latitude         string
	Longitude        string
	VerticalRate     string
	Squawk           string
	Alert            string
	Emergency        string
	SPI              string
	IsOnGround       string
}

// Writer writes decoded Mode S/ADS-B replies in BaseStation format. It
// keeps a CPR tracker per ICAO-24 address so that paired even/odd
// position messages resolve into a single lat/lon before being written.
type Writer struct {
	logRotator *logging.LogRotator
	logger     *logrus.Logger
	positions  *cpr.Registry
	sessionID  int
	aircraftID int
}

// NewWriter creates a new BaseStation writer
func NewWriter(logRotator *logging.LogRotator, logger *logrus.Logger) *Writer {
	return &Writer{
		logRotator: logRotator,
		logger:     logger,
		positions:  cpr.NewRegistry(5*time.Minute, 10*time.Minute),
		sessionID:  1,
		aircraftID: 1,
	}
}

// WriteMessage writes a Beast message in BaseStation format
func (w *Writer) WriteMessage(msg *beast.Message) error {
	if msg == nil {
		return fmt.Errorf("message cannot be nil")
	}

	if !msg.IsValid() {
		return fmt.Errorf("invalid message")
	}

	baseMsg, err := w.convertMessage(msg)
	if err != nil {
		w.logger.WithError(err).Debug("dropping unparseable beast message")
		return nil
	}
	if baseMsg == nil {
		// Message type not supported for BaseStation format
		return nil
	}

	csvLine := w.formatCSV(baseMsg)

	writer, err := w.logRotator.GetWriter()
	if err != nil {
		return fmt.Errorf("failed to get log writer: %w", err)
	}

	if _, err := writer.Write([]byte(csvLine + "\n")); err != nil {
		return fmt.Errorf("failed to write to log: %w", err)
	}

	return nil
}

// convertMessage decodes a Beast message's Mode S frame and converts it to
// BaseStation format.
func (w *Writer) convertMessage(msg *beast.Message) (*Message, error) {
	if msg.MessageType == beast.ModeAC {
		baseMsg := w.header(msg.Timestamp)
		baseMsg.TransmissionType = TransmissionSURVEILLANCE

		squawk := msg.GetSquawk()
		if squawk != 0 {
			baseMsg.Squawk = fmt.Sprintf("%04d", squawk)
		}
		return baseMsg, nil
	}

	reply, err := msg.Decode()
	if err != nil {
		return nil, err
	}

	baseMsg := w.header(msg.Timestamp)

	switch r := reply.(type) {
	case *modes.Reply:
		w.fillSurveillance(baseMsg, r)
	case *modes.Squitter:
		baseMsg.HexIdent = fmt.Sprintf("%06X", r.ICAO24)
		w.fillSquitter(baseMsg, r, msg.Timestamp)
	default:
		return nil, nil
	}

	return baseMsg, nil
}

func (w *Writer) header(ts time.Time) *Message {
	now := time.Now()
	return &Message{
		MessageType:   MSG,
		SessionID:     w.sessionID,
		AircraftID:    w.aircraftID,
		FlightID:      w.aircraftID,
		DateGenerated: ts,
		TimeGenerated: ts,
		DateLogged:    now,
		TimeLogged:    now,
	}
}

func (w *Writer) fillSurveillance(baseMsg *Message, r *modes.Reply) {
	if r.ICAO24 != 0 {
		baseMsg.HexIdent = fmt.Sprintf("%06X", r.ICAO24)
	}

	switch r.DownlinkFormat {
	case 4, 5, 20, 21:
		baseMsg.TransmissionType = TransmissionSURVEILLANCE
		if alt, ok := r.Altitude(); ok {
			baseMsg.Altitude = strconv.Itoa(alt)
		}
		if squawk, ok := r.Squawk(); ok {
			baseMsg.Squawk = squawk
		}
	case 11:
		baseMsg.TransmissionType = TransmissionALL_CALL
	}
}

func (w *Writer) fillSquitter(baseMsg *Message, sq *modes.Squitter, ts time.Time) {
	switch v := sq.Variant.(type) {
	case modes.Identification:
		baseMsg.TransmissionType = TransmissionES_ID_CAT
		baseMsg.Callsign = v.TrimmedCallsign()

	case modes.SurfacePosition:
		baseMsg.TransmissionType = TransmissionES_SURFACE
		if speed, ok := v.GroundSpeedKnots(); ok {
			baseMsg.GroundSpeed = strconv.Itoa(int(speed))
		}
		if v.HeadingValid {
			baseMsg.Track = fmt.Sprintf("%.1f", v.Heading)
		}
		w.resolvePosition(baseMsg, sq.ICAO24, cpr.Frame{
			Format:     cprFormat(v.CPRFormat),
			EncodedLat: v.EncodedLat,
			EncodedLon: v.EncodedLon,
			Surface:    true,
			Timestamp:  timestampSeconds(ts),
		})

	case modes.AirbornePosition:
		baseMsg.TransmissionType = TransmissionES_AIRBORNE
		if alt, ok := v.AltitudeFeet(); ok {
			baseMsg.Altitude = strconv.Itoa(alt)
		}
		w.resolvePosition(baseMsg, sq.ICAO24, cpr.Frame{
			Format:     cprFormat(v.CPRFormat),
			EncodedLat: v.EncodedLat,
			EncodedLon: v.EncodedLon,
			Surface:    false,
			Timestamp:  timestampSeconds(ts),
		})

	case modes.AirborneVelocity:
		baseMsg.TransmissionType = TransmissionES_VELOCITY
		if speed, ok := v.GroundSpeedKnots(); ok {
			baseMsg.GroundSpeed = strconv.Itoa(int(speed))
		}
		if track, ok := v.Track(); ok {
			baseMsg.Track = fmt.Sprintf("%.1f", track)
		}
		if v.HasVerticalRate {
			baseMsg.VerticalRate = strconv.Itoa(v.VerticalRate)
		}

	case modes.AircraftStatus:
		if code, ok := v.Squawk(); ok {
			baseMsg.TransmissionType = TransmissionSURVEILLANCE_ID
			baseMsg.Squawk = code
		}
		if v.Emergency != modes.EmergencyNone {
			baseMsg.Emergency = v.Emergency.String()
		}
	}
}

func timestampSeconds(ts time.Time) float64 {
	return float64(ts.UnixNano()) / 1e9
}

// resolvePosition feeds a CPR frame into the per-aircraft tracker and, if
// it resolves to a position, fills in the BaseStation lat/lon fields.
func (w *Writer) resolvePosition(baseMsg *Message, icao uint32, frame cpr.Frame) {
	tr := w.positions.Tracker(icao)
	pos, ok := tr.Update(frame)
	if !ok {
		return
	}
	baseMsg.Latitude = fmt.Sprintf("%.6f", pos.Latitude)
	baseMsg.Longitude = fmt.Sprintf("%.6f", pos.Longitude)
}

func cprFormat(f modes.CPRFormat) cpr.Format {
	if f == modes.CPROdd {
		return cpr.Odd
	}
	return cpr.Even
}

// formatCSV formats a BaseStation message as CSV
func (w *Writer) formatCSV(msg *Message) string {
	fields := []string{
		msg.MessageType,
		strconv.Itoa(msg.TransmissionType),
		strconv.Itoa(msg.SessionID),
		strconv.Itoa(msg.AircraftID),
		msg.HexIdent,
		strconv.Itoa(msg.FlightID),
		msg.DateGenerated.Format("2006/01/02"),
		msg.TimeGenerated.Format("15:04:05.000"),
		msg.DateLogged.Format("2006/01/02"),
		msg.TimeLogged.Format("15:04:05.000"),
		msg.Callsign,
		msg.Altitude,
		msg.GroundSpeed,
		msg.Track,
		msg.Latitude,
		msg.Longitude,
		msg.VerticalRate,
		msg.Squawk,
		msg.Alert,
		msg.Emergency,
		msg.SPI,
		msg.IsOnGround,
	}

	return strings.Join(fields, ",")
}
