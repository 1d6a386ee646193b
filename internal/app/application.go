package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/openskynetwork/go-modes/internal/basestation"
	"github.com/openskynetwork/go-modes/internal/beast"
	"github.com/openskynetwork/go-modes/internal/logging"
	"github.com/openskynetwork/go-modes/internal/modes"
)

// Application wires a Mode S frame source (Beast stream or hex lines) to
// a BaseStation-format writer.
type Application struct {
	config      Config
	logger      *logrus.Logger
	logRotator  *logging.LogRotator
	baseStation *basestation.Writer
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start initializes the writer and runs until its input source is
// exhausted or the process receives SIGINT/SIGTERM.
func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
		"input_mode": app.config.InputMode,
		"input":      app.config.Input,
	}).Info("starting Mode S/ADS-B decoder")

	if err := app.initializeComponents(); err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}
	defer app.logRotator.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		app.logger.Info("received shutdown signal")
		app.cancel()
	}()

	switch app.config.InputMode {
	case InputHex:
		return app.runHex()
	default:
		return app.runBeast()
	}
}

func (app *Application) initializeComponents() error {
	logRotator, err := logging.NewLogRotator(app.config.LogDir, app.config.LogRotateUTC, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create log rotator: %w", err)
	}
	app.logRotator = logRotator
	app.baseStation = basestation.NewWriter(logRotator, app.logger)
	return nil
}

func (app *Application) openInput() (io.ReadCloser, error) {
	switch {
	case app.config.Input == "" || app.config.Input == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.Contains(app.config.Input, ":"):
		conn, err := net.Dial("tcp", app.config.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", app.config.Input, err)
		}
		return conn, nil
	default:
		f, err := os.Open(app.config.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", app.config.Input, err)
		}
		return f, nil
	}
}

// runBeast reads a Beast binary protocol stream and writes every decoded
// reply in BaseStation format.
func (app *Application) runBeast() error {
	in, err := app.openInput()
	if err != nil {
		return err
	}
	defer in.Close()

	decoder := beast.NewDecoder(app.logger)
	buf := make([]byte, 4096)

	for {
		select {
		case <-app.ctx.Done():
			return nil
		default:
		}

		n, err := in.Read(buf)
		if n > 0 {
			msgs, derr := decoder.Decode(buf[:n])
			if derr != nil {
				app.logger.WithError(derr).Warn("beast decode error")
			}
			for _, msg := range msgs {
				if werr := app.baseStation.WriteMessage(msg); werr != nil {
					app.logger.WithError(werr).Warn("failed to write BaseStation message")
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}
	}
}

// runHex reads one hex-encoded Mode S frame per line, decodes it, and
// logs the decoded reply. Hex mode is diagnostic: it has no receiver
// timestamp to feed BaseStation's per-message time fields, so frames are
// logged rather than appended to the rotated log.
func (app *Application) runHex() error {
	in, err := app.openInput()
	if err != nil {
		return err
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-app.ctx.Done():
			return nil
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		reply, err := modes.DecodeHex(line)
		if err != nil {
			app.logger.WithError(err).WithField("frame", line).Warn("failed to decode frame")
			continue
		}

		app.logger.WithField("frame", line).Infof("%+v", reply)
	}
	return scanner.Err()
}
