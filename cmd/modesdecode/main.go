// Command modesdecode decodes a stream of Mode S / ADS-B Extended
// Squitter frames. A Beast binary protocol feed is written to stdout in
// BaseStation format; hex-encoded frames (one per line) are decoded and
// reported through the logger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openskynetwork/go-modes/internal/app"
)

func main() {
	var config app.Config
	var inputMode string

	rootCmd := &cobra.Command{
		Use:   "modesdecode",
		Short: "Mode S / ADS-B Extended Squitter decoder",
		Long: `Decodes Mode S downlink transmissions and ADS-B Extended Squitter
payloads per ICAO Annex 10 Volume IV / RTCA DO-260B. Beast input is
written in BaseStation (SBS-1) CSV format; hex input is decoded and
logged.

Example usage:
  modesdecode --input 127.0.0.1:30005
  modesdecode --input-mode hex --input frames.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			switch app.InputMode(inputMode) {
			case app.InputBeast, app.InputHex:
				config.InputMode = app.InputMode(inputMode)
			default:
				return fmt.Errorf("unknown input mode %q (want %q or %q)", inputMode, app.InputBeast, app.InputHex)
			}

			application := app.NewApplication(config)
			return application.Start()
		},
	}

	rootCmd.Flags().StringVarP(&inputMode, "input-mode", "m", string(app.InputBeast), "Input format: beast or hex")
	rootCmd.Flags().StringVarP(&config.Input, "input", "i", "-", "Input source: file path, \"-\" for stdin, or host:port for a beast TCP feed")
	rootCmd.Flags().StringVarP(&config.LogDir, "log-dir", "l", "./logs", "Log directory")
	rootCmd.Flags().BoolVarP(&config.LogRotateUTC, "utc", "u", true, "Use UTC for log rotation")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
