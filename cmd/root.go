package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device"
)

var (
	// Persistent CLI flags shared by every subcommand
	devicePath  string // Path to the device description JSON
	sessionPath string // Path to the session settings YAML
	logLevel    string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mosviz",
	Short: "Analytic MOSFET device model and I-V explorer",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// sessionSettings resolves the effective settings: built-in defaults first,
// then the --session file, then an explicit --device override.
func sessionSettings() SessionConfig {
	cfg := DefaultSessionConfig()
	if sessionPath != "" {
		loaded, err := LoadSessionConfig(sessionPath)
		if err != nil {
			logrus.Fatalf("Failed to load session settings: %v", err)
		}
		cfg = loaded
	}
	if devicePath != "" {
		cfg.Device = devicePath
	}
	if cfg.Device == "" {
		logrus.Fatalf("No device description given. Pass --device or a session file that names one.")
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid session settings: %v", err)
	}
	return cfg
}

// loadCatalog reads and validates the device description.
func loadCatalog(cfg SessionConfig) *device.Catalog {
	catalog, err := device.LoadFile(cfg.Device)
	if err != nil {
		logrus.Fatalf("Failed to load device description: %v", err)
	}
	logrus.Debugf("Loaded %d parts from %s", catalog.Len(), cfg.Device)
	return catalog
}

// loadDerived loads the catalog and derives the electrical parameters.
func loadDerived(cfg SessionConfig) (*device.Catalog, *device.DerivedParameters) {
	catalog := loadCatalog(cfg)
	derived, err := device.Derive(catalog, device.Silicon())
	if err != nil {
		logrus.Fatalf("Failed to derive device parameters: %v", err)
	}
	logrus.Debugf("Derived %s device: Vth=%.4f V, beta=%s",
		derived.Polarity, derived.Threshold, formatEng(derived.Beta, "A/V2"))
	return catalog, derived
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up the persistent flags
func init() {
	rootCmd.PersistentFlags().StringVar(&devicePath, "device", "", "Path to the device description JSON (overrides the session file)")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", "", "Path to the session settings YAML")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
