package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anupamd/mudra/internal/actuator"
	"github.com/anupamd/mudra/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mudra",
	Short: "Hand gesture control service",
	Long: `Mudra watches a camera, classifies hand gestures from estimated
landmarks and turns them into debounced commands for a serial or GPIO
actuator. Run without a subcommand to see available commands.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., ~/.mudra, /etc/mudra)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// loadConfig loads and validates the configuration, applying the
// persistent flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().LoadWithFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// buildActuator constructs the configured actuator.
func buildActuator(cfg *config.Config) (actuator.Actuator, error) {
	switch cfg.Actuator.Type {
	case config.ActuatorSerial:
		return actuator.NewSerial(cfg.Actuator.Port, cfg.Actuator.Baud)
	case config.ActuatorGPIO:
		return actuator.NewGPIO(cfg.Actuator.Pin, time.Duration(cfg.Actuator.PulseMs)*time.Millisecond)
	case config.ActuatorMock:
		return actuator.NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown actuator type %q", cfg.Actuator.Type)
	}
}
