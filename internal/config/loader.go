package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/anupamd/mudra/internal/detector"
	"github.com/anupamd/mudra/internal/gesture"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "mudra"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "MUDRA"
)

// Loader handles loading configuration from various sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from files, environment variables, and
// defaults, then validates it. A missing config file is not an error;
// defaults and environment variables apply.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.addConfigPaths()
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadWithFile loads configuration from a specific file path.
func (l *Loader) LoadWithFile(configFile string) (*Config, error) {
	if configFile == "" {
		return l.Load()
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configFile)
	}

	l.v.SetConfigFile(configFile)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(home, ".mudra"))
	}
	l.v.AddConfigPath("/etc/mudra")
}

func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
}

func (l *Loader) setDefaults() {
	th := gesture.DefaultThresholds()

	l.v.SetDefault("camera.id", 0)
	l.v.SetDefault("camera.motion_threshold", 1.0)

	dc := detector.DefaultConfig()
	l.v.SetDefault("detector.max_hands", dc.MaxHands)
	l.v.SetDefault("detector.min_confidence", dc.MinConfidence)
	l.v.SetDefault("detector.min_tracking_confidence", dc.MinTrackingConf)

	l.v.SetDefault("gestures.pinch", th.Pinch)
	l.v.SetDefault("gestures.fist", th.Fist)
	l.v.SetDefault("gestures.open_hand", th.OpenHand)
	l.v.SetDefault("gestures.pointing", th.Pointing)
	l.v.SetDefault("gestures.extended_angle", th.ExtendedAngle)
	l.v.SetDefault("gestures.tip_rise", th.TipRise)
	l.v.SetDefault("gestures.thumb_reach", th.ThumbReach)
	l.v.SetDefault("gestures.movement", th.Movement)

	l.v.SetDefault("dispatch.min_interval_ms", 500)
	l.v.SetDefault("dispatch.commands", map[string]string{})

	l.v.SetDefault("actuator.type", ActuatorMock)
	l.v.SetDefault("actuator.baud", 115200)
	l.v.SetDefault("actuator.pulse_ms", 100)

	l.v.SetDefault("server.enabled", true)
	l.v.SetDefault("server.addr", ":8080")

	defaultDataDir := ".mudra"
	if home, err := os.UserHomeDir(); err == nil {
		defaultDataDir = filepath.Join(home, ".mudra")
	}
	l.v.SetDefault("data_dir", defaultDataDir)

	l.v.SetDefault("tray", false)
	l.v.SetDefault("verbose", false)
}
