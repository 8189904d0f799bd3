// Package config loads mudra configuration from files, environment
// variables and defaults.
package config

import (
	"fmt"
	"time"

	"github.com/anupamd/mudra/internal/gesture"
)

// Actuator type names accepted in configuration.
const (
	ActuatorMock   = "mock"
	ActuatorSerial = "serial"
	ActuatorGPIO   = "gpio"
)

// Config is the root configuration for the application.
type Config struct {
	Camera    CameraConfig       `mapstructure:"camera"`
	Detector  DetectorConfig     `mapstructure:"detector"`
	Gestures  gesture.Thresholds `mapstructure:"gestures"`
	Dispatch  DispatchConfig     `mapstructure:"dispatch"`
	Actuator  ActuatorConfig     `mapstructure:"actuator"`
	Server    ServerConfig       `mapstructure:"server"`
	DataDir   string             `mapstructure:"data_dir"`
	Tray      bool               `mapstructure:"tray"`
	Verbose   bool               `mapstructure:"verbose"`
}

// CameraConfig selects and tunes the capture device.
type CameraConfig struct {
	ID           int     `mapstructure:"id"`
	MotionThresh float64 `mapstructure:"motion_threshold"`
}

// DetectorConfig tunes the hand-pose estimator.
type DetectorConfig struct {
	MaxHands        int     `mapstructure:"max_hands"`
	MinConfidence   float64 `mapstructure:"min_confidence"`
	MinTrackingConf float64 `mapstructure:"min_tracking_confidence"`
}

// DispatchConfig tunes emission debouncing and the gesture-to-command
// mapping. Gestures absent from Commands are emitted as their raw token.
type DispatchConfig struct {
	MinIntervalMs int               `mapstructure:"min_interval_ms"`
	Commands      map[string]string `mapstructure:"commands"`
}

// MinInterval returns the debounce interval as a duration.
func (d DispatchConfig) MinInterval() time.Duration {
	return time.Duration(d.MinIntervalMs) * time.Millisecond
}

// ActuatorConfig selects the output channel.
type ActuatorConfig struct {
	Type    string `mapstructure:"type"`
	Port    string `mapstructure:"port"`
	Baud    int    `mapstructure:"baud"`
	Pin     string `mapstructure:"pin"`
	PulseMs int    `mapstructure:"pulse_ms"`
}

// ServerConfig controls the embedded HTTP server.
type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch c.Actuator.Type {
	case ActuatorMock, ActuatorSerial, ActuatorGPIO:
	default:
		return fmt.Errorf("unknown actuator type %q", c.Actuator.Type)
	}

	if c.Actuator.Type == ActuatorSerial && c.Actuator.Port == "" {
		return fmt.Errorf("serial actuator requires a port")
	}
	if c.Actuator.Type == ActuatorGPIO && c.Actuator.Pin == "" {
		return fmt.Errorf("gpio actuator requires a pin")
	}

	if c.Dispatch.MinIntervalMs < 0 {
		return fmt.Errorf("dispatch min_interval_ms must not be negative")
	}

	if c.Gestures.Pinch <= 0 || c.Gestures.Fist <= 0 || c.Gestures.OpenHand <= 0 ||
		c.Gestures.Movement <= 0 {
		return fmt.Errorf("gesture thresholds must be positive")
	}
	if c.Gestures.ExtendedAngle <= 0 || c.Gestures.ExtendedAngle >= 180 {
		return fmt.Errorf("extended_angle must be between 0 and 180 degrees")
	}

	return nil
}
