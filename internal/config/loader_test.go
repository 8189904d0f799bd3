package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anupamd/mudra/internal/detector"
)

func TestLoader_Defaults(t *testing.T) {
	// Load from an empty directory so no config file is picked up
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Actuator.Type != ActuatorMock {
		t.Errorf("default actuator type = %q, want %q", cfg.Actuator.Type, ActuatorMock)
	}
	if cfg.Dispatch.MinIntervalMs != 500 {
		t.Errorf("default min_interval_ms = %d, want 500", cfg.Dispatch.MinIntervalMs)
	}
	if cfg.Gestures.Pinch != 0.05 {
		t.Errorf("default pinch threshold = %f, want 0.05", cfg.Gestures.Pinch)
	}
	dc := detector.DefaultConfig()
	if cfg.Detector.MaxHands != dc.MaxHands || cfg.Detector.MinConfidence != dc.MinConfidence ||
		cfg.Detector.MinTrackingConf != dc.MinTrackingConf {
		t.Errorf("detector defaults = %+v, want %+v", cfg.Detector, dc)
	}
	if cfg.Gestures.ExtendedAngle != 140.0 {
		t.Errorf("default extended_angle = %f, want 140", cfg.Gestures.ExtendedAngle)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoader_LoadWithFile(t *testing.T) {
	content := `
actuator:
  type: serial
  port: /dev/ttyUSB0
  baud: 9600
gestures:
  pinch: 0.07
dispatch:
  min_interval_ms: 250
  commands:
    two_left: ROTATE_CCW
    fist: STOP
`
	path := filepath.Join(t.TempDir(), "mudra.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().LoadWithFile(path)
	if err != nil {
		t.Fatalf("LoadWithFile() error = %v", err)
	}

	if cfg.Actuator.Type != ActuatorSerial || cfg.Actuator.Port != "/dev/ttyUSB0" || cfg.Actuator.Baud != 9600 {
		t.Errorf("actuator = %+v", cfg.Actuator)
	}
	if cfg.Gestures.Pinch != 0.07 {
		t.Errorf("pinch = %f, want 0.07", cfg.Gestures.Pinch)
	}
	// Unset thresholds keep their defaults
	if cfg.Gestures.Fist != 0.08 {
		t.Errorf("fist = %f, want default 0.08", cfg.Gestures.Fist)
	}
	if cfg.Dispatch.Commands["two_left"] != "ROTATE_CCW" {
		t.Errorf("commands = %v", cfg.Dispatch.Commands)
	}
	if cfg.Dispatch.MinInterval().Milliseconds() != 250 {
		t.Errorf("min interval = %v, want 250ms", cfg.Dispatch.MinInterval())
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadWithFile("/nonexistent/mudra.yaml")
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("LoadWithFile() error = %v, want missing-file error", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		l := NewLoader()
		l.setDefaults()
		cfg, err := l.unmarshal()
		if err != nil {
			t.Fatalf("baseline config invalid: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unknown actuator", func(c *Config) { c.Actuator.Type = "laser" }, true},
		{"serial without port", func(c *Config) { c.Actuator.Type = ActuatorSerial }, true},
		{"serial with port", func(c *Config) {
			c.Actuator.Type = ActuatorSerial
			c.Actuator.Port = "/dev/ttyUSB0"
		}, false},
		{"gpio without pin", func(c *Config) { c.Actuator.Type = ActuatorGPIO }, true},
		{"negative interval", func(c *Config) { c.Dispatch.MinIntervalMs = -1 }, true},
		{"zero pinch threshold", func(c *Config) { c.Gestures.Pinch = 0 }, true},
		{"angle out of range", func(c *Config) { c.Gestures.ExtendedAngle = 180 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
