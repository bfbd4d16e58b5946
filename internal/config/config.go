// Package config loads ottotimer settings.
//
// Settings come from built-in defaults, then an optional YAML file, then
// environment variables. Command-line flags are applied last by main.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up when -config is not given.
const DefaultPath = "ottotimer.yaml"

// Environment variable names. A .env file is loaded into the environment
// before these are read.
const (
	EnvAudio          = "OTTOTIMER_AUDIO"
	EnvDefaultSeconds = "OTTOTIMER_DEFAULT_SECONDS"
	EnvLogFile        = "OTTOTIMER_LOG_FILE"
	EnvLogLevel       = "OTTOTIMER_LOG_LEVEL"
)

// Audio backends accepted in settings.
var audioBackends = []string{"oto", "malgo", "none"}

// Settings holds runtime configuration.
type Settings struct {
	DefaultSeconds    uint32
	TickInterval      time.Duration
	VoicePollInterval time.Duration
	SettleInterval    time.Duration
	Audio             string
	LogFile           string
	LogLevel          string
}

type yamlSettings struct {
	DefaultSeconds *uint32 `yaml:"default_seconds"`
	TickMS         *int    `yaml:"tick_ms"`
	VoicePollMS    *int    `yaml:"voice_poll_ms"`
	SettleMS       *int    `yaml:"settle_ms"`
	Audio          *string `yaml:"audio"`
	LogFile        *string `yaml:"log_file"`
	LogLevel       *string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		DefaultSeconds:    60,
		TickInterval:      250 * time.Millisecond,
		VoicePollInterval: 100 * time.Millisecond,
		SettleInterval:    100 * time.Millisecond,
		Audio:             "oto",
		LogFile:           ".otto-logs/ottotimer.log",
		LogLevel:          "normal",
	}
}

// Load reads settings from a YAML file on top of the defaults. A missing
// file is not an error.
func Load(path string) (Settings, error) {
	settings := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYaml(&settings, fileData)
	return settings, nil
}

func applyYaml(s *Settings, y yamlSettings) {
	if y.DefaultSeconds != nil {
		s.DefaultSeconds = *y.DefaultSeconds
	}
	if y.TickMS != nil {
		s.TickInterval = time.Duration(*y.TickMS) * time.Millisecond
	}
	if y.VoicePollMS != nil {
		s.VoicePollInterval = time.Duration(*y.VoicePollMS) * time.Millisecond
	}
	if y.SettleMS != nil {
		s.SettleInterval = time.Duration(*y.SettleMS) * time.Millisecond
	}
	if y.Audio != nil {
		s.Audio = *y.Audio
	}
	if y.LogFile != nil {
		s.LogFile = *y.LogFile
	}
	if y.LogLevel != nil {
		s.LogLevel = *y.LogLevel
	}
}

// ApplyEnv overrides settings from environment variables read through
// getenv (os.Getenv in production).
func (s *Settings) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvAudio); v != "" {
		s.Audio = v
	}
	if v := getenv(EnvLogFile); v != "" {
		s.LogFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := getenv(EnvDefaultSeconds); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDefaultSeconds, err)
		}
		s.DefaultSeconds = uint32(n)
	}
	return nil
}

// SetDefaultSeconds overrides DefaultSeconds from a command-line value.
// Values that do not fit the 32-bit duration field are rejected rather
// than wrapped.
func (s *Settings) SetDefaultSeconds(n int64) error {
	if n < 0 || n > math.MaxUint32 {
		return fmt.Errorf("default seconds %d out of range [0, %d]", n, uint32(math.MaxUint32))
	}
	s.DefaultSeconds = uint32(n)
	return nil
}

// Validate checks that the settings can drive the application.
func (s Settings) Validate() error {
	var problems []string

	if s.TickInterval <= 0 {
		problems = append(problems, "tick interval must be positive")
	}
	if s.VoicePollInterval <= 0 {
		problems = append(problems, "voice poll interval must be positive")
	}
	if s.SettleInterval < 0 {
		problems = append(problems, "settle interval must not be negative")
	}
	if !knownBackend(s.Audio) {
		problems = append(problems, fmt.Sprintf("unknown audio backend %q (want one of %s)", s.Audio, strings.Join(audioBackends, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
	}
	return nil
}

func knownBackend(name string) bool {
	for _, b := range audioBackends {
		if b == name {
			return true
		}
	}
	return false
}
