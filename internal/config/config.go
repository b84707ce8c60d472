package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/queueboard/internal/queuetimes"
)

// Config captures everything queueboard reads at startup.
type Config struct {
	URL            string
	ParkName       string
	CycleInterval  time.Duration
	UTCOffset      time.Duration
	RequestTimeout time.Duration
	Theme          string
	LogFile        string
	MetricsAddr    string
}

const (
	defaultConfigPath     = "~/.config/queueboard/config.toml"
	defaultLogFile        = "~/.local/state/queueboard/queueboard.log"
	defaultParkName       = "Disneyland"
	defaultTheme          = "Nightfox"
	defaultCycleInterval  = 30 * time.Second
	defaultUTCOffset      = -7 * time.Hour
	defaultRequestTimeout = 10 * time.Second

	maxOffsetHours = 14
)

// Environment variables that override the config file.
const (
	EnvURL            = "QUEUEBOARD_URL"
	EnvParkName       = "QUEUEBOARD_PARK_NAME"
	EnvCycleSeconds   = "QUEUEBOARD_CYCLE_SECONDS"
	EnvUTCOffsetHours = "QUEUEBOARD_UTC_OFFSET_HOURS"
	EnvTheme          = "QUEUEBOARD_THEME"
	EnvLogFile        = "QUEUEBOARD_LOG_FILE"
	EnvMetricsAddr    = "QUEUEBOARD_METRICS_ADDR"
)

type fileConfig struct {
	URL                   string  `toml:"url"`
	ParkName              string  `toml:"park_name"`
	CycleSeconds          *int    `toml:"cycle_seconds"`
	UTCOffsetHours        *int    `toml:"utc_offset_hours"`
	RequestTimeoutSeconds *int    `toml:"request_timeout_seconds"`
	Theme                 string  `toml:"theme"`
	LogFile               *string `toml:"log_file"`
	MetricsAddr           string  `toml:"metrics_addr"`
}

// Defaults returns the configuration used when no file or overrides exist.
func Defaults() Config {
	return Config{
		URL:            queuetimes.DefaultURL,
		ParkName:       defaultParkName,
		CycleInterval:  defaultCycleInterval,
		UTCOffset:      defaultUTCOffset,
		RequestTimeout: defaultRequestTimeout,
		Theme:          defaultTheme,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load reads the TOML config at path (or the default location), then applies
// environment overrides. A .env file in the working directory is loaded into
// the environment first. A missing config file is not an error.
func Load(path string) (Config, error) {
	// Missing .env is fine; existing environment wins over it.
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if raw != nil {
		if err := cfg.applyFile(*raw); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (*fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &raw, nil
}

func (c *Config) applyFile(raw fileConfig) error {
	if v := strings.TrimSpace(raw.URL); v != "" {
		c.URL = v
	}
	if v := strings.TrimSpace(raw.ParkName); v != "" {
		c.ParkName = v
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		c.Theme = v
	}
	c.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	if raw.LogFile != nil {
		if err := c.setLogFile(*raw.LogFile); err != nil {
			return err
		}
	}
	if raw.CycleSeconds != nil {
		if err := c.setCycleSeconds(*raw.CycleSeconds); err != nil {
			return err
		}
	}
	if raw.UTCOffsetHours != nil {
		if err := c.setUTCOffsetHours(*raw.UTCOffsetHours); err != nil {
			return err
		}
	}
	if raw.RequestTimeoutSeconds != nil {
		secs := *raw.RequestTimeoutSeconds
		if secs <= 0 {
			return fmt.Errorf("request_timeout_seconds must be positive, got %d", secs)
		}
		c.RequestTimeout = time.Duration(secs) * time.Second
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvURL)); v != "" {
		c.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvParkName)); v != "" {
		c.ParkName = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		c.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		if err := c.setLogFile(v); err != nil {
			return err
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCycleSeconds)); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", EnvCycleSeconds, v)
		}
		if err := c.setCycleSeconds(secs); err != nil {
			return err
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvUTCOffsetHours)); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", EnvUTCOffsetHours, v)
		}
		if err := c.setUTCOffsetHours(hours); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) setCycleSeconds(secs int) error {
	if secs <= 0 {
		return fmt.Errorf("cycle_seconds must be positive, got %d", secs)
	}
	c.CycleInterval = time.Duration(secs) * time.Second
	return nil
}

func (c *Config) setUTCOffsetHours(hours int) error {
	if hours < -maxOffsetHours || hours > maxOffsetHours {
		return fmt.Errorf("utc_offset_hours must be within ±%d, got %d", maxOffsetHours, hours)
	}
	c.UTCOffset = time.Duration(hours) * time.Hour
	return nil
}

// setLogFile expands path; an empty value disables the log file.
func (c *Config) setLogFile(path string) error {
	if strings.TrimSpace(path) == "" {
		c.LogFile = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("log_file: %w", err)
	}
	c.LogFile = expanded
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
