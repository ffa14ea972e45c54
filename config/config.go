package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	appDirName = ".keytap"

	defaultLogLevel      = "debug"
	defaultBackend       = "gohook"
	defaultQueueSize     = 256
	defaultFlushInterval = time.Second
	defaultDayStartHour  = 5
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Hook    HookConfig    `toml:"hook"`
	Journal JournalConfig `toml:"journal"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type HookConfig struct {
	Backend   string `toml:"backend"`
	QueueSize int    `toml:"queue_size"`
}

type JournalConfig struct {
	FlushInterval string `toml:"flush_interval"`
	DayStartHour  *int   `toml:"day_start_hour"`
	Notify        *bool  `toml:"notify"`
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: defaultLogLevel},
		Hook: HookConfig{
			Backend:   defaultBackend,
			QueueSize: defaultQueueSize,
		},
		Journal: JournalConfig{
			FlushInterval: defaultFlushInterval.String(),
		},
	}
}

// DataDir returns ~/.keytap, creating it when missing.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, appDirName)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.Mkdir(dir, 0755); err != nil {
			return "", err
		}
	}
	return dir, nil
}

func Path() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing or empty file yields the defaults.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.parseFlushInterval(); err != nil {
		return Config{}, err
	}
	if h := cfg.DayStartHour(); h < 0 || h > 23 {
		return Config{}, fmt.Errorf("journal.day_start_hour must be within 0-23, got %d", h)
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelDebug
}

func (c Config) Backend() string {
	b := strings.ToLower(strings.TrimSpace(c.Hook.Backend))
	if b == "" {
		return defaultBackend
	}
	return b
}

func (c Config) QueueSize() int {
	if c.Hook.QueueSize <= 0 {
		return defaultQueueSize
	}
	return c.Hook.QueueSize
}

func (c Config) FlushInterval() time.Duration {
	d, err := c.parseFlushInterval()
	if err != nil {
		return defaultFlushInterval
	}
	return d
}

func (c Config) parseFlushInterval() (time.Duration, error) {
	s := strings.TrimSpace(c.Journal.FlushInterval)
	if s == "" {
		return defaultFlushInterval, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("journal.flush_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("journal.flush_interval must be positive, got %s", s)
	}
	return d, nil
}

func (c Config) DayStartHour() int {
	if c.Journal.DayStartHour == nil {
		return defaultDayStartHour
	}
	return *c.Journal.DayStartHour
}

func (c Config) DayStart() time.Duration {
	return time.Duration(c.DayStartHour()) * time.Hour
}

func (c Config) NotifyEnabled() bool {
	if c.Journal.Notify == nil {
		return true
	}
	return *c.Journal.Notify
}
