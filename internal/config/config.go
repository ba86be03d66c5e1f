package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings thermo reads from its TOML file. Command-line
// flags are applied on top by the caller.
type Config struct {
	LogFile         string
	PollInterval    time.Duration
	RefreshInterval time.Duration
	Notify          bool
	// LogPath is where diagnostics are written; DisabledLogPath turns them off.
	LogPath string
}

// DisabledLogPath as log_path disables the diagnostics log.
const DisabledLogPath = "-"

// DefaultLogFile is where the Bigscreen Beyond driver writes its telemetry log.
const DefaultLogFile = `C:\Program Files (x86)\Steam\steamapps\common\Bigscreen Beyond Driver\bin\log.txt`

const (
	defaultConfigPath = "~/.config/thermo/config.toml"
	defaultLogPath    = "~/.local/state/thermo/thermo.log"

	DefaultPollInterval    = time.Second
	DefaultRefreshInterval = 5 * time.Second
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		LogFile:         DefaultLogFile,
		PollInterval:    DefaultPollInterval,
		RefreshInterval: DefaultRefreshInterval,
		Notify:          true,
		LogPath:         mustExpand(defaultLogPath),
	}
}

// Load locates and parses the thermo config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile        string  `toml:"log_file"`
		PollSeconds    float64 `toml:"poll_seconds"`
		RefreshSeconds float64 `toml:"refresh_seconds"`
		Notify         *bool   `toml:"notify"`
		LogPath        string  `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = Seconds(raw.PollSeconds)
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshInterval = Seconds(raw.RefreshSeconds)
	}
	if raw.Notify != nil {
		cfg.Notify = *raw.Notify
	}
	switch logPath := strings.TrimSpace(raw.LogPath); logPath {
	case "":
	case DisabledLogPath:
		cfg.LogPath = DisabledLogPath
	default:
		cfg.LogPath = mustExpand(logPath)
	}

	return cfg, nil
}

// Seconds converts a possibly fractional number of seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// ExpandPath resolves a leading tilde and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
