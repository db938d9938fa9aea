package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/handiism/mini-lrc-player/internal/audio"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Lyric source: local path, http(s) URL or .mp3 file
	Source string `json:"source" yaml:"source" toml:"source"`

	// Playback settings
	TickIntervalMs int  `json:"tick_interval_ms" yaml:"tick_interval_ms" toml:"tick_interval_ms"`
	StartPaused    bool `json:"start_paused" yaml:"start_paused" toml:"start_paused"`
	WatchFile      bool `json:"watch_file" yaml:"watch_file" toml:"watch_file"`

	// Network settings
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds" yaml:"http_timeout_seconds" toml:"http_timeout_seconds"`
	UserAgent          string `json:"user_agent" yaml:"user_agent" toml:"user_agent"`
	MaxConcurrentLoads int    `json:"max_concurrent_loads" yaml:"max_concurrent_loads" toml:"max_concurrent_loads"`

	// Export settings
	ExportFormat string `json:"export_format" yaml:"export_format" toml:"export_format"` // lrc, srt, json, txt
	ExportDir    string `json:"export_dir" yaml:"export_dir" toml:"export_dir"`

	// Tag settings
	LyricsLanguage string `json:"lyrics_language" yaml:"lyrics_language" toml:"lyrics_language"`
	CoverMaxSize   int    `json:"cover_max_size" yaml:"cover_max_size" toml:"cover_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Source: filepath.Join(".", "assets", "song.lrc"),

		TickIntervalMs: 250,
		StartPaused:    false,
		WatchFile:      true,

		HTTPTimeoutSeconds: 60,
		UserAgent:          "mini-lrc-player",
		MaxConcurrentLoads: 4,

		ExportFormat: "lrc",
		ExportDir:    "",

		LyricsLanguage: "eng",
		CoverMaxSize:   1000,
	}
}

// Load reads settings from a JSON, YAML or TOML file, chosen by extension.
//
// A missing file is not an error: the defaults are returned. Fields absent
// from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, settings)
	case ".toml":
		err = toml.Unmarshal(data, settings)
	case ".json", "":
		err = json.Unmarshal(data, settings)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a file, in the format matching its extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(s)
		data = buf.Bytes()
	case ".json", "":
		data, err = json.MarshalIndent(s, "", "  ")
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Environment variables read by ApplyEnv.
const (
	EnvSource    = "LRC_SOURCE"
	EnvTickMs    = "LRC_TICK_MS"
	EnvUserAgent = "LRC_USER_AGENT"
	EnvWatch     = "LRC_WATCH"
)

// ApplyEnv loads the given dotenv files (".env" when none are given) into
// the process environment, then overrides settings from LRC_* variables.
//
// Missing dotenv files are ignored; a dotenv file that cannot be read or
// parsed is an error. Variables already set in the
// environment win over dotenv values.
func (s *Settings) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	if v := os.Getenv(EnvSource); v != "" {
		s.Source = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		s.UserAgent = v
	}
	if v := os.Getenv(EnvTickMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTickMs, err)
		}
		s.TickIntervalMs = ms
	}
	if v := os.Getenv(EnvWatch); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvWatch, err)
		}
		s.WatchFile = watch
	}
	return nil
}

// TickInterval returns how often the player re-resolves the active line.
func (s *Settings) TickInterval() time.Duration {
	if s.TickIntervalMs <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(s.TickIntervalMs) * time.Millisecond
}

// HTTPTimeout returns the request timeout for remote lyric files.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// ToTagConfig converts settings to the ID3 tagging configuration.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	if s.LyricsLanguage != "" {
		cfg.Language = s.LyricsLanguage
	}
	return cfg
}
