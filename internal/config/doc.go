// Package config provides configuration management for mini-lrc-player.
//
// This package handles:
//   - Loading and saving settings as JSON, YAML or TOML
//   - Default configuration values
//   - Overrides from .env files and LRC_* environment variables
//   - Conversion to the ID3 tag configuration used by the audio package
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads ./assets/song.lrc, ticks every 250ms, reloads on file change
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	// .env
//	LRC_SOURCE=https://example.com/song.lrc
//	LRC_TICK_MS=100
//
//	err := settings.ApplyEnv()
//
// Command-line flags are applied by the commands after ApplyEnv and take
// precedence over both.
package config
