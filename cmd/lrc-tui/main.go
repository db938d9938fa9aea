package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/mini-lrc-player/internal/config"
	"github.com/handiism/mini-lrc-player/internal/debug"
	"github.com/handiism/mini-lrc-player/internal/tui"
)

func main() {
	var (
		sourceFlag   = flag.String("source", "", "Lyric source: .lrc path, http(s) URL or .mp3 with embedded lyrics")
		configFlag   = flag.String("config", "", "Path to config file (.json, .yaml or .toml)")
		pausedFlag   = flag.Bool("paused", false, "Wait for space before starting playback")
		noWatch      = flag.Bool("no-watch", false, "Do not reload the lyric file when it changes")
		debugLogFlag = flag.String("debug-log", filepath.Join(os.TempDir(), "lrc-tui-debug.log"), "Debug log file used when LRC_DEBUG is set")
	)

	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// Flags override config and environment
	if *sourceFlag != "" {
		settings.Source = *sourceFlag
	} else if flag.NArg() > 0 {
		settings.Source = flag.Arg(0)
	}
	if *pausedFlag {
		settings.StartPaused = true
	}
	if *noWatch {
		settings.WatchFile = false
	}

	// The alt screen owns the terminal, so debug output goes to a file.
	closeLog := func() error { return nil }
	if debug.Enabled() {
		var err error
		closeLog, err = debug.SetOutputFile(*debugLogFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Debug log: %s\n", *debugLogFlag)
	}

	err := tui.Run(settings)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
