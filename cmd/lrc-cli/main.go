package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/handiism/mini-lrc-player/internal/audio"
	"github.com/handiism/mini-lrc-player/internal/config"
	"github.com/handiism/mini-lrc-player/internal/export"
	ioutils "github.com/handiism/mini-lrc-player/internal/io"
	"github.com/handiism/mini-lrc-player/internal/loader"
	"github.com/handiism/mini-lrc-player/internal/lrc"
	"github.com/handiism/mini-lrc-player/internal/model"
)

func main() {
	// Command line flags
	var (
		sourceFlag  = flag.String("source", "", "Lyric source: .lrc path, http(s) URL or .mp3 with embedded lyrics")
		configFlag  = flag.String("config", "", "Path to config file (.json, .yaml or .toml)")
		atFlag      = flag.Float64("at", 0, "Print the active line at this playback time (seconds, may be negative)")
		exportFlag  = flag.String("export", "", "Export to format: lrc, srt, json, txt (default: config export_format)")
		outputFlag  = flag.String("output", "", "Export destination file or directory (default: stdout or config export_dir)")
		lintFlag    = flag.Bool("lint", false, "Report malformed lines")
		embedFlag   = flag.String("embed", "", "Embed the lyrics into this MP3 file")
		coverFlag   = flag.String("cover", "", "Cover image to embed along with -embed")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
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

	// Get sources: flags, then config file or environment
	configured := *configFlag != "" || os.Getenv(config.EnvSource) != ""
	sources := resolveSources(*sourceFlag, flag.Args(), settings, configured)
	if len(sources) == 0 {
		fmt.Println("Mini LRC Player - inspect, convert and tag LRC lyrics")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  lrc-cli -source <file|URL|mp3> [options]")
		fmt.Println("  lrc-cli <file|URL|mp3>... [options]")
		fmt.Println("  lrc-cli - [options]    (read lyrics from stdin)")
		fmt.Println()
		fmt.Println("For the interactive player, use: lrc-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	ld := loader.NewLoader(settings, func(event loader.ProgressEvent) {
		if event.Level == loader.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Fprintln(os.Stderr, levelPrefix(event.Level)+event.Message)
	})

	var err error
	switch {
	case *lintFlag:
		err = runLint(ctx, ld, sources)
	case *exportFlag != "" || *outputFlag != "":
		format := *exportFlag
		if format == "" {
			format = settings.ExportFormat
		}
		err = runExport(ctx, ld, sources, format, *outputFlag, settings)
	case *embedFlag != "":
		err = runEmbed(ctx, ld, sources[0], *embedFlag, *coverFlag, settings)
	case flagWasSet("at"):
		runAt(os.Stdout, loadLyrics(ctx, ld, sources[0], os.Stdin), *atFlag)
	default:
		for _, source := range sources {
			printEntries(os.Stdout, loadLyrics(ctx, ld, source, os.Stdin))
		}
	}

	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func levelPrefix(level loader.ProgressLevel) string {
	switch level {
	case loader.LevelError:
		return "✗ "
	case loader.LevelWarning:
		return "! "
	case loader.LevelSuccess:
		return "✓ "
	case loader.LevelInfo:
		return "› "
	default:
		return "  "
	}
}

// resolveSources returns the sources named on the command line, or the
// configured source when there are none. A nil result means nothing was
// asked for.
func resolveSources(sourceFlag string, args []string, settings *config.Settings, configured bool) []string {
	var sources []string
	if sourceFlag != "" {
		sources = append(sources, sourceFlag)
	}
	sources = append(sources, args...)
	if len(sources) == 0 && configured && settings.Source != "" {
		sources = []string{settings.Source}
	}
	return sources
}

// flagWasSet reports whether name was given on the command line, so that
// zero or negative values can still be asked for.
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadLyrics loads source, or parses stdin when source is "-". Like
// Loader.Load it never fails: read errors leave the sequence empty.
func loadLyrics(ctx context.Context, ld *loader.Loader, source string, stdin io.Reader) model.Lyrics {
	if source != "-" {
		return ld.Load(ctx, source)
	}
	lyrics, err := lrc.ParseReader(stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, levelPrefix(loader.LevelError)+err.Error())
		return model.Lyrics{}
	}
	return lyrics
}

func printEntries(w io.Writer, lyrics model.Lyrics) {
	for i, e := range lyrics {
		fmt.Fprintf(w, "%4d %s %s\n", i, export.FormatTimestamp(e.Time), e.Content)
	}
}

func runAt(w io.Writer, lyrics model.Lyrics, at float64) {
	index := lrc.CurrentIndex(at, lyrics)
	if index < 0 {
		fmt.Fprintf(w, "%d\n", index)
		return
	}
	fmt.Fprintf(w, "%d %s\n", index, lyrics[index].Content)
}

// runLint reports issues for every source. Sources that cannot be read
// are reported too; the command fails if any source had issues.
func runLint(ctx context.Context, ld *loader.Loader, sources []string) error {
	results, err := ld.LoadAll(ctx, sources)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		if r.Err != nil {
			total++
			continue
		}
		issues := lrc.Lint(r.Text)
		for _, issue := range issues {
			fmt.Printf("%s:%s\n", r.Source, issue)
		}
		total += len(issues)
	}

	if total > 0 {
		return fmt.Errorf("%d issue(s) found", total)
	}
	return nil
}

func runExport(ctx context.Context, ld *loader.Loader, sources []string, formatName, output string, settings *config.Settings) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	exporter := export.NewExporter(format)

	results, err := ld.LoadAll(ctx, sources)
	if err != nil {
		return err
	}

	if output == "" {
		output = settings.ExportDir
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		text, err := exporter.Export(r.Lyrics)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", r.Source, err)
		}

		if output == "" {
			fmt.Print(text)
			continue
		}

		path := output
		if len(results) > 1 || filepath.Ext(output) == "" {
			path = ioutils.OutputPath(r.Source, output, format.Extension())
		}
		if err := ioutils.WriteFile(ctx, path, []byte(text)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
	}
	return nil
}

func runEmbed(ctx context.Context, ld *loader.Loader, source, mp3Path, coverPath string, settings *config.Settings) error {
	text, err := ld.FetchText(ctx, source)
	if err != nil {
		return err
	}

	var artwork []byte
	if coverPath != "" {
		data, err := os.ReadFile(coverPath)
		if err != nil {
			return fmt.Errorf("reading cover: %w", err)
		}
		artwork, err = ioutils.NewImageService().PrepareCover(ctx, data, settings.CoverMaxSize)
		if err != nil {
			return err
		}
	}

	tagger := audio.NewTagger(settings.ToTagConfig())
	if err := tagger.EmbedLyrics(mp3Path, text, artwork); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Embedded %d lyric lines into %s\n", len(lrc.Parse(text)), mp3Path)
	return nil
}
