package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/handiism/mini-lrc-player/internal/audio"
	"github.com/handiism/mini-lrc-player/internal/config"
	"github.com/handiism/mini-lrc-player/internal/debug"
	"github.com/handiism/mini-lrc-player/internal/http"
	ioutils "github.com/handiism/mini-lrc-player/internal/io"
	"github.com/handiism/mini-lrc-player/internal/lrc"
	"github.com/handiism/mini-lrc-player/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a load progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Source  string
}

// SourceKind tells how a lyric source is retrieved.
type SourceKind int

const (
	// SourceFile is a local lyric file.
	SourceFile SourceKind = iota

	// SourceURL is an http:// or https:// address.
	SourceURL

	// SourceMP3 is a local MP3 whose USLT frame holds the lyrics.
	SourceMP3
)

// String returns a short name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceURL:
		return "url"
	case SourceMP3:
		return "mp3"
	default:
		return "file"
	}
}

// Classify decides how source is retrieved.
func Classify(source string) SourceKind {
	lower := strings.ToLower(strings.TrimSpace(source))
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SourceURL
	case strings.HasSuffix(lower, ".mp3"):
		return SourceMP3
	default:
		return SourceFile
	}
}

// Result is the outcome of loading one source in LoadAll.
type Result struct {
	Source string
	Text   string
	Lyrics model.Lyrics
	Err    error
}

// Loader retrieves lyric text and parses it.
type Loader struct {
	settings   *config.Settings
	httpClient *http.Client
	tagger     *audio.Tagger

	onProgress func(ProgressEvent)
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the HTTP client built from settings.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.httpClient = c
	}
}

// NewLoader creates a Loader. onProgress may be nil.
func NewLoader(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Loader {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	l := &Loader{
		settings: settings,
		httpClient: http.NewClient(
			http.WithTimeout(settings.HTTPTimeout()),
			http.WithUserAgent(settings.UserAgent),
		),
		tagger:     audio.NewTagger(settings.ToTagConfig()),
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FetchText retrieves the raw lyric text of source without parsing it.
//
// Unlike Load, failures are returned to the caller.
func (l *Loader) FetchText(ctx context.Context, source string) (string, error) {
	kind := Classify(source)
	l.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s (%s)", source, kind), Level: LevelVerbose, Source: source})

	switch kind {
	case SourceURL:
		return l.httpClient.GetString(ctx, strings.TrimSpace(source))
	case SourceMP3:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return l.tagger.ReadLyrics(source)
	default:
		return ioutils.ReadFile(ctx, source)
	}
}

// Load retrieves and parses source.
//
// Load never fails: a retrieval error is reported as a LevelError event
// and in the debug log, and an empty sequence is returned so the player
// proceeds with no lyrics shown.
func (l *Loader) Load(ctx context.Context, source string) model.Lyrics {
	start := time.Now()
	defer func() { debug.LogTiming("load "+source, time.Since(start)) }()

	text, err := l.FetchText(ctx, source)
	if err != nil {
		l.fail(source, err)
		return model.Lyrics{}
	}

	lyrics := lrc.Parse(text)
	l.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d lyric lines from %s", len(lyrics), source), Level: LevelSuccess, Source: source})
	return lyrics
}

// LoadAll loads several sources concurrently, at most
// Settings.MaxConcurrentLoads at a time. Results keep the input order.
// Per-source failures are recorded in Result.Err and reported like Load;
// the returned error is only set when ctx is cancelled.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]Result, error) {
	results := make([]Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	limit := l.settings.MaxConcurrentLoads
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			res := Result{Source: source}
			text, err := l.FetchText(gctx, source)
			if err != nil {
				l.fail(source, err)
				res.Err = err
				res.Lyrics = model.Lyrics{}
			} else {
				res.Text = text
				res.Lyrics = lrc.Parse(text)
				l.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d lyric lines from %s", len(res.Lyrics), source), Level: LevelVerbose, Source: source})
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (l *Loader) fail(source string, err error) {
	debug.Log("fetching %s failed: %v", source, err)
	l.progress(ProgressEvent{Message: fmt.Sprintf("Fetching lyric content error (%s): %v", source, err), Level: LevelError, Source: source})
}

func (l *Loader) progress(event ProgressEvent) {
	if l.onProgress != nil {
		l.onProgress(event)
	}
}
