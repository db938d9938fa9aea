package export

import (
	"fmt"
	"math"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/handiism/mini-lrc-player/internal/model"
)

// DefaultTailSeconds is how long the last SRT cue stays on screen.
const DefaultTailSeconds = 5.0

// Format represents supported export formats.
//
// Each format serves a different consumer:
//   - LRC: normalized lyric file, re-readable by this player
//   - SRT: subtitle cues for video players
//   - JSON: machine-readable entries
//   - Text: bare lyric text without timing
type Format int

const (
	// FormatLRC writes "[mm:ss.xx]content" lines.
	FormatLRC Format = iota

	// FormatSRT writes numbered SubRip cues. Each cue ends where the next
	// timed line starts.
	FormatSRT

	// FormatJSON writes an array of {"time", "content"} objects.
	FormatJSON

	// FormatText writes the content of every line, one per line.
	FormatText
)

// ParseFormat maps a format name (lrc, srt, json, txt/text) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "lrc":
		return FormatLRC, nil
	case "srt":
		return FormatSRT, nil
	case "json":
		return FormatJSON, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return FormatLRC, fmt.Errorf("unknown export format %q", name)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatSRT:
		return ".srt"
	case FormatJSON:
		return ".json"
	case FormatText:
		return ".txt"
	default:
		return ".lrc"
	}
}

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	return strings.TrimPrefix(f.Extension(), ".")
}

// Exporter renders parsed lyrics in one output format.
//
// Example:
//
//	exporter := NewExporter(FormatSRT)
//	content, err := exporter.Export(lyrics)
//	os.WriteFile("song.srt", []byte(content), 0644)
type Exporter struct {
	format Format
	tail   float64
}

// NewExporter creates a new Exporter for format.
func NewExporter(format Format) *Exporter {
	return &Exporter{
		format: format,
		tail:   DefaultTailSeconds,
	}
}

// Format returns the exporter's output format.
func (e *Exporter) Format() Format {
	return e.format
}

// Export renders lyrics and returns the file content.
func (e *Exporter) Export(lyrics model.Lyrics) (string, error) {
	switch e.format {
	case FormatSRT:
		return e.createSRT(lyrics), nil
	case FormatJSON:
		return e.createJSON(lyrics)
	case FormatText:
		return e.createText(lyrics), nil
	default:
		return e.createLRC(lyrics), nil
	}
}

// createLRC writes one "[mm:ss.xx]content" line per entry. Entries with
// an unparsable time keep their position with a placeholder timestamp.
func (e *Exporter) createLRC(lyrics model.Lyrics) string {
	var sb strings.Builder

	for _, entry := range lyrics {
		sb.WriteString(FormatTimestamp(entry.Time))
		sb.WriteString(entry.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

// createSRT writes SubRip cues:
//
//	1
//	00:00:01,500 --> 00:00:03,000
//	hello
//
// Entries without a valid time are skipped. See cueEnd for when a cue
// stops.
func (e *Exporter) createSRT(lyrics model.Lyrics) string {
	timed := timedEntries(lyrics)

	var sb strings.Builder
	for i, entry := range timed {
		end := cueEnd(timed, i, e.tail)

		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", srtTimestamp(entry.Time), srtTimestamp(end)))
		sb.WriteString(entry.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

func timedEntries(lyrics model.Lyrics) model.Lyrics {
	var timed model.Lyrics
	for _, entry := range lyrics {
		if entry.Valid() {
			timed = append(timed, entry)
		}
	}
	return timed
}

// cueEnd returns when cue i stops: at the first later entry with a
// strictly greater time, or tail seconds after its start when there is
// none. Entries sharing a timestamp therefore end together, and end times
// never decrease for ordered input.
func cueEnd(timed model.Lyrics, i int, tail float64) float64 {
	start := timed[i].Time
	for _, next := range timed[i+1:] {
		if next.Time > start {
			return next.Time
		}
	}
	return start + tail
}

// jsonEntry is the JSON shape of one entry. NaN times become null since
// JSON has no NaN.
type jsonEntry struct {
	Time    *float64 `json:"time"`
	Content string   `json:"content"`
}

func (e *Exporter) createJSON(lyrics model.Lyrics) (string, error) {
	out := make([]jsonEntry, len(lyrics))
	for i, entry := range lyrics {
		out[i].Content = entry.Content
		if entry.Valid() {
			t := entry.Time
			out[i].Time = &t
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode lyrics: %w", err)
	}
	return string(data) + "\n", nil
}

func (e *Exporter) createText(lyrics model.Lyrics) string {
	var sb strings.Builder
	for _, entry := range lyrics {
		sb.WriteString(entry.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTimestamp renders seconds as an LRC "[mm:ss.xx]" tag. Negative
// times clamp to zero and invalid ones render as "[--:--.--]".
func FormatTimestamp(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "[--:--.--]"
	}
	cs := int64(math.Round(math.Max(seconds, 0) * 100))
	return fmt.Sprintf("[%02d:%02d.%02d]", cs/6000, (cs/100)%60, cs%100)
}

// srtTimestamp renders seconds as "hh:mm:ss,mmm".
func srtTimestamp(seconds float64) string {
	ms := int64(math.Round(math.Max(seconds, 0) * 1000))
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3600000, (ms/60000)%60, (ms/1000)%60, ms%1000)
}
