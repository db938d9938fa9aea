package lrc

import (
	"fmt"
	"io"
	"strings"

	"github.com/handiism/mini-lrc-player/internal/model"
)

// Parse splits lyric file text into timed entries.
//
// Lines are separated by "\n"; a trailing "\r" on each line is dropped so
// CRLF files behave like LF files. Empty lines are skipped. Every other
// line is split on "]": the text before the first bracket is the
// timestamp token and the text between the first and second bracket is
// the content, trimmed of surrounding whitespace. Anything after a second
// bracket is discarded.
//
// A leading UTF-8 byte order mark is removed first, as editors on Windows
// often save one.
//
// Parse is pure: parsing the same text twice yields identical sequences.
// The result is never nil.
func Parse(text string) model.Lyrics {
	lines := strings.Split(trimBOM(text), "\n")
	result := make(model.Lyrics, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		rawTime, content := splitLine(line)
		result = append(result, model.Entry{
			Time:    ParseTime(rawTime),
			Content: strings.TrimSpace(content),
		})
	}

	return result
}

// ParseReader reads r to the end and parses it with Parse.
func ParseReader(r io.Reader) (model.Lyrics, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lyric text: %w", err)
	}
	return Parse(string(data)), nil
}

// trimBOM drops a leading UTF-8 byte order mark.
func trimBOM(text string) string {
	return strings.TrimPrefix(text, "\uFEFF")
}

// splitLine returns the timestamp token and the raw content of one line.
// A line without "]" is all timestamp and has no content.
func splitLine(line string) (rawTime, content string) {
	parts := strings.SplitN(line, "]", 3)
	rawTime = parts[0]
	if len(parts) > 1 {
		content = parts[1]
	}
	return rawTime, content
}
