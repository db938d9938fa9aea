package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// ReadFile reads a whole text file.
//
// The context is checked before the read starts; the read itself is not
// interruptible.
func ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes data to path with mode 0644, creating parent
// directories as needed.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SanitizeFileName removes or replaces characters that are invalid in file names.
//
// Invalid characters (<>:"/\|?* and control chars) become underscores,
// trailing dots are removed, whitespace runs collapse to one space and
// trailing spaces are trimmed.
//
//	SanitizeFileName("Song: Part 1/2") // "Song_ Part 1_2"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// OutputPath derives an export file name from a lyric source.
//
// The base name of source (path or URL) without its extension is
// sanitized and given ext; the result is placed in dir. An empty base
// falls back to "lyrics".
//
//	OutputPath("songs/a.lrc", "out", ".srt")              // "out/a.srt"
//	OutputPath("https://x.test/b.lrc?v=1", "", ".json")   // "b.json"
func OutputPath(source, dir, ext string) string {
	base := source
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	base = filepath.Base(filepath.FromSlash(base))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = SanitizeFileName(base)
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "lyrics"
	}
	return filepath.Join(dir, base+ext)
}
