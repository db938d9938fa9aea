package lrc

import (
	"strings"
	"testing"
)

// Run with: go test -fuzz=FuzzParse -fuzztime=1m ./internal/lrc/...

// FuzzParse checks that arbitrary text never panics the parser and that
// every entry maps to one non-empty input line.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"[00:01.50]hello\n[00:03.00]world\n",
		"[00:01.00]a\n\n[00:02.00]b\n",
		"\r\n\r\n",
		"no brackets at all",
		"]]]]",
		"[::::]x",
		"[99999999999999999999:1e400]overflow",
		"\xef\xbb\xbf[00:01.00]BOM",
		"[\xff\xfe:00]invalid utf8",
		"[00:01.00]" + strings.Repeat("x", 65536),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		lyrics := Parse(text)

		if strings.HasPrefix(text, "\uFEFF") {
			assertLyricsEqual(t, lyrics, Parse(strings.TrimPrefix(text, "\uFEFF")))
		}

		lines := 0
		for _, line := range strings.Split(strings.TrimPrefix(text, "\uFEFF"), "\n") {
			if strings.TrimSuffix(line, "\r") != "" {
				lines++
			}
		}
		if len(lyrics) != lines {
			t.Fatalf("got %d entries for %d non-empty lines", len(lyrics), lines)
		}

		for _, e := range lyrics {
			if e.Content != strings.TrimSpace(e.Content) {
				t.Fatalf("content %q not trimmed", e.Content)
			}
		}

		_ = Lint(text)
		_ = CurrentIndex(1, lyrics)
	})
}

// FuzzParseTime checks that timestamp conversion never panics.
func FuzzParseTime(f *testing.F) {
	for _, s := range []string{"[00:01.50", "", "[", ":", "[日本:語", "[01:02:03"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		_ = ParseTime(raw)
	})
}
