package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/handiism/mini-lrc-player/internal/config"
	"github.com/handiism/mini-lrc-player/internal/loader"
	"github.com/handiism/mini-lrc-player/internal/lrc"
)

func TestResolveSources(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Source = "from-config.lrc"

	tests := []struct {
		name       string
		sourceFlag string
		args       []string
		configured bool
		want       []string
	}{
		{"flag and args", "a.lrc", []string{"b.lrc"}, true, []string{"a.lrc", "b.lrc"}},
		{"args only", "", []string{"b.lrc"}, true, []string{"b.lrc"}},
		{"config source", "", nil, true, []string{"from-config.lrc"}},
		{"nothing configured", "", nil, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSources(tt.sourceFlag, tt.args, settings, tt.configured)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") || len(got) != len(tt.want) {
				t.Errorf("resolveSources() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunAt(t *testing.T) {
	lyrics := lrc.Parse("[00:01.00]first\n[00:02.00]second\n")

	tests := []struct {
		at   float64
		want string
	}{
		{-5, "-1\n"},
		{0, "-1\n"},
		{1.5, "0 first\n"},
		{10, "1 second\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		runAt(&buf, lyrics, tt.at)
		if buf.String() != tt.want {
			t.Errorf("runAt(%v) = %q, want %q", tt.at, buf.String(), tt.want)
		}
	}
}

func TestLoadLyrics_Stdin(t *testing.T) {
	ld := loader.NewLoader(nil, nil)
	lyrics := loadLyrics(context.Background(), ld, "-", strings.NewReader("[00:01.50]from stdin\n"))
	if len(lyrics) != 1 || lyrics[0].Time != 1.5 || lyrics[0].Content != "from stdin" {
		t.Errorf("unexpected lyrics: %+v", lyrics)
	}

	var buf bytes.Buffer
	printEntries(&buf, lyrics)
	if got := buf.String(); got != "   0 [00:01.50] from stdin\n" {
		t.Errorf("printEntries = %q", got)
	}
}
