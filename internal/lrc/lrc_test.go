package lrc

import (
	"math"
	"strings"
	"testing"

	"github.com/handiism/mini-lrc-player/internal/model"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"[00:01.50", 1.5},
		{"[00:03.00", 3},
		{"[01:02.5", 62.5},
		{"[10:00", 600},
		{"[00:75", 75},
		{"[-1:00", -60},
		{"[ 01 : 02 ", 62},
		{"[:05", 5},
		{"[01:", 60},
		{"[01:02:03", 62},
		{"[00:0x10", 16},
		{"[00:0o17", 15},
		{"[00:0b11", 3},
		{"[00:.5", 0.5},
		{"[00:5.", 5},
		{"[00:1e1", 10},
		{"[00:Infinity", math.Inf(1)},
		{"[-Infinity:00", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseTime(tt.raw); got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTime_Malformed(t *testing.T) {
	for _, raw := range []string{
		"[00", "", "[xx:01", "[00:ab", "hello world",
		"[00:inf", "[00:Inf", "[00:infinity", "[00:nan", "[00:NaN",
		"[00:0x1p4", "[00:1_0", "[00:0x", "[00:-0x10", "[00:0b12",
		"[00:1e", "[00:.", "[00:+",
	} {
		t.Run(raw, func(t *testing.T) {
			if got := ParseTime(raw); !math.IsNaN(got) {
				t.Errorf("ParseTime(%q) = %v, want NaN", raw, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got := Parse("[00:01.50]hello\n[00:03.00]world\n")
	want := model.Lyrics{
		{Time: 1.5, Content: "hello"},
		{Time: 3.0, Content: "world"},
	}
	assertLyricsEqual(t, got, want)
}

func TestParse_SkipsEmptyLines(t *testing.T) {
	got := Parse("[00:01.00]a\n\n[00:02.00]b\n")
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Content != "a" || got[1].Content != "b" {
		t.Errorf("unexpected contents: %v", got.Contents())
	}
}

func TestParse_CRLF(t *testing.T) {
	lf := Parse("[00:01.00]a\n\n[00:02.00]b\n")
	crlf := Parse("[00:01.00]a\r\n\r\n[00:02.00]b\r\n")
	assertLyricsEqual(t, crlf, lf)
}

func TestParse_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNaN     bool
		wantTime    float64
		wantContent string
	}{
		{"trims content", "[00:02.00]   padded text  ", false, 2, "padded text"},
		{"empty content", "[00:04.00]", false, 4, ""},
		{"second bracket drops tail", "[00:01.00]kept]dropped", false, 1, "kept"},
		{"no bracket", "just text", true, 0, ""},
		{"whitespace only line", "   ", true, 0, ""},
		{"unicode content", "[00:05.25]  月亮代表我的心 ", false, 5.25, "月亮代表我的心"},
		{"byte order mark", "\xef\xbb\xbf[00:01.50]hello", false, 1.5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if len(got) != 1 {
				t.Fatalf("got %d entries, want 1", len(got))
			}
			if tt.wantNaN {
				if !math.IsNaN(got[0].Time) {
					t.Errorf("Time = %v, want NaN", got[0].Time)
				}
			} else if got[0].Time != tt.wantTime {
				t.Errorf("Time = %v, want %v", got[0].Time, tt.wantTime)
			}
			if got[0].Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got[0].Content, tt.wantContent)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	got := Parse("")
	if got == nil {
		t.Fatal("Parse returned nil, want empty sequence")
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestParse_Idempotent(t *testing.T) {
	text := "[00:01.00]a\n[oops]b\n[00:03.00]c]d\n"
	assertLyricsEqual(t, Parse(text), Parse(text))
}

func TestParse_ByteOrderMark(t *testing.T) {
	text := "\xef\xbb\xbf[00:01.50]hello\n[00:03.00]world\n"
	want := model.Lyrics{
		{Time: 1.5, Content: "hello"},
		{Time: 3.0, Content: "world"},
	}
	assertLyricsEqual(t, Parse(text), want)

	got, err := ParseReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertLyricsEqual(t, got, want)

	if got := CurrentIndex(0.5, Parse(text)); got != -1 {
		t.Errorf("CurrentIndex(0.5) = %d, want -1 before the first timestamp", got)
	}
	if issues := Lint(text); len(issues) != 0 {
		t.Errorf("Lint reported %v for a clean file with a byte order mark", issues)
	}
}

func TestParseReader(t *testing.T) {
	got, err := ParseReader(strings.NewReader("[00:01.50]hello\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertLyricsEqual(t, got, model.Lyrics{{Time: 1.5, Content: "hello"}})
}

func TestCurrentIndex(t *testing.T) {
	lyrics := model.Lyrics{{Time: 1.0}, {Time: 3.0}, {Time: 5.0}}

	tests := []struct {
		name string
		time float64
		want int
	}{
		{"before first", 0.5, -1},
		{"exactly first", 1.0, 0},
		{"between first and second", 2.0, 0},
		{"exactly second", 3.0, 1},
		{"between second and third", 4.99, 1},
		{"after last", 10.0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentIndex(tt.time, lyrics); got != tt.want {
				t.Errorf("CurrentIndex(%v) = %d, want %d", tt.time, got, tt.want)
			}
		})
	}
}

func TestCurrentIndex_Empty(t *testing.T) {
	if got := CurrentIndex(42, nil); got != -1 {
		t.Errorf("CurrentIndex on empty = %d, want -1", got)
	}
}

func TestCurrentIndex_NaNEntriesDoNotStopScan(t *testing.T) {
	lyrics := model.Lyrics{{Time: 1}, {Time: math.NaN()}, {Time: 5}}
	if got := CurrentIndex(2, lyrics); got != 1 {
		t.Errorf("CurrentIndex = %d, want 1", got)
	}
}

func TestLint(t *testing.T) {
	text := strings.Join([]string{
		"[00:01.00]ok",
		"",
		"no bracket here",
		"[00:05.00]a]b",
		"[00:03.00]back in time",
		"[zz:00]bad",
	}, "\n")

	issues := Lint(text)

	want := []struct {
		line int
		kind IssueKind
	}{
		{3, IssueMissingBracket},
		{3, IssueBadTimestamp},
		{4, IssueExtraBracket},
		{5, IssueOutOfOrder},
		{6, IssueBadTimestamp},
	}

	if len(issues) != len(want) {
		t.Fatalf("got %d issues, want %d: %v", len(issues), len(want), issues)
	}
	for i, w := range want {
		if issues[i].Line != w.line || issues[i].Kind != w.kind {
			t.Errorf("issue %d = %v, want line %d %s", i, issues[i], w.line, w.kind)
		}
	}
}

func TestLint_Clean(t *testing.T) {
	if issues := Lint("[00:01.00]a\n[00:02.00]b\n"); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func assertLyricsEqual(t *testing.T, got, want model.Lyrics) {
	t.Helper()
	if !lyricsEqual(got, want) {
		t.Errorf("lyrics mismatch:\n got  %+v\n want %+v", got, want)
	}
}

// lyricsEqual compares sequences treating NaN times as equal to each other.
func lyricsEqual(a, b model.Lyrics) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Content != b[i].Content {
			return false
		}
		if math.IsNaN(a[i].Time) && math.IsNaN(b[i].Time) {
			continue
		}
		if a[i].Time != b[i].Time {
			return false
		}
	}
	return true
}
