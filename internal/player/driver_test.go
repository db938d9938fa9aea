package player

import (
	"math"
	"testing"

	"github.com/handiism/mini-lrc-player/internal/model"
	"pgregory.net/rapid"
)

func testLyrics() model.Lyrics {
	return model.Lyrics{
		{Time: 1, Content: "one"},
		{Time: 3, Content: "two"},
		{Time: 5, Content: "three"},
	}
}

func TestViewport_Offset(t *testing.T) {
	v := Viewport{Height: 10, LineHeight: 2}

	tests := []struct {
		index int
		want  float64
	}{
		{-1, 0},
		{0, 0},
		{2, 0},
		{3, 2},
		{10, 16},
	}

	for _, tt := range tests {
		if got := v.Offset(tt.index); got != tt.want {
			t.Errorf("Offset(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestDriver_StepHighlightsActiveLine(t *testing.T) {
	d := NewDriver(testLyrics(), Viewport{Height: 4, LineHeight: 1})

	frame := d.Step(0.5)
	if frame.Index != -1 || d.Active() != -1 {
		t.Fatalf("before first line: index %d, active %d", frame.Index, d.Active())
	}
	if countActive(d.Lines()) != 0 {
		t.Error("no line should be highlighted before the first timestamp")
	}

	frame = d.Step(3.2)
	if frame.Index != 1 || !frame.Changed {
		t.Fatalf("Step(3.2) = %+v, want index 1 changed", frame)
	}
	lines := d.Lines()
	if !lines[1].Active || countActive(lines) != 1 {
		t.Errorf("expected only line 1 active, got %+v", lines)
	}
	if d.ActiveContent() != "two" {
		t.Errorf("ActiveContent() = %q, want %q", d.ActiveContent(), "two")
	}

	frame = d.Step(3.5)
	if frame.Changed {
		t.Error("highlight should not move within the same line")
	}

	frame = d.Step(10)
	if frame.Index != 2 || !d.Lines()[2].Active || d.Lines()[1].Active {
		t.Errorf("after last line: %+v, lines %+v", frame, d.Lines())
	}
}

func TestDriver_EmptyLyrics(t *testing.T) {
	d := NewDriver(nil, Viewport{Height: 10, LineHeight: 1})
	frame := d.Step(5)
	if frame.Index != -1 || frame.Offset != 0 {
		t.Errorf("Step on empty = %+v, want index -1 offset 0", frame)
	}
	if d.ActiveContent() != "" {
		t.Errorf("ActiveContent() = %q, want empty", d.ActiveContent())
	}
}

func TestDriver_ResetClearsHighlight(t *testing.T) {
	d := NewDriver(testLyrics(), Viewport{Height: 4, LineHeight: 1})
	d.Step(4)

	d.Reset(model.Lyrics{{Time: 0, Content: "new"}})
	if d.Active() != -1 || countActive(d.Lines()) != 0 {
		t.Error("Reset should clear the highlight")
	}
	if len(d.Lines()) != 1 || d.Lines()[0].Content != "new" {
		t.Errorf("Lines() = %+v, want the new list", d.Lines())
	}
}

func TestDriver_LinesIsCopy(t *testing.T) {
	d := NewDriver(testLyrics(), Viewport{Height: 4, LineHeight: 1})
	lines := d.Lines()
	lines[0].Active = true
	if d.Lines()[0].Active {
		t.Error("mutating Lines() result changed driver state")
	}
}

func TestProperty_OffsetNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Viewport{
			Height:     rapid.Float64Range(0, 2000).Draw(t, "height"),
			LineHeight: rapid.Float64Range(0, 200).Draw(t, "lineHeight"),
		}
		index := rapid.IntRange(-1, 500).Draw(t, "index")
		got := v.Offset(index)
		if got < 0 {
			t.Fatalf("Offset(%d) = %v with %+v", index, got, v)
		}
		raw := float64(index)*v.LineHeight - v.Height/2 + v.LineHeight/2
		if raw > 0 && got != raw {
			t.Fatalf("Offset(%d) = %v, want %v", index, got, raw)
		}
	})
}

func TestProperty_HighlightExclusive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		lyrics := make(model.Lyrics, n)
		cur := 0.0
		for i := range lyrics {
			cur += rapid.Float64Range(0, 10).Draw(t, "gap")
			lyrics[i] = model.Entry{Time: cur}
		}

		d := NewDriver(lyrics, Viewport{Height: 12, LineHeight: 1})
		steps := rapid.SliceOfN(rapid.Float64Range(-5, 400), 1, 50).Draw(t, "times")
		for _, ts := range steps {
			frame := d.Step(ts)
			lines := d.Lines()
			if c := countActive(lines); c > 1 {
				t.Fatalf("%d lines active after Step(%v)", c, ts)
			}
			if frame.Offset < 0 {
				t.Fatalf("negative offset %v", frame.Offset)
			}
			if frame.Index >= 0 && !lines[frame.Index].Active {
				t.Fatalf("active index %d not highlighted", frame.Index)
			}
			if frame.Index == -1 && countActive(lines) != 0 {
				t.Fatal("line highlighted while index is -1")
			}
		}
	})
}

func TestViewport_OffsetNaNIsZero(t *testing.T) {
	v := Viewport{Height: math.NaN(), LineHeight: 1}
	if got := v.Offset(3); got != 0 {
		t.Errorf("Offset with NaN height = %v, want 0", got)
	}
}

func countActive(lines []Line) int {
	n := 0
	for _, l := range lines {
		if l.Active {
			n++
		}
	}
	return n
}
