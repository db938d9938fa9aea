package player

import (
	"math"

	"github.com/handiism/mini-lrc-player/internal/lrc"
	"github.com/handiism/mini-lrc-player/internal/model"
)

// Viewport describes the visible area the lyric list scrolls through.
// Both fields use the same unit (pixels, terminal rows, ...).
type Viewport struct {
	// Height is the visible height of the list container.
	Height float64

	// LineHeight is the height of one rendered lyric line.
	LineHeight float64
}

// Offset returns how far the list must scroll up so that line index sits
// at the vertical centre of the viewport. The result is never negative:
// early lines (and index -1, before the first line) leave the list at
// the top.
func (v Viewport) Offset(index int) float64 {
	offset := float64(index)*v.LineHeight - v.Height/2 + v.LineHeight/2
	if offset < 0 || math.IsNaN(offset) {
		return 0
	}
	return offset
}

// Line is one rendered lyric row.
type Line struct {
	Content string
	Active  bool
}

// Frame is the result of one render step.
type Frame struct {
	// Index is the active entry, -1 when none is active.
	Index int

	// Offset is the scroll offset applied to the list.
	Offset float64

	// Changed reports whether the highlight moved during this step.
	Changed bool
}

// Driver performs the lookup-and-render step for a lyric list.
type Driver struct {
	lyrics   model.Lyrics
	viewport Viewport
	lines    []Line
	active   int
	offset   float64
}

// NewDriver creates a Driver for lyrics, with one unhighlighted Line
// per entry.
func NewDriver(lyrics model.Lyrics, viewport Viewport) *Driver {
	d := &Driver{viewport: viewport}
	d.Reset(lyrics)
	return d
}

// Reset replaces the lyric list wholesale and clears the highlight.
func (d *Driver) Reset(lyrics model.Lyrics) {
	d.lyrics = lyrics
	d.lines = make([]Line, len(lyrics))
	for i, e := range lyrics {
		d.lines[i] = Line{Content: e.Content}
	}
	d.active = -1
	d.offset = 0
}

// SetViewport changes the viewport used for subsequent steps, e.g. after
// a terminal resize.
func (d *Driver) SetViewport(v Viewport) {
	d.viewport = v
}

// Viewport returns the current viewport.
func (d *Driver) Viewport() Viewport {
	return d.viewport
}

// Step re-resolves the active line for time t, applies the centred scroll
// offset and moves the highlight.
//
// After Step returns, at most one line is active and it is the line at
// Frame.Index.
func (d *Driver) Step(t float64) Frame {
	index := lrc.CurrentIndex(t, d.lyrics)
	d.offset = d.viewport.Offset(index)

	prev := d.active
	if prev >= 0 && prev < len(d.lines) {
		d.lines[prev].Active = false
	}

	d.active = -1
	if index >= 0 && index < len(d.lines) {
		d.lines[index].Active = true
		d.active = index
	}

	return Frame{
		Index:   index,
		Offset:  d.offset,
		Changed: prev != d.active,
	}
}

// Active returns the highlighted line index, or -1.
func (d *Driver) Active() int {
	return d.active
}

// Offset returns the scroll offset applied by the last step.
func (d *Driver) Offset() float64 {
	return d.offset
}

// Lyrics returns the sequence being tracked.
func (d *Driver) Lyrics() model.Lyrics {
	return d.lyrics
}

// Lines returns a copy of the rendered lines.
func (d *Driver) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// ActiveContent returns the text of the highlighted line, or "" when no
// line is active.
func (d *Driver) ActiveContent() string {
	if d.active < 0 {
		return ""
	}
	return d.lines[d.active].Content
}
