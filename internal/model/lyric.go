package model

import "math"

// Entry represents a single timed lyric line.
//
// Entry is the unit the player highlights: once playback reaches Time,
// Content becomes the active line until the next entry's Time is reached.
//
// Example:
//
//	// [00:01.50]hello
//	e := Entry{Time: 1.5, Content: "hello"}
type Entry struct {
	// Time is the offset in seconds from the start of the track.
	// It is NaN when the source timestamp could not be parsed.
	Time float64

	// Content is the text displayed at Time, with surrounding
	// whitespace removed.
	Content string
}

// Valid reports whether the entry has a finite timestamp.
func (e Entry) Valid() bool {
	return !math.IsNaN(e.Time) && !math.IsInf(e.Time, 0)
}

// Lyrics is an ordered sequence of lyric entries.
type Lyrics []Entry

// Len returns the number of entries.
func (l Lyrics) Len() int {
	return len(l)
}

// Last returns the index of the last entry, or -1 if l is empty.
func (l Lyrics) Last() int {
	return len(l) - 1
}

// Duration returns the time of the last entry that has a finite timestamp.
//
// It is used as the nominal length of the track when no audio is attached.
// Returns 0 when no entry has a valid time.
func (l Lyrics) Duration() float64 {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Valid() {
			return l[i].Time
		}
	}
	return 0
}

// Contents returns the text of every entry, in order.
func (l Lyrics) Contents() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Content
	}
	return out
}
