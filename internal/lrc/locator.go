package lrc

import "github.com/handiism/mini-lrc-player/internal/model"

// CurrentIndex returns the index of the lyric line active at time t.
//
// The active line is the last one whose time is not after t. When t is
// before the first line the result is -1; when t is past every line it is
// the last index. An empty sequence always yields -1.
//
// The scan is linear and stops at the first entry strictly later than t,
// so entries with NaN times never end it. Lyric files are short and the
// lookup runs a few times per second, which keeps this cheap enough.
func CurrentIndex(t float64, lyrics model.Lyrics) int {
	for i, e := range lyrics {
		if t < e.Time {
			return i - 1
		}
	}
	return len(lyrics) - 1
}
