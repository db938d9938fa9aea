// Package player keeps a rendered lyric list in sync with a playback clock.
//
// The Driver owns one Line per lyric entry, mirroring the rows of the list
// on screen. Each call to Step resolves the active entry for the current
// time, computes the scroll offset that centres it in the viewport and
// moves the highlight to it:
//
//	d := player.NewDriver(lyrics, player.Viewport{Height: 20, LineHeight: 1})
//	clock := player.NewWallClock()
//	clock.Start()
//
//	// on every "time changed" tick
//	frame := d.Step(clock.CurrentTime())
//	render(d.Lines(), frame.Offset)
//
// The driver is meant to be stepped from a single event loop and is not
// safe for concurrent use.
package player
