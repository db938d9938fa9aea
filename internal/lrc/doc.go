// Package lrc parses timestamp-tagged lyric files and locates the active
// line for a playback time.
//
// # Format
//
// One lyric line per newline-separated record:
//
//	[00:01.50]hello
//	[00:03.00]world
//
// There are no header or metadata lines, and a line carries exactly one
// timestamp.
//
// # Parsing
//
//	lyrics := lrc.Parse(text)
//	for _, e := range lyrics {
//	    fmt.Printf("%6.2f %s\n", e.Time, e.Content)
//	}
//
// Parsing never fails. Malformed timestamps produce NaN times and lines
// with stray brackets are split on the first bracket; Lint reports both
// when diagnostics are wanted.
//
// # Lookup
//
//	idx := lrc.CurrentIndex(playbackSeconds, lyrics)
//	// -1 before the first line, lyrics.Last() after the final one
package lrc
