// Package model defines the core data structures used throughout
// the mini-lrc-player application.
//
// # Entry
//
// Entry is one timed lyric line:
//
//	e := model.Entry{Time: 12.5, Content: "hello"}
//
// # Lyrics
//
// Lyrics is the ordered sequence of entries parsed from one lyric file.
// Order is the line order of the input file and is assumed, not verified,
// to be ascending by time. A Lyrics value is built once per load and never
// modified afterwards; reloading replaces it wholesale.
//
//	lyrics := lrc.Parse(text)
//	fmt.Println(lyrics.Len(), lyrics.Duration())
package model
