// Package audio reads and writes lyrics stored in MP3 ID3v2 tags.
//
// # Reading
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	text, err := tagger.ReadLyrics("song.mp3")
//	if errors.Is(err, audio.ErrNoLyrics) {
//	    // file is tagged but carries no lyrics
//	}
//
// # Embedding
//
//	err := tagger.EmbedLyrics("song.mp3", lrcText, coverJPEG)
//
// Lyrics live in the USLT (unsynchronised lyrics) frame, which most
// players also use for timestamped LRC text. Cover art goes to the APIC
// front-cover frame.
package audio
