// Package loader retrieves lyric text from files, URLs or MP3 tags and
// parses it into a lyric sequence.
//
// # Basic Usage
//
//	ld := loader.NewLoader(settings, func(e loader.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	lyrics := ld.Load(ctx, "https://example.com/song.lrc")
//
// Load never returns an error. If the source cannot be retrieved, the
// failure is reported through the progress callback at LevelError and
// an empty sequence is returned, so a player simply shows no lyrics.
//
// # Sources
//
//   - http:// and https:// addresses are fetched with a GET; any status
//     other than 200 is a failure
//   - paths ending in .mp3 are read from the ID3v2 USLT frame
//   - anything else is read as a local file
//
// # Batch Loading
//
// LoadAll fetches many sources concurrently (bounded by
// Settings.MaxConcurrentLoads) and keeps per-source errors:
//
//	results, err := ld.LoadAll(ctx, []string{"a.lrc", "b.lrc"})
//	for _, r := range results {
//	    if r.Err != nil { ... }
//	}
//
// There are no retries.
package loader
