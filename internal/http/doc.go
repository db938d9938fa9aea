// Package http provides the HTTP client used to retrieve remote lyric files.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Treating every non-200 response as a failure
//
// # Basic Usage
//
//	client := http.NewClient(http.WithUserAgent("my-player"))
//
//	text, err := client.GetString(ctx, "https://example.com/song.lrc")
//	var se *http.StatusError
//	if errors.As(err, &se) {
//	    fmt.Println("server said", se.Code)
//	}
package http
