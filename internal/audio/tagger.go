package audio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

const (
	lyricsFrameName  = "Unsynchronised lyrics/text transcription"
	pictureFrameName = "Attached picture"
)

// ErrNoLyrics is returned by ReadLyrics when the file has no USLT frame
// with text.
var ErrNoLyrics = errors.New("no lyrics frame in tag")

// TagEditAction defines how EmbedLyrics treats an ID3 frame.
type TagEditAction int

const (
	// TagEmpty removes the frame.
	TagEmpty TagEditAction = iota

	// TagModify replaces the frame with the new value.
	TagModify

	// TagDoNotModify leaves the existing frame unchanged.
	TagDoNotModify
)

// TagConfig holds lyrics tagging configuration.
//
// Example:
//
//	cfg := &TagConfig{
//	    Lyrics:   TagModify,      // store the LRC text in USLT
//	    Artwork:  TagDoNotModify, // keep the existing cover
//	    Language: "eng",
//	}
type TagConfig struct {
	// Lyrics controls the USLT (Unsynchronised lyrics) frame.
	Lyrics TagEditAction

	// Artwork controls the APIC (Attached picture) frame. It only
	// applies when artwork bytes are passed to EmbedLyrics.
	Artwork TagEditAction

	// Language is the ISO-639-2 code written to, and preferred when
	// reading, the USLT frame.
	Language string

	// Description is the USLT content descriptor.
	Description string
}

// DefaultTagConfig returns a configuration that replaces lyrics and cover
// art and tags lyrics as English.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Lyrics:   TagModify,
		Artwork:  TagModify,
		Language: "eng",
	}
}

// Tagger reads and writes LRC text stored in the USLT frame of MP3 files.
//
// Many players keep timestamped LRC text in the unsynchronised lyrics
// frame, so the frame doubles as a lyric source for the player.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	text, err := tagger.ReadLyrics("song.mp3")
//	lyrics := lrc.Parse(text)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// ReadLyrics returns the text of the USLT frame of the MP3 at path.
//
// When several frames exist, the one in the configured language wins;
// otherwise the first frame with text is used. Returns ErrNoLyrics when
// there is none.
func (t *Tagger) ReadLyrics(path string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{lyricsFrameName}})
	if err != nil {
		return "", fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	var fallback string
	for _, f := range tag.GetFrames(tag.CommonID(lyricsFrameName)) {
		uslf, ok := f.(id3v2.UnsynchronisedLyricsFrame)
		if !ok || strings.TrimSpace(uslf.Lyrics) == "" {
			continue
		}
		if t.config.Language != "" && uslf.Language == t.config.Language {
			return uslf.Lyrics, nil
		}
		if fallback == "" {
			fallback = uslf.Lyrics
		}
	}

	if fallback == "" {
		return "", ErrNoLyrics
	}
	return fallback, nil
}

// EmbedLyrics stores text in the USLT frame of the MP3 at path.
//
// This method:
//  1. Opens the existing MP3 file and parses its tag (if any)
//  2. Applies the Lyrics action to the USLT frame
//  3. Applies the Artwork action if artwork bytes are provided
//  4. Saves the modified tag to the file
//
// artwork must be JPEG data; pass nil to leave the cover untouched.
func (t *Tagger) EmbedLyrics(path, text string, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag %s: %w", path, err)
	}
	defer tag.Close()

	switch t.config.Lyrics {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID(lyricsFrameName))
	case TagModify:
		tag.DeleteFrames(tag.CommonID(lyricsFrameName))
		if text != "" {
			tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
				Encoding:          id3v2.EncodingUTF8,
				Language:          t.config.Language,
				ContentDescriptor: t.config.Description,
				Lyrics:            text,
			})
		}
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag %s: %w", path, err)
	}
	return nil
}

// updateArtwork replaces the front cover picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	switch t.config.Artwork {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID(pictureFrameName))
	case TagModify:
		tag.DeleteFrames(tag.CommonID(pictureFrameName))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     artwork,
		})
	}
}
