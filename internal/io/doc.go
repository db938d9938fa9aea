// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Reading lyric files and writing exports
//   - Filename sanitization and export naming
//   - Directory creation
//   - Cover art preparation for ID3 embedding
//
// # File Operations
//
//	text, err := ioutils.ReadFile(ctx, "./assets/song.lrc")
//
//	out := ioutils.OutputPath("./assets/song.lrc", "exports", ".srt")
//	err = ioutils.WriteFile(ctx, out, []byte(srt))
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	cover, _ := svc.PrepareCover(ctx, pngData, ioutils.DefaultCoverSize)
package ioutils
