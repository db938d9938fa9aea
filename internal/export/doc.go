// Package export writes parsed lyrics to other file formats.
//
//	exporter := export.NewExporter(export.FormatSRT)
//	content, err := exporter.Export(lyrics)
//
// Supported formats:
//   - LRC (normalized timestamps)
//   - SRT (SubRip subtitles)
//   - JSON
//   - plain text
package export
