// Package tui provides the Bubble Tea terminal player.
//
// The model loads the configured lyric source in the background, then
// polls a wall clock on every tick and lets a player.Driver pick and
// centre the active line. Local lyric files are watched and reloaded
// when they change.
package tui
