// Package backend connects keychord to a tcell terminal.
//
// Terminal polls tcell for key events, converts each one to a key.Key and
// delivers it on a channel. It also draws a one-line status bar showing
// the current mode and the last resolved command.
//
// Only the Ctrl modifier survives conversion. Alt and Meta chords have no
// key.Key form and are dropped.
package backend
