// Package app wires key input to command dispatch.
//
// An App owns a mode.Manager with the standard mode registered. Run reads
// keys from a Source, resolves each one through the current mode and hands
// every completed command to a Driver:
//
//	Source -> key.Key -> mode.Manager -> command.BuilderEvent -> Driver
//
// Everything happens on the goroutine calling Run, so modes need no
// locking. Binding changes requested with Rebind are applied between keys.
// The exit instruction ends Run with ErrQuit.
package app
