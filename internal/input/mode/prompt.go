package mode

import (
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

// Prompt collects a line of text for an overlay such as the file picker
// or the command prompt. It is pushed on top of the standard mode while
// the overlay is open.
//
// Enter and Escape both close the overlay by dispatching
// SetOverlay(None); Escape discards the line first. C-q still exits.
type Prompt struct {
	overlay command.OverlayType
	line    []rune
}

// NewPrompt creates a closed prompt.
func NewPrompt() *Prompt {
	return &Prompt{}
}

// Name returns the mode identifier.
func (p *Prompt) Name() string {
	return ModePrompt
}

// DisplayName names the overlay being edited, e.g. "PROMPT SelectFile".
func (p *Prompt) DisplayName() string {
	if p.overlay == command.OverlayNone {
		return "PROMPT"
	}
	return "PROMPT " + p.overlay.String()
}

// Open starts a fresh line for overlay o.
func (p *Prompt) Open(o command.OverlayType) {
	p.overlay = o
	p.line = p.line[:0]
}

// Overlay returns the overlay the prompt was opened for.
func (p *Prompt) Overlay() command.OverlayType {
	return p.overlay
}

// Input returns the line typed so far.
func (p *Prompt) Input() string {
	return string(p.line)
}

// Reset discards the line.
func (p *Prompt) Reset() {
	p.line = p.line[:0]
}

// HandleKeyEvent edits the line. Only closing the overlay or exiting
// produces a command.
func (p *Prompt) HandleKeyEvent(k key.Key) command.BuilderEvent {
	switch {
	case k.IsChar():
		p.line = append(p.line, k.Rune)
	case k == key.Backspace || k == key.Ctrl('h'):
		if len(p.line) > 0 {
			p.line = p.line[:len(p.line)-1]
		}
	case k == key.Enter:
		return command.Complete(command.Overlay(command.OverlayNone))
	case k == key.Escape || k == key.Ctrl('g'):
		p.Reset()
		return command.Complete(command.Overlay(command.OverlayNone))
	case k == key.Ctrl('q'):
		return command.Complete(command.Exit())
	}
	return command.Incomplete()
}
