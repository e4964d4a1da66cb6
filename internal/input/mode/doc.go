// Package mode provides the editing modes that turn key input into
// commands.
//
// # Architecture
//
// Every mode implements the Mode interface: it receives one key at a time
// and answers with a command.BuilderEvent, either a Complete command to
// dispatch or Incomplete when the key was consumed without producing one.
// The Manager owns the registered modes and routes each key to the current
// one.
//
// # Standard Mode
//
// Standard is a non-modal mode in the style of emacs or mainstream
// editors. Plain characters are inserted as text; control chords and
// named keys are resolved through the mode's own keymap, which supports
// multi-key chords such as C-x C-s.
//
// Standard tracks one bit of state: whether a chord is in progress. While
// it is, every key (plain characters included) is chord input, so a
// half-typed chord never leaks characters into the buffer. A chord that
// fails to match is dropped silently.
//
//	┌──────┐  C-x (continues)   ┌─────────┐
//	│ Idle │ ─────────────────▶ │ Pending │
//	└──────┘ ◀───────────────── └─────────┘
//	          match or no match
//
// # Prompt Mode
//
// Prompt edits a single line while an overlay such as the file picker is
// open. It is pushed over Standard and popped when the overlay closes.
package mode
