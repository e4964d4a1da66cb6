// Package command defines the editor intents produced by resolved input.
//
// A Command is a self-contained description of what the editor should do:
// a repeat count, an Action and an optional TextObject naming the span the
// action applies to. Commands hold no reference to buffer state; the
// editor driver interprets them against its own buffers.
//
// Actions come in two kinds:
//
//   - Operation: changes buffer content or a mark (insert, delete, move)
//   - Instruction: editor-level effects (exit, save, overlays, buffer
//     switching, undo, redo); instructions never carry a TextObject
//
// A BuilderEvent wraps the outcome of feeding one key to a mode: either a
// Complete command to dispatch now, or Incomplete when more input is needed
// or the key was dropped.
package command
