// Package key provides key values and key specification parsing for the
// input system.
//
// A Key is one of three shapes:
//
//   - a plain character: Char('a')
//   - a control chord of a character: Ctrl('x')
//   - a named non-printable key: Up, Enter, Backspace, ...
//
// Keys are small comparable values, so they can be compared with == and
// used directly as map keys.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape", "Space"
//   - Control chords: "C-s", "Ctrl+S", "^S"
//   - Vim-style: "<C-s>", "<CR>", "<Esc>", "<BS>"
//
// Sequences such as "C-x C-s" or "<C-x><C-s>" are parsed by ParseSequence.
package key
