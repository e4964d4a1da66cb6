package mode

import (
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

// standardDefaults builds the default Standard mode bindings.
func standardDefaults() *keymap.KeyMap[command.Command] {
	km := keymap.New[command.Command]()
	cursor := command.Cursor(0)

	// Editor commands
	km.BindKey(key.Ctrl('q'), command.Exit())
	km.BindKey(key.Ctrl('s'), command.Save())
	bindChord(km, command.Exit(), key.Ctrl('x'), key.Ctrl('c'))
	bindChord(km, command.Save(), key.Ctrl('x'), key.Ctrl('s'))

	// Cursor movement
	up := func() command.Command {
		return command.Movement(command.Backward(1, cursor), command.LineKind(command.AnchorSame))
	}
	down := func() command.Command {
		return command.Movement(command.Forward(1, cursor), command.LineKind(command.AnchorSame))
	}
	left := func() command.Command {
		return command.Movement(command.Backward(1, cursor), command.CharKind())
	}
	right := func() command.Command {
		return command.Movement(command.Forward(1, cursor), command.CharKind())
	}
	km.BindKey(key.Up, up())
	km.BindKey(key.Down, down())
	km.BindKey(key.Left, left())
	km.BindKey(key.Right, right())
	km.BindKey(key.Ctrl('p'), up())
	km.BindKey(key.Ctrl('n'), down())
	km.BindKey(key.Ctrl('b'), left())
	km.BindKey(key.Ctrl('f'), right())
	km.BindKey(key.Ctrl('e'), command.Movement(command.Forward(0, cursor), command.LineKind(command.AnchorEnd)))
	km.BindKey(key.Ctrl('a'), command.Movement(command.Backward(0, cursor), command.LineKind(command.AnchorStart)))

	// Editing
	km.BindKey(key.Tab, command.InsertTab())
	km.BindKey(key.Enter, command.Newline())
	km.BindKey(key.Backspace, command.DeleteChar(command.Backward(1, cursor)))
	km.BindKey(key.Delete, command.DeleteChar(command.Forward(1, cursor)))
	km.BindKey(key.Ctrl('h'), command.DeleteChar(command.Backward(1, cursor)))
	km.BindKey(key.Ctrl('d'), command.DeleteChar(command.Forward(1, cursor)))

	// Overlays and buffers
	bindChord(km, command.Overlay(command.OverlaySelectFile), key.Ctrl('x'), key.Ctrl('f'))
	bindChord(km, command.LastBuffer(), key.Ctrl('x'), key.Ctrl('b'))

	// History
	km.BindKey(key.Ctrl('z'), command.UndoCmd())
	km.BindKey(key.Ctrl('y'), command.RedoCmd())

	return km
}

// bindChord binds a fixed, non-empty chord.
func bindChord(km *keymap.KeyMap[command.Command], c command.Command, seq ...key.Key) {
	if err := km.Bind(seq, c); err != nil {
		panic("invalid default chord: " + err.Error())
	}
}
