package command

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownAction is returned when looking up an unregistered action name.
var ErrUnknownAction = errors.New("unknown action")

// Action names understood by Lookup.
const (
	NameExit           = "editor.exit"
	NameSave           = "editor.save"
	NameCursorUp       = "cursor.up"
	NameCursorDown     = "cursor.down"
	NameCursorLeft     = "cursor.left"
	NameCursorRight    = "cursor.right"
	NameLineStart      = "cursor.lineStart"
	NameLineEnd        = "cursor.lineEnd"
	NameTab            = "edit.tab"
	NameNewline        = "edit.newline"
	NameDeleteBackward = "edit.deleteBackward"
	NameDeleteForward  = "edit.deleteForward"
	NameSelectFile     = "overlay.selectFile"
	NameCommandPrompt  = "overlay.commandPrompt"
	NameLastBuffer     = "buffer.last"
	NameUndo           = "history.undo"
	NameRedo           = "history.redo"
)

// named holds the commands addressable by name from configuration files
// and scripts.
var named = map[string]func() Command{
	NameExit:           Exit,
	NameSave:           Save,
	NameCursorUp:       func() Command { return Movement(Backward(1, Cursor(0)), LineKind(AnchorSame)) },
	NameCursorDown:     func() Command { return Movement(Forward(1, Cursor(0)), LineKind(AnchorSame)) },
	NameCursorLeft:     func() Command { return Movement(Backward(1, Cursor(0)), CharKind()) },
	NameCursorRight:    func() Command { return Movement(Forward(1, Cursor(0)), CharKind()) },
	NameLineStart:      func() Command { return Movement(Backward(0, Cursor(0)), LineKind(AnchorStart)) },
	NameLineEnd:        func() Command { return Movement(Forward(0, Cursor(0)), LineKind(AnchorEnd)) },
	NameTab:            InsertTab,
	NameNewline:        Newline,
	NameDeleteBackward: func() Command { return DeleteChar(Backward(1, Cursor(0))) },
	NameDeleteForward:  func() Command { return DeleteChar(Forward(1, Cursor(0))) },
	NameSelectFile:     func() Command { return Overlay(OverlaySelectFile) },
	NameCommandPrompt:  func() Command { return Overlay(OverlayCommandPrompt) },
	NameLastBuffer:     LastBuffer,
	NameUndo:           UndoCmd,
	NameRedo:           RedoCmd,
}

// Lookup returns a fresh command for an action name.
func Lookup(name string) (Command, error) {
	ctor, ok := named[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return ctor(), nil
}

// MustLookup is like Lookup but panics on unknown names.
func MustLookup(name string) Command {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns all action names, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Name returns the action name producing a command equal to c.
// Commands with no name (such as character insertion) return "".
func Name(c Command) string {
	for _, name := range Names() {
		if named[name]().Equal(c) {
			return name
		}
	}
	return ""
}
