package command

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrInvalidNumber     = errors.New("repeat count must be at least 1")
	ErrMissingAction     = errors.New("command has no action")
	ErrInstructionObject = errors.New("instruction carries a text object")
)

// Command is a fully resolved editor intent.
type Command struct {
	// Number is the repeat count, at least 1.
	Number int

	// Action is the operation or instruction to perform.
	Action Action

	// Object is the span the action applies to. It is only meaningful
	// when HasObject is set.
	Object    TextObject
	HasObject bool
}

// Exit returns the command that exits the editor.
func Exit() Command {
	return instruction(ExitEditor())
}

// Save returns the command that saves the current buffer.
func Save() Command {
	return instruction(SaveBuffer())
}

// Overlay returns the command that shows overlay o.
func Overlay(o OverlayType) Command {
	return instruction(SetOverlay(o))
}

// LastBuffer returns the command that switches to the last buffer.
func LastBuffer() Command {
	return instruction(SwitchToLastBuffer())
}

// UndoCmd returns the undo command.
func UndoCmd() Command {
	return instruction(Undo())
}

// RedoCmd returns the redo command.
func RedoCmd() Command {
	return instruction(Redo())
}

func instruction(i Instruction) Command {
	return Command{Number: 1, Action: i}
}

// Movement returns the command moving the primary cursor by offset in
// units of kind.
func Movement(offset Offset, kind Kind) Command {
	return Command{
		Number:    1,
		Action:    MoveMark(Cursor(0)),
		Object:    TextObject{Kind: kind, Offset: offset},
		HasObject: true,
	}
}

// InsertChar returns the command inserting r at the primary cursor.
func InsertChar(r rune) Command {
	return Command{
		Number:    1,
		Action:    Insert(r),
		Object:    TextObject{Kind: CharKind(), Offset: Forward(0, Cursor(0))},
		HasObject: true,
	}
}

// InsertTab returns the command inserting a tab character.
func InsertTab() Command {
	return InsertChar('\t')
}

// Newline returns the command inserting a line break.
func Newline() Command {
	return InsertChar('\n')
}

// DeleteChar returns the command deleting one character from the primary
// cursor in the direction of offset.
func DeleteChar(offset Offset) Command {
	return Command{
		Number:    1,
		Action:    DeleteFromMark(Cursor(0)),
		Object:    TextObject{Kind: CharKind(), Offset: offset},
		HasObject: true,
	}
}

// WithNumber returns a copy of c with the repeat count set to n.
// Counts below 1 are clamped to 1.
func (c Command) WithNumber(n int) Command {
	if n < 1 {
		n = 1
	}
	c.Number = n
	return c
}

// IsInstruction returns true if the action is an Instruction.
func (c Command) IsInstruction() bool {
	_, ok := c.Action.(Instruction)
	return ok
}

// IsExit returns true if c exits the editor.
func (c Command) IsExit() bool {
	i, ok := c.Action.(Instruction)
	return ok && i.Kind == InstrExit
}

// Validate checks the command invariants.
func (c Command) Validate() error {
	if c.Number < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNumber, c.Number)
	}
	if c.Action == nil {
		return ErrMissingAction
	}
	if c.IsInstruction() && c.HasObject {
		return fmt.Errorf("%w: %s", ErrInstructionObject, c.Action)
	}
	return nil
}

// Equal reports whether c and other describe the same intent.
func (c Command) Equal(other Command) bool {
	if c.Number != other.Number || c.Action != other.Action || c.HasObject != other.HasObject {
		return false
	}
	return !c.HasObject || c.Object == other.Object
}

// String returns a representation like
// "1 DeleteFromMark(Cursor(0)) [Char Backward(1, Cursor(0))]".
func (c Command) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d ", c.Number)
	if c.Action == nil {
		sb.WriteString("<nil>")
	} else {
		sb.WriteString(c.Action.String())
	}
	if c.HasObject {
		sb.WriteString(" [" + c.Object.String() + "]")
	}
	return sb.String()
}
