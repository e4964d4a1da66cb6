package command

import "fmt"

// Action is what a Command does: an Operation or an Instruction.
type Action interface {
	fmt.Stringer
	isAction()
}

// OperationKind identifies a buffer operation.
type OperationKind uint8

const (
	// OpInsert inserts Operation.Char at the cursor.
	OpInsert OperationKind = iota + 1

	// OpDeleteFromMark deletes from Operation.Mark to the command's object.
	OpDeleteFromMark

	// OpMoveMark moves Operation.Mark to the command's object.
	OpMoveMark
)

// Operation is an action that changes buffer content or a mark.
type Operation struct {
	Kind OperationKind
	Mark Mark
	Char rune
}

func (Operation) isAction() {}

// Insert returns the operation inserting r.
func Insert(r rune) Operation {
	return Operation{Kind: OpInsert, Char: r}
}

// DeleteFromMark returns the operation deleting from m.
func DeleteFromMark(m Mark) Operation {
	return Operation{Kind: OpDeleteFromMark, Mark: m}
}

// MoveMark returns the operation moving m.
func MoveMark(m Mark) Operation {
	return Operation{Kind: OpMoveMark, Mark: m}
}

// String returns a representation like "DeleteFromMark(Cursor(0))".
func (o Operation) String() string {
	switch o.Kind {
	case OpInsert:
		return fmt.Sprintf("Insert(%q)", o.Char)
	case OpDeleteFromMark:
		return "DeleteFromMark(" + o.Mark.String() + ")"
	case OpMoveMark:
		return "MoveMark(" + o.Mark.String() + ")"
	default:
		return fmt.Sprintf("Operation(%d)", o.Kind)
	}
}

// OverlayType identifies an auxiliary input surface.
type OverlayType uint8

const (
	// OverlayNone hides any overlay.
	OverlayNone OverlayType = iota

	// OverlaySelectFile is the file picker.
	OverlaySelectFile

	// OverlayCommandPrompt is the command prompt.
	OverlayCommandPrompt
)

// String returns a human-readable overlay name.
func (o OverlayType) String() string {
	switch o {
	case OverlayNone:
		return "None"
	case OverlaySelectFile:
		return "SelectFile"
	case OverlayCommandPrompt:
		return "CommandPrompt"
	default:
		return fmt.Sprintf("Overlay(%d)", o)
	}
}

// InstructionKind identifies an editor instruction.
type InstructionKind uint8

const (
	// InstrExit exits the editor.
	InstrExit InstructionKind = iota + 1

	// InstrSave saves the current buffer.
	InstrSave

	// InstrSetOverlay shows Instruction.Overlay.
	InstrSetOverlay

	// InstrSwitchToLastBuffer switches to the previously active buffer.
	InstrSwitchToLastBuffer

	// InstrUndo undoes the last change.
	InstrUndo

	// InstrRedo redoes the last undone change.
	InstrRedo
)

// Instruction is an editor-level effect that does not change buffer
// content directly.
type Instruction struct {
	Kind    InstructionKind
	Overlay OverlayType
}

func (Instruction) isAction() {}

// ExitEditor returns the exit instruction.
func ExitEditor() Instruction {
	return Instruction{Kind: InstrExit}
}

// SaveBuffer returns the save instruction.
func SaveBuffer() Instruction {
	return Instruction{Kind: InstrSave}
}

// SetOverlay returns the instruction showing overlay o.
func SetOverlay(o OverlayType) Instruction {
	return Instruction{Kind: InstrSetOverlay, Overlay: o}
}

// SwitchToLastBuffer returns the buffer switching instruction.
func SwitchToLastBuffer() Instruction {
	return Instruction{Kind: InstrSwitchToLastBuffer}
}

// Undo returns the undo instruction.
func Undo() Instruction {
	return Instruction{Kind: InstrUndo}
}

// Redo returns the redo instruction.
func Redo() Instruction {
	return Instruction{Kind: InstrRedo}
}

// String returns a representation like "SetOverlay(SelectFile)".
func (i Instruction) String() string {
	switch i.Kind {
	case InstrExit:
		return "ExitEditor"
	case InstrSave:
		return "SaveBuffer"
	case InstrSetOverlay:
		return "SetOverlay(" + i.Overlay.String() + ")"
	case InstrSwitchToLastBuffer:
		return "SwitchToLastBuffer"
	case InstrUndo:
		return "Undo"
	case InstrRedo:
		return "Redo"
	default:
		return fmt.Sprintf("Instruction(%d)", i.Kind)
	}
}
