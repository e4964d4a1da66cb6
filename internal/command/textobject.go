package command

import "fmt"

// MarkKind identifies the kind of a Mark.
type MarkKind uint8

const (
	// MarkCursor is a cursor position.
	MarkCursor MarkKind = iota
)

// Mark is a named, stable position within a buffer.
type Mark struct {
	Kind  MarkKind
	Index int
}

// Cursor returns the mark of cursor i. Cursor(0) is the primary cursor.
func Cursor(i int) Mark {
	return Mark{Kind: MarkCursor, Index: i}
}

// String returns a representation like "Cursor(0)".
func (m Mark) String() string {
	switch m.Kind {
	case MarkCursor:
		return fmt.Sprintf("Cursor(%d)", m.Index)
	default:
		return fmt.Sprintf("Mark(%d, %d)", m.Kind, m.Index)
	}
}

// Anchor selects where within a line a line boundary falls.
type Anchor uint8

const (
	// AnchorSame keeps the current column.
	AnchorSame Anchor = iota

	// AnchorStart is the start of the line.
	AnchorStart

	// AnchorEnd is the end of the line.
	AnchorEnd
)

// String returns a human-readable anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorSame:
		return "Same"
	case AnchorStart:
		return "Start"
	case AnchorEnd:
		return "End"
	default:
		return "unknown"
	}
}

// Unit is the unit of text a TextObject counts in.
type Unit uint8

const (
	// UnitChar counts characters.
	UnitChar Unit = iota

	// UnitLine counts lines.
	UnitLine
)

// Kind identifies the unit acted upon, with an anchor for lines.
type Kind struct {
	Unit   Unit
	Anchor Anchor
}

// CharKind returns the character kind.
func CharKind() Kind {
	return Kind{Unit: UnitChar}
}

// LineKind returns the line kind with the given anchor.
func LineKind(a Anchor) Kind {
	return Kind{Unit: UnitLine, Anchor: a}
}

// String returns a representation like "Char" or "Line(End)".
func (k Kind) String() string {
	switch k.Unit {
	case UnitChar:
		return "Char"
	case UnitLine:
		return "Line(" + k.Anchor.String() + ")"
	default:
		return "unknown"
	}
}

// Direction is the direction of an Offset.
type Direction uint8

const (
	// DirForward moves towards the end of the buffer.
	DirForward Direction = iota

	// DirBackward moves towards the start of the buffer.
	DirBackward
)

// Offset is a displacement of N units from a Mark.
// N is never negative; the direction carries the sign.
type Offset struct {
	Direction Direction
	N         uint
	Mark      Mark
}

// Forward returns an offset of n units forward from m.
func Forward(n uint, m Mark) Offset {
	return Offset{Direction: DirForward, N: n, Mark: m}
}

// Backward returns an offset of n units backward from m.
func Backward(n uint, m Mark) Offset {
	return Offset{Direction: DirBackward, N: n, Mark: m}
}

// IsForward returns true for forward offsets.
func (o Offset) IsForward() bool {
	return o.Direction == DirForward
}

// Signed returns the displacement as a signed count.
func (o Offset) Signed() int {
	if o.Direction == DirBackward {
		return -int(o.N)
	}
	return int(o.N)
}

// String returns a representation like "Forward(1, Cursor(0))".
func (o Offset) String() string {
	dir := "Forward"
	if o.Direction == DirBackward {
		dir = "Backward"
	}
	return fmt.Sprintf("%s(%d, %s)", dir, o.N, o.Mark)
}

// TextObject describes a span of buffer content: a unit and a directional
// offset from a mark.
type TextObject struct {
	Kind   Kind
	Offset Offset
}

// String returns a representation like "Char Backward(1, Cursor(0))".
func (t TextObject) String() string {
	return t.Kind.String() + " " + t.Offset.String()
}
