package command

import (
	"errors"
	"testing"
)

func TestMovementCarriesTextObject(t *testing.T) {
	tests := []struct {
		name   string
		cmd    Command
		kind   Kind
		offset Offset
	}{
		{"up", MustLookup(NameCursorUp), LineKind(AnchorSame), Backward(1, Cursor(0))},
		{"down", MustLookup(NameCursorDown), LineKind(AnchorSame), Forward(1, Cursor(0))},
		{"left", MustLookup(NameCursorLeft), CharKind(), Backward(1, Cursor(0))},
		{"right", MustLookup(NameCursorRight), CharKind(), Forward(1, Cursor(0))},
		{"line start", MustLookup(NameLineStart), LineKind(AnchorStart), Backward(0, Cursor(0))},
		{"line end", MustLookup(NameLineEnd), LineKind(AnchorEnd), Forward(0, Cursor(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Number != 1 {
				t.Errorf("Number = %d, want 1", tt.cmd.Number)
			}
			if tt.cmd.Action != MoveMark(Cursor(0)) {
				t.Errorf("Action = %v, want MoveMark(Cursor(0))", tt.cmd.Action)
			}
			if !tt.cmd.HasObject {
				t.Fatal("HasObject = false")
			}
			if tt.cmd.Object.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.cmd.Object.Kind, tt.kind)
			}
			if tt.cmd.Object.Offset != tt.offset {
				t.Errorf("Offset = %v, want %v", tt.cmd.Object.Offset, tt.offset)
			}
		})
	}
}

func TestInstructionsCarryNoObject(t *testing.T) {
	cmds := []Command{Exit(), Save(), Overlay(OverlaySelectFile), LastBuffer(), UndoCmd(), RedoCmd()}
	for _, c := range cmds {
		if c.HasObject {
			t.Errorf("%v: Object = %v, want none", c, c.Object)
		}
		if !c.IsInstruction() {
			t.Errorf("%v: IsInstruction() = false", c)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%v: Validate() = %v", c, err)
		}
	}
}

func TestInsertChar(t *testing.T) {
	c := InsertChar('q')
	if c.Action != Insert('q') {
		t.Errorf("Action = %v, want Insert('q')", c.Action)
	}
	if !c.HasObject || c.Object.Kind != CharKind() || c.Object.Offset != Forward(0, Cursor(0)) {
		t.Errorf("Object = %v", c.Object)
	}
	if InsertTab().Action != Insert('\t') {
		t.Errorf("InsertTab action = %v", InsertTab().Action)
	}
	if Newline().Action != Insert('\n') {
		t.Errorf("Newline action = %v", Newline().Action)
	}
}

func TestDeleteChar(t *testing.T) {
	back := DeleteChar(Backward(1, Cursor(0)))
	want := Command{
		Number:    1,
		Action:    DeleteFromMark(Cursor(0)),
		Object:    TextObject{Kind: CharKind(), Offset: Backward(1, Cursor(0))},
		HasObject: true,
	}
	if !back.Equal(want) {
		t.Errorf("DeleteChar = %v, want %v", back, want)
	}
	if back.Equal(DeleteChar(Forward(1, Cursor(0)))) {
		t.Error("backward and forward deletes should differ")
	}
}

func TestCommandEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Command
		want bool
	}{
		{"same constructor", UndoCmd(), UndoCmd(), true},
		{"different number", Save(), Save().WithNumber(2), false},
		{"object ignored when absent", Exit(), Command{Number: 1, Action: ExitEditor(), Object: TextObject{Kind: LineKind(AnchorEnd)}}, true},
		{"object presence differs", Exit(), Command{Number: 1, Action: ExitEditor(), HasObject: true}, false},
		{"object differs", InsertChar('a'), Command{Number: 1, Action: Insert('a'), Object: TextObject{Kind: CharKind()}, HasObject: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandIsValue(t *testing.T) {
	orig := DeleteChar(Backward(1, Cursor(0)))
	c := orig
	c.Object.Offset = Forward(7, Cursor(3))
	if orig.Object.Offset != Backward(1, Cursor(0)) {
		t.Errorf("copy shares its object: original now %v", orig)
	}
}

func TestWithNumber(t *testing.T) {
	c := Save().WithNumber(3)
	if c.Number != 3 {
		t.Errorf("Number = %d, want 3", c.Number)
	}
	if Save().WithNumber(-2).Number != 1 {
		t.Error("WithNumber should clamp to 1")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{"zero number", Command{Action: ExitEditor()}, ErrInvalidNumber},
		{"missing action", Command{Number: 1}, ErrMissingAction},
		{"instruction with object", Command{Number: 1, Action: Undo(), HasObject: true}, ErrInstructionObject},
		{"valid operation", InsertChar('x'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Movement(Forward(1, Cursor(0)), CharKind()).Equal(Movement(Forward(1, Cursor(0)), CharKind())) {
		t.Error("identical movements should be equal")
	}
	if Exit().Equal(Save()) {
		t.Error("exit and save should differ")
	}
	if InsertChar('a').Equal(Command{Number: 1, Action: Insert('a')}) {
		t.Error("a nil object should differ from a set one")
	}
}

func TestIsExit(t *testing.T) {
	if !Exit().IsExit() {
		t.Error("Exit().IsExit() = false")
	}
	if Save().IsExit() || InsertChar('q').IsExit() {
		t.Error("only the exit instruction should report IsExit")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Exit(), "1 ExitEditor"},
		{Overlay(OverlaySelectFile), "1 SetOverlay(SelectFile)"},
		{DeleteChar(Backward(1, Cursor(0))), "1 DeleteFromMark(Cursor(0)) [Char Backward(1, Cursor(0))]"},
		{MustLookup(NameLineEnd), "1 MoveMark(Cursor(0)) [Line(End) Forward(0, Cursor(0))]"},
		{InsertChar('a').WithNumber(2), "2 Insert('a') [Char Forward(0, Cursor(0))]"},
		{Command{}, "0 <nil>"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBuilderEvent(t *testing.T) {
	ev := Complete(Save())
	if !ev.IsComplete() {
		t.Error("Complete event should report IsComplete")
	}
	if ev.String() != "Complete(1 SaveBuffer)" {
		t.Errorf("String() = %q", ev.String())
	}
	if Incomplete().IsComplete() {
		t.Error("Incomplete event should not report IsComplete")
	}
	if Incomplete().String() != "Incomplete" {
		t.Errorf("String() = %q", Incomplete().String())
	}
}

func TestOffsetSigned(t *testing.T) {
	if Backward(3, Cursor(0)).Signed() != -3 {
		t.Error("Backward(3).Signed() != -3")
	}
	if Forward(2, Cursor(0)).Signed() != 2 {
		t.Error("Forward(2).Signed() != 2")
	}
	if !Forward(0, Cursor(0)).IsForward() {
		t.Error("Forward(0).IsForward() = false")
	}
}
