package command

import (
	"errors"
	"slices"
	"testing"
)

func TestLookup(t *testing.T) {
	c, err := Lookup(NameSave)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", NameSave, err)
	}
	if !c.Equal(Save()) {
		t.Errorf("Lookup(%q) = %v, want %v", NameSave, c, Save())
	}

	if _, err := Lookup("editor.fly"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownAction", err)
	}
}

func TestLookupReturnsIndependentCommands(t *testing.T) {
	a := MustLookup(NameCursorUp)
	a.Object.Offset = Forward(9, Cursor(0))
	if b := MustLookup(NameCursorUp); b.Object.Offset != Backward(1, Cursor(0)) {
		t.Errorf("Lookup after change = %v, want offset Backward(1, Cursor(0))", b)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 17 {
		t.Errorf("len(Names()) = %d, want 17", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("Names() should be sorted")
	}
	for _, name := range names {
		c := MustLookup(name)
		if err := c.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", name, err)
		}
		if got := Name(c); got != name {
			t.Errorf("Name(Lookup(%q)) = %q", name, got)
		}
	}
}

func TestNameUnknown(t *testing.T) {
	if got := Name(InsertChar('z')); got != "" {
		t.Errorf("Name(InsertChar) = %q, want empty", got)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup should panic on unknown names")
		}
	}()
	MustLookup("nope")
}
