package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		k    tcell.Key
		ch   rune
		mod  tcell.ModMask
		want key.Key
	}{
		{"rune", tcell.KeyRune, 'a', tcell.ModNone, key.Char('a')},
		{"upper rune", tcell.KeyRune, 'Q', tcell.ModShift, key.Char('Q')},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, key.Char(' ')},
		{"unicode", tcell.KeyRune, 'ж', tcell.ModNone, key.Char('ж')},
		{"ctrl rune", tcell.KeyRune, 'X', tcell.ModCtrl, key.Ctrl('x')},
		{"ctrl x", tcell.KeyCtrlX, 0, tcell.ModCtrl, key.Ctrl('x')},
		{"ctrl q", tcell.KeyCtrlQ, 0, tcell.ModCtrl, key.Ctrl('q')},
		{"ctrl a", tcell.KeyCtrlA, 0, tcell.ModCtrl, key.Ctrl('a')},
		{"ctrl z", tcell.KeyCtrlZ, 0, tcell.ModCtrl, key.Ctrl('z')},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, key.Enter},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, key.Tab},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, key.Escape},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, key.Backspace},
		{"delete", tcell.KeyDelete, 0, tcell.ModNone, key.Delete},
		{"up", tcell.KeyUp, 0, tcell.ModNone, key.Up},
		{"shift down", tcell.KeyDown, 0, tcell.ModShift, key.Down},
		{"left", tcell.KeyLeft, 0, tcell.ModNone, key.Left},
		{"right", tcell.KeyRight, 0, tcell.ModNone, key.Right},
		{"home", tcell.KeyHome, 0, tcell.ModNone, key.Home},
		{"end", tcell.KeyEnd, 0, tcell.ModNone, key.End},
		{"page up", tcell.KeyPgUp, 0, tcell.ModNone, key.PageUp},
		{"page down", tcell.KeyPgDn, 0, tcell.ModNone, key.PageDown},
		{"insert", tcell.KeyInsert, 0, tcell.ModNone, key.Insert},
		{"f1", tcell.KeyF1, 0, tcell.ModNone, key.F(1)},
		{"f12", tcell.KeyF12, 0, tcell.ModNone, key.F(12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertKey(tcell.NewEventKey(tt.k, tt.ch, tt.mod))
			if !ok {
				t.Fatal("ConvertKey() ok = false")
			}
			if got != tt.want {
				t.Errorf("ConvertKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertKeyDropped(t *testing.T) {
	tests := []struct {
		name string
		k    tcell.Key
		ch   rune
		mod  tcell.ModMask
	}{
		{"alt rune", tcell.KeyRune, 'x', tcell.ModAlt},
		{"meta rune", tcell.KeyRune, 'x', tcell.ModMeta},
		{"alt up", tcell.KeyUp, 0, tcell.ModAlt},
		{"backtab", tcell.KeyBacktab, 0, tcell.ModShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ConvertKey(tcell.NewEventKey(tt.k, tt.ch, tt.mod)); ok {
				t.Errorf("ConvertKey() = %v, want dropped", got)
			}
		})
	}
}

func TestKeyTableNamedWins(t *testing.T) {
	if got := keyTable[tcell.KeyTab]; got != key.Tab {
		t.Errorf("keyTable[Tab] = %v, want Tab", got)
	}
	if got := keyTable[tcell.KeyEnter]; got != key.Enter {
		t.Errorf("keyTable[Enter] = %v, want Enter", got)
	}
	if got := keyTable[tcell.KeyBackspace]; got != key.Backspace {
		t.Errorf("keyTable[Backspace] = %v, want Backspace", got)
	}
}
