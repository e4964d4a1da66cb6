package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
)

// keyTable maps tcell key codes to keys.
//
// Some terminals cannot tell Backspace from C-h, Tab from C-i or Enter
// from C-m, and tcell may give them the same code. The named key wins.
var keyTable = buildKeyTable()

func buildKeyTable() map[tcell.Key]key.Key {
	m := make(map[tcell.Key]key.Key, 64)

	ctrl := []tcell.Key{
		tcell.KeyCtrlA, tcell.KeyCtrlB, tcell.KeyCtrlC, tcell.KeyCtrlD,
		tcell.KeyCtrlE, tcell.KeyCtrlF, tcell.KeyCtrlG, tcell.KeyCtrlH,
		tcell.KeyCtrlI, tcell.KeyCtrlJ, tcell.KeyCtrlK, tcell.KeyCtrlL,
		tcell.KeyCtrlM, tcell.KeyCtrlN, tcell.KeyCtrlO, tcell.KeyCtrlP,
		tcell.KeyCtrlQ, tcell.KeyCtrlR, tcell.KeyCtrlS, tcell.KeyCtrlT,
		tcell.KeyCtrlU, tcell.KeyCtrlV, tcell.KeyCtrlW, tcell.KeyCtrlX,
		tcell.KeyCtrlY, tcell.KeyCtrlZ,
	}
	for i, k := range ctrl {
		m[k] = key.Ctrl('a' + rune(i))
	}
	m[tcell.KeyCtrlSpace] = key.Ctrl(' ')
	m[tcell.KeyCtrlBackslash] = key.Ctrl('\\')
	m[tcell.KeyCtrlRightSq] = key.Ctrl(']')
	m[tcell.KeyCtrlCarat] = key.Ctrl('^')
	m[tcell.KeyCtrlUnderscore] = key.Ctrl('_')

	named := []struct {
		from tcell.Key
		to   key.Key
	}{
		{tcell.KeyEscape, key.Escape},
		{tcell.KeyEnter, key.Enter},
		{tcell.KeyTab, key.Tab},
		{tcell.KeyBackspace, key.Backspace},
		{tcell.KeyBackspace2, key.Backspace},
		{tcell.KeyDelete, key.Delete},
		{tcell.KeyInsert, key.Insert},
		{tcell.KeyHome, key.Home},
		{tcell.KeyEnd, key.End},
		{tcell.KeyPgUp, key.PageUp},
		{tcell.KeyPgDn, key.PageDown},
		{tcell.KeyUp, key.Up},
		{tcell.KeyDown, key.Down},
		{tcell.KeyLeft, key.Left},
		{tcell.KeyRight, key.Right},
		{tcell.KeyF1, key.F(1)},
		{tcell.KeyF2, key.F(2)},
		{tcell.KeyF3, key.F(3)},
		{tcell.KeyF4, key.F(4)},
		{tcell.KeyF5, key.F(5)},
		{tcell.KeyF6, key.F(6)},
		{tcell.KeyF7, key.F(7)},
		{tcell.KeyF8, key.F(8)},
		{tcell.KeyF9, key.F(9)},
		{tcell.KeyF10, key.F(10)},
		{tcell.KeyF11, key.F(11)},
		{tcell.KeyF12, key.F(12)},
	}
	for _, n := range named {
		m[n.from] = n.to
	}
	return m
}

// ConvertKey converts a tcell key event. It returns false for events with
// no key.Key form: Alt or Meta chords and keys keychord does not know.
// Modifiers on named keys are ignored.
func ConvertKey(ev *tcell.EventKey) (key.Key, bool) {
	mod := ev.Modifiers()
	if mod&(tcell.ModAlt|tcell.ModMeta) != 0 {
		return key.Key{}, false
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if mod&tcell.ModCtrl != 0 {
			return key.Ctrl(r), true
		}
		return key.Char(r), true
	}

	k, ok := keyTable[ev.Key()]
	return k, ok
}
