package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Code identifies the shape of a Key.
type Code uint16

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// CodeChar is a plain character; the character is stored in Key.Rune.
	CodeChar

	// CodeCtrl is a control chord; the character is stored in Key.Rune.
	CodeCtrl

	// Special keys
	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	// Arrow keys
	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// Key is a single input event value.
// Rune is only meaningful for CodeChar and CodeCtrl.
type Key struct {
	Code Code
	Rune rune
}

// Named keys.
var (
	Escape    = Key{Code: CodeEscape}
	Enter     = Key{Code: CodeEnter}
	Tab       = Key{Code: CodeTab}
	Backspace = Key{Code: CodeBackspace}
	Delete    = Key{Code: CodeDelete}
	Insert    = Key{Code: CodeInsert}
	Home      = Key{Code: CodeHome}
	End       = Key{Code: CodeEnd}
	PageUp    = Key{Code: CodePageUp}
	PageDown  = Key{Code: CodePageDown}
	Up        = Key{Code: CodeUp}
	Down      = Key{Code: CodeDown}
	Left      = Key{Code: CodeLeft}
	Right     = Key{Code: CodeRight}
)

// Char returns the key for a plain character.
func Char(r rune) Key {
	return Key{Code: CodeChar, Rune: r}
}

// Ctrl returns the key for a control chord of r.
// Letters are normalized to lowercase, so Ctrl('X') == Ctrl('x').
func Ctrl(r rune) Key {
	return Key{Code: CodeCtrl, Rune: unicode.ToLower(r)}
}

// Named returns the key for a named (non-character) code.
func Named(c Code) Key {
	return Key{Code: c}
}

// F returns the function key Fn for n in 1..12, or the zero Key otherwise.
func F(n int) Key {
	if n < 1 || n > 12 {
		return Key{}
	}
	return Key{Code: CodeF1 + Code(n-1)}
}

// IsZero returns true for the zero Key.
func (k Key) IsZero() bool {
	return k.Code == CodeNone
}

// IsChar returns true if k is a plain character.
func (k Key) IsChar() bool {
	return k.Code == CodeChar
}

// IsCtrl returns true if k is a control chord.
func (k Key) IsCtrl() bool {
	return k.Code == CodeCtrl
}

// IsNamed returns true if k is a named non-printable key.
func (k Key) IsNamed() bool {
	return k.Code > CodeCtrl
}

// isFunction returns true if k is a function key (F1-F12).
func (k Key) isFunction() bool {
	return k.Code >= CodeF1 && k.Code <= CodeF12
}

// String returns the canonical specification of the key.
// The result can be parsed back with Parse.
// Examples: "a", "Space", "C-x", "Enter", "F5"
func (k Key) String() string {
	switch k.Code {
	case CodeNone:
		return "None"
	case CodeChar:
		if name, ok := runeNames[k.Rune]; ok {
			return name
		}
		return string(k.Rune)
	case CodeCtrl:
		if name, ok := runeNames[k.Rune]; ok {
			return "C-" + name
		}
		return "C-" + string(k.Rune)
	}
	if name, ok := codeNames[k.Code]; ok {
		return name
	}
	if k.isFunction() {
		return fmt.Sprintf("F%d", k.Code-CodeF1+1)
	}
	return fmt.Sprintf("Key(%d)", k.Code)
}

// codeNames maps named codes to their canonical names.
var codeNames = map[Code]string{
	CodeEscape:    "Esc",
	CodeEnter:     "Enter",
	CodeTab:       "Tab",
	CodeBackspace: "BS",
	CodeDelete:    "Del",
	CodeInsert:    "Ins",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PgUp",
	CodePageDown:  "PgDn",
	CodeUp:        "Up",
	CodeDown:      "Down",
	CodeLeft:      "Left",
	CodeRight:     "Right",
}

// runeNames holds characters that cannot be written literally in a
// space-separated sequence.
var runeNames = map[rune]string{
	' ': "Space",
	'<': "Lt",
	'>': "Gt",
}

// keyNameMap maps key names (lowercase) to named keys.
var keyNameMap = map[string]Key{
	"escape":    Escape,
	"esc":       Escape,
	"enter":     Enter,
	"return":    Enter,
	"cr":        Enter,
	"tab":       Tab,
	"backspace": Backspace,
	"bs":        Backspace,
	"delete":    Delete,
	"del":       Delete,
	"insert":    Insert,
	"ins":       Insert,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pgup":      PageUp,
	"pagedown":  PageDown,
	"pgdn":      PageDown,
	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
	"f1":        F(1),
	"f2":        F(2),
	"f3":        F(3),
	"f4":        F(4),
	"f5":        F(5),
	"f6":        F(6),
	"f7":        F(7),
	"f8":        F(8),
	"f9":        F(9),
	"f10":       F(10),
	"f11":       F(11),
	"f12":       F(12),
}

// runeNameMap maps names of characters (lowercase) to the character.
var runeNameMap = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
}

// FromName returns the named key for name (case-insensitive).
// Returns the zero Key if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return Key{}
}
