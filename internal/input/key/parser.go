package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into a Key.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "Enter", "Escape", "Tab", "Backspace", "Space", "F5"
//   - Control chords: "C-s", "Ctrl+S", "Control+s", "^S"
//   - Vim-style: "<C-s>", "<CR>", "<Esc>", "<BS>", "<lt>"
//
// Only the Ctrl modifier is representable, and only on characters.
func Parse(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Key{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && utf8.RuneCountInString(spec) > 1 {
		if !strings.HasSuffix(spec, ">") {
			return Key{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Caret notation (^X)
	if r, ok := caretRune(spec); ok {
		return Ctrl(r), nil
	}

	// Emacs-style C-x
	if len(spec) > 2 && (strings.HasPrefix(spec, "C-") || strings.HasPrefix(spec, "c-")) {
		return parseKeyPart(spec[2:], true)
	}

	// Modifier+key format (Ctrl+S)
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyPart(spec, false)
}

// caretRune reports whether spec is "^X" and returns X.
func caretRune(spec string) (rune, bool) {
	runes := []rune(spec)
	if len(runes) != 2 || runes[0] != '^' {
		return 0, false
	}
	if !unicode.IsLetter(runes[1]) {
		return 0, false
	}
	return runes[1], true
}

// parseVimStyle parses the inside of <...> like "C-s", "CR", "Esc".
func parseVimStyle(inner string) (Key, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Key{}, ErrInvalidSpec
	}

	// "<->" or "<C-->" style dashes as the key itself
	if strings.HasSuffix(inner, "--") {
		inner = strings.TrimSuffix(inner, "--") + "-minus"
	}

	parts := strings.Split(inner, "-")
	if len(parts) == 1 {
		return parseKeyPart(parts[0], false)
	}

	ctrl := false
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			ctrl = true
		default:
			return Key{}, fmt.Errorf("%w: unsupported modifier %q", ErrInvalidSpec, p)
		}
	}

	keyPart := parts[len(parts)-1]
	if keyPart == "minus" {
		keyPart = "-"
	}
	return parseKeyPart(keyPart, ctrl)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Key, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Key{}, ErrInvalidSpec
	}

	ctrl := false
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control", "c":
			ctrl = true
		default:
			return Key{}, fmt.Errorf("%w: unsupported modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyPart(parts[len(parts)-1], ctrl)
}

// parseKeyPart parses a key name or a single character.
func parseKeyPart(keyPart string, ctrl bool) (Key, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Key{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)

	if r, ok := runeNameMap[lower]; ok {
		if ctrl {
			return Ctrl(r), nil
		}
		return Char(r), nil
	}

	if k, ok := keyNameMap[lower]; ok {
		if ctrl {
			return Key{}, fmt.Errorf("%w: control chord of named key %q", ErrInvalidSpec, keyPart)
		}
		return k, nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		if ctrl {
			return Ctrl(runes[0]), nil
		}
		return Char(runes[0]), nil
	}

	return Key{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return k
}

// ParseSequence parses a key sequence string.
// The string can contain whitespace-separated keys or a continuous
// Vim-style sequence.
// Examples: "C-x C-s", "<C-x><C-s>", "gg", "Enter"
//
// Each whitespace-separated token is parsed on its own. A token that uses
// modifier syntax ("C-x", "Ctrl+S", "^X") or starts with an upper case
// letter ("Enter", "Up") parses as one key. Any other token is text with
// <...> groups for named keys, so "end" is e, n, d while "End" and "<End>"
// are the End key.
func ParseSequence(s string) ([]Key, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrEmptySpec
	}

	seq := make([]Key, 0, len(fields))
	for _, f := range fields {
		keys, err := parseToken(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, keys...)
	}
	return seq, nil
}

// hasModifierSyntax reports whether tok is written as a modified key.
func hasModifierSyntax(tok string) bool {
	return len(tok) > 1 && strings.ContainsAny(tok, "-+^")
}

// parseToken parses one whitespace-free token of a sequence.
func parseToken(tok string) ([]Key, error) {
	if !strings.Contains(tok, "<") {
		first, _ := utf8.DecodeRuneInString(tok)
		if hasModifierSyntax(tok) {
			k, err := Parse(tok)
			if err != nil {
				return nil, err
			}
			return []Key{k}, nil
		}
		if unicode.IsUpper(first) && utf8.RuneCountInString(tok) > 1 {
			if k, err := Parse(tok); err == nil {
				return []Key{k}, nil
			}
		}
	}

	runes := []rune(tok)
	seq := make([]Key, 0, len(runes))
	for i := 0; i < len(runes); {
		if runes[i] == '<' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '>' {
					end = j
					break
				}
			}
			if end == -1 {
				// No closing >, treat as literal <
				seq = append(seq, Char('<'))
				i++
				continue
			}
			k, err := Parse(string(runes[i : end+1]))
			if err != nil {
				return nil, err
			}
			seq = append(seq, k)
			i = end + 1
			continue
		}
		seq = append(seq, Char(runes[i]))
		i++
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) []Key {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}

// FormatSequence formats keys as a space-separated specification that
// ParseSequence accepts.
func FormatSequence(seq []Key) string {
	parts := make([]string, len(seq))
	for i, k := range seq {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}
