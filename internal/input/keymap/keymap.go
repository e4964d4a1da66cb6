package keymap

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/keychord/internal/input/key"
)

// ErrEmptySequence is returned when binding an empty key sequence.
var ErrEmptySequence = errors.New("empty key sequence")

// root is the index of the root node in the arena.
const root = 0

// State is the outcome of checking a key against a KeyMap.
type State uint8

const (
	// None means no bound sequence is consistent with the keys so far.
	None State = iota

	// Continue means the keys so far are a strict prefix of a bound sequence.
	Continue

	// Match means the keys so far exactly form a bound sequence.
	Match
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Continue:
		return "continue"
	case Match:
		return "match"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// node is one position in the prefix tree.
type node[T any] struct {
	children map[key.Key]int
	value    T
	bound    bool
}

// KeyMap maps key sequences to values of type T.
type KeyMap[T any] struct {
	nodes []node[T]

	// pos is the node reached by the most recent partial match.
	pos int

	// count is the number of bound sequences.
	count int
}

// New creates an empty KeyMap.
func New[T any]() *KeyMap[T] {
	return &KeyMap[T]{
		nodes: []node[T]{{}},
	}
}

// Bind registers seq as a complete match for v.
// Binding a sequence that is already bound replaces its value.
// Bind abandons any partial match in progress.
func (m *KeyMap[T]) Bind(seq []key.Key, v T) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}

	idx := root
	for _, k := range seq {
		idx = m.child(idx, k, true)
	}

	n := &m.nodes[idx]
	if !n.bound {
		m.count++
	}
	n.value = v
	n.bound = true

	m.pos = root
	return nil
}

// BindKey registers a single key as a complete match for v.
func (m *KeyMap[T]) BindKey(k key.Key, v T) {
	// A one-key sequence is never empty.
	_ = m.Bind([]key.Key{k}, v)
}

// child returns the index of the child of idx reached by k.
// With create set, a missing child is allocated; otherwise -1 is returned.
func (m *KeyMap[T]) child(idx int, k key.Key, create bool) int {
	if next, ok := m.nodes[idx].children[k]; ok {
		return next
	}
	if !create {
		return -1
	}

	m.nodes = append(m.nodes, node[T]{})
	next := len(m.nodes) - 1
	if m.nodes[idx].children == nil {
		m.nodes[idx].children = make(map[key.Key]int)
	}
	m.nodes[idx].children[k] = next
	return next
}

// CheckKey advances the match by one key.
//
// On Match the bound value is returned and traversal restarts at the root.
// A sequence that is bound and also continues deeper resolves as Match.
// On None traversal restarts at the root, so the next key is matched on
// its own.
func (m *KeyMap[T]) CheckKey(k key.Key) (T, State) {
	var zero T

	next := m.child(m.pos, k, false)
	if next < 0 {
		m.pos = root
		return zero, None
	}

	n := m.nodes[next]
	if n.bound {
		m.pos = root
		return n.value, Match
	}
	if len(n.children) > 0 {
		m.pos = next
		return zero, Continue
	}

	m.pos = root
	return zero, None
}

// Pending returns true if a partial match is in progress.
func (m *KeyMap[T]) Pending() bool {
	return m.pos != root
}

// Reset abandons any partial match.
func (m *KeyMap[T]) Reset() {
	m.pos = root
}

// Len returns the number of bound sequences.
func (m *KeyMap[T]) Len() int {
	return m.count
}

// Lookup returns the value bound to exactly seq.
// It does not affect the traversal state.
func (m *KeyMap[T]) Lookup(seq []key.Key) (T, bool) {
	var zero T
	if len(seq) == 0 {
		return zero, false
	}

	idx := root
	for _, k := range seq {
		idx = m.child(idx, k, false)
		if idx < 0 {
			return zero, false
		}
	}

	n := m.nodes[idx]
	if !n.bound {
		return zero, false
	}
	return n.value, true
}

// Walk calls fn for every bound sequence, depth first.
// Siblings are visited in key order (code, then rune), so the order is
// deterministic. The seq slice must not be retained.
func (m *KeyMap[T]) Walk(fn func(seq []key.Key, v T)) {
	m.walk(root, make([]key.Key, 0, 4), fn)
}

func (m *KeyMap[T]) walk(idx int, prefix []key.Key, fn func(seq []key.Key, v T)) {
	n := m.nodes[idx]
	if n.bound {
		fn(prefix, n.value)
	}

	keys := make([]key.Key, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	for _, k := range keys {
		m.walk(n.children[k], append(prefix, k), fn)
	}
}

// compareKeys orders keys by code, then rune.
func compareKeys(a, b key.Key) int {
	if c := cmp.Compare(a.Code, b.Code); c != 0 {
		return c
	}
	return cmp.Compare(a.Rune, b.Rune)
}
