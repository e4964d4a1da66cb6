// Package keymap provides incremental matching of key sequences against a
// set of bindings.
//
// A KeyMap is a prefix tree keyed by key.Key. Bindings map one or more
// keys to a value; a sequence and its strict prefix may both be bound.
// Matching is stateful: each CheckKey call advances from the position
// reached by the previous call and reports one of three states.
//
//	Match     the keys so far form a bound sequence; the value is returned
//	          and traversal restarts at the root
//	Continue  the keys so far are a strict prefix of a bound sequence
//	None      no bound sequence starts with the keys so far; traversal
//	          restarts at the root
//
// # Usage
//
//	km := keymap.New[string]()
//	km.Bind(key.MustParseSequence("C-x C-s"), "save")
//	km.Bind(key.MustParseSequence("C-x C-c"), "exit")
//
//	km.CheckKey(key.Ctrl('x')) // "", Continue
//	km.CheckKey(key.Ctrl('s')) // "save", Match
//
// Nodes live in a slice and refer to each other by index, so the traversal
// position is a plain int.
//
// A KeyMap is not safe for concurrent use.
package keymap
