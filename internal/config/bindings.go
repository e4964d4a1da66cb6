package config

import (
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

// ResolvedBinding is a user binding with its keys parsed and its action
// looked up.
type ResolvedBinding struct {
	Keys    []key.Key
	Action  string
	Command command.Command
}

// Resolve parses the binding's key sequence and looks up its action.
func (b Binding) Resolve() (ResolvedBinding, error) {
	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return ResolvedBinding{}, err
	}
	cmd, err := command.Lookup(b.Action)
	if err != nil {
		return ResolvedBinding{}, err
	}
	return ResolvedBinding{Keys: seq, Action: b.Action, Command: cmd}, nil
}

// ResolveBindings resolves bs in order. The first failure is returned as
// a *BindingError and no bindings are returned.
func ResolveBindings(bs []Binding) ([]ResolvedBinding, error) {
	resolved := make([]ResolvedBinding, 0, len(bs))
	for i, b := range bs {
		rb, err := b.Resolve()
		if err != nil {
			return nil, &BindingError{Index: i, Keys: b.Keys, Err: err}
		}
		resolved = append(resolved, rb)
	}
	return resolved, nil
}
