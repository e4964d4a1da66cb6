package lua

import (
	"context"
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/config"
)

// ModuleName is the global name of the binding module.
const ModuleName = "keymap"

// Script collects the bindings declared by Lua code.
type Script struct {
	state    *State
	bindings []config.ResolvedBinding
}

// NewScript creates a sandboxed state with the keymap module installed.
func NewScript(opts ...StateOption) *Script {
	sc := &Script{state: NewState(opts...)}
	sc.state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"bind":    sc.bind,
		"actions": sc.actions,
	})
	return sc
}

// RunFile executes the script at path.
func (sc *Script) RunFile(ctx context.Context, path string) error {
	return sc.state.DoFile(ctx, path)
}

// RunString executes Lua source.
func (sc *Script) RunString(ctx context.Context, code string) error {
	return sc.state.DoString(ctx, code)
}

// Bindings returns the bindings declared so far, in call order.
func (sc *Script) Bindings() []config.ResolvedBinding {
	out := make([]config.ResolvedBinding, len(sc.bindings))
	copy(out, sc.bindings)
	return out
}

// Close releases the Lua state.
func (sc *Script) Close() error {
	return sc.state.Close()
}

// LoadBindings runs the script at path and returns its bindings.
// A script that fails part way contributes no bindings.
func LoadBindings(ctx context.Context, path string, opts ...StateOption) ([]config.ResolvedBinding, error) {
	sc := NewScript(opts...)
	defer sc.Close()

	if err := sc.RunFile(ctx, path); err != nil {
		return nil, err
	}
	return sc.Bindings(), nil
}

// bind implements keymap.bind(keys, action).
// keys is a sequence spec or a list of them.
func (sc *Script) bind(L *lua.LState) int {
	action := L.CheckString(2)

	var specs []string
	switch v := L.Get(1).(type) {
	case lua.LString:
		specs = append(specs, string(v))
	case *lua.LTable:
		for i := 1; i <= v.Len(); i++ {
			s, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				L.ArgError(1, "key specs must be strings")
				return 0
			}
			specs = append(specs, string(s))
		}
	default:
		L.ArgError(1, "expected key spec or list of key specs")
		return 0
	}
	if len(specs) == 0 {
		L.ArgError(1, "no key specs given")
		return 0
	}

	resolved := make([]config.ResolvedBinding, 0, len(specs))
	for _, spec := range specs {
		rb, err := config.Binding{Keys: spec, Action: action}.Resolve()
		if err != nil {
			arg := 1
			if errors.Is(err, command.ErrUnknownAction) {
				arg = 2
			}
			L.ArgError(arg, err.Error())
			return 0
		}
		resolved = append(resolved, rb)
	}
	sc.bindings = append(sc.bindings, resolved...)
	return 0
}

// actions implements keymap.actions(), returning the known action names.
func (sc *Script) actions(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range command.Names() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}
