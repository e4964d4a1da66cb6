// Package lua evaluates user key binding scripts with gopher-lua.
//
// A script runs in a sandboxed state with only the base, table, string
// and math libraries. It receives a global keymap module:
//
//	keymap.bind("C-x C-z", "history.undo")
//	keymap.bind({"<F5>", "C-x s"}, "editor.save")
//
//	for _, name in ipairs(keymap.actions()) do
//	    print(name)
//	end
//
// Each bind call is checked immediately; a bad key spec or an unknown
// action name raises a Lua error pointing at the offending argument.
// The collected bindings are applied by the caller in script order, on
// top of the default table.
//
// Scripts run under a context.Context, so a runaway loop is stopped by
// the caller's deadline.
package lua
