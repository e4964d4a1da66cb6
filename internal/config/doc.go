// Package config loads keychord settings and user key bindings.
//
// A configuration file is TOML or YAML, chosen by extension:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/keychord.log"
//
//	[keymap]
//	script = "keys.lua"
//	watch = true
//
//	[[keymap.bindings]]
//	keys = "C-x C-z"
//	action = "history.undo"
//
// Values are layered: built-in defaults, then the file, then KEYCHORD_*
// environment variables. Bindings name actions from the command registry
// and are resolved with ResolveBindings. A Watcher reloads the file when
// it changes on disk.
package config
