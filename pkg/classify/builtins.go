package classify

// BuiltinModules are the interpreter's compiled-in modules, the names a
// stock CPython build reports in sys.builtin_module_names. They never
// resolve to a file on the search path, so they are classified up front.
var BuiltinModules = map[string]bool{
	"_abc":         true,
	"_ast":         true,
	"_codecs":      true,
	"_collections": true,
	"_functools":   true,
	"_imp":         true,
	"_io":          true,
	"_locale":      true,
	"_operator":    true,
	"_signal":      true,
	"_sre":         true,
	"_stat":        true,
	"_string":      true,
	"_symtable":    true,
	"_thread":      true,
	"_tokenize":    true,
	"_tracemalloc": true,
	"_warnings":    true,
	"_weakref":     true,
	"atexit":       true,
	"builtins":     true,
	"errno":        true,
	"faulthandler": true,
	"gc":           true,
	"itertools":    true,
	"marshal":      true,
	"posix":        true,
	"pwd":          true,
	"sys":          true,
	"time":         true,
	"zipimport":    true,
}

// IsBuiltinModule reports whether name is a compiled-in interpreter module.
func IsBuiltinModule(name string) bool {
	return BuiltinModules[name]
}
