// Package classify decides the provenance group of a top-level Python module
// name: standard library, third party, or application local. Provenance is
// inferred from where the module physically lives on disk, so no per-project
// allow-list of third-party packages is needed.
package classify

import (
	"path/filepath"
	"strings"
)

// Group is the provenance bucket of an import. The declaration order is the
// sort order used by the import grouping rules.
type Group int

const (
	Stdlib Group = iota
	ThirdParty
	AppLocal
)

func (g Group) String() string {
	switch g {
	case Stdlib:
		return "standard library"
	case ThirdParty:
		return "third party"
	case AppLocal:
		return "application local"
	}
	return "unknown"
}

// Config holds the classifier's process-wide inputs. The roots are computed
// once by the host at startup and are immutable afterwards.
type Config struct {
	// Builtins overrides the compiled-in module set. When nil the default
	// BuiltinModules set is used.
	Builtins []string
	// StdlibRoot is the real path of the standard library installation.
	StdlibRoot string
	// AppRoot is the real path of the application root, normally the
	// working directory the checker was started from.
	AppRoot string
	// SiteDirs are path segment names that mark third-party install
	// locations under the stdlib root. Defaults to "site-packages" and
	// "dist-packages".
	SiteDirs []string
	// Resolver locates module names on the import search path. A nil
	// resolver classifies every non-builtin name as third party.
	Resolver Resolver
}

// Classifier maps top-level module names to provenance groups. It is
// read-only after construction and safe for repeated use.
type Classifier struct {
	builtins     map[string]bool
	stdlibPrefix string
	appPrefix    string
	siteDirs     map[string]bool
	resolver     Resolver
}

func New(cfg Config) *Classifier {
	c := &Classifier{
		stdlibPrefix: prefixOf(cfg.StdlibRoot),
		appPrefix:    prefixOf(cfg.AppRoot),
		siteDirs:     make(map[string]bool),
		resolver:     cfg.Resolver,
	}
	if cfg.Builtins == nil {
		c.builtins = BuiltinModules
	} else {
		c.builtins = make(map[string]bool, len(cfg.Builtins))
		for _, name := range cfg.Builtins {
			c.builtins[name] = true
		}
	}
	siteDirs := cfg.SiteDirs
	if siteDirs == nil {
		siteDirs = []string{"site-packages", "dist-packages"}
	}
	for _, d := range siteDirs {
		c.siteDirs[d] = true
	}
	return c
}

// Classify returns the provenance group of a top-level module name. An
// unresolvable name is assumed third party rather than treated as an error;
// the checker lints style, it does not validate importability.
func (c *Classifier) Classify(name string) Group {
	if c.builtins[name] {
		return Stdlib
	}
	if c.resolver == nil {
		return ThirdParty
	}
	path, ok := c.resolver.Resolve(name)
	if !ok {
		return ThirdParty
	}
	real := realPath(path)
	if c.appPrefix != "" && strings.HasPrefix(real, c.appPrefix) {
		return AppLocal
	}
	if c.stdlibPrefix != "" && strings.HasPrefix(real, c.stdlibPrefix) && !c.underSiteDir(real) {
		return Stdlib
	}
	return ThirdParty
}

func (c *Classifier) underSiteDir(path string) bool {
	for _, piece := range strings.Split(path, "/") {
		if c.siteDirs[piece] {
			return true
		}
	}
	return false
}

func prefixOf(root string) string {
	if root == "" {
		return ""
	}
	return strings.TrimSuffix(root, "/") + "/"
}

// realPath resolves symlinks best effort. A path that cannot be resolved,
// for instance one produced by an in-memory resolver, is used as given.
func realPath(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}
