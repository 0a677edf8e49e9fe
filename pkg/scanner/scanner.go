// Package scanner extracts import statements and def/class nesting from
// Python source and builds the pytree nodes the checker consumes. It is a
// line-oriented approximation good enough to drive the checker from the
// reference host; it does not build a full syntax tree.
package scanner

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/ecstyle/import-checker/pkg/pytree"
)

// openBlock is a def or class body still open at the current line.
type openBlock struct {
	indent int
	add    func(pytree.Stmt)
}

// ScanFile reads path from fsys and scans it as the module named moduleName.
func ScanFile(fsys afero.Fs, path, moduleName string) (*pytree.Module, error) {
	src, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return Scan(src, moduleName), nil
}

// Scan builds a Module from Python source. Import statements are attached to
// the innermost enclosing def or class body, or to the module itself.
func Scan(src []byte, moduleName string) *pytree.Module {
	mod := &pytree.Module{Name: moduleName}
	var stack []openBlock
	inString := false

	lines := strings.Split(string(src), "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Count(trimmed, `"""`)%2 == 1 || strings.Count(trimmed, "'''")%2 == 1 {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		indent := len(line) - len(trimmed)
		if idx := strings.Index(trimmed, "#"); idx > 0 {
			trimmed = strings.TrimRight(trimmed[:idx], " \t")
		}
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		loc := pytree.Loc{Line: i + 1, Col: indent}

		switch {
		case strings.HasPrefix(trimmed, "def ") || strings.HasPrefix(trimmed, "class "):
			kind, rest, _ := strings.Cut(trimmed, " ")
			name := blockName(rest)
			if name == "" {
				continue
			}
			var stmt pytree.Stmt
			var addChild func(pytree.Stmt)
			if kind == "def" {
				fn := pytree.NewFuncDef(loc, name)
				stmt, addChild = fn, fn.AddStmt
			} else {
				cl := pytree.NewClassDef(loc, name)
				stmt, addChild = cl, cl.AddStmt
			}
			addStmt(mod, stack, stmt)
			stack = append(stack, openBlock{indent: indent, add: addChild})

		case strings.HasPrefix(trimmed, "import "):
			names := parseAliases(strings.TrimPrefix(trimmed, "import "))
			if len(names) > 0 {
				addStmt(mod, stack, pytree.NewImport(loc, names...))
			}

		case strings.HasPrefix(trimmed, "from "):
			rest := strings.TrimPrefix(trimmed, "from ")
			target, list, ok := cutImportKeyword(rest)
			if !ok {
				continue
			}
			// A parenthesized name list may continue over several lines.
			for strings.Contains(list, "(") && !strings.Contains(list, ")") && i+1 < len(lines) {
				i++
				list += " " + strings.TrimSpace(lines[i])
			}
			level := len(target) - len(strings.TrimLeft(target, "."))
			module := strings.Trim(target, ".")
			names := parseAliases(list)
			if len(names) > 0 {
				addStmt(mod, stack, pytree.NewImportFrom(loc, module, level, names...))
			}
		}
	}
	return mod
}

func addStmt(mod *pytree.Module, stack []openBlock, s pytree.Stmt) {
	if len(stack) > 0 {
		stack[len(stack)-1].add(s)
		return
	}
	mod.AddStmt(s)
}

// blockName extracts the identifier following a def or class keyword.
func blockName(rest string) string {
	end := strings.IndexAny(rest, "(: ")
	if end < 0 {
		end = len(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// cutImportKeyword splits "X import a, b" into the import target and the
// name list.
func cutImportKeyword(rest string) (target, list string, ok bool) {
	idx := strings.Index(rest, " import ")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(rest[:idx]), rest[idx+len(" import "):], true
}

// parseAliases splits an import name list like "os, sys" or "(Popen,
// PIPE)" or "path as p" into aliases.
func parseAliases(list string) []pytree.Alias {
	list = strings.NewReplacer("(", "", ")", "", "\\", "").Replace(list)
	var names []pytree.Alias
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if name, as, ok := strings.Cut(part, " as "); ok {
			names = append(names, pytree.Alias{
				Name:   strings.TrimSpace(name),
				AsName: strings.TrimSpace(as),
			})
		} else {
			names = append(names, pytree.Alias{Name: part})
		}
	}
	return names
}
