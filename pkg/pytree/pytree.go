// Package pytree is the syntax-tree abstraction the checker consumes. The
// host parses Python source by whatever means it likes and hands the checker
// a Module built from these nodes; the checker never reads source text itself.
package pytree

import "strings"

// Loc is a position within a source file. Line is 1-based, Col is 0-based.
type Loc struct {
	Line int
	Col  int
}

// Node is the common interface of all syntax nodes.
type Node interface {
	Parent() Node
	Loc() Loc
	// AsString renders the node back to source text deterministically.
	AsString() string
}

// Stmt is a statement that can appear in a module, function or class body.
type Stmt interface {
	Node
	setParent(Node)
}

// Module is the root node of a parsed file.
type Module struct {
	// Name is the dotted module path of the file, e.g. "myapp.views".
	// Empty for a file outside any package.
	Name string
	Body []Stmt
}

func (m *Module) Parent() Node     { return nil }
func (m *Module) Loc() Loc         { return Loc{Line: 1} }
func (m *Module) AsString() string { return m.Name }

// AddStmt appends a statement to the module body and records the parent link.
func (m *Module) AddStmt(s Stmt) {
	s.setParent(m)
	m.Body = append(m.Body, s)
}

// NamePieces returns the dotted pieces of the module's own name.
func (m *Module) NamePieces() []string {
	if m.Name == "" {
		return nil
	}
	return strings.Split(m.Name, ".")
}

type stmtBase struct {
	parent Node
	loc    Loc
}

func (s *stmtBase) Parent() Node     { return s.parent }
func (s *stmtBase) Loc() Loc         { return s.loc }
func (s *stmtBase) setParent(n Node) { s.parent = n }

// Alias is one name bound by an import statement, with its optional as-name.
type Alias struct {
	Name   string
	AsName string
}

func (a Alias) String() string {
	if a.AsName != "" {
		return a.Name + " as " + a.AsName
	}
	return a.Name
}

// Import is a plain import statement, e.g. "import os, sys".
type Import struct {
	stmtBase
	Names []Alias
}

func NewImport(loc Loc, names ...Alias) *Import {
	return &Import{stmtBase: stmtBase{loc: loc}, Names: names}
}

func (i *Import) AsString() string {
	return "import " + joinAliases(i.Names)
}

// ImportFrom is a from-import, e.g. "from ..pkg import helpers as h".
type ImportFrom struct {
	stmtBase
	// Module is the stated dotted module path, empty for "from . import x".
	Module string
	// Level counts the leading dots; 0 means an absolute import.
	Level int
	Names []Alias
}

func NewImportFrom(loc Loc, module string, level int, names ...Alias) *ImportFrom {
	return &ImportFrom{stmtBase: stmtBase{loc: loc}, Module: module, Level: level, Names: names}
}

func (i *ImportFrom) AsString() string {
	return "from " + strings.Repeat(".", i.Level) + i.Module + " import " + joinAliases(i.Names)
}

// ModulePieces returns the non-empty dotted pieces of the stated module path.
func (i *ImportFrom) ModulePieces() []string {
	var pieces []string
	for _, p := range strings.Split(i.Module, ".") {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// FuncDef is a function definition. Only the nesting matters to the checker,
// so the signature is not modeled.
type FuncDef struct {
	stmtBase
	Name string
	Body []Stmt
}

func NewFuncDef(loc Loc, name string) *FuncDef {
	return &FuncDef{stmtBase: stmtBase{loc: loc}, Name: name}
}

func (f *FuncDef) AsString() string { return "def " + f.Name + "(...)" }

// AddStmt appends a statement to the function body and records the parent link.
func (f *FuncDef) AddStmt(s Stmt) {
	s.setParent(f)
	f.Body = append(f.Body, s)
}

// ClassDef is a class definition with a nested body.
type ClassDef struct {
	stmtBase
	Name string
	Body []Stmt
}

func NewClassDef(loc Loc, name string) *ClassDef {
	return &ClassDef{stmtBase: stmtBase{loc: loc}, Name: name}
}

func (c *ClassDef) AsString() string { return "class " + c.Name }

// AddStmt appends a statement to the class body and records the parent link.
func (c *ClassDef) AddStmt(s Stmt) {
	s.setParent(c)
	c.Body = append(c.Body, s)
}

func joinAliases(names []Alias) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
