package pytree

// Visitor receives import statements during a single left-to-right walk of a
// module. LeaveModule is called exactly once, after the last statement, and
// marks the point where per-module state must be flushed.
type Visitor interface {
	VisitImport(*Import)
	VisitImportFrom(*ImportFrom)
	LeaveModule(*Module)
}

// Walk drives v over every statement of m in source order, recursing into
// function and class bodies, then signals end of module. Each callback runs
// to completion before the next statement is visited.
func Walk(m *Module, v Visitor) {
	walkBody(m.Body, v)
	v.LeaveModule(m)
}

func walkBody(body []Stmt, v Visitor) {
	for _, s := range body {
		switch n := s.(type) {
		case *Import:
			v.VisitImport(n)
		case *ImportFrom:
			v.VisitImportFrom(n)
		case *FuncDef:
			walkBody(n.Body, v)
		case *ClassDef:
			walkBody(n.Body, v)
		}
	}
}
