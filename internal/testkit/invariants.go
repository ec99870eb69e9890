package testkit

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"talpa/internal/ast"
	"talpa/internal/source"
)

// CheckLocationInvariants runs a minimal set of location invariants on a
// parsed file:
// 1) every node location points into sf and lies within its content
// 2) Line agrees with Off (one plus the newlines before Off)
// 3) top level items of one kind are stored in source order
func CheckLocationInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	if prog.File != sf.ID {
		return fmt.Errorf("program file id mismatch: got=%d want=%d", prog.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	w := &walker{file: sf, size: lenContent}

	for _, imp := range prog.Imports {
		w.loc("import "+imp.Name, imp.Loc())
	}
	for _, fn := range prog.Functions {
		w.function(fn)
	}
	for _, v := range prog.Vars {
		w.variable(v)
	}
	for _, st := range prog.Structs {
		w.structure(st)
	}
	for _, en := range prog.Enums {
		w.enum(en)
	}
	for _, alias := range prog.Types {
		w.loc("type "+alias.Name, alias.Loc())
		w.typ(alias.Type)
	}
	if w.err != nil {
		return w.err
	}

	// 3) порядок разбора
	if err := ordered("import", prog.Imports); err != nil {
		return err
	}
	if err := ordered("function", prog.Functions); err != nil {
		return err
	}
	if err := ordered("var", prog.Vars); err != nil {
		return err
	}
	if err := ordered("struct", prog.Structs); err != nil {
		return err
	}
	if err := ordered("enum", prog.Enums); err != nil {
		return err
	}
	return ordered("type", prog.Types)
}

type located interface {
	Loc() source.Location
}

func ordered[T located](what string, items []T) error {
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1].Loc(), items[i].Loc()
		if cur.Before(prev) {
			return fmt.Errorf("%s #%d at %v precedes #%d at %v", what, i, cur, i-1, prev)
		}
	}
	return nil
}

// walker keeps the first violation only.
type walker struct {
	file *source.File
	size uint32
	err  error
}

func (w *walker) loc(what string, loc source.Location) {
	if w.err != nil {
		return
	}
	switch {
	case loc.File != w.file.ID:
		w.err = fmt.Errorf("%s: location file mismatch: got=%d want=%d", what, loc.File, w.file.ID)
	case loc.Line == 0:
		w.err = fmt.Errorf("%s: location has no line", what)
	case loc.Off > w.size:
		w.err = fmt.Errorf("%s: offset beyond content: %d > %d", what, loc.Off, w.size)
	default:
		want := uint32(bytes.Count(w.file.Content[:loc.Off], []byte{'\n'})) + 1
		if loc.Line != want {
			w.err = fmt.Errorf("%s: line %d does not match offset %d (line %d)", what, loc.Line, loc.Off, want)
		}
	}
}

func (w *walker) function(fn *ast.Function) {
	w.loc("function "+fn.Name, fn.Loc())
	for _, arg := range fn.Args {
		w.loc("arg "+arg.Name, arg.Loc())
		w.typ(arg.Type)
	}
	w.typ(fn.Result)
	w.block(fn.Body)
}

func (w *walker) variable(v *ast.Variable) {
	w.loc("var "+v.Name, v.Loc())
	w.typ(v.Type)
	w.action(v.Value)
}

func (w *walker) structure(st *ast.Struct) {
	w.loc("struct "+st.Name, st.Loc())
	for _, f := range st.Fields {
		w.loc("field "+f.Name, f.Loc())
		w.typ(f.Type)
	}
}

func (w *walker) enum(en *ast.Enum) {
	w.loc("enum "+en.Name, en.Loc())
	for _, f := range en.Fields {
		w.loc("enum field "+f.Name, f.Loc())
		w.action(f.Value)
	}
}

func (w *walker) typ(t *ast.Type) {
	if t == nil {
		return
	}
	w.loc("type "+t.String(), t.Loc())
	switch t.Kind {
	case ast.TypeArray:
		w.typ(t.Elem)
	case ast.TypeStruct:
		if t.Struct != nil {
			w.structure(t.Struct)
		}
	case ast.TypeEnum:
		if t.Enum != nil {
			w.enum(t.Enum)
		}
	}
}

func (w *walker) block(b ast.Block) {
	for _, act := range b {
		w.action(act)
	}
}

func (w *walker) action(act ast.Action) {
	if act == nil {
		return
	}
	w.loc(act.Kind().String(), act.Loc())
	switch n := act.(type) {
	case *ast.Variable:
		w.typ(n.Type)
		w.action(n.Value)
	case *ast.Assignment:
		w.action(n.Value)
	case *ast.Call:
		for _, arg := range n.Args {
			w.action(arg)
		}
	case *ast.For:
		w.loc("for variable "+n.Var, n.VarLoc)
		w.action(n.Iter)
		w.block(n.Body)
	case *ast.While:
		w.action(n.Cond)
		w.block(n.Body)
	case *ast.Loop:
		w.block(n.Body)
	case *ast.If:
		for _, br := range n.Branches {
			w.loc("branch", br.Loc())
			w.action(br.Cond)
			w.block(br.Body)
		}
	case *ast.Return:
		w.action(n.Value)
	}
}
