package sema

import (
	"fmt"

	"talpa/internal/ast"
	"talpa/internal/diag"
)

// walkState is copied into every nested block.
type walkState struct {
	insideLoop  bool
	unreachable bool
	vars        Scope
}

func (c *checker) checkFunction(fn *ast.Function) {
	// globals first: arguments shadow them
	vars := globalScope(c.result)
	for _, arg := range fn.Args {
		vars[arg.Name] = VarInfo{}
	}
	c.walkBlock(fn.Body, walkState{vars: vars})
}

// checkBlock enters a nested block with a copy of st: its own scope and the
// reachability of the enclosing statement. Nothing flows back out.
func (c *checker) checkBlock(body ast.Block, st walkState) {
	st.vars = st.vars.Clone()
	c.walkBlock(body, st)
}

func (c *checker) walkBlock(body ast.Block, st walkState) {
	for _, act := range body {
		if st.unreachable {
			c.warn(diag.SemaUnreachableCode, act.Loc(), "Unreachable code").Emit()
		}
		c.checkAction(act, &st)
	}
}

func (c *checker) checkAction(act ast.Action, st *walkState) {
	switch n := act.(type) {
	case *ast.Variable:
		if st.vars.declaredLocally(n.Name) {
			c.errorf(diag.SemaVariableAlreadyDeclared, n.Loc(), fmt.Sprintf("Variable %q is already declared", n.Name))
		} else {
			st.vars[n.Name] = VarInfo{Mutable: n.Decl.Mutable()}
		}
		c.checkType(n.Type)
		if n.Value != nil {
			c.checkAction(n.Value, st)
		}

	case *ast.Assignment:
		info, ok := st.vars.Lookup(n.Name)
		switch {
		case !ok:
			c.errorf(diag.SemaVariableRefDoesNotExist, n.Loc(), fmt.Sprintf("Variable %q does not exist", n.Name))
		case !info.Mutable:
			c.errorf(diag.SemaInmutable, n.Loc(), fmt.Sprintf("Data is not mutable: %s", n.Name))
		}
		if n.Value != nil {
			c.checkAction(n.Value, st)
		}

	case *ast.Call:
		if _, ok := c.result.Functions[n.Name]; !ok {
			c.errorf(diag.SemaFunctionDoesNotExist, n.Loc(), fmt.Sprintf("Function %q does not exist", n.Name))
		}
		for _, arg := range n.Args {
			c.checkAction(arg, st)
		}

	case *ast.VarRef:
		if _, ok := st.vars.Lookup(n.Name); !ok {
			c.errorf(diag.SemaVariableRefDoesNotExist, n.Loc(), fmt.Sprintf("Variable %q does not exist", n.Name))
		}

	case *ast.StringLit, *ast.NumberLit, *ast.BoolLit:

	case *ast.Break:
		if !st.insideLoop {
			c.errorf(diag.SemaBreakNotAllowed, n.Loc(), "")
		}
		st.unreachable = true

	case *ast.Continue:
		if !st.insideLoop {
			c.errorf(diag.SemaContinueNotAllowed, n.Loc(), "")
		}
		st.unreachable = true

	case *ast.Return:
		if n.Value != nil {
			c.checkAction(n.Value, st)
		}
		st.unreachable = true

	case *ast.For:
		if n.Iter != nil {
			c.checkAction(n.Iter, st)
		}
		vars := st.vars.Clone()
		if vars.declaredLocally(n.Var) {
			c.errorf(diag.SemaVariableAlreadyDeclared, n.VarLoc, fmt.Sprintf("Variable %q is already declared", n.Var))
		} else {
			vars[n.Var] = VarInfo{}
		}
		c.walkBlock(n.Body, walkState{insideLoop: true, unreachable: st.unreachable, vars: vars})

	case *ast.While:
		if n.Cond != nil {
			c.checkAction(n.Cond, st)
		}
		c.checkBlock(n.Body, walkState{insideLoop: true, unreachable: st.unreachable, vars: st.vars})

	case *ast.Loop:
		c.checkBlock(n.Body, walkState{insideLoop: true, unreachable: st.unreachable, vars: st.vars})

	case *ast.If:
		for _, br := range n.Branches {
			if br.Cond != nil {
				c.checkAction(br.Cond, st)
			}
			// каждая ветка начинает с состояния на входе в if
			c.checkBlock(br.Body, *st)
		}
	}
}
