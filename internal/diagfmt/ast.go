package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"talpa/internal/ast"
)

// ASTNodeOutput is a uniform view of one tree node shared by the JSON and
// the tree dumps.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Line     uint32          `json:"line,omitempty"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON dumps the raw program as indented JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildProgramNode(prog))
}

// FormatASTTree dumps the raw program as an indented tree.
func FormatASTTree(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	root := BuildProgramNode(prog)
	var sb strings.Builder
	sb.WriteString(nodeLabel(root))
	sb.WriteByte('\n')
	writeTreeChildren(&sb, root.Children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTreeChildren(sb *strings.Builder, children []ASTNodeOutput, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(nodeLabel(child))
		sb.WriteByte('\n')
		writeTreeChildren(sb, child.Children, prefix+next)
	}
}

func nodeLabel(n ASTNodeOutput) string {
	parts := []string{n.Type}
	if n.Kind != "" {
		parts = append(parts, n.Kind)
	}
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	label := strings.Join(parts, " ")
	if n.Line > 0 {
		label += fmt.Sprintf(" (line %d)", n.Line)
	}
	return label
}

// BuildProgramNode converts the program into ASTNodeOutput form.
func BuildProgramNode(prog *ast.Program) ASTNodeOutput {
	root := ASTNodeOutput{Type: "File", Text: prog.Path}
	for _, imp := range prog.Imports {
		root.Children = append(root.Children, ASTNodeOutput{
			Type: "Import",
			Line: imp.Loc().Line,
			Text: fmt.Sprintf("%s %q", imp.Name, imp.Path),
		})
	}
	for _, fn := range prog.Functions {
		root.Children = append(root.Children, functionNode(fn))
	}
	for _, v := range prog.Vars {
		root.Children = append(root.Children, variableNode(v))
	}
	for _, st := range prog.Structs {
		root.Children = append(root.Children, structNode(st))
	}
	for _, en := range prog.Enums {
		root.Children = append(root.Children, enumNode(en))
	}
	for _, alias := range prog.Types {
		root.Children = append(root.Children, ASTNodeOutput{
			Type:     "TypeAlias",
			Line:     alias.Loc().Line,
			Text:     alias.Name + " = " + alias.Type.String(),
			Children: typeChildren(alias.Type),
		})
	}
	return root
}

func functionNode(fn *ast.Function) ASTNodeOutput {
	node := ASTNodeOutput{Type: "Function", Line: fn.Loc().Line, Text: fn.Name}
	for _, arg := range fn.Args {
		node.Children = append(node.Children, ASTNodeOutput{
			Type:     "Arg",
			Line:     arg.Loc().Line,
			Text:     arg.Name + " " + arg.Type.String(),
			Children: typeChildren(arg.Type),
		})
	}
	if fn.Result != nil {
		node.Children = append(node.Children, ASTNodeOutput{
			Type:     "Result",
			Text:     fn.Result.String(),
			Children: typeChildren(fn.Result),
		})
	}
	node.Children = append(node.Children, blockNode("Body", fn.Body))
	return node
}

func variableNode(v *ast.Variable) ASTNodeOutput {
	text := v.Name
	if v.Type != nil {
		text += ": " + v.Type.String()
	}
	node := ASTNodeOutput{Type: "Variable", Kind: v.Decl.String(), Line: v.Loc().Line, Text: text}
	node.Children = append(node.Children, typeChildren(v.Type)...)
	if v.Value != nil {
		node.Children = append(node.Children, actionNode(v.Value))
	}
	return node
}

func structNode(st *ast.Struct) ASTNodeOutput {
	node := ASTNodeOutput{Type: "Struct", Line: st.Loc().Line, Text: st.Name}
	for _, f := range st.Fields {
		node.Children = append(node.Children, ASTNodeOutput{
			Type:     "Field",
			Line:     f.Loc().Line,
			Text:     f.Name + " " + f.Type.String(),
			Children: typeChildren(f.Type),
		})
	}
	return node
}

func enumNode(en *ast.Enum) ASTNodeOutput {
	node := ASTNodeOutput{Type: "Enum", Line: en.Loc().Line, Text: en.Name}
	for _, f := range en.Fields {
		field := ASTNodeOutput{Type: "EnumField", Line: f.Loc().Line, Text: f.Name}
		if f.Value != nil {
			field.Children = []ASTNodeOutput{actionNode(f.Value)}
		}
		node.Children = append(node.Children, field)
	}
	return node
}

// typeChildren раскрывает inline struct/enum, в том числе внутри массивов
func typeChildren(t *ast.Type) []ASTNodeOutput {
	for t != nil && t.Kind == ast.TypeArray {
		t = t.Elem
	}
	switch {
	case t == nil:
		return nil
	case t.Kind == ast.TypeStruct && t.Struct != nil:
		return []ASTNodeOutput{structNode(t.Struct)}
	case t.Kind == ast.TypeEnum && t.Enum != nil:
		return []ASTNodeOutput{enumNode(t.Enum)}
	}
	return nil
}

func blockNode(name string, body ast.Block) ASTNodeOutput {
	node := ASTNodeOutput{Type: name}
	for _, act := range body {
		node.Children = append(node.Children, actionNode(act))
	}
	return node
}

func actionNode(act ast.Action) ASTNodeOutput {
	node := ASTNodeOutput{Type: "Action", Kind: act.Kind().String(), Line: act.Loc().Line}
	add := func(children ...ASTNodeOutput) {
		node.Children = append(node.Children, children...)
	}
	switch n := act.(type) {
	case *ast.Variable:
		v := variableNode(n)
		node.Kind = "variable " + v.Kind
		node.Text = v.Text
		node.Children = v.Children
	case *ast.Assignment:
		node.Text = n.Name
		if n.Value != nil {
			add(actionNode(n.Value))
		}
	case *ast.Call:
		node.Text = n.Name
		for _, arg := range n.Args {
			add(actionNode(arg))
		}
	case *ast.VarRef:
		node.Text = n.Name
	case *ast.StringLit:
		node.Text = strconv.Quote(n.Value)
	case *ast.NumberLit:
		node.Text = n.Text
	case *ast.BoolLit:
		node.Text = strconv.FormatBool(n.Value)
	case *ast.For:
		node.Text = n.Var
		if n.Iter != nil {
			add(actionNode(n.Iter))
		}
		add(blockNode("Body", n.Body))
	case *ast.While:
		if n.Cond != nil {
			add(actionNode(n.Cond))
		}
		add(blockNode("Body", n.Body))
	case *ast.Loop:
		add(blockNode("Body", n.Body))
	case *ast.If:
		for i, br := range n.Branches {
			kind := "else if"
			switch {
			case i == 0:
				kind = "if"
			case br.Cond == nil:
				kind = "else"
			}
			branch := ASTNodeOutput{Type: "Branch", Kind: kind, Line: br.Loc().Line}
			if br.Cond != nil {
				branch.Children = append(branch.Children, actionNode(br.Cond))
			}
			branch.Children = append(branch.Children, blockNode("Body", br.Body))
			add(branch)
		}
	case *ast.Return:
		if n.Value != nil {
			add(actionNode(n.Value))
		}
	}
	return node
}
