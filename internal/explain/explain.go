// Package explain renders an indented tree dump of a parsed statement. The
// dump is the golden output of the parser tests and the CLI -explain mode.
package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

// Explain returns the tree dump of a node.
func Explain(node ast.Node) string {
	var sb strings.Builder
	Node(&sb, node, 0)
	return sb.String()
}

// Node writes one line for node at depth, followed by its children one
// level deeper:
//
//	Comparison = (children 2)
//	 QualifiedNameReference a
//	 LongLiteral 1
func Node(sb *strings.Builder, node ast.Node, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat(" ", depth)
	children := explainChildren(node)

	sb.WriteString(indent)
	sb.WriteString(nodeName(node))
	if d := detail(node); d != "" {
		sb.WriteString(" ")
		sb.WriteString(d)
	}
	if len(children) > 0 {
		fmt.Fprintf(sb, " (children %d)", len(children))
	}
	sb.WriteString("\n")

	for _, child := range children {
		Node(sb, child, depth+1)
	}
}

func nodeName(node ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}

// explainChildren returns the child nodes worth their own line. Names and
// types are folded into the parent's detail instead.
func explainChildren(node ast.Node) []ast.Node {
	var out []ast.Node
	for _, child := range ast.Children(node) {
		switch child.(type) {
		case *ast.QualifiedName, *ast.FieldType:
			continue
		}
		out = append(out, child)
	}
	return out
}

func detail(node ast.Node) string {
	if d, ok := statementDetail(node); ok {
		return d
	}
	if d, ok := queryDetail(node); ok {
		return d
	}
	if d, ok := relationDetail(node); ok {
		return d
	}
	if d, ok := expressionDetail(node); ok {
		return d
	}
	return ""
}

// words joins the non-empty parts with single spaces.
func words(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func flag(set bool, word string) string {
	if set {
		return word
	}
	return ""
}
