package parser

import (
	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/internal/explain"
)

// Explain returns the indented tree dump of a node.
func Explain(node ast.Node) string {
	return explain.Explain(node)
}
