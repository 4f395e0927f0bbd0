package parser

import (
	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/internal/format"
)

// Format returns the SQL text of a statement.
func Format(stmt ast.Statement) string {
	return format.Format(stmt)
}
