// Package obsql parses generic MySQL and OceanBase SQL into a typed syntax
// tree.
//
// Usage:
//
//	stmt, err := obsql.ParseMySQL("SELECT id FROM users WHERE id = 1")
//	stmt, err := obsql.Parse(sql, obsql.OceanBase)
//	fmt.Print(obsql.Explain(stmt))
package obsql

import (
	"context"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

// Re-export core types so callers only import this package.
type (
	Dialect     = token.Dialect
	Statement   = ast.Statement
	Query       = ast.Query
	Insert      = ast.Insert
	Update      = ast.Update
	Delete      = ast.Delete
	Commit      = ast.Commit
	CreateTable = ast.CreateTable
	SyntaxError = parser.SyntaxError
	Option      = parser.Option
)

const (
	Generic   = token.Generic
	OceanBase = token.OceanBase
)

// Parse parses one statement in the given dialect.
func Parse(sql string, d Dialect, opts ...Option) (Statement, error) {
	return parser.ParseString(context.Background(), sql, d, opts...)
}

// ParseMySQL parses one statement with the generic MySQL grammar.
func ParseMySQL(sql string, opts ...Option) (Statement, error) {
	return Parse(sql, Generic, opts...)
}

// ParseOceanBase parses one statement with the OceanBase grammar.
func ParseOceanBase(sql string, opts ...Option) (Statement, error) {
	return Parse(sql, OceanBase, opts...)
}

// Explain returns the indented tree dump of a node.
func Explain(node ast.Node) string {
	return parser.Explain(node)
}

// Format prints a statement back as SQL.
func Format(stmt Statement) string {
	return parser.Format(stmt)
}
