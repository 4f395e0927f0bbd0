// Package format prints a parsed statement back as SQL text. The output
// parses again to an equal tree: nested operators are parenthesized and
// every identifier is backquoted.
package format

import (
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

// Format returns the SQL text of a statement.
func Format(stmt ast.Statement) string {
	var sb strings.Builder
	Statement(&sb, stmt)
	return sb.String()
}

// Statement formats a single statement.
func Statement(sb *strings.Builder, stmt ast.Statement) {
	if stmt == nil {
		return
	}

	switch s := stmt.(type) {
	case *ast.Query:
		formatQuery(sb, s)
	case *ast.Insert:
		formatInsert(sb, s)
	case *ast.Update:
		formatUpdate(sb, s)
	case *ast.Delete:
		formatDelete(sb, s)
	case *ast.Commit:
		sb.WriteString("COMMIT")
	case *ast.CreateTable:
		formatCreateTable(sb, s)
	}
}

// ident writes a backquoted identifier. Backquotes inside the name are
// doubled.
func ident(sb *strings.Builder, name string) {
	sb.WriteByte('`')
	sb.WriteString(strings.ReplaceAll(name, "`", "``"))
	sb.WriteByte('`')
}

func identList(sb *strings.Builder, names []string) {
	sb.WriteString("(")
	for i, n := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		ident(sb, n)
	}
	sb.WriteString(")")
}

func qualifiedName(sb *strings.Builder, name *ast.QualifiedName) {
	for i, part := range name.Parts {
		if i > 0 {
			sb.WriteString(".")
		}
		ident(sb, part)
	}
}

// quoteString writes s as a single quoted literal with backslash escapes.
func quoteString(sb *strings.Builder, s string) {
	sb.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('\'')
}

// isPlainWord reports whether s can be written without quotes in an
// option value position.
func isPlainWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
