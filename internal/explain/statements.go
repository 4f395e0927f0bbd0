package explain

import (
	"fmt"

	"github.com/sqlc-dev/obsql/ast"
)

func statementDetail(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.Insert:
		return words(flag(n.Ignore, "IGNORE"), qualified(n.Target), names(n.Columns)), true
	case *ast.Update:
		return flag(n.Ignore, "IGNORE"), true
	case *ast.Delete, *ast.Commit, *ast.Query:
		return "", true
	case *ast.Assignment:
		return qualified(n.Column), true
	case *ast.CreateTable:
		return words(flag(n.IfNotExists, "IF NOT EXISTS"), qualified(n.Name)), true
	case *ast.ColumnDefinition:
		return words(
			n.Name,
			n.Type.String(),
			flag(n.NotNull, "NOT NULL"),
			flag(n.Null, "NULL"),
			flag(n.AutoIncrement, "AUTO_INCREMENT"),
			flag(n.PrimaryKey, "PRIMARY KEY"),
			flag(n.Unique, "UNIQUE"),
			prefixed("COLLATE", n.Collate),
			prefixed("COMMENT", quoteIf(n.Comment)),
		), true
	case *ast.IndexDefinition:
		return words(string(n.Kind), n.Name), true
	case *ast.TableOption:
		return fmt.Sprintf("%s=%s", n.Name, n.Value), true
	}
	return "", false
}

func prefixed(word, value string) string {
	if value == "" {
		return ""
	}
	return word + " " + value
}

func quoteIf(s string) string {
	if s == "" {
		return ""
	}
	return quote(s)
}
