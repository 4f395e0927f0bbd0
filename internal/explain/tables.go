package explain

import (
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

func relationDetail(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.Table:
		d := qualified(n.Name)
		if len(n.Partitions) > 0 {
			d += " PARTITION " + names(n.Partitions)
		}
		for _, h := range n.IndexHints {
			d += " " + indexHint(h)
		}
		return d, true
	case *ast.TableSubquery:
		return "", true
	case *ast.AliasedRelation:
		return words("AS", n.Alias, names(n.ColumnNames)), true
	case *ast.Join:
		return string(n.Type), true
	case *ast.JoinOn:
		return "", true
	case *ast.JoinUsing:
		return names(n.Columns), true
	case *ast.NaturalJoin:
		return "", true
	case *ast.IndexHint:
		return indexHint(n), true
	}
	return "", false
}

func indexHint(h *ast.IndexHint) string {
	var sb strings.Builder
	sb.WriteString(string(h.Kind))
	sb.WriteString(" INDEX")
	if h.For != "" {
		sb.WriteString(" FOR ")
		sb.WriteString(h.For)
	}
	sb.WriteString(" (")
	sb.WriteString(strings.Join(h.Indexes, ", "))
	sb.WriteString(")")
	return sb.String()
}
