package format

import (
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

// relation formats a FROM list entry.
func relation(sb *strings.Builder, rel ast.Relation) {
	switch r := rel.(type) {
	case *ast.Table:
		formatTable(sb, r, "")
	case *ast.AliasedRelation:
		formatAliasedRelation(sb, r)
	case *ast.Join:
		formatJoin(sb, r)
	case *ast.TableSubquery:
		sb.WriteString("(")
		formatQuery(sb, r.Query)
		sb.WriteString(")")
	case ast.QueryBody:
		sb.WriteString("(")
		queryBody(sb, r)
		sb.WriteString(")")
	}
}

// formatTable writes name [PARTITION (...)] [AS alias] [index hints]; the
// alias sits between the partition list and the hints.
func formatTable(sb *strings.Builder, t *ast.Table, alias string) {
	qualifiedName(sb, t.Name)
	if len(t.Partitions) > 0 {
		sb.WriteString(" PARTITION ")
		identList(sb, t.Partitions)
	}
	if alias != "" {
		sb.WriteString(" AS ")
		ident(sb, alias)
	}
	for _, h := range t.IndexHints {
		sb.WriteString(" ")
		sb.WriteString(string(h.Kind))
		sb.WriteString(" INDEX ")
		if h.For != "" {
			sb.WriteString("FOR ")
			sb.WriteString(h.For)
			sb.WriteString(" ")
		}
		sb.WriteString("(")
		for i, name := range h.Indexes {
			if i > 0 {
				sb.WriteString(", ")
			}
			ident(sb, name)
		}
		sb.WriteString(")")
	}
}

func formatAliasedRelation(sb *strings.Builder, a *ast.AliasedRelation) {
	switch r := a.Relation.(type) {
	case *ast.Table:
		formatTable(sb, r, a.Alias)
		return
	case *ast.Join:
		sb.WriteString("(")
		formatJoin(sb, r)
		sb.WriteString(")")
	default:
		relation(sb, r)
	}
	sb.WriteString(" AS ")
	ident(sb, a.Alias)
	if len(a.ColumnNames) > 0 {
		sb.WriteString(" ")
		identList(sb, a.ColumnNames)
	}
}

var joinKeywords = map[ast.JoinType]string{
	ast.JoinInner: "JOIN",
	ast.JoinLeft:  "LEFT JOIN",
	ast.JoinRight: "RIGHT JOIN",
	ast.JoinFull:  "FULL JOIN",
	ast.JoinCross: "CROSS JOIN",
}

// formatJoin writes a join. Joins on the right, and comma joins under an
// explicit join, are parenthesized to keep their grouping.
func formatJoin(sb *strings.Builder, j *ast.Join) {
	if left, ok := j.Left.(*ast.Join); ok && left.Type == ast.JoinImplicit && j.Type != ast.JoinImplicit {
		sb.WriteString("(")
		formatJoin(sb, left)
		sb.WriteString(")")
	} else {
		relation(sb, j.Left)
	}

	_, natural := j.Criteria.(*ast.NaturalJoin)
	switch {
	case j.Type == ast.JoinImplicit:
		sb.WriteString(", ")
	case natural:
		sb.WriteString(" NATURAL ")
		sb.WriteString(joinKeywords[j.Type])
		sb.WriteString(" ")
	default:
		sb.WriteString(" ")
		sb.WriteString(joinKeywords[j.Type])
		sb.WriteString(" ")
	}

	if right, ok := j.Right.(*ast.Join); ok {
		sb.WriteString("(")
		formatJoin(sb, right)
		sb.WriteString(")")
	} else {
		relation(sb, j.Right)
	}

	switch c := j.Criteria.(type) {
	case *ast.JoinOn:
		sb.WriteString(" ON ")
		Expression(sb, c.Expr)
	case *ast.JoinUsing:
		sb.WriteString(" USING ")
		identList(sb, c.Columns)
	}
}
