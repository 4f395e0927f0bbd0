package explain

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

func queryDetail(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.QuerySpecification:
		return "", true
	case *ast.Select:
		return flag(n.Distinct, "DISTINCT"), true
	case *ast.Union:
		return setQuantifier(n.All, n.Distinct), true
	case *ast.Intersect:
		return setQuantifier(n.All, n.Distinct), true
	case *ast.Except:
		return setQuantifier(n.All, n.Distinct), true
	case *ast.Values:
		return strconv.Itoa(len(n.Rows)) + " rows", true
	case *ast.GroupBy:
		return flag(n.WithRollup, "WITH ROLLUP"), true
	case *ast.SortItem:
		return words(string(n.Ordering), string(n.NullOrdering)), true
	case *ast.Limit:
		return limitDetail(n), true
	case *ast.LockClause:
		return lockDetail(n), true
	case *ast.With:
		return flag(n.Recursive, "RECURSIVE"), true
	case *ast.WithQuery:
		return words(n.Name, names(n.ColumnNames)), true
	case *ast.WindowDefinition:
		return n.Name, true
	case *ast.WindowSpec:
		return n.Name, true
	case *ast.FrameClause:
		return string(n.Unit), true
	case *ast.FrameBound:
		return string(n.Type), true
	case *ast.AllColumns:
		if n.Prefix != nil {
			return n.Prefix.String() + ".*", true
		}
		return "*", true
	case *ast.SingleColumn:
		return prefixed("AS", n.Alias), true
	}
	return "", false
}

func setQuantifier(all, distinct bool) string {
	switch {
	case all:
		return "ALL"
	case distinct:
		return "DISTINCT"
	}
	return ""
}

func limitDetail(l *ast.Limit) string {
	if l.All {
		return "ALL"
	}
	var parts []string
	if l.CountParam == nil {
		parts = append(parts, "count="+strconv.FormatUint(l.Count, 10))
	}
	if l.OffsetParam == nil && l.Offset != 0 {
		parts = append(parts, "offset="+strconv.FormatUint(l.Offset, 10))
	}
	return strings.Join(parts, " ")
}

func lockDetail(l *ast.LockClause) string {
	return words(
		string(l.Mode),
		flag(l.NowaitOrWait && l.Wait == nil, "NOWAIT"),
		flag(l.Wait != nil, "WAIT"),
		flag(l.SkipLocked, "SKIP LOCKED"),
	)
}
