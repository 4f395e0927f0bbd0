package explain

import (
	"fmt"
	"strconv"

	"github.com/sqlc-dev/obsql/ast"
)

func expressionDetail(node ast.Node) (string, bool) {
	switch n := node.(type) {
	// Literals
	case *ast.NullLiteral:
		return "NULL", true
	case *ast.BooleanLiteral:
		if n.Value {
			return "TRUE", true
		}
		return "FALSE", true
	case *ast.LongLiteral:
		return strconv.FormatUint(n.Value, 10), true
	case *ast.DoubleLiteral:
		return FormatFloat(n.Value), true
	case *ast.StringLiteral:
		return quote(n.Value), true
	case *ast.DateLiteral:
		return quote(n.Value), true
	case *ast.TimeLiteral:
		return quote(n.Value), true
	case *ast.TimestampLiteral:
		return quote(n.Value), true
	case *ast.IntervalLiteral:
		return string(n.Unit), true

	// Operators
	case *ast.ArithmeticBinary:
		return string(n.Op), true
	case *ast.ArithmeticUnary:
		return string(n.Op), true
	case *ast.LogicalBinary:
		return string(n.Op), true
	case *ast.Not:
		return "", true
	case *ast.Comparison:
		return string(n.Op), true
	case *ast.QuantifiedComparison:
		return words(string(n.Op), n.Quantifier), true
	case *ast.Between:
		return flag(n.Not, "NOT"), true
	case *ast.In:
		return flag(n.Not, "NOT"), true
	case *ast.Like:
		return flag(n.Not, "NOT"), true
	case *ast.Regexp:
		return flag(n.Not, "NOT"), true
	case *ast.IsNull:
		return flag(n.Not, "NOT"), true
	case *ast.IsBoolean:
		return words(flag(n.Not, "NOT"), string(n.Truth)), true
	case *ast.Collate:
		return n.Collation, true
	case *ast.AssignmentExpression:
		return ":=", true

	// Functions
	case *ast.FunctionCall:
		return words(qualified(n.Name), flag(n.Distinct, "DISTINCT")), true
	case *ast.AggregateFunction:
		return words(n.Name, flag(n.Distinct, "DISTINCT"), flag(n.Star, "*")), true
	case *ast.GroupConcat:
		d := flag(n.Distinct, "DISTINCT")
		if n.Separator != nil {
			d = words(d, "SEPARATOR", quote(*n.Separator))
		}
		return d, true
	case *ast.Cast:
		return n.Type.String(), true
	case *ast.Convert:
		if n.Type != nil {
			return n.Type.String(), true
		}
		return "USING " + n.Using, true
	case *ast.Trim:
		return n.Spec, true
	case *ast.WindowFunction:
		return n.NullTreatment, true
	case *ast.MatchAgainst:
		return n.Modifier, true
	case *ast.CurrentTime:
		if n.Precision != nil {
			return fmt.Sprintf("%s(%d)", n.Function, *n.Precision), true
		}
		return n.Function, true

	// Other expressions
	case *ast.QualifiedNameReference:
		return qualified(n.Name), true
	case *ast.ListExpression:
		return flag(n.Row, "ROW"), true
	case *ast.Parameter:
		return "?" + strconv.Itoa(n.Index), true
	case *ast.VariableReference:
		if n.System {
			return "@@" + n.Name, true
		}
		return "@" + n.Name, true
	case *ast.SimpleCase, *ast.SearchedCase, *ast.WhenClause, *ast.InList,
		*ast.Subquery, *ast.Exists, *ast.DefaultValue, *ast.SoundsLike, *ast.MemberOf:
		return "", true
	}
	return "", false
}
