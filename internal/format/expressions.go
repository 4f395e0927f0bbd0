package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

// Expression formats an expression.
func Expression(sb *strings.Builder, expr ast.Expression) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	// Literals
	case *ast.NullLiteral:
		sb.WriteString("NULL")
	case *ast.BooleanLiteral:
		if e.Value {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
	case *ast.LongLiteral:
		if e.Text != "" {
			sb.WriteString(e.Text)
		} else {
			sb.WriteString(strconv.FormatUint(e.Value, 10))
		}
	case *ast.DoubleLiteral:
		if e.Text != "" {
			sb.WriteString(e.Text)
		} else {
			sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
		}
	case *ast.StringLiteral:
		quoteString(sb, e.Value)
	case *ast.DateLiteral:
		sb.WriteString("DATE ")
		quoteString(sb, e.Value)
	case *ast.TimeLiteral:
		sb.WriteString("TIME ")
		quoteString(sb, e.Value)
	case *ast.TimestampLiteral:
		sb.WriteString("TIMESTAMP ")
		quoteString(sb, e.Value)
	case *ast.IntervalLiteral:
		sb.WriteString("INTERVAL ")
		operand(sb, e.Value)
		sb.WriteString(" ")
		sb.WriteString(string(e.Unit))

	// Operators
	case *ast.ArithmeticBinary:
		binary(sb, e.Left, string(e.Op), e.Right)
	case *ast.ArithmeticUnary:
		sb.WriteString(string(e.Op))
		operand(sb, e.Value)
	case *ast.LogicalBinary:
		binary(sb, e.Left, string(e.Op), e.Right)
	case *ast.Not:
		sb.WriteString("NOT ")
		operand(sb, e.Value)
	case *ast.Comparison:
		binary(sb, e.Left, string(e.Op), e.Right)
	case *ast.QuantifiedComparison:
		operand(sb, e.Left)
		fmt.Fprintf(sb, " %s %s ", e.Op, e.Quantifier)
		Expression(sb, e.Subquery)
	case *ast.Between:
		operand(sb, e.Value)
		sb.WriteString(not(e.Not, " BETWEEN "))
		operand(sb, e.Min)
		sb.WriteString(" AND ")
		operand(sb, e.Max)
	case *ast.In:
		operand(sb, e.Value)
		sb.WriteString(not(e.Not, " IN "))
		Expression(sb, e.List)
	case *ast.InList:
		expressionList(sb, e.Values)
	case *ast.Like:
		operand(sb, e.Value)
		sb.WriteString(not(e.Not, " LIKE "))
		operand(sb, e.Pattern)
		if e.Escape != nil {
			sb.WriteString(" ESCAPE ")
			operand(sb, e.Escape)
		}
	case *ast.Regexp:
		operand(sb, e.Value)
		sb.WriteString(not(e.Not, " REGEXP "))
		operand(sb, e.Pattern)
	case *ast.SoundsLike:
		binary(sb, e.Left, "SOUNDS LIKE", e.Right)
	case *ast.IsNull:
		operand(sb, e.Value)
		sb.WriteString(isWord(e.Not))
		sb.WriteString("NULL")
	case *ast.IsBoolean:
		operand(sb, e.Value)
		sb.WriteString(isWord(e.Not))
		sb.WriteString(string(e.Truth))
	case *ast.MemberOf:
		operand(sb, e.Value)
		sb.WriteString(" MEMBER OF (")
		Expression(sb, e.Array)
		sb.WriteString(")")
	case *ast.AssignmentExpression:
		binary(sb, e.Target, ":=", e.Value)
	case *ast.Collate:
		operand(sb, e.Value)
		sb.WriteString(" COLLATE ")
		ident(sb, e.Collation)

	// Functions
	case *ast.FunctionCall:
		formatFunctionCall(sb, e)
	case *ast.AggregateFunction:
		sb.WriteString(e.Name)
		sb.WriteString("(")
		if e.Star {
			sb.WriteString("*")
		} else {
			if e.Distinct {
				sb.WriteString("DISTINCT ")
			}
			expressions(sb, e.Args)
		}
		sb.WriteString(")")
	case *ast.GroupConcat:
		sb.WriteString("GROUP_CONCAT(")
		if e.Distinct {
			sb.WriteString("DISTINCT ")
		}
		expressions(sb, e.Args)
		if len(e.OrderBy) > 0 {
			sb.WriteString(" ORDER BY ")
			sortItems(sb, e.OrderBy)
		}
		if e.Separator != nil {
			sb.WriteString(" SEPARATOR ")
			quoteString(sb, *e.Separator)
		}
		sb.WriteString(")")
	case *ast.Cast:
		sb.WriteString("CAST(")
		Expression(sb, e.Value)
		sb.WriteString(" AS ")
		fieldType(sb, e.Type)
		sb.WriteString(")")
	case *ast.Convert:
		sb.WriteString("CONVERT(")
		Expression(sb, e.Value)
		if e.Type != nil {
			sb.WriteString(", ")
			fieldType(sb, e.Type)
		} else {
			sb.WriteString(" USING ")
			ident(sb, e.Using)
		}
		sb.WriteString(")")
	case *ast.Trim:
		sb.WriteString("TRIM(")
		if e.Spec == "" && e.Chars == nil {
			Expression(sb, e.Value)
			sb.WriteString(")")
			break
		}
		if e.Spec != "" {
			sb.WriteString(e.Spec)
			sb.WriteString(" ")
		}
		if e.Chars != nil {
			Expression(sb, e.Chars)
			sb.WriteString(" ")
		}
		sb.WriteString("FROM ")
		Expression(sb, e.Value)
		sb.WriteString(")")
	case *ast.WindowFunction:
		Expression(sb, e.Function)
		if e.NullTreatment != "" {
			sb.WriteString(" ")
			sb.WriteString(e.NullTreatment)
		}
		sb.WriteString(" OVER ")
		windowSpec(sb, e.Over)
	case *ast.MatchAgainst:
		sb.WriteString("MATCH ")
		expressionList(sb, e.Columns)
		sb.WriteString(" AGAINST (")
		operand(sb, e.Against)
		if e.Modifier != "" {
			sb.WriteString(" ")
			sb.WriteString(e.Modifier)
		}
		sb.WriteString(")")
	case *ast.CurrentTime:
		sb.WriteString(e.Function)
		if e.Precision != nil {
			fmt.Fprintf(sb, "(%d)", *e.Precision)
		}

	// Other expressions
	case *ast.QualifiedNameReference:
		qualifiedName(sb, e.Name)
	case *ast.ListExpression:
		if e.Row {
			sb.WriteString("ROW")
		}
		expressionList(sb, e.Values)
	case *ast.Subquery:
		sb.WriteString("(")
		formatQuery(sb, e.Query)
		sb.WriteString(")")
	case *ast.Exists:
		sb.WriteString("EXISTS ")
		Expression(sb, e.Subquery)
	case *ast.Parameter:
		sb.WriteString("?")
	case *ast.VariableReference:
		sb.WriteString("@")
		if e.System {
			sb.WriteString("@")
		}
		if isPlainWord(strings.ReplaceAll(e.Name, ".", "")) {
			sb.WriteString(e.Name)
		} else {
			ident(sb, e.Name)
		}
	case *ast.DefaultValue:
		sb.WriteString("DEFAULT")
	case *ast.SimpleCase:
		sb.WriteString("CASE ")
		Expression(sb, e.Operand)
		whenClauses(sb, e.Whens, e.Else)
	case *ast.SearchedCase:
		sb.WriteString("CASE")
		whenClauses(sb, e.Whens, e.Else)
	default:
		// Fallback for unhandled expressions
		fmt.Fprintf(sb, "%v", expr)
	}
}

// operand writes expr, parenthesized when it is an operator application
// that could bind differently next to its neighbours.
func operand(sb *strings.Builder, expr ast.Expression) {
	if !isCompound(expr) {
		Expression(sb, expr)
		return
	}
	sb.WriteString("(")
	Expression(sb, expr)
	sb.WriteString(")")
}

func isCompound(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.ArithmeticBinary, *ast.ArithmeticUnary, *ast.LogicalBinary, *ast.Not,
		*ast.Comparison, *ast.QuantifiedComparison, *ast.Between, *ast.In, *ast.Like,
		*ast.Regexp, *ast.SoundsLike, *ast.IsNull, *ast.IsBoolean, *ast.MemberOf,
		*ast.AssignmentExpression, *ast.Collate, *ast.IntervalLiteral:
		return true
	}
	return false
}

func binary(sb *strings.Builder, left ast.Expression, op string, right ast.Expression) {
	operand(sb, left)
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	operand(sb, right)
}

func not(negated bool, word string) string {
	if negated {
		return " NOT" + word
	}
	return word
}

func isWord(negated bool) string {
	if negated {
		return " IS NOT "
	}
	return " IS "
}

func expressions(sb *strings.Builder, exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, e)
	}
}

func expressionList(sb *strings.Builder, exprs []ast.Expression) {
	sb.WriteString("(")
	expressions(sb, exprs)
	sb.WriteString(")")
}

// formatFunctionCall writes name(args). Names stay unquoted so that
// keyword named functions such as LEFT or IF parse the same way again.
func formatFunctionCall(sb *strings.Builder, fn *ast.FunctionCall) {
	sb.WriteString(fn.Name.String())
	sb.WriteString("(")
	if fn.Distinct {
		sb.WriteString("DISTINCT ")
	}
	expressions(sb, fn.Args)
	sb.WriteString(")")
}

func whenClauses(sb *strings.Builder, whens []*ast.WhenClause, elseExpr ast.Expression) {
	for _, w := range whens {
		sb.WriteString(" WHEN ")
		Expression(sb, w.Condition)
		sb.WriteString(" THEN ")
		Expression(sb, w.Result)
	}
	if elseExpr != nil {
		sb.WriteString(" ELSE ")
		Expression(sb, elseExpr)
	}
	sb.WriteString(" END")
}

// fieldType writes a type with its sign written after the name, the form
// every type accepts.
func fieldType(sb *strings.Builder, ft *ast.FieldType) {
	if ft.Name == "" {
		sb.WriteString(string(ft.Sign))
		if ft.Array {
			sb.WriteString(" ARRAY")
		}
		return
	}
	sb.WriteString(ft.Name)
	switch {
	case ft.Length != ast.UnspecifiedLength && ft.Decimal != ast.UnspecifiedLength:
		fmt.Fprintf(sb, "(%d, %d)", ft.Length, ft.Decimal)
	case ft.Length != ast.UnspecifiedLength:
		fmt.Fprintf(sb, "(%d)", ft.Length)
	}
	if ft.Sign != ast.SignUnspecified {
		sb.WriteString(" ")
		sb.WriteString(string(ft.Sign))
	}
	if ft.Binary {
		sb.WriteString(" BINARY")
	}
	if ft.Charset != "" {
		sb.WriteString(" CHARACTER SET ")
		ident(sb, ft.Charset)
	}
	if ft.Array {
		sb.WriteString(" ARRAY")
	}
}
