package parser_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

// testMetadata holds optional metadata for a test case
type testMetadata struct {
	Dialect    string `json:"dialect,omitempty"`
	Todo       bool   `json:"todo,omitempty"`
	ParseError bool   `json:"parse_error,omitempty"`
}

// TestParser runs the cases in testdata. Each subdirectory holds:
//   - query.sql: one or more statements
//   - explain.txt: the expected tree dump of every statement
//   - metadata.json (optional):
//   - dialect: mysql (default) or oceanbase
//   - todo: true if the case is not yet expected to pass
//   - parse_error: true if the input must be rejected
func TestParser(t *testing.T) {
	testdataDir := "testdata"

	entries, err := os.ReadDir(testdataDir)
	require.NoError(t, err)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		testDir := filepath.Join(testdataDir, entry.Name())

		t.Run(entry.Name(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			query, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
			require.NoError(t, err)

			var metadata testMetadata
			if data, err := os.ReadFile(filepath.Join(testDir, "metadata.json")); err == nil {
				require.NoError(t, json.Unmarshal(data, &metadata))
			}
			d, err := token.ParseDialect(metadata.Dialect)
			require.NoError(t, err)

			stmts, err := parser.ParseStatements(ctx, strings.NewReader(string(query)), d)
			if metadata.ParseError {
				var se *parser.SyntaxError
				require.True(t, errors.As(err, &se), "expected a syntax error, got %v", err)
				return
			}
			if err != nil {
				if metadata.Todo {
					t.Skipf("TODO: %v", err)
				}
				t.Fatalf("Parse error: %v\nQuery: %s", err, query)
			}

			var got strings.Builder
			for _, stmt := range stmts {
				got.WriteString(parser.Explain(stmt))
			}
			want, err := os.ReadFile(filepath.Join(testDir, "explain.txt"))
			require.NoError(t, err)
			if metadata.Todo && got.String() != string(want) {
				t.Skip("TODO: explain output differs")
			}
			assert.Equal(t, string(want), got.String())

			// Every statement must also serialize.
			for _, stmt := range stmts {
				_, err := json.Marshal(stmt)
				require.NoError(t, err)
			}
		})
	}
}

func parse(t *testing.T, sql string, d token.Dialect) ast.Statement {
	t.Helper()
	stmt, err := parser.ParseString(context.Background(), sql, d)
	require.NoError(t, err, sql)
	return stmt
}

func parseErr(t *testing.T, sql string, d token.Dialect) *parser.SyntaxError {
	t.Helper()
	_, err := parser.ParseString(context.Background(), sql, d)
	require.Error(t, err, sql)
	var se *parser.SyntaxError
	require.True(t, errors.As(err, &se), "%T is not a *SyntaxError", err)
	return se
}

func spec(t *testing.T, sql string, d token.Dialect) *ast.QuerySpecification {
	t.Helper()
	q, ok := parse(t, sql, d).(*ast.Query)
	require.True(t, ok, sql)
	s, ok := q.Body.(*ast.QuerySpecification)
	require.True(t, ok, "body of %q is %T", sql, q.Body)
	return s
}

// expr returns the first select item of SELECT <expr>.
func expr(t *testing.T, e string, d token.Dialect) ast.Expression {
	t.Helper()
	s := spec(t, "SELECT "+e, d)
	require.NotEmpty(t, s.Select.Items)
	col, ok := s.Select.Items[0].(*ast.SingleColumn)
	require.True(t, ok)
	return col.Expr
}

func TestKeywordsAsIdentifiers(t *testing.T) {
	tests := []struct {
		word      string
		generic   bool
		oceanbase bool
	}{
		{"count", true, true},     // non-reserved in both
		{"date", true, true},      // type name, not a keyword in mysql
		{"comment", true, true},   // clause word
		{"rank", false, true},     // window function
		{"zone_type", false, true},
		{"groups", false, true},
		{"no_wait", true, true},   // plain identifier in mysql
		{"select", false, false},
		{"interval", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			for d, ok := range map[token.Dialect]bool{token.Generic: tc.generic, token.OceanBase: tc.oceanbase} {
				sql := "SELECT " + tc.word + " FROM t"
				if !ok {
					parseErr(t, sql, d)
					continue
				}
				s := spec(t, sql, d)
				ref, isRef := s.Select.Items[0].(*ast.SingleColumn).Expr.(*ast.QualifiedNameReference)
				require.True(t, isRef, "%s: %s", d, sql)
				assert.Equal(t, tc.word, ref.Name.String())
			}
		})
	}
}

func TestZoneTypeColumn(t *testing.T) {
	se := parseErr(t, "SELECT zone_type FROM t", token.Generic)
	assert.Equal(t, "unexpected ZONE_TYPE, expected expression", se.Msg)
	assert.Equal(t, 8, se.Column)

	s := spec(t, "SELECT zone_type FROM t WHERE zone_type = 'ssd'", token.OceanBase)
	assert.NotNil(t, s.Where)
}

func TestLimitForms(t *testing.T) {
	tests := []struct {
		sql    string
		count  uint64
		offset uint64
		all    bool
	}{
		{sql: "LIMIT 5", count: 5},
		{sql: "LIMIT 10, 5", count: 5, offset: 10},
		{sql: "LIMIT 5 OFFSET 10", count: 5, offset: 10},
		{sql: "LIMIT 0x10", count: 16},
		{sql: "LIMIT ALL", all: true},
	}
	for _, tc := range tests {
		t.Run(tc.sql, func(t *testing.T) {
			s := spec(t, "SELECT a FROM t "+tc.sql, token.Generic)
			require.NotNil(t, s.Limit)
			assert.Equal(t, tc.count, s.Limit.Count)
			assert.Equal(t, tc.offset, s.Limit.Offset)
			assert.Equal(t, tc.all, s.Limit.All)
		})
	}
}

func TestLimitPlaceholders(t *testing.T) {
	s := spec(t, "SELECT a FROM t WHERE b = ? LIMIT ?, ?", token.Generic)
	require.NotNil(t, s.Limit.OffsetParam)
	require.NotNil(t, s.Limit.CountParam)
	assert.Equal(t, 1, s.Limit.OffsetParam.Index)
	assert.Equal(t, 2, s.Limit.CountParam.Index)
	assert.Zero(t, s.Limit.Count)

	s = spec(t, "SELECT a FROM t LIMIT ? OFFSET 3", token.Generic)
	assert.Equal(t, 0, s.Limit.CountParam.Index)
	assert.Equal(t, uint64(3), s.Limit.Offset)

	parseErr(t, "SELECT a FROM t LIMIT -1", token.Generic)
}

func TestImplicitJoins(t *testing.T) {
	s := spec(t, "SELECT * FROM a, b JOIN c ON b.id = c.id, d", token.Generic)

	outer, ok := s.From.(*ast.Join)
	require.True(t, ok)
	assert.Equal(t, ast.JoinImplicit, outer.Type)
	assert.Equal(t, "d", outer.Right.(*ast.Table).Name.String())

	inner, ok := outer.Left.(*ast.Join)
	require.True(t, ok)
	assert.Equal(t, ast.JoinImplicit, inner.Type)
	assert.Equal(t, "a", inner.Left.(*ast.Table).Name.String())

	explicit, ok := inner.Right.(*ast.Join)
	require.True(t, ok)
	assert.Equal(t, ast.JoinInner, explicit.Type)
	assert.IsType(t, &ast.JoinOn{}, explicit.Criteria)
}

func TestJoins(t *testing.T) {
	tests := []struct {
		sql      string
		typ      ast.JoinType
		criteria ast.JoinCriteria
	}{
		{"a LEFT OUTER JOIN b ON a.x = b.x", ast.JoinLeft, &ast.JoinOn{}},
		{"a RIGHT JOIN b USING (x, y)", ast.JoinRight, &ast.JoinUsing{}},
		{"a CROSS JOIN b", ast.JoinCross, nil},
		{"a NATURAL JOIN b", ast.JoinInner, &ast.NaturalJoin{}},
		{"a FULL OUTER JOIN b ON TRUE", ast.JoinFull, &ast.JoinOn{}},
	}
	for _, tc := range tests {
		t.Run(tc.sql, func(t *testing.T) {
			j, ok := spec(t, "SELECT * FROM "+tc.sql, token.Generic).From.(*ast.Join)
			require.True(t, ok)
			assert.Equal(t, tc.typ, j.Type)
			if tc.criteria == nil {
				assert.Nil(t, j.Criteria)
			} else {
				assert.IsType(t, tc.criteria, j.Criteria)
			}
		})
	}

	se := parseErr(t, "SELECT * FROM a LEFT JOIN b", token.Generic)
	assert.Equal(t, "unexpected end of input, expected ON or USING", se.Msg)
}

func TestTableReferences(t *testing.T) {
	s := spec(t, "SELECT * FROM db.t PARTITION (p0, p1) AS x USE INDEX FOR ORDER BY (i1, PRIMARY)", token.Generic)
	rel, ok := s.From.(*ast.AliasedRelation)
	require.True(t, ok)
	assert.Equal(t, "x", rel.Alias)
	table := rel.Relation.(*ast.Table)
	assert.Equal(t, []string{"db", "t"}, table.Name.Parts)
	assert.Equal(t, []string{"p0", "p1"}, table.Partitions)
	require.Len(t, table.IndexHints, 1)
	assert.Equal(t, ast.UseIndex, table.IndexHints[0].Kind)
	assert.Equal(t, "ORDER BY", table.IndexHints[0].For)
	assert.Equal(t, []string{"i1", "PRIMARY"}, table.IndexHints[0].Indexes)

	s = spec(t, "SELECT * FROM (SELECT 1) AS d (c)", token.Generic)
	rel = s.From.(*ast.AliasedRelation)
	assert.IsType(t, &ast.TableSubquery{}, rel.Relation)
	assert.Equal(t, []string{"c"}, rel.ColumnNames)

	assert.Nil(t, spec(t, "SELECT 1 FROM DUAL", token.Generic).From)
	parseErr(t, "SELECT * FROM a.b.c.d", token.Generic)
}

func TestSetOperationPrecedence(t *testing.T) {
	q := parse(t, "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3", token.Generic).(*ast.Query)
	union, ok := q.Body.(*ast.Union)
	require.True(t, ok)
	assert.IsType(t, &ast.QuerySpecification{}, union.Left)
	assert.IsType(t, &ast.Intersect{}, union.Right)
	assert.True(t, union.IsDistinct())

	q = parse(t, "SELECT 1 EXCEPT SELECT 2 UNION ALL SELECT 3", token.Generic).(*ast.Query)
	union, ok = q.Body.(*ast.Union)
	require.True(t, ok)
	assert.True(t, union.All)
	assert.IsType(t, &ast.Except{}, union.Left)

	q = parse(t, "(SELECT 1) UNION DISTINCT (SELECT 2)", token.Generic).(*ast.Query)
	union = q.Body.(*ast.Union)
	assert.True(t, union.Distinct)
	assert.IsType(t, &ast.TableSubquery{}, union.Right)
}

func TestQuerySuffixPlacement(t *testing.T) {
	// A parenthesized SELECT absorbs the outer suffix.
	q := parse(t, "(SELECT a FROM t) ORDER BY a LIMIT 1", token.Generic).(*ast.Query)
	s, ok := q.Body.(*ast.QuerySpecification)
	require.True(t, ok)
	assert.Len(t, s.OrderBy, 1)
	assert.Equal(t, uint64(1), s.Limit.Count)
	assert.Nil(t, q.OrderBy)
	assert.Nil(t, q.Limit)

	// Inner clauses win over outer ones.
	q = parse(t, "(SELECT a FROM t LIMIT 2) LIMIT 1", token.Generic).(*ast.Query)
	assert.Equal(t, uint64(2), q.Body.(*ast.QuerySpecification).Limit.Count)

	// The rightmost bare SELECT of a set operation hands its clauses to the
	// whole operation.
	q = parse(t, "SELECT 1 UNION SELECT 2 ORDER BY 1 LIMIT 3 FOR UPDATE", token.Generic).(*ast.Query)
	union := q.Body.(*ast.Union)
	right := union.Right.(*ast.QuerySpecification)
	assert.Nil(t, right.Limit)
	assert.Nil(t, right.OrderBy)
	assert.Nil(t, right.Lock)
	require.NotNil(t, q.Limit)
	assert.Equal(t, uint64(3), q.Limit.Count)
	assert.Len(t, q.OrderBy, 1)
	assert.NotNil(t, q.Lock)

	// A parenthesized operand keeps its own clauses.
	q = parse(t, "(SELECT 1) UNION (SELECT 2 LIMIT 3)", token.Generic).(*ast.Query)
	assert.Nil(t, q.Limit)
}

func TestLockClauses(t *testing.T) {
	tests := []struct {
		sql     string
		dialect token.Dialect
		mode    ast.LockMode
		nowait  bool
		wait    uint64
		skip    bool
	}{
		{"FOR UPDATE", token.Generic, ast.LockForUpdate, false, 0, false},
		{"FOR UPDATE NOWAIT", token.Generic, ast.LockForUpdate, true, 0, false},
		{"FOR UPDATE NO_WAIT", token.OceanBase, ast.LockForUpdate, true, 0, false},
		{"FOR UPDATE WAIT 5", token.OceanBase, ast.LockForUpdate, true, 5, false},
		{"FOR UPDATE SKIP LOCKED", token.Generic, ast.LockForUpdate, false, 0, true},
		{"FOR SHARE", token.Generic, ast.LockShare, false, 0, false},
		{"LOCK IN SHARE MODE", token.OceanBase, ast.LockShare, false, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.dialect.String()+"/"+tc.sql, func(t *testing.T) {
			lock := spec(t, "SELECT * FROM t "+tc.sql, tc.dialect).Lock
			require.NotNil(t, lock)
			assert.True(t, lock.ForUpdate)
			assert.Equal(t, tc.mode, lock.Mode)
			assert.Equal(t, tc.nowait, lock.NowaitOrWait)
			assert.Equal(t, tc.skip, lock.SkipLocked)
			if tc.wait != 0 {
				require.NotNil(t, lock.Wait)
				assert.Equal(t, tc.wait, lock.Wait.Value)
			} else {
				assert.Nil(t, lock.Wait)
			}
		})
	}

	se := parseErr(t, "SELECT * FROM t FOR UPDATE NO_WAIT", token.Generic)
	assert.Equal(t, "NO_WAIT", se.Token)
}

func TestSyntaxErrorPosition(t *testing.T) {
	se := parseErr(t, "SELECT FROM FROM t", token.Generic)
	assert.Equal(t, "unexpected FROM, expected table name", se.Msg)
	assert.Equal(t, "FROM", se.Token)
	assert.Equal(t, 1, se.Line)
	assert.Equal(t, 13, se.Column)
	assert.Equal(t, 12, se.Offset)
	assert.Equal(t, "SELECT FROM FROM t", se.Source)
	assert.Equal(t, "            ^^^^", se.Caret)
	assert.Equal(t,
		"syntax error at line 1, column 13 near \"FROM\": unexpected FROM, expected table name\n"+
			"SELECT FROM FROM t\n"+
			"            ^^^^",
		se.Error())
}

func TestSyntaxErrorAtEnd(t *testing.T) {
	se := parseErr(t, "SELECT a FROM", token.Generic)
	assert.Equal(t, "unexpected end of input, expected table name", se.Msg)
	assert.Empty(t, se.Token)
	assert.Empty(t, se.Source, "end of input has no source line")
	assert.Equal(t, 14, se.Column)
	assert.Equal(t, "syntax error at line 1, column 14: unexpected end of input, expected table name", se.Error())
}

func TestSyntaxErrorSecondLine(t *testing.T) {
	se := parseErr(t, "SELECT a\nFROM t WHERE FROM", token.OceanBase)
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, 14, se.Column)
	assert.Equal(t, "FROM t WHERE FROM", se.Source)
	assert.Equal(t, "             ^^^^", se.Caret)
}

func TestLexicalErrorFailsParse(t *testing.T) {
	se := parseErr(t, "SELECT 'abc", token.Generic)
	assert.Equal(t, "unmatched quote", se.Msg)
	assert.Equal(t, "'", se.Token)
	assert.Equal(t, 8, se.Column)
	assert.Equal(t, "       ^", se.Caret)

	se = parseErr(t, "SELECT a # b\nFROM t WHERE c = 1 :", token.Generic)
	assert.Equal(t, "illegal character", se.Msg)
	assert.Equal(t, ":", se.Token)
}

func TestExpressionPrecedence(t *testing.T) {
	add := expr(t, "1 + 2 * 3", token.Generic).(*ast.ArithmeticBinary)
	assert.Equal(t, ast.OpAdd, add.Op)
	assert.Equal(t, ast.OpMultiply, add.Right.(*ast.ArithmeticBinary).Op)

	sub := expr(t, "1 - 2 - 3", token.Generic).(*ast.ArithmeticBinary)
	assert.IsType(t, &ast.ArithmeticBinary{}, sub.Left, "left associative")

	or := expr(t, "a OR b AND c", token.Generic).(*ast.LogicalBinary)
	assert.Equal(t, ast.LogicalOr, or.Op)
	assert.Equal(t, ast.LogicalAnd, or.Right.(*ast.LogicalBinary).Op)

	not := expr(t, "NOT a = 1", token.Generic).(*ast.Not)
	assert.IsType(t, &ast.Comparison{}, not.Value)

	bang := expr(t, "!a = 1", token.Generic).(*ast.Comparison)
	assert.IsType(t, &ast.Not{}, bang.Left)

	mul := expr(t, "-a * b", token.Generic).(*ast.ArithmeticBinary)
	assert.IsType(t, &ast.ArithmeticUnary{}, mul.Left)

	and := expr(t, "a BETWEEN 1 AND 2 AND c", token.Generic).(*ast.LogicalBinary)
	assert.IsType(t, &ast.Between{}, and.Left)

	cmp := expr(t, "a COLLATE utf8mb4_bin = b", token.Generic).(*ast.Comparison)
	assert.Equal(t, "utf8mb4_bin", cmp.Left.(*ast.Collate).Collation)

	bits := expr(t, "a | b & c << 1", token.Generic).(*ast.ArithmeticBinary)
	assert.Equal(t, ast.OpBitOr, bits.Op)

	assign := expr(t, "@x := @y := 1", token.Generic).(*ast.AssignmentExpression)
	assert.IsType(t, &ast.AssignmentExpression{}, assign.Value, "right associative")

	paren := expr(t, "(1 + 2) * 3", token.Generic).(*ast.ArithmeticBinary)
	assert.Equal(t, ast.OpMultiply, paren.Op)
}

func TestPredicates(t *testing.T) {
	isNull := expr(t, "a IS NOT NULL", token.Generic).(*ast.IsNull)
	assert.True(t, isNull.Not)

	isBool := expr(t, "a IS UNKNOWN", token.Generic).(*ast.IsBoolean)
	assert.Equal(t, ast.TruthUnknown, isBool.Truth)

	in := expr(t, "a NOT IN (1, 2)", token.Generic).(*ast.In)
	assert.True(t, in.Not)
	assert.Len(t, in.List.(*ast.InList).Values, 2)

	sub := expr(t, "a IN (SELECT b FROM t)", token.Generic).(*ast.In)
	assert.IsType(t, &ast.Subquery{}, sub.List)

	like := expr(t, "a LIKE 'x!%' ESCAPE '!'", token.Generic).(*ast.Like)
	assert.Equal(t, "!", like.Escape.(*ast.StringLiteral).Value)

	re := expr(t, "a NOT RLIKE '^x'", token.Generic).(*ast.Regexp)
	assert.True(t, re.Not)

	q := expr(t, "a > ALL (SELECT b FROM t)", token.Generic).(*ast.QuantifiedComparison)
	assert.Equal(t, "ALL", q.Quantifier)
	assert.Equal(t, ast.CmpGreater, q.Op)

	member := expr(t, "1 MEMBER OF ('[1, 2]')", token.Generic).(*ast.MemberOf)
	assert.IsType(t, &ast.StringLiteral{}, member.Array)

	sounds := expr(t, "a SOUNDS LIKE b", token.Generic)
	assert.IsType(t, &ast.SoundsLike{}, sounds)

	exists := expr(t, "EXISTS (SELECT 1)", token.Generic)
	assert.IsType(t, &ast.Exists{}, exists)

	nse := expr(t, "a <=> NULL", token.Generic).(*ast.Comparison)
	assert.Equal(t, ast.CmpNullSafeEqual, nse.Op)
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, uint64(18446744073709551615), expr(t, "18446744073709551615", token.Generic).(*ast.LongLiteral).Value)

	big := expr(t, "18446744073709551616", token.Generic).(*ast.DoubleLiteral)
	assert.Equal(t, "18446744073709551616", big.Text)

	assert.Equal(t, 1.5e3, expr(t, "1.5e3", token.Generic).(*ast.DoubleLiteral).Value)
	assert.Equal(t, uint64(255), expr(t, "X'FF'", token.Generic).(*ast.LongLiteral).Value)
	assert.Equal(t, "ab", expr(t, "'a' 'b'", token.Generic).(*ast.StringLiteral).Value)
	assert.Equal(t, "dq", expr(t, `"dq"`, token.Generic).(*ast.StringLiteral).Value)
	assert.Equal(t, "2024-01-02", expr(t, "DATE '2024-01-02'", token.Generic).(*ast.DateLiteral).Value)
	assert.IsType(t, &ast.TimestampLiteral{}, expr(t, "TIMESTAMP '2024-01-02 03:04:05'", token.Generic))
	assert.True(t, expr(t, "TRUE", token.Generic).(*ast.BooleanLiteral).Value)
	assert.IsType(t, &ast.NullLiteral{}, expr(t, "NULL", token.Generic))

	iv := expr(t, "INTERVAL 1 + 1 DAY", token.Generic).(*ast.IntervalLiteral)
	assert.Equal(t, ast.IntervalUnit("DAY"), iv.Unit)
	assert.IsType(t, &ast.ArithmeticBinary{}, iv.Value)
	assert.Equal(t, ast.IntervalUnit("WEEK"), expr(t, "INTERVAL 2 SQL_TSI_WEEK", token.Generic).(*ast.IntervalLiteral).Unit)

	sys := expr(t, "@@session.autocommit", token.Generic).(*ast.VariableReference)
	assert.True(t, sys.System)
	assert.Equal(t, "session.autocommit", sys.Name)

	row := expr(t, "ROW(1, 2)", token.Generic).(*ast.ListExpression)
	assert.True(t, row.Row)
	assert.Len(t, expr(t, "(1, 2, 3)", token.Generic).(*ast.ListExpression).Values, 3)
}

func TestSelectItems(t *testing.T) {
	s := spec(t, `SELECT DISTINCT t.*, a AS x, b "y", c 'z', d e, db.t.f FROM t`, token.Generic)
	assert.True(t, s.Select.Distinct)
	require.Len(t, s.Select.Items, 6)
	assert.Equal(t, "t", s.Select.Items[0].(*ast.AllColumns).Prefix.String())

	var aliases []string
	for _, item := range s.Select.Items[1:5] {
		aliases = append(aliases, item.(*ast.SingleColumn).Alias)
	}
	assert.Equal(t, []string{"x", "y", "z", "e"}, aliases)
	assert.Equal(t, "db.t.f", s.Select.Items[5].(*ast.SingleColumn).Expr.(*ast.QualifiedNameReference).Name.String())
}

func TestFunctions(t *testing.T) {
	count := expr(t, "COUNT(*)", token.Generic).(*ast.AggregateFunction)
	assert.Equal(t, "COUNT", count.Name)
	assert.True(t, count.Star)

	sum := expr(t, "sum(DISTINCT a)", token.OceanBase).(*ast.AggregateFunction)
	assert.Equal(t, "SUM", sum.Name)
	assert.True(t, sum.Distinct)

	fn := expr(t, "coalesce(a, 1)", token.Generic).(*ast.FunctionCall)
	assert.Equal(t, "coalesce", fn.Name.String())
	assert.Len(t, fn.Args, 2)

	left := expr(t, "LEFT('abc', 2)", token.Generic).(*ast.FunctionCall)
	assert.Equal(t, "LEFT", left.Name.String())

	trim := expr(t, "TRIM(a)", token.Generic).(*ast.Trim)
	assert.Equal(t, "BOTH", trim.Spec)
	assert.Equal(t, " ", trim.Chars.(*ast.StringLiteral).Value)

	trim = expr(t, "TRIM(LEADING 'x' FROM a)", token.Generic).(*ast.Trim)
	assert.Equal(t, "LEADING", trim.Spec)
	assert.Equal(t, "x", trim.Chars.(*ast.StringLiteral).Value)

	sub := expr(t, "SUBSTRING(a FROM 2 FOR 3)", token.Generic).(*ast.FunctionCall)
	assert.Len(t, sub.Args, 3)

	gc := expr(t, "GROUP_CONCAT(DISTINCT a ORDER BY a DESC SEPARATOR ';')", token.Generic).(*ast.GroupConcat)
	assert.True(t, gc.Distinct)
	require.NotNil(t, gc.Separator)
	assert.Equal(t, ";", *gc.Separator)
	assert.Equal(t, ast.Descending, gc.OrderBy[0].Ordering)

	conv := expr(t, "CONVERT(a USING utf8mb4)", token.Generic).(*ast.Convert)
	assert.Equal(t, "utf8mb4", conv.Using)

	ts := expr(t, "CURRENT_TIMESTAMP(3)", token.Generic).(*ast.CurrentTime)
	require.NotNil(t, ts.Precision)
	assert.Equal(t, 3, *ts.Precision)

	match := expr(t, "MATCH (a, b) AGAINST ('x' IN BOOLEAN MODE)", token.Generic).(*ast.MatchAgainst)
	assert.Equal(t, "IN BOOLEAN MODE", match.Modifier)
	assert.Len(t, match.Columns, 2)

	simple := expr(t, "CASE a WHEN 1 THEN 'one' ELSE 'many' END", token.Generic).(*ast.SimpleCase)
	assert.Len(t, simple.Whens, 1)
	assert.NotNil(t, simple.Else)
	assert.IsType(t, &ast.SearchedCase{}, expr(t, "CASE WHEN a THEN 1 END", token.Generic))
}

func TestCastTypes(t *testing.T) {
	tests := []struct {
		target string
		want   string
		typ    ast.SQLType
	}{
		{"UNSIGNED", "UNSIGNED", ast.TypeInteger},
		{"SIGNED INTEGER", "SIGNED INTEGER", ast.TypeInteger},
		{"DECIMAL(10, 2)", "DECIMAL(10, 2)", ast.TypeDecimal},
		{"char(3) CHARACTER SET utf8mb4", "CHAR(3) CHARACTER SET utf8mb4", ast.TypeChar},
		{"DATETIME", "DATETIME", ast.TypeDatetime},
		{"JSON", "JSON", ast.TypeJSON},
		{"UNSIGNED ARRAY", "UNSIGNED ARRAY", ast.TypeInteger},
		{"numeric(5)", "NUMERIC(5)", ast.TypeDecimal},
	}
	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			cast := expr(t, "CAST(a AS "+tc.target+")", token.Generic).(*ast.Cast)
			assert.Equal(t, tc.want, cast.Type.String())
			assert.Equal(t, tc.typ, cast.Type.Type)
		})
	}

	bin := expr(t, "BINARY a", token.Generic).(*ast.Cast)
	assert.Equal(t, ast.TypeBinary, bin.Type.Type)

	se := parseErr(t, "SELECT CAST(a AS POINT)", token.Generic)
	assert.Equal(t, "unexpected identifier POINT, expected a type", se.Msg)
}

func TestWindowFunctions(t *testing.T) {
	wf := expr(t, "ROW_NUMBER() OVER (PARTITION BY a ORDER BY b ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW)", token.Generic).(*ast.WindowFunction)
	assert.Equal(t, "ROW_NUMBER", wf.Function.(*ast.FunctionCall).Name.String())
	require.NotNil(t, wf.Over.Frame)
	assert.Equal(t, ast.FrameRows, wf.Over.Frame.Unit)
	assert.Equal(t, ast.UnboundedPreceding, wf.Over.Frame.Start.Type)
	assert.Equal(t, ast.CurrentRow, wf.Over.Frame.End.Type)
	assert.Len(t, wf.Over.PartitionBy, 1)

	named := expr(t, "SUM(a) OVER w", token.Generic).(*ast.WindowFunction)
	assert.Equal(t, "w", named.Over.Name)
	assert.IsType(t, &ast.AggregateFunction{}, named.Function)

	lag := expr(t, "LAG(a, 1) IGNORE NULLS OVER (ORDER BY b)", token.OceanBase).(*ast.WindowFunction)
	assert.Equal(t, "IGNORE NULLS", lag.NullTreatment)

	se := parseErr(t, "SELECT RANK() FROM t", token.Generic)
	assert.Equal(t, "RANK requires an OVER clause", se.Msg)
	assert.Equal(t, 8, se.Column)

	s := spec(t, "SELECT SUM(a) OVER w FROM t WINDOW w AS (PARTITION BY b RANGE 1 PRECEDING)", token.Generic)
	require.Len(t, s.Windows, 1)
	assert.Equal(t, ast.Preceding, s.Windows[0].Spec.Frame.Start.Type)
}

func TestGroupByHaving(t *testing.T) {
	s := spec(t, "SELECT a, COUNT(*) FROM t GROUP BY a WITH ROLLUP HAVING COUNT(*) > 1", token.Generic)
	require.NotNil(t, s.GroupBy)
	assert.True(t, s.GroupBy.WithRollup)
	assert.IsType(t, &ast.Comparison{}, s.Having)
}

func TestWith(t *testing.T) {
	q := parse(t, "WITH RECURSIVE c (n) AS (SELECT 1 UNION ALL SELECT n + 1 FROM c) SELECT n FROM c", token.Generic).(*ast.Query)
	require.NotNil(t, q.With)
	assert.True(t, q.With.Recursive)
	require.Len(t, q.With.Queries, 1)
	assert.Equal(t, "c", q.With.Queries[0].Name)
	assert.Equal(t, []string{"n"}, q.With.Queries[0].ColumnNames)
	assert.IsType(t, &ast.Union{}, q.With.Queries[0].Query.Body)
}

func TestInsert(t *testing.T) {
	ins := parse(t, "INSERT IGNORE INTO db.t (a, b) VALUES (1, 2), ROW(3, DEFAULT) ON DUPLICATE KEY UPDATE a = VALUES(a)", token.Generic).(*ast.Insert)
	assert.True(t, ins.Ignore)
	assert.Equal(t, "db.t", ins.Target.String())
	assert.Equal(t, []string{"a", "b"}, ins.Columns)
	values := ins.Query.Body.(*ast.Values)
	require.Len(t, values.Rows, 2)
	assert.IsType(t, &ast.DefaultValue{}, values.Rows[1][1])
	require.Len(t, ins.OnDuplicate, 1)
	assert.IsType(t, &ast.FunctionCall{}, ins.OnDuplicate[0].Value)

	set := parse(t, "INSERT t SET a = 1, b := 'x'", token.Generic).(*ast.Insert)
	assert.Nil(t, set.Query)
	assert.Len(t, set.Set, 2)

	sel := parse(t, "INSERT INTO t (SELECT * FROM u)", token.Generic).(*ast.Insert)
	assert.Nil(t, sel.Columns)
	assert.IsType(t, &ast.QuerySpecification{}, sel.Query.Body)

	se := parseErr(t, "INSERT INTO t (a) SET a = 1", token.Generic)
	assert.Equal(t, "unexpected SET, expected VALUES or SELECT after column list", se.Msg)
}

func TestUpdateDelete(t *testing.T) {
	upd := parse(t, "UPDATE t1, t2 SET t1.a = t2.b WHERE t1.id = t2.id ORDER BY t1.a LIMIT 10", token.Generic).(*ast.Update)
	assert.IsType(t, &ast.Join{}, upd.Table)
	require.Len(t, upd.Set, 1)
	assert.Equal(t, "t1.a", upd.Set[0].Column.String())
	assert.Equal(t, uint64(10), upd.Limit.Count)

	del := parse(t, "DELETE FROM t AS x WHERE x.a > 1 LIMIT 5", token.OceanBase).(*ast.Delete)
	assert.Equal(t, "x", del.Table.(*ast.AliasedRelation).Alias)
	assert.Equal(t, uint64(5), del.Limit.Count)

	assert.IsType(t, &ast.Commit{}, parse(t, "COMMIT WORK", token.Generic))
	assert.IsType(t, &ast.Commit{}, parse(t, "commit;", token.OceanBase))
}

func TestCreateTable(t *testing.T) {
	sql := `CREATE TABLE IF NOT EXISTS db.users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin DEFAULT '' COMMENT 'display name',
		updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uk_name (name(10) DESC) USING BTREE,
		KEY idx_updated (updated)
	) ENGINE = InnoDB DEFAULT CHARSET = utf8mb4 COMMENT 'users'`
	ct := parse(t, sql, token.Generic).(*ast.CreateTable)

	assert.True(t, ct.IfNotExists)
	assert.Equal(t, "db.users", ct.Name.String())
	require.Len(t, ct.Columns, 3)

	id := ct.Columns[0]
	assert.Equal(t, "UNSIGNED BIGINT", id.Type.String())
	assert.True(t, id.NotNull)
	assert.True(t, id.AutoIncrement)

	name := ct.Columns[1]
	assert.Equal(t, "VARCHAR(64) CHARACTER SET utf8mb4", name.Type.String())
	assert.Equal(t, "utf8mb4_bin", name.Collate)
	assert.Equal(t, "display name", name.Comment)
	assert.IsType(t, &ast.StringLiteral{}, name.Default)

	updated := ct.Columns[2]
	assert.IsType(t, &ast.CurrentTime{}, updated.Default)
	assert.IsType(t, &ast.CurrentTime{}, updated.OnUpdate)

	require.Len(t, ct.Indexes, 3)
	assert.Equal(t, ast.IndexPrimary, ct.Indexes[0].Kind)
	uk := ct.Indexes[1]
	assert.Equal(t, ast.IndexUnique, uk.Kind)
	assert.Equal(t, "uk_name", uk.Name)
	assert.Equal(t, ast.Descending, uk.Columns[0].Ordering)
	assert.IsType(t, &ast.FunctionCall{}, uk.Columns[0].Key)
	require.Len(t, uk.Options, 1)
	assert.Equal(t, "USING", uk.Options[0].Name)
	assert.Equal(t, "BTREE", uk.Options[0].Value)
	assert.Equal(t, ast.IndexNormal, ct.Indexes[2].Kind)

	var opts []string
	for _, o := range ct.Options {
		opts = append(opts, o.Name+"="+o.Value)
	}
	assert.Equal(t, []string{"ENGINE=InnoDB", "CHARSET=utf8mb4", "COMMENT=users"}, opts)
}

func TestCreateTableOceanBaseOptions(t *testing.T) {
	sql := "CREATE TABLE t (a INT, KEY k (a) BLOCK_SIZE 16384) REPLICA_NUM = 3, BLOCK_SIZE = 16384, USE_BLOOM_FILTER = FALSE, PCTFREE 10"
	ct := parse(t, sql, token.OceanBase).(*ast.CreateTable)

	var opts []string
	for _, o := range ct.Options {
		opts = append(opts, o.Name+"="+o.Value)
	}
	assert.Equal(t, []string{"REPLICA_NUM=3", "BLOCK_SIZE=16384", "USE_BLOOM_FILTER=FALSE", "PCTFREE=10"}, opts)
	require.Len(t, ct.Indexes[0].Options, 1)
	assert.Equal(t, "BLOCK_SIZE", ct.Indexes[0].Options[0].Name)

	se := parseErr(t, sql, token.Generic)
	assert.Equal(t, "BLOCK_SIZE", se.Token)

	parseErr(t, "CREATE INDEX i ON t (a)", token.Generic)
}

func TestParseStatementRejectsTrailingInput(t *testing.T) {
	se := parseErr(t, "SELECT 1; SELECT 2", token.Generic)
	assert.Equal(t, "unexpected SELECT, expected end of statement", se.Msg)

	_, err := parser.ParseString(context.Background(), "SELECT 1;;", token.Generic)
	assert.NoError(t, err)

	se = parseErr(t, "", token.Generic)
	assert.Equal(t, "unexpected end of input, expected a statement", se.Msg)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.ParseString(ctx, "SELECT 1", token.Generic)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = parser.ParseStatements(ctx, strings.NewReader("SELECT 1; SELECT 2"), token.Generic)
	assert.ErrorIs(t, err, context.Canceled)
}

// BenchmarkParser benchmarks the parser performance using a complex query
func BenchmarkParser(b *testing.B) {
	query := `
		SELECT
			u.id,
			u.name,
			count(*) AS order_count,
			sum(o.amount) AS total
		FROM users u
		LEFT JOIN orders o ON u.id = o.user_id
		WHERE u.status = 'active' AND o.created_at > '2023-01-01'
		GROUP BY u.id, u.name
		HAVING count(*) > 0
		ORDER BY total DESC
		LIMIT 100
		FOR UPDATE NO_WAIT
	`

	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := parser.ParseString(ctx, query, token.OceanBase)
		if err != nil {
			b.Fatal(err)
		}
	}
}
