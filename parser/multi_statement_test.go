package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

func TestMultiStatementParsing(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected int
	}{
		{
			name:     "two selects with semicolon",
			sql:      "SELECT 1; SELECT 2;",
			expected: 2,
		},
		{
			name:     "three selects",
			sql:      "SELECT 1; SELECT 2; SELECT 3;",
			expected: 3,
		},
		{
			name:     "mixed statements",
			sql:      "SELECT 1; CREATE TABLE t (a INT); DELETE FROM t; COMMIT;",
			expected: 4,
		},
		{
			name:     "no trailing semicolon",
			sql:      "SELECT 1; SELECT 2",
			expected: 2,
		},
		{
			name:     "multiple semicolons between statements",
			sql:      "SELECT 1;; SELECT 2;;; SELECT 3",
			expected: 3,
		},
		{
			name:     "newlines between statements",
			sql:      "SELECT 1;\nSELECT 2;\nSELECT 3;",
			expected: 3,
		},
		{
			name:     "single statement",
			sql:      "SELECT 1;",
			expected: 1,
		},
		{
			name:     "only separators",
			sql:      " ;; -- nothing here\n",
			expected: 0,
		},
		{
			name:     "complex multi-statement",
			sql:      "SELECT a, b FROM t1 WHERE x > 10; INSERT INTO t2 VALUES (1, 'hello'); SELECT * FROM t3 ORDER BY id;",
			expected: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmts, err := parser.ParseStatements(context.Background(), strings.NewReader(tc.sql), token.Generic)
			require.NoError(t, err)
			assert.Len(t, stmts, tc.expected)
		})
	}
}

func TestMultiStatementStopsAtFirstError(t *testing.T) {
	_, err := parser.ParseStatements(context.Background(),
		strings.NewReader("SELECT 1;\nSELECT FROM FROM t;\nSELECT 3"), token.Generic)
	var se *parser.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, "SELECT FROM FROM t;", se.Source)

	// A statement must be followed by ; before the next one starts.
	_, err = parser.ParseStatements(context.Background(), strings.NewReader("SELECT 1 SELECT 2"), token.Generic)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "unexpected SELECT, expected ; or end of input", se.Msg)
}

func TestParserReuse(t *testing.T) {
	p := parser.New(strings.NewReader("SELECT 1; COMMIT"), token.OceanBase)
	stmts, err := p.ParseStatements(context.Background())
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.IsType(t, &ast.Query{}, stmts[0])
	assert.IsType(t, &ast.Commit{}, stmts[1])
}

func TestParseFile(t *testing.T) {
	// Create a temporary SQL file with multiple statements
	tmpDir := t.TempDir()
	sqlFile := filepath.Join(tmpDir, "test.sql")

	content := `-- This is a SQL file with multiple statements
SELECT 1;

-- A more complex query
SELECT a, b, c
FROM my_table
WHERE x > 10;

# Create a table
CREATE TABLE test_table (
    id INT UNSIGNED,
    name VARCHAR(32)
) REPLICA_NUM = 1;

/* Insert some data */
INSERT INTO test_table VALUES (1, 'hello');

-- Final select
SELECT * FROM test_table ORDER BY id FOR UPDATE NO_WAIT;
`
	require.NoError(t, os.WriteFile(sqlFile, []byte(content), 0644))

	f, err := os.Open(sqlFile)
	require.NoError(t, err)
	defer f.Close()

	stmts, err := parser.ParseStatements(context.Background(), f, token.OceanBase)
	require.NoError(t, err)
	assert.Len(t, stmts, 5)
}
