package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/obsql/lexer"
	"github.com/sqlc-dev/obsql/token"
)

type tok struct {
	Token token.Token
	Value string
}

func scan(t *testing.T, src string, d token.Dialect) []tok {
	t.Helper()
	items, err := lexer.Tokenize(strings.NewReader(src), d)
	require.NoError(t, err)
	out := make([]tok, 0, len(items))
	for _, it := range items {
		out = append(out, tok{it.Token, it.Value})
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []tok
	}{
		{
			name: "select list",
			src:  "SELECT a, 1.5 FROM `t``x`",
			want: []tok{
				{token.SELECT, "SELECT"}, {token.IDENT, "a"}, {token.COMMA, ","},
				{token.FRACTION, "1.5"}, {token.FROM, "FROM"},
				{token.BACKQUOTED_IDENT, "t`x"}, {token.EOF, ""},
			},
		},
		{
			name: "comparison operators",
			src:  "a <=> b != c <> d <= e >= f << g >> h := i",
			want: []tok{
				{token.IDENT, "a"}, {token.NULL_SAFE_EQ, "<=>"}, {token.IDENT, "b"},
				{token.NEQ, "!="}, {token.IDENT, "c"}, {token.NEQ, "<>"}, {token.IDENT, "d"},
				{token.LTE, "<="}, {token.IDENT, "e"}, {token.GTE, ">="}, {token.IDENT, "f"},
				{token.SHL, "<<"}, {token.IDENT, "g"}, {token.SHR, ">>"}, {token.IDENT, "h"},
				{token.ASSIGN, ":="}, {token.IDENT, "i"}, {token.EOF, ""},
			},
		},
		{
			name: "logical operators",
			src:  "a || b && !c | d & e ^ ~f",
			want: []tok{
				{token.IDENT, "a"}, {token.PIPES, "||"}, {token.IDENT, "b"},
				{token.ANDAND, "&&"}, {token.BANG, "!"}, {token.IDENT, "c"},
				{token.BIT_OR, "|"}, {token.IDENT, "d"}, {token.BIT_AND, "&"},
				{token.IDENT, "e"}, {token.CARET, "^"}, {token.TILDE, "~"},
				{token.IDENT, "f"}, {token.EOF, ""},
			},
		},
		{
			name: "qualified name before digits",
			src:  "t.5",
			want: []tok{{token.IDENT, "t"}, {token.DOT, "."}, {token.NUMBER, "5"}, {token.EOF, ""}},
		},
		{
			name: "leading dot fraction",
			src:  ".5",
			want: []tok{{token.FRACTION, ".5"}, {token.EOF, ""}},
		},
		{
			name: "numbers",
			src:  "1e5 2.5E-3 1abc 0x1F X'1F' b'101' 0b11 0xZZ",
			want: []tok{
				{token.FRACTION, "1e5"}, {token.FRACTION, "2.5E-3"},
				{token.DIGIT_IDENT, "1abc"}, {token.HEXNUM, "0x1F"},
				{token.HEXNUM, "X'1F'"}, {token.BITNUM, "b'101'"},
				{token.BITNUM, "0b11"}, {token.DIGIT_IDENT, "0xZZ"}, {token.EOF, ""},
			},
		},
		{
			name: "strings",
			src:  `'it''s' 'a\nb' '50\%' "dq"`,
			want: []tok{
				{token.STRING, "it's"}, {token.STRING, "a\nb"}, {token.STRING, `50\%`},
				{token.QUOTED_IDENT, "dq"}, {token.EOF, ""},
			},
		},
		{
			name: "variables",
			src:  "@v @@global.max_connections @'x y'",
			want: []tok{
				{token.SESSION_VAR, "v"}, {token.SYSTEM_VAR, "global.max_connections"},
				{token.SESSION_VAR, "x y"}, {token.EOF, ""},
			},
		},
		{
			name: "comments are skipped",
			src:  "SELECT -- note\n1 # trailing\n/* block */ ;",
			want: []tok{{token.SELECT, "SELECT"}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"}, {token.EOF, ""}},
		},
		{
			name: "double minus without space",
			src:  "1--2",
			want: []tok{{token.NUMBER, "1"}, {token.MINUS, "-"}, {token.MINUS, "-"}, {token.NUMBER, "2"}, {token.EOF, ""}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan(t, tc.src, token.Generic))
		})
	}
}

func TestDialectKeywords(t *testing.T) {
	assert.Equal(t,
		[]tok{{token.IDENT, "no_wait"}, {token.EOF, ""}},
		scan(t, "no_wait", token.Generic))
	assert.Equal(t,
		[]tok{{token.NO_WAIT, "no_wait"}, {token.EOF, ""}},
		scan(t, "no_wait", token.OceanBase))
}

func TestPositions(t *testing.T) {
	l := lexer.NewString("SELECT\n  a,\tb", token.Generic)

	sel := l.NextToken()
	assert.Equal(t, token.Position{Offset: 0, Line: 1, Column: 1}, sel.Pos)
	assert.Equal(t, "SELECT", sel.Raw)

	a := l.NextToken()
	assert.Equal(t, token.Position{Offset: 9, Line: 2, Column: 3}, a.Pos)

	comma := l.NextToken()
	assert.Equal(t, token.Position{Offset: 10, Line: 2, Column: 4}, comma.Pos)

	b := l.NextToken()
	assert.Equal(t, token.Position{Offset: 12, Line: 2, Column: 6}, b.Pos)
}

func TestRawKeepsQuotes(t *testing.T) {
	l := lexer.NewString(`'a''b' "x"`, token.Generic)
	s := l.NextToken()
	assert.Equal(t, "a'b", s.Value)
	assert.Equal(t, `'a''b'`, s.Raw)
	assert.False(t, s.Quoted)

	q := l.NextToken()
	assert.Equal(t, "x", q.Value)
	assert.True(t, q.Quoted)
}

func TestTraceAnnotationDropped(t *testing.T) {
	l := lexer.NewString("/* trace_id=7,rpc_id=0.1 */ SELECT /* keep */", token.OceanBase)
	assert.Equal(t, token.SELECT, l.NextToken().Token)
	c := l.NextToken()
	assert.Equal(t, token.COMMENT, c.Token)
	assert.Equal(t, "/* keep */", c.Value)
	assert.Equal(t, token.EOF, l.NextToken().Token)
}

func TestErrorsDoNotStopScanning(t *testing.T) {
	items, err := lexer.Tokenize(strings.NewReader("SELECT 'abc"), token.Generic)
	require.Error(t, err)

	var list lexer.ErrorList
	require.True(t, errors.As(err, &list))
	require.Len(t, list, 1)
	assert.Equal(t, token.Position{Offset: 7, Line: 1, Column: 8}, list[0].Pos)
	assert.Equal(t, "'", list[0].Text)
	assert.Equal(t, `unmatched quote "'" at line 1, column 8`, list[0].Error())

	// Scanning resumes right after the stray quote.
	require.Len(t, items, 3)
	assert.Equal(t, token.IDENT, items[1].Token)
	assert.Equal(t, "abc", items[1].Value)
}

func TestIllegalCharacters(t *testing.T) {
	items, err := lexer.Tokenize(strings.NewReader("a : b \\"), token.Generic)
	require.Error(t, err)
	assert.Len(t, items, 3)
	assert.Contains(t, err.Error(), "2 lexical errors")
}

func TestReset(t *testing.T) {
	l := lexer.NewString("SELECT 'x", token.Generic)
	for l.NextToken().Token != token.EOF {
	}
	require.Len(t, l.Errors(), 1)

	l.Reset()
	assert.Empty(t, l.Errors())
	assert.Equal(t, token.SELECT, l.NextToken().Token)
	assert.Equal(t, "SELECT 'x", l.Source())
}
