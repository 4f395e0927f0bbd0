package parser

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/obsql/internal/diag"
	"github.com/sqlc-dev/obsql/lexer"
	"github.com/sqlc-dev/obsql/token"
)

// SyntaxError is returned when a statement cannot be parsed. No partial
// tree is returned alongside it.
type SyntaxError struct {
	Msg    string
	Token  string // offending token text, empty at end of input
	Line   int    // 1-based
	Column int    // 1-based, in runes
	Offset int    // byte offset
	Source string // the offending source line, empty when unresolved
	Caret  string // caret marker under the offending token
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Token == "" {
		fmt.Fprintf(&sb, "syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	} else {
		fmt.Fprintf(&sb, "syntax error at line %d, column %d near %q: %s", e.Line, e.Column, e.Token, e.Msg)
	}
	if e.Source != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Source)
		sb.WriteString("\n")
		sb.WriteString(e.Caret)
	}
	return sb.String()
}

func newSyntaxError(src string, pos token.Position, text, msg string) *SyntaxError {
	e := &SyntaxError{
		Msg:    msg,
		Token:  text,
		Line:   pos.Line,
		Column: pos.Column,
		Offset: pos.Offset,
	}
	if line, caret, ok := diag.Render(src, pos.Offset, text); ok {
		e.Source = line
		e.Caret = caret
	}
	return e
}

func fromLexError(src string, le *lexer.Error) *SyntaxError {
	return newSyntaxError(src, le.Pos, le.Text, le.Msg)
}

// bailout is raised by the parser to unwind after the first error.
type bailout struct{}
