package lexer

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/obsql/token"
)

// Error is a non-fatal lexical error. The offending input is skipped and
// scanning continues after it.
type Error struct {
	Pos  token.Position
	Text string // offending source text
	Msg  string
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s %q at line %d, column %d", e.Msg, e.Text, e.Pos.Line, e.Pos.Column)
}

// ErrorList collects the lexical errors of one scan.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d lexical errors: %s", len(l), strings.Join(msgs, "; "))
}
