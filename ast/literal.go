package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/token"
)

// NullLiteral is NULL.
type NullLiteral struct {
	Position token.Position `json:"-"`
}

func (n *NullLiteral) Pos() token.Position { return n.Position }
func (n *NullLiteral) expressionNode()     {}
func (n *NullLiteral) literalNode()        {}

// BooleanLiteral is TRUE or FALSE.
type BooleanLiteral struct {
	Position token.Position `json:"-"`
	Value    bool           `json:"value"`
}

func (b *BooleanLiteral) Pos() token.Position { return b.Position }
func (b *BooleanLiteral) expressionNode()     {}
func (b *BooleanLiteral) literalNode()        {}

// LongLiteral is an integer literal written in decimal, hex or binary.
// Value holds the normalized decimal value; Text the source spelling.
type LongLiteral struct {
	Position token.Position `json:"-"`
	Value    uint64         `json:"value"`
	Text     string         `json:"text,omitempty"`
}

func (l *LongLiteral) Pos() token.Position { return l.Position }
func (l *LongLiteral) expressionNode()     {}
func (l *LongLiteral) literalNode()        {}

// DoubleLiteral is a decimal fraction or exponent literal.
type DoubleLiteral struct {
	Position token.Position `json:"-"`
	Value    float64        `json:"value"`
	Text     string         `json:"text"`
}

func (d *DoubleLiteral) Pos() token.Position { return d.Position }
func (d *DoubleLiteral) expressionNode()     {}
func (d *DoubleLiteral) literalNode()        {}

// StringLiteral is a quoted string with escapes resolved.
type StringLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (s *StringLiteral) Pos() token.Position { return s.Position }
func (s *StringLiteral) expressionNode()     {}
func (s *StringLiteral) literalNode()        {}

// DateLiteral is DATE 'yyyy-mm-dd'.
type DateLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (d *DateLiteral) Pos() token.Position { return d.Position }
func (d *DateLiteral) expressionNode()     {}
func (d *DateLiteral) literalNode()        {}

// TimeLiteral is TIME 'hh:mm:ss'.
type TimeLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (t *TimeLiteral) Pos() token.Position { return t.Position }
func (t *TimeLiteral) expressionNode()     {}
func (t *TimeLiteral) literalNode()        {}

// TimestampLiteral is TIMESTAMP 'yyyy-mm-dd hh:mm:ss'.
type TimestampLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (t *TimestampLiteral) Pos() token.Position { return t.Position }
func (t *TimestampLiteral) expressionNode()     {}
func (t *TimestampLiteral) literalNode()        {}

// IntervalUnit is the unit of an INTERVAL literal, always upper case.
// The SQL_TSI_ spellings are folded into the plain unit names.
type IntervalUnit string

// IntervalLiteral is INTERVAL value unit.
type IntervalLiteral struct {
	Position token.Position `json:"-"`
	Value    Expression     `json:"value"`
	Unit     IntervalUnit   `json:"unit"`
}

func (i *IntervalLiteral) Pos() token.Position { return i.Position }
func (i *IntervalLiteral) expressionNode()     {}
func (i *IntervalLiteral) literalNode()        {}

// ParseInteger converts an integer literal to its unsigned value. It
// accepts plain decimal digits, 0x1F and X'1F' hex forms, and 0b101 and
// B'101' binary forms. An empty X'' or B'' payload is zero.
func ParseInteger(text string) (uint64, error) {
	digits, base := text, 10
	switch {
	case len(text) >= 3 && (text[0] == 'x' || text[0] == 'X') && text[1] == '\'' && text[len(text)-1] == '\'':
		digits, base = text[2:len(text)-1], 16
	case len(text) >= 3 && (text[0] == 'b' || text[0] == 'B') && text[1] == '\'' && text[len(text)-1] == '\'':
		digits, base = text[2:len(text)-1], 2
	case len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X'):
		digits, base = text[2:], 16
	case len(text) > 2 && text[0] == '0' && (text[1] == 'b' || text[1] == 'B'):
		digits, base = text[2:], 2
	}
	if digits == "" {
		if base == 10 {
			return 0, fmt.Errorf("invalid integer literal %q", text)
		}
		return 0, nil
	}
	if base != 10 {
		// Leading zeros never overflow.
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			return 0, nil
		}
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, fmt.Errorf("integer literal %q out of range", text)
		}
		return 0, fmt.Errorf("invalid integer literal %q", text)
	}
	return v, nil
}

// NewLongLiteral builds a LongLiteral from its source spelling.
func NewLongLiteral(pos token.Position, text string) (*LongLiteral, error) {
	v, err := ParseInteger(text)
	if err != nil {
		return nil, err
	}
	return &LongLiteral{Position: pos, Value: v, Text: text}, nil
}
