// Package lexer implements a dialect-aware lexer for MySQL and OceanBase SQL.
package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sqlc-dev/obsql/token"
)

// Lexer tokenizes SQL input for one dialect.
type Lexer struct {
	src    string
	table  *token.Table
	ch     rune           // current character
	pos    token.Position // position of ch
	next   int            // byte offset just past ch
	eof    bool
	last   token.Token // last significant token returned
	logger *zap.Logger
	errors ErrorList
}

// Item represents a lexical token with its value and position.
type Item struct {
	Token  token.Token
	Value  string // unescaped text, original case for words
	Raw    string // exact source text of the token
	Pos    token.Position
	Quoted bool // true if this identifier was double-quoted or backquoted
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithLogger sets the logger used for lexical warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a new Lexer from an io.Reader. The input is read fully up
// front; a read failure is reported as a lexical error at offset 0.
func New(r io.Reader, d token.Dialect, opts ...Option) *Lexer {
	b, err := io.ReadAll(r)
	l := NewString(string(b), d, opts...)
	if err != nil {
		l.errors = append(l.errors, &Error{Pos: token.Position{Line: 1, Column: 1}, Msg: fmt.Sprintf("read input: %v", err)})
	}
	return l
}

// NewString creates a new Lexer over src.
func NewString(src string, d token.Dialect, opts ...Option) *Lexer {
	l := &Lexer{
		src:    src,
		table:  d.Table(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the start of its input and clears errors.
func (l *Lexer) Reset() {
	l.ch = 0
	l.pos = token.Position{Offset: 0, Line: 1, Column: 0}
	l.next = 0
	l.eof = false
	l.last = token.ILLEGAL
	l.errors = nil
	l.readChar()
}

// Source returns the full input text.
func (l *Lexer) Source() string { return l.src }

// Errors returns the lexical errors reported so far.
func (l *Lexer) Errors() ErrorList { return l.errors }

type state struct {
	ch   rune
	pos  token.Position
	next int
	eof  bool
}

func (l *Lexer) save() state { return state{l.ch, l.pos, l.next, l.eof} }

func (l *Lexer) restore(s state) {
	l.ch, l.pos, l.next, l.eof = s.ch, s.pos, s.next, s.eof
}

func (l *Lexer) readChar() {
	if l.eof {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset = l.next
	if l.next >= len(l.src) {
		l.ch = 0
		l.eof = true
		return
	}
	r, size := utf8.DecodeRuneInString(l.src[l.next:])
	l.ch = r
	l.next += size
}

func (l *Lexer) peekChar() rune {
	if l.next >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.next:])
	return r
}

// peekByte returns the byte i positions after the one following ch.
func (l *Lexer) peekByte(i int) byte {
	if l.next+i >= len(l.src) {
		return 0
	}
	return l.src[l.next+i]
}

func (l *Lexer) skipWhitespace() {
	// Skip whitespace and BOM (byte order mark U+FEFF)
	for !l.eof && (unicode.IsSpace(l.ch) || l.ch == '\uFEFF') {
		l.readChar()
	}
}

func (l *Lexer) illegal(pos token.Position, text, msg string) {
	err := &Error{Pos: pos, Text: text, Msg: msg}
	l.errors = append(l.errors, err)
	l.logger.Warn("lexical error",
		zap.String("text", text),
		zap.Int("line", pos.Line),
		zap.Int("column", pos.Column),
		zap.Int("offset", pos.Offset),
		zap.String("reason", msg))
}

// NextToken returns the next token from the input. Unrecognized input is
// recorded as an error and skipped, so NextToken always makes progress.
func (l *Lexer) NextToken() Item {
	for {
		l.skipWhitespace()
		start := l.pos
		item, ok := l.scan()
		if !ok {
			continue
		}
		item.Pos = start
		item.Raw = l.src[start.Offset:l.pos.Offset]
		if item.Token != token.COMMENT {
			l.last = item.Token
		}
		return item
	}
}

func (l *Lexer) scan() (Item, bool) {
	pos := l.pos

	if l.eof {
		return Item{Token: token.EOF}, true
	}

	// Handle comments
	if l.ch == '-' && l.peekChar() == '-' && isCommentSpace(l.peekByte(1)) {
		return l.readLineComment(), true
	}
	if l.ch == '#' {
		return l.readLineComment(), true
	}
	if l.ch == '/' && l.peekChar() == '*' {
		return l.readBlockComment()
	}

	switch l.ch {
	case '+':
		return l.op(token.PLUS, 1), true
	case '-':
		return l.op(token.MINUS, 1), true
	case '*':
		return l.op(token.ASTERISK, 1), true
	case '/':
		return l.op(token.SLASH, 1), true
	case '%':
		return l.op(token.PERCENT, 1), true
	case '=':
		return l.op(token.EQ, 1), true
	case '^':
		return l.op(token.CARET, 1), true
	case '~':
		return l.op(token.TILDE, 1), true
	case '?':
		return l.op(token.QUESTION, 1), true
	case '(':
		return l.op(token.LPAREN, 1), true
	case ')':
		return l.op(token.RPAREN, 1), true
	case ',':
		return l.op(token.COMMA, 1), true
	case ';':
		return l.op(token.SEMICOLON, 1), true
	case '!':
		if l.peekChar() == '=' {
			return l.op(token.NEQ, 2), true
		}
		return l.op(token.BANG, 1), true
	case '<':
		switch l.peekChar() {
		case '=':
			if l.peekByte(1) == '>' {
				return l.op(token.NULL_SAFE_EQ, 3), true
			}
			return l.op(token.LTE, 2), true
		case '>':
			return l.op(token.NEQ, 2), true
		case '<':
			return l.op(token.SHL, 2), true
		}
		return l.op(token.LT, 1), true
	case '>':
		switch l.peekChar() {
		case '=':
			return l.op(token.GTE, 2), true
		case '>':
			return l.op(token.SHR, 2), true
		}
		return l.op(token.GT, 1), true
	case '|':
		if l.peekChar() == '|' {
			return l.op(token.PIPES, 2), true
		}
		return l.op(token.BIT_OR, 1), true
	case '&':
		if l.peekChar() == '&' {
			return l.op(token.ANDAND, 2), true
		}
		return l.op(token.BIT_AND, 1), true
	case ':':
		if l.peekChar() == '=' {
			return l.op(token.ASSIGN, 2), true
		}
	case '.':
		if isDigit(l.peekChar()) && !l.afterName() {
			return l.readNumber(), true
		}
		return l.op(token.DOT, 1), true
	case '\'':
		return l.readQuoted('\'', token.STRING)
	case '"':
		return l.readQuoted('"', token.QUOTED_IDENT)
	case '`':
		return l.readQuoted('`', token.BACKQUOTED_IDENT)
	case '@':
		return l.readVariable()
	}

	if isDigit(l.ch) {
		return l.readNumber(), true
	}
	if isIdentChar(l.ch) {
		return l.readIdentifier()
	}

	text := string(l.ch)
	l.readChar()
	l.illegal(pos, text, "illegal character")
	return Item{}, false
}

// afterName reports whether the previous token ends a name, in which case a
// following ".5" is a qualifier dot and not a fraction.
func (l *Lexer) afterName() bool {
	switch l.last {
	case token.IDENT, token.BACKQUOTED_IDENT, token.QUOTED_IDENT, token.DIGIT_IDENT, token.RPAREN:
		return true
	}
	return l.last.IsKeyword() && l.table.IsIdentifier(l.last)
}

func (l *Lexer) op(tok token.Token, width int) Item {
	var sb strings.Builder
	for i := 0; i < width; i++ {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: tok, Value: sb.String()}
}

func (l *Lexer) readLineComment() Item {
	var sb strings.Builder
	for !l.eof && l.ch != '\n' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.COMMENT, Value: sb.String()}
}

// readBlockComment reads a /* ... */ comment. Trace annotations carrying
// both trace_id and rpc_id are dropped from the token stream entirely.
func (l *Lexer) readBlockComment() (Item, bool) {
	pos := l.pos
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar()
	sb.WriteRune(l.ch)
	l.readChar()

	closed := false
	for !l.eof {
		if l.ch == '*' && l.peekChar() == '/' {
			sb.WriteString("*/")
			l.readChar()
			l.readChar()
			closed = true
			break
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	text := sb.String()
	if !closed {
		l.illegal(pos, "/*", "unterminated block comment")
	}
	if isTraceAnnotation(text) {
		l.logger.Debug("dropped trace annotation", zap.String("comment", text), zap.Int("offset", pos.Offset))
		return Item{}, false
	}
	return Item{Token: token.COMMENT, Value: text}, true
}

func isTraceAnnotation(comment string) bool {
	lower := strings.ToLower(comment)
	return strings.Contains(lower, "trace_id") && strings.Contains(lower, "rpc_id")
}

// readQuoted reads a string, quoted identifier or backquoted identifier.
// Doubling the quote escapes it; backslash escapes apply everywhere but
// inside backquotes. An unterminated quote is skipped as illegal input and
// scanning resumes right after it.
func (l *Lexer) readQuoted(quote rune, tok token.Token) (Item, bool) {
	pos := l.pos
	saved := l.save()
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof {
		if l.ch == quote {
			if l.peekChar() == quote {
				sb.WriteRune(quote)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return Item{Token: tok, Value: sb.String(), Quoted: tok != token.STRING}, true
		}
		if l.ch == '\\' && quote != '`' {
			l.readChar()
			if l.eof {
				break
			}
			writeEscape(&sb, l.ch)
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	l.restore(saved)
	l.readChar()
	l.illegal(pos, string(quote), "unmatched quote")
	return Item{}, false
}

func writeEscape(sb *strings.Builder, ch rune) {
	switch ch {
	case '0':
		sb.WriteByte(0)
	case 'b':
		sb.WriteByte('\b')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'Z':
		sb.WriteByte(0x1a)
	case '%', '_':
		// LIKE wildcards keep their backslash
		sb.WriteByte('\\')
		sb.WriteRune(ch)
	default:
		sb.WriteRune(ch)
	}
}

// readVariable reads @name, @'name' and @@name style variables.
func (l *Lexer) readVariable() (Item, bool) {
	pos := l.pos
	tok := token.SESSION_VAR
	l.readChar() // skip @
	if l.ch == '@' {
		tok = token.SYSTEM_VAR
		l.readChar()
	}

	switch l.ch {
	case '\'', '"', '`':
		item, ok := l.readQuoted(l.ch, token.STRING)
		if !ok {
			return item, false
		}
		return Item{Token: tok, Value: item.Value, Quoted: true}, true
	}

	var sb strings.Builder
	for !l.eof && (isIdentChar(l.ch) || l.ch == '.' && tok == token.SYSTEM_VAR && isIdentChar(l.peekChar())) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if sb.Len() == 0 {
		l.illegal(pos, l.src[pos.Offset:l.pos.Offset], "variable name expected")
		return Item{}, false
	}
	return Item{Token: tok, Value: sb.String()}, true
}

// readNumber reads numeric literals and digit-led identifiers.
func (l *Lexer) readNumber() Item {
	var sb strings.Builder

	// 0x1F and 0b101 forms, only when the whole word is well formed
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X' || l.peekChar() == 'b' || l.peekChar() == 'B') {
		saved := l.save()
		hex := l.peekChar() == 'x' || l.peekChar() == 'X'
		sb.WriteRune(l.ch)
		l.readChar()
		sb.WriteRune(l.ch)
		l.readChar()
		digits := 0
		for (hex && isHexDigit(l.ch)) || (!hex && (l.ch == '0' || l.ch == '1')) {
			sb.WriteRune(l.ch)
			l.readChar()
			digits++
		}
		if digits > 0 && !isIdentChar(l.ch) {
			if hex {
				return Item{Token: token.HEXNUM, Value: sb.String()}
			}
			return Item{Token: token.BITNUM, Value: sb.String()}
		}
		l.restore(saved)
		sb.Reset()
	}

	tok := token.NUMBER
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	// Fractional part
	if l.ch == '.' && (sb.Len() == 0 || !isIdentStart(l.peekChar()) || isExponent(l.peekChar(), l.peekByte(1), l.peekByte(2))) {
		tok = token.FRACTION
		sb.WriteRune(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}

	// Exponent
	if (l.ch == 'e' || l.ch == 'E') && isExponent(l.ch, l.peekByte(0), l.peekByte(1)) {
		tok = token.FRACTION
		sb.WriteRune(l.ch)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}

	// Digits followed by identifier characters form an identifier like 1abc
	if tok == token.NUMBER && isIdentChar(l.ch) {
		for isIdentChar(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		return Item{Token: token.DIGIT_IDENT, Value: sb.String()}
	}
	return Item{Token: tok, Value: sb.String()}
}

// isExponent reports whether e, followed by the bytes a and b, starts a
// valid exponent such as e5, E+5 or e-12.
func isExponent(e rune, a, b byte) bool {
	if e != 'e' && e != 'E' {
		return false
	}
	if a == '+' || a == '-' {
		return b >= '0' && b <= '9'
	}
	return a >= '0' && a <= '9'
}

func (l *Lexer) readIdentifier() (Item, bool) {
	pos := l.pos

	// Check for hex and bit string literals: x'1F' and b'101'
	if (l.ch == 'x' || l.ch == 'X' || l.ch == 'b' || l.ch == 'B') && l.peekChar() == '\'' {
		return l.readBitString(pos)
	}

	var sb strings.Builder
	for !l.eof && isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	ident := sb.String()
	tok, _ := l.table.Lookup(ident)
	return Item{Token: tok, Value: ident}, true
}

func (l *Lexer) readBitString(pos token.Position) (Item, bool) {
	saved := l.save()
	hex := l.ch == 'x' || l.ch == 'X'
	l.readChar() // prefix
	l.readChar() // opening quote
	for !l.eof && l.ch != '\'' {
		if (hex && !isHexDigit(l.ch)) || (!hex && l.ch != '0' && l.ch != '1') {
			break
		}
		l.readChar()
	}
	if l.ch != '\'' {
		l.restore(saved)
		l.readChar()
		l.readChar()
		l.illegal(pos, l.src[pos.Offset:l.pos.Offset], "malformed bit-value literal")
		return Item{}, false
	}
	l.readChar() // closing quote
	value := l.src[pos.Offset:l.pos.Offset]
	if hex {
		return Item{Token: token.HEXNUM, Value: value}, true
	}
	return Item{Token: token.BITNUM, Value: value}, true
}

func isCommentSpace(b byte) bool {
	return b == 0 || b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch) || (ch >= utf8.RuneSelf && !unicode.IsSpace(ch) && ch != '\uFEFF' && ch != utf8.RuneError)
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

// Tokenize returns all tokens from the reader up to and including EOF,
// comments excluded. Lexical errors do not stop scanning; they are
// returned together as an ErrorList.
func Tokenize(r io.Reader, d token.Dialect, opts ...Option) ([]Item, error) {
	l := New(r, d, opts...)
	var items []Item
	for {
		item := l.NextToken()
		if item.Token == token.COMMENT {
			continue
		}
		items = append(items, item)
		if item.Token == token.EOF {
			break
		}
	}
	if len(l.errors) > 0 {
		return items, l.errors
	}
	return items, nil
}
