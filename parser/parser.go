// Package parser implements a parser for MySQL and OceanBase SQL.
package parser

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/lexer"
	"github.com/sqlc-dev/obsql/token"
)

// Parser parses SQL statements of one dialect.
type Parser struct {
	lexer   *lexer.Lexer
	dialect token.Dialect
	table   *token.Table
	grammar grammar
	current lexer.Item
	peek    lexer.Item
	err     *SyntaxError
	params  int // next positional parameter index
	logger  *zap.Logger
	trace   bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used by the parser and its lexer.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTrace logs every grammar rule the parser enters at debug level.
func WithTrace(trace bool) Option {
	return func(p *Parser) {
		p.trace = trace
	}
}

// New creates a new Parser from an io.Reader.
func New(r io.Reader, d token.Dialect, opts ...Option) *Parser {
	p := &Parser{
		dialect: d,
		table:   d.Table(),
		grammar: grammarFor(d),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(zap.Stringer("dialect", d))
	p.lexer = lexer.New(r, d, lexer.WithLogger(p.logger))
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.current = p.peek
	for {
		p.peek = p.lexer.NextToken()
		if p.peek.Token != token.COMMENT {
			break
		}
	}
}

func (p *Parser) currentIs(t token.Token) bool {
	return p.current.Token == t
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.peek.Token == t
}

// accept consumes the current token if it is t.
func (p *Parser) accept(t token.Token) bool {
	if p.currentIs(t) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) expect(t token.Token) lexer.Item {
	item := p.current
	if !p.currentIs(t) {
		p.unexpected(fmt.Sprintf("expected %s", t))
	}
	p.nextToken()
	return item
}

// errorf records a syntax error at the current token and aborts the parse.
func (p *Parser) errorf(format string, args ...any) {
	p.errorAt(p.current, fmt.Sprintf(format, args...))
}

func (p *Parser) errorAt(item lexer.Item, msg string) {
	if p.err == nil {
		text := item.Raw
		if item.Token == token.EOF {
			text = ""
		}
		p.err = newSyntaxError(p.lexer.Source(), item.Pos, text, msg)
	}
	panic(bailout{})
}

// unexpected reports the current token as out of place.
func (p *Parser) unexpected(want string) {
	if p.currentIs(token.EOF) {
		p.errorf("unexpected end of input, %s", want)
	}
	p.errorf("unexpected %s, %s", describe(p.current), want)
}

func describe(item lexer.Item) string {
	switch {
	case item.Token.IsKeyword():
		return item.Token.String()
	case item.Token == token.IDENT, item.Token == token.BACKQUOTED_IDENT, item.Token == token.DIGIT_IDENT:
		return "identifier " + item.Raw
	case item.Token.IsLiteral(), item.Token == token.QUOTED_IDENT:
		return "literal " + item.Raw
	}
	return fmt.Sprintf("%q", item.Raw)
}

func (p *Parser) enter(rule string) {
	if p.trace {
		p.logger.Debug("enter rule",
			zap.String("rule", rule),
			zap.Stringer("token", p.current.Token),
			zap.Int("line", p.current.Pos.Line),
			zap.Int("column", p.current.Pos.Column))
	}
}

// Parse parses exactly one SQL statement from the input. A trailing
// semicolon is allowed.
func Parse(ctx context.Context, r io.Reader, d token.Dialect, opts ...Option) (ast.Statement, error) {
	p := New(r, d, opts...)
	return p.ParseStatement(ctx)
}

// ParseString is Parse over a string.
func ParseString(ctx context.Context, sql string, d token.Dialect, opts ...Option) (ast.Statement, error) {
	return Parse(ctx, strings.NewReader(sql), d, opts...)
}

// ParseStatements parses a semicolon separated script. It stops at the
// first error.
func ParseStatements(ctx context.Context, r io.Reader, d token.Dialect, opts ...Option) ([]ast.Statement, error) {
	p := New(r, d, opts...)
	return p.ParseStatements(ctx)
}

// ParseStatement parses a single statement followed by end of input.
func (p *Parser) ParseStatement(ctx context.Context) (ast.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	stmt, err := p.run(func() ast.Statement {
		stmt := p.parseStatement()
		for p.accept(token.SEMICOLON) {
		}
		if !p.currentIs(token.EOF) {
			p.unexpected("expected end of statement")
		}
		return stmt
	})
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed statement",
		zap.String("kind", fmt.Sprintf("%T", stmt)),
		zap.Duration("elapsed", time.Since(start)))
	return stmt, nil
}

// ParseStatements parses statements until end of input.
func (p *Parser) ParseStatements(ctx context.Context) ([]ast.Statement, error) {
	var statements []ast.Statement

	for {
		// Skip semicolons between statements
		for p.currentIs(token.SEMICOLON) {
			p.nextToken()
		}
		if p.currentIs(token.EOF) {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		stmt, err := p.run(func() ast.Statement {
			stmt := p.parseStatement()
			if !p.currentIs(token.SEMICOLON) && !p.currentIs(token.EOF) {
				p.unexpected("expected ; or end of input")
			}
			return stmt
		})
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if err := p.lexError(); err != nil {
		return nil, err
	}
	return statements, nil
}

// run invokes parse and converts a bailout into the recorded error. Lexical
// errors do not stop the grammar, but a parse that consumed one still fails.
func (p *Parser) run(parse func() ast.Statement) (stmt ast.Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.logger.Debug("syntax error", zap.Error(p.err))
			stmt, err = nil, p.err
		}
	}()
	stmt = parse()
	if err := p.lexError(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) lexError() error {
	errs := p.lexer.Errors()
	if len(errs) == 0 {
		return nil
	}
	if p.err == nil {
		p.err = fromLexError(p.lexer.Source(), errs[0])
	}
	return p.err
}

func (p *Parser) parseStatement() ast.Statement {
	p.enter("statement")
	switch p.current.Token {
	case token.SELECT, token.WITH, token.LPAREN, token.VALUES, token.TABLE:
		return p.parseQuery()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.COMMIT:
		return p.parseCommit()
	case token.CREATE:
		return p.parseCreate()
	}
	p.unexpected("expected a statement")
	return nil
}
