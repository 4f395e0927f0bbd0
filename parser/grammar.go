package parser

import (
	"strings"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

// grammar holds the productions that differ between dialects. Everything
// else is shared by the Parser core.
type grammar interface {
	// tableOption parses one CREATE TABLE option at the current token. It
	// returns nil when the token does not start an option.
	tableOption(p *Parser) *ast.TableOption
	// indexOption parses one option trailing an index definition.
	indexOption(p *Parser) *ast.TableOption
	// isNowait reports whether tok spells NOWAIT after FOR UPDATE.
	isNowait(tok token.Token) bool
}

func grammarFor(d token.Dialect) grammar {
	if d == token.OceanBase {
		return oceanbaseGrammar{}
	}
	return genericGrammar{}
}

type genericGrammar struct{}

func (genericGrammar) tableOption(p *Parser) *ast.TableOption {
	pos := p.current.Pos
	switch p.current.Token {
	case token.ENGINE:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "ENGINE", Value: p.parseOptionValue()}
	case token.DEFAULT:
		if !p.peekIs(token.CHARSET) && !p.peekIs(token.CHARACTER) && !p.peekIs(token.COLLATE) {
			return nil
		}
		p.nextToken()
		return genericGrammar{}.tableOption(p)
	case token.CHARSET:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "CHARSET", Value: p.parseOptionValue()}
	case token.CHARACTER:
		p.nextToken()
		p.expect(token.SET)
		return &ast.TableOption{Position: pos, Name: "CHARSET", Value: p.parseOptionValue()}
	case token.COLLATE:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "COLLATE", Value: p.parseOptionValue()}
	case token.AUTO_INCREMENT:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "AUTO_INCREMENT", Value: p.parseOptionValue()}
	case token.COMMENT_KW:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "COMMENT", Value: p.parseOptionValue()}
	case token.COMPRESSION:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "COMPRESSION", Value: p.parseOptionValue()}
	}
	return nil
}

func (genericGrammar) indexOption(p *Parser) *ast.TableOption {
	pos := p.current.Pos
	switch p.current.Token {
	case token.COMMENT_KW:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "COMMENT", Value: p.parseOptionValue()}
	case token.USING:
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "USING", Value: strings.ToUpper(p.parseIdentifier("index type"))}
	}
	return nil
}

func (genericGrammar) isNowait(tok token.Token) bool {
	return tok == token.NOWAIT
}

// oceanbaseGrammar extends the generic productions with OceanBase storage
// options and the NO_WAIT spelling.
type oceanbaseGrammar struct {
	genericGrammar
}

var oceanbaseTableOptions = map[token.Token]string{
	token.REPLICA_NUM:      "REPLICA_NUM",
	token.BLOCK_SIZE:       "BLOCK_SIZE",
	token.USE_BLOOM_FILTER: "USE_BLOOM_FILTER",
	token.TABLET_SIZE:      "TABLET_SIZE",
	token.PCTFREE:          "PCTFREE",
}

func (g oceanbaseGrammar) tableOption(p *Parser) *ast.TableOption {
	if name, ok := oceanbaseTableOptions[p.current.Token]; ok {
		pos := p.current.Pos
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: name, Value: p.parseOptionValue()}
	}
	return g.genericGrammar.tableOption(p)
}

func (g oceanbaseGrammar) indexOption(p *Parser) *ast.TableOption {
	if p.currentIs(token.BLOCK_SIZE) {
		pos := p.current.Pos
		p.nextToken()
		return &ast.TableOption{Position: pos, Name: "BLOCK_SIZE", Value: p.parseOptionValue()}
	}
	return g.genericGrammar.indexOption(p)
}

func (oceanbaseGrammar) isNowait(tok token.Token) bool {
	return tok == token.NOWAIT || tok == token.NO_WAIT
}

// parseOptionValue parses [=] value where value is a number, string, word
// or boolean.
func (p *Parser) parseOptionValue() string {
	p.accept(token.EQ)
	switch {
	case p.current.Token == token.NUMBER, p.current.Token == token.STRING,
		p.current.Token == token.TRUE, p.current.Token == token.FALSE,
		p.current.Token == token.DEFAULT, p.current.Token == token.BINARY:
		value := p.current.Value
		p.nextToken()
		return value
	case p.isIdentifier():
		value := p.current.Value
		p.nextToken()
		return value
	}
	p.unexpected("expected option value")
	return ""
}
