package parser

import (
	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

// maxNameParts bounds db.table.column references.
const maxNameParts = 3

func (p *Parser) isIdentifier() bool {
	return p.table.IsIdentifier(p.current.Token)
}

// parseIdentifier consumes an identifier, or a keyword the dialect allows
// in identifier position.
func (p *Parser) parseIdentifier(what string) string {
	if !p.isIdentifier() {
		p.unexpected("expected " + what)
	}
	name := p.current.Value
	p.nextToken()
	return name
}

// parseNamePart consumes the part of a dotted name after a DOT, where any
// word is accepted, reserved or not.
func (p *Parser) parseNamePart() string {
	if p.isIdentifier() || p.current.Token.IsKeyword() {
		name := p.current.Value
		p.nextToken()
		return name
	}
	p.unexpected("expected name after .")
	return ""
}

func (p *Parser) parseQualifiedName(what string) *ast.QualifiedName {
	name := &ast.QualifiedName{Position: p.current.Pos}
	name.Parts = append(name.Parts, p.parseIdentifier(what))
	for p.currentIs(token.DOT) {
		p.nextToken()
		p.checkNameLength(name.Parts)
		name.Parts = append(name.Parts, p.parseNamePart())
	}
	return name
}

func (p *Parser) checkNameLength(parts []string) {
	if len(parts) >= maxNameParts {
		p.errorf("too many parts in qualified name")
	}
}

// parseIdentifierList parses ( ident, ... ).
func (p *Parser) parseIdentifierList(what string) []string {
	p.expect(token.LPAREN)
	var names []string
	for {
		names = append(names, p.parseIdentifier(what))
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return names
}

// parseSelectAlias parses [AS] alias after a select item. String literals
// are accepted as aliases.
func (p *Parser) parseSelectAlias() string {
	if p.accept(token.AS) {
		if p.currentIs(token.STRING) || p.currentIs(token.QUOTED_IDENT) {
			alias := p.current.Value
			p.nextToken()
			return alias
		}
		return p.parseIdentifier("alias")
	}
	if p.currentIs(token.STRING) || p.currentIs(token.QUOTED_IDENT) || p.isIdentifier() {
		alias := p.current.Value
		p.nextToken()
		return alias
	}
	return ""
}

// parseTableAlias parses [AS] alias after a table reference.
func (p *Parser) parseTableAlias() string {
	if p.accept(token.AS) {
		if p.currentIs(token.QUOTED_IDENT) {
			alias := p.current.Value
			p.nextToken()
			return alias
		}
		return p.parseIdentifier("alias")
	}
	if p.currentIs(token.QUOTED_IDENT) || (p.isIdentifier() && !p.startsJoin()) {
		alias := p.current.Value
		p.nextToken()
		return alias
	}
	return ""
}

// startsJoin reports whether a soft keyword at the current position opens
// a join rather than naming an alias.
func (p *Parser) startsJoin() bool {
	return p.currentIs(token.FULL) && (p.peekIs(token.JOIN) || p.peekIs(token.OUTER))
}
