package parser

import (
	"strings"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

// parseInsert parses
//
//	INSERT [IGNORE] [INTO] tbl [(col, ...)] {VALUES ... | query | SET ...}
//	[ON DUPLICATE KEY UPDATE col = expr, ...]
func (p *Parser) parseInsert() *ast.Insert {
	p.enter("insert")
	ins := &ast.Insert{Position: p.current.Pos}
	p.expect(token.INSERT)
	ins.Ignore = p.accept(token.IGNORE)
	p.accept(token.INTO)
	ins.Target = p.parseQualifiedName("table name")

	if p.currentIs(token.LPAREN) && !p.peekIs(token.SELECT) && !p.peekIs(token.WITH) {
		p.nextToken()
		if !p.currentIs(token.RPAREN) {
			for {
				ins.Columns = append(ins.Columns, p.parseColumnName())
				if !p.accept(token.COMMA) {
					break
				}
			}
		}
		p.expect(token.RPAREN)
	}

	switch p.current.Token {
	case token.VALUES, token.SELECT, token.WITH, token.LPAREN, token.TABLE:
		ins.Query = p.parseQuery()
	case token.SET:
		if ins.Columns != nil {
			p.unexpected("expected VALUES or SELECT after column list")
		}
		p.nextToken()
		ins.Set = p.parseAssignments()
	default:
		p.unexpected("expected VALUES, SELECT or SET")
	}

	if p.accept(token.ON) {
		p.expect(token.DUPLICATE)
		p.expect(token.KEY)
		p.expect(token.UPDATE)
		ins.OnDuplicate = p.parseAssignments()
	}
	return ins
}

// parseColumnName parses a possibly qualified column name and returns its
// last part.
func (p *Parser) parseColumnName() string {
	return p.parseQualifiedName("column name").Suffix()
}

// parseAssignments parses col = expr, ... where = may also be :=.
func (p *Parser) parseAssignments() []*ast.Assignment {
	var list []*ast.Assignment
	for {
		a := &ast.Assignment{Position: p.current.Pos, Column: p.parseQualifiedName("column name")}
		if !p.accept(token.EQ) && !p.accept(token.ASSIGN) {
			p.unexpected("expected = or :=")
		}
		a.Value = p.parseExpression(LOWEST)
		list = append(list, a)
		if !p.accept(token.COMMA) {
			return list
		}
	}
}

// parseUpdate parses UPDATE [IGNORE] tables SET ... [WHERE] [ORDER BY] [LIMIT].
func (p *Parser) parseUpdate() *ast.Update {
	p.enter("update")
	upd := &ast.Update{Position: p.current.Pos}
	p.expect(token.UPDATE)
	upd.Ignore = p.accept(token.IGNORE)
	upd.Table = p.parseRelationList()
	p.expect(token.SET)
	upd.Set = p.parseAssignments()
	if p.accept(token.WHERE) {
		upd.Where = p.parseExpression(LOWEST)
	}
	if p.accept(token.ORDER) {
		p.expect(token.BY)
		upd.OrderBy = p.parseSortItems()
	}
	if p.currentIs(token.LIMIT) {
		upd.Limit = p.parseLimit()
	}
	return upd
}

// parseDelete parses DELETE FROM tbl [WHERE] [ORDER BY] [LIMIT].
func (p *Parser) parseDelete() *ast.Delete {
	p.enter("delete")
	del := &ast.Delete{Position: p.current.Pos}
	p.expect(token.DELETE)
	p.expect(token.FROM)
	del.Table = p.parseTablePrimary()
	if p.accept(token.WHERE) {
		del.Where = p.parseExpression(LOWEST)
	}
	if p.accept(token.ORDER) {
		p.expect(token.BY)
		del.OrderBy = p.parseSortItems()
	}
	if p.currentIs(token.LIMIT) {
		del.Limit = p.parseLimit()
	}
	return del
}

// parseCommit parses COMMIT [WORK].
func (p *Parser) parseCommit() *ast.Commit {
	c := &ast.Commit{Position: p.current.Pos}
	p.expect(token.COMMIT)
	if p.currentIs(token.IDENT) && strings.EqualFold(p.current.Value, "WORK") {
		p.nextToken()
	}
	return c
}
