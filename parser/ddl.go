package parser

import (
	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

func (p *Parser) parseCreate() ast.Statement {
	if !p.peekIs(token.TABLE) {
		p.nextToken()
		p.unexpected("expected TABLE")
	}
	return p.parseCreateTable()
}

// parseCreateTable parses
//
//	CREATE TABLE [IF NOT EXISTS] name (create_definition, ...) [table_option ...]
func (p *Parser) parseCreateTable() *ast.CreateTable {
	p.enter("create table")
	create := &ast.CreateTable{Position: p.current.Pos}
	p.expect(token.CREATE)
	p.expect(token.TABLE)
	if p.accept(token.IF) {
		p.expect(token.NOT)
		p.expect(token.EXISTS)
		create.IfNotExists = true
	}
	create.Name = p.parseQualifiedName("table name")

	p.expect(token.LPAREN)
	for {
		switch p.current.Token {
		case token.PRIMARY, token.KEY, token.INDEX, token.UNIQUE:
			create.Indexes = append(create.Indexes, p.parseIndexDefinition())
		default:
			create.Columns = append(create.Columns, p.parseColumnDefinition())
		}
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	for {
		opt := p.grammar.tableOption(p)
		if opt == nil {
			break
		}
		create.Options = append(create.Options, opt)
		p.accept(token.COMMA)
	}
	return create
}

func (p *Parser) parseColumnDefinition() *ast.ColumnDefinition {
	col := &ast.ColumnDefinition{Position: p.current.Pos}
	col.Name = p.parseIdentifier("column name")
	col.Type = p.parseFieldType()

	for {
		switch {
		case p.currentIs(token.NOT):
			p.nextToken()
			p.expect(token.NULL)
			col.NotNull = true
		case p.accept(token.NULL):
			col.Null = true
		case p.accept(token.DEFAULT):
			col.Default = p.parseExpression(HIGHEST)
		case p.currentIs(token.ON):
			p.nextToken()
			p.expect(token.UPDATE)
			col.OnUpdate = p.parseExpression(HIGHEST)
		case p.accept(token.AUTO_INCREMENT):
			col.AutoIncrement = true
		case p.currentIs(token.PRIMARY):
			p.nextToken()
			p.expect(token.KEY)
			col.PrimaryKey = true
		case p.accept(token.KEY):
			col.PrimaryKey = true
		case p.accept(token.UNIQUE):
			p.accept(token.KEY)
			col.Unique = true
		case p.accept(token.COMMENT_KW):
			col.Comment = p.expect(token.STRING).Value
		case p.accept(token.COLLATE):
			col.Collate = p.parseCharsetName("collation")
		case p.currentIs(token.CHARACTER) && p.peekIs(token.SET), p.currentIs(token.CHARSET):
			if p.accept(token.CHARACTER) {
				p.expect(token.SET)
			} else {
				p.nextToken()
			}
			col.Type.Charset = p.parseCharsetName("character set")
		default:
			return col
		}
	}
}

// parseIndexDefinition parses PRIMARY KEY (...), {INDEX | KEY} [name] (...)
// and UNIQUE [INDEX | KEY] [name] (...), each with trailing index options.
func (p *Parser) parseIndexDefinition() *ast.IndexDefinition {
	idx := &ast.IndexDefinition{Position: p.current.Pos, Kind: ast.IndexNormal}
	switch {
	case p.accept(token.PRIMARY):
		p.expect(token.KEY)
		idx.Kind = ast.IndexPrimary
	case p.accept(token.UNIQUE):
		idx.Kind = ast.IndexUnique
		if !p.accept(token.INDEX) {
			p.accept(token.KEY)
		}
	default:
		p.nextToken() // INDEX or KEY
	}
	if idx.Kind != ast.IndexPrimary && p.isIdentifier() {
		idx.Name = p.parseIdentifier("index name")
	}

	p.expect(token.LPAREN)
	for {
		item := &ast.SortItem{Position: p.current.Pos, Ordering: ast.Ascending}
		name := p.parseQualifiedName("column name")
		item.Key = &ast.QualifiedNameReference{Position: name.Position, Name: name}
		if p.accept(token.LPAREN) {
			// Prefix length: col(10)
			if !p.currentIs(token.NUMBER) {
				p.unexpected("expected prefix length")
			}
			length, err := ast.NewLongLiteral(p.current.Pos, p.current.Value)
			if err != nil {
				p.errorf("%v", err)
			}
			p.nextToken()
			p.expect(token.RPAREN)
			item.Key = &ast.FunctionCall{Position: name.Position, Name: name, Args: []ast.Expression{length}}
		}
		if p.accept(token.DESC) {
			item.Ordering = ast.Descending
		} else {
			p.accept(token.ASC)
		}
		idx.Columns = append(idx.Columns, item)
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	for {
		opt := p.grammar.indexOption(p)
		if opt == nil {
			return idx
		}
		idx.Options = append(idx.Options, opt)
	}
}
