package parser

import (
	"strings"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

var keywordTypes = map[token.Token]ast.SQLType{
	token.BINARY:    ast.TypeBinary,
	token.CHAR:      ast.TypeChar,
	token.CHARACTER: ast.TypeChar,
	token.DATE:      ast.TypeDate,
	token.YEAR:      ast.TypeYear,
	token.DATETIME:  ast.TypeDatetime,
	token.DECIMAL:   ast.TypeDecimal,
	token.TIME:      ast.TypeTime,
	token.INT:       ast.TypeInteger,
	token.INTEGER:   ast.TypeInteger,
	token.JSON:      ast.TypeJSON,
	token.DOUBLE:    ast.TypeDouble,
	token.FLOAT:     ast.TypeFloat,
	token.REAL:      ast.TypeReal,
	token.TINYINT:   ast.TypeTinyInt,
	token.BIGINT:    ast.TypeBigInt,
	token.VARCHAR:   ast.TypeVarchar,
	token.TIMESTAMP: ast.TypeTimestamp,
	token.TEXT:      ast.TypeText,
	token.BOOLEAN:   ast.TypeBoolean,
}

// Type names that are not keywords in either dialect.
var identTypes = map[string]ast.SQLType{
	"BOOL":       ast.TypeBoolean,
	"DEC":        ast.TypeDecimal,
	"NUMERIC":    ast.TypeDecimal,
	"SMALLINT":   ast.TypeInteger,
	"MEDIUMINT":  ast.TypeInteger,
	"VARBINARY":  ast.TypeBinary,
	"TINYTEXT":   ast.TypeText,
	"MEDIUMTEXT": ast.TypeText,
	"LONGTEXT":   ast.TypeText,
	"BLOB":       ast.TypeText,
	"TINYBLOB":   ast.TypeText,
	"MEDIUMBLOB": ast.TypeText,
	"LONGBLOB":   ast.TypeText,
}

func isNumericType(t ast.SQLType) bool {
	switch t {
	case ast.TypeInteger, ast.TypeTinyInt, ast.TypeBigInt, ast.TypeDecimal,
		ast.TypeDouble, ast.TypeFloat, ast.TypeReal:
		return true
	}
	return false
}

func isStringType(t ast.SQLType) bool {
	return t == ast.TypeChar || t == ast.TypeVarchar || t == ast.TypeText
}

// parseFieldType parses a CAST target or a column type.
func (p *Parser) parseFieldType() *ast.FieldType {
	pos := p.current.Pos

	// SIGNED [INTEGER | INT] and UNSIGNED [INTEGER | INT]
	if p.currentIs(token.SIGNED) || p.currentIs(token.UNSIGNED) {
		ft := ast.NewFieldType(pos, ast.TypeInteger, "")
		ft.Sign = ast.Signedness(p.current.Token.String())
		p.nextToken()
		if p.currentIs(token.INT) || p.currentIs(token.INTEGER) {
			ft.Name = strings.ToUpper(p.current.Value)
			p.nextToken()
		}
		return ft
	}

	t, ok := keywordTypes[p.current.Token]
	if !ok && p.currentIs(token.IDENT) {
		t, ok = identTypes[strings.ToUpper(p.current.Value)]
	}
	if !ok {
		p.unexpected("expected a type")
	}
	ft := ast.NewFieldType(pos, t, p.current.Value)
	p.nextToken()

	if t == ast.TypeDouble && p.currentIs(token.IDENT) && strings.EqualFold(p.current.Value, "PRECISION") {
		p.nextToken()
	}
	if p.accept(token.LPAREN) {
		ft.Length = p.parseSmallInt("type length")
		if p.accept(token.COMMA) {
			ft.Decimal = p.parseSmallInt("type scale")
		}
		p.expect(token.RPAREN)
	}

	switch {
	case isNumericType(t):
		if p.currentIs(token.SIGNED) || p.currentIs(token.UNSIGNED) {
			ft.Sign = ast.Signedness(p.current.Token.String())
			p.nextToken()
		}
		if p.currentIs(token.IDENT) && strings.EqualFold(p.current.Value, "ZEROFILL") {
			p.nextToken()
		}
	case isStringType(t):
		p.parseCharsetSuffix(ft)
	}
	return ft
}

// parseCharsetSuffix parses [BINARY] [CHARACTER SET name | CHARSET name]
// after a string type.
func (p *Parser) parseCharsetSuffix(ft *ast.FieldType) {
	for {
		switch {
		case p.currentIs(token.BINARY):
			ft.Binary = true
			p.nextToken()
		case p.currentIs(token.CHARACTER) && p.peekIs(token.SET):
			p.nextToken()
			p.nextToken()
			ft.Charset = p.parseCharsetName("character set")
		case p.currentIs(token.CHARSET):
			p.nextToken()
			ft.Charset = p.parseCharsetName("character set")
		default:
			return
		}
	}
}
