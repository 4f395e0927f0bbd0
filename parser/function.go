package parser

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

var aggregateFunctions = map[token.Token]bool{
	token.AVG:          true,
	token.BIT_AND_FUNC: true,
	token.BIT_OR_FUNC:  true,
	token.BIT_XOR_FUNC: true,
	token.COUNT:        true,
	token.MAX:          true,
	token.MIN:          true,
	token.STD:          true,
	token.STDDEV:       true,
	token.STDDEV_POP:   true,
	token.STDDEV_SAMP:  true,
	token.SUM:          true,
	token.VAR_POP:      true,
	token.VAR_SAMP:     true,
	token.VARIANCE:     true,
}

var windowOnlyFunctions = map[token.Token]bool{
	token.CUME_DIST:    true,
	token.DENSE_RANK:   true,
	token.FIRST_VALUE:  true,
	token.LAG:          true,
	token.LAST_VALUE:   true,
	token.LEAD:         true,
	token.NTH_VALUE:    true,
	token.NTILE:        true,
	token.PERCENT_RANK: true,
	token.RANK:         true,
	token.ROW_NUMBER:   true,
}

// Reserved words that still name ordinary functions when followed by (.
var callableKeywords = map[token.Token]bool{
	token.CHAR:    true,
	token.DEFAULT: true,
	token.IF:      true,
	token.INSERT:  true,
	token.LEFT:    true,
	token.MOD:     true,
	token.RIGHT:   true,
	token.VALUES:  true,
}

// parseBuiltinCall parses calls whose name is a keyword. It returns nil when
// the current word is an ordinary function name. The current token is
// followed by (.
func (p *Parser) parseBuiltinCall() ast.Expression {
	tok := p.current.Token
	switch {
	case tok == token.CAST:
		return p.parseCast()
	case tok == token.TRIM:
		return p.parseTrim()
	case tok == token.SUBSTRING, tok == token.SUBSTR:
		return p.parseSubstring()
	case tok == token.GROUP_CONCAT:
		return p.parseGroupConcat()
	case aggregateFunctions[tok]:
		return p.parseAggregate()
	case windowOnlyFunctions[tok]:
		item := p.current
		fn := p.parseKeywordCall()
		if _, ok := fn.(*ast.WindowFunction); !ok {
			p.errorAt(item, item.Token.String()+" requires an OVER clause")
		}
		return fn
	case callableKeywords[tok]:
		return p.parseKeywordCall()
	}
	return nil
}

func (p *Parser) parseKeywordCall() ast.Expression {
	name := &ast.QualifiedName{Position: p.current.Pos, Parts: []string{p.current.Value}}
	p.nextToken()
	return p.parseFunctionCall(name)
}

// parseFunctionCall parses the argument list of name(...) and any window
// clause that follows it.
func (p *Parser) parseFunctionCall(name *ast.QualifiedName) ast.Expression {
	p.enter("function call")
	fn := &ast.FunctionCall{Position: name.Position, Name: name}
	p.expect(token.LPAREN)
	if !p.currentIs(token.RPAREN) {
		if p.accept(token.DISTINCT) {
			fn.Distinct = true
		}
		fn.Args = p.parseExpressionList()
	}
	p.expect(token.RPAREN)
	return p.parseWindowSuffix(fn)
}

// parseWindowSuffix parses [RESPECT NULLS | IGNORE NULLS] OVER window.
func (p *Parser) parseWindowSuffix(fn ast.Expression) ast.Expression {
	var nullTreatment string
	if (p.currentIs(token.RESPECT) || p.currentIs(token.IGNORE)) && p.peekIs(token.NULLS) {
		nullTreatment = p.current.Token.String() + " NULLS"
		p.nextToken()
		p.nextToken()
		if !p.currentIs(token.OVER) {
			p.unexpected("expected OVER")
		}
	}
	if !p.accept(token.OVER) {
		return fn
	}
	var spec *ast.WindowSpec
	if p.currentIs(token.LPAREN) {
		spec = p.parseWindowSpec()
	} else {
		spec = &ast.WindowSpec{Position: p.current.Pos, Name: p.parseIdentifier("window name")}
	}
	return &ast.WindowFunction{Position: fn.Pos(), Function: fn, NullTreatment: nullTreatment, Over: spec}
}

func (p *Parser) parseAggregate() ast.Expression {
	agg := &ast.AggregateFunction{Position: p.current.Pos, Name: p.current.Token.String()}
	p.nextToken()
	p.expect(token.LPAREN)
	if agg.Name == "COUNT" && p.currentIs(token.ASTERISK) {
		agg.Star = true
		p.nextToken()
	} else {
		if p.accept(token.DISTINCT) || p.accept(token.DISTINCTROW) {
			agg.Distinct = true
		} else {
			p.accept(token.ALL)
		}
		agg.Args = p.parseExpressionList()
	}
	p.expect(token.RPAREN)
	return p.parseWindowSuffix(agg)
}

// parseCast parses CAST(expr AS type [ARRAY]).
func (p *Parser) parseCast() ast.Expression {
	cast := &ast.Cast{Position: p.current.Pos}
	p.nextToken()
	p.expect(token.LPAREN)
	cast.Value = p.parseExpression(LOWEST)
	p.expect(token.AS)
	cast.Type = p.parseFieldType()
	if p.accept(token.ARRAY) {
		cast.Type.Array = true
	}
	p.expect(token.RPAREN)
	return cast
}

// parseConvert parses CONVERT(expr, type) and CONVERT(expr USING charset).
func (p *Parser) parseConvert() ast.Expression {
	conv := &ast.Convert{Position: p.current.Pos}
	p.nextToken()
	p.expect(token.LPAREN)
	conv.Value = p.parseExpression(LOWEST)
	if p.accept(token.USING) {
		conv.Using = p.parseCharsetName("character set")
	} else {
		p.expect(token.COMMA)
		conv.Type = p.parseFieldType()
	}
	p.expect(token.RPAREN)
	return conv
}

// parseTrim parses TRIM([BOTH | LEADING | TRAILING] [chars] FROM str) and
// TRIM([chars FROM] str). A missing spec is BOTH and missing chars a space.
func (p *Parser) parseTrim() ast.Expression {
	trim := &ast.Trim{Position: p.current.Pos}
	p.nextToken()
	p.expect(token.LPAREN)
	switch p.current.Token {
	case token.BOTH, token.LEADING, token.TRAILING:
		trim.Spec = p.current.Token.String()
		p.nextToken()
		if !p.accept(token.FROM) {
			trim.Chars = p.parseExpression(LOWEST)
			p.expect(token.FROM)
		}
		trim.Value = p.parseExpression(LOWEST)
	default:
		e := p.parseExpression(LOWEST)
		if p.accept(token.FROM) {
			trim.Chars = e
			trim.Value = p.parseExpression(LOWEST)
		} else {
			trim.Value = e
		}
	}
	p.expect(token.RPAREN)
	if trim.Spec == "" {
		trim.Spec = "BOTH"
	}
	if trim.Chars == nil {
		trim.Chars = &ast.StringLiteral{Position: trim.Position, Value: " "}
	}
	return trim
}

// parseSubstring rewrites SUBSTRING(str FROM pos [FOR len]) into the plain
// argument form.
func (p *Parser) parseSubstring() ast.Expression {
	fn := &ast.FunctionCall{
		Position: p.current.Pos,
		Name:     &ast.QualifiedName{Position: p.current.Pos, Parts: []string{p.current.Value}},
	}
	p.nextToken()
	p.expect(token.LPAREN)
	fn.Args = append(fn.Args, p.parseExpression(LOWEST))
	switch {
	case p.accept(token.COMMA):
		fn.Args = append(fn.Args, p.parseExpression(LOWEST))
		if p.accept(token.COMMA) {
			fn.Args = append(fn.Args, p.parseExpression(LOWEST))
		}
	case p.accept(token.FROM):
		fn.Args = append(fn.Args, p.parseExpression(LOWEST))
		if p.accept(token.FOR) {
			fn.Args = append(fn.Args, p.parseExpression(LOWEST))
		}
	default:
		p.unexpected("expected , or FROM")
	}
	p.expect(token.RPAREN)
	return fn
}

// parseGroupConcat parses GROUP_CONCAT([DISTINCT] expr, ... [ORDER BY ...]
// [SEPARATOR 'sep']).
func (p *Parser) parseGroupConcat() ast.Expression {
	gc := &ast.GroupConcat{Position: p.current.Pos}
	p.nextToken()
	p.expect(token.LPAREN)
	if p.accept(token.DISTINCT) {
		gc.Distinct = true
	}
	gc.Args = p.parseExpressionList()
	if p.accept(token.ORDER) {
		p.expect(token.BY)
		gc.OrderBy = p.parseSortItems()
	}
	if p.accept(token.SEPARATOR) {
		sep := p.expect(token.STRING).Value
		gc.Separator = &sep
	}
	p.expect(token.RPAREN)
	return gc
}

// parseMatch parses MATCH (col, ...) AGAINST (expr [modifier]).
func (p *Parser) parseMatch() ast.Expression {
	m := &ast.MatchAgainst{Position: p.current.Pos}
	p.expect(token.MATCH)
	p.expect(token.LPAREN)
	m.Columns = p.parseExpressionList()
	p.expect(token.RPAREN)
	p.expect(token.AGAINST)
	p.expect(token.LPAREN)
	// IN starts a modifier here, so stop below comparison level.
	m.Against = p.parseExpression(COMPARE)
	m.Modifier = p.parseMatchModifier()
	p.expect(token.RPAREN)
	return m
}

func (p *Parser) parseMatchModifier() string {
	var words []string
	if p.accept(token.IN) {
		if p.accept(token.BOOLEAN) {
			p.expect(token.MODE)
			return "IN BOOLEAN MODE"
		}
		p.expect(token.NATURAL)
		p.expect(token.LANGUAGE)
		p.expect(token.MODE)
		words = append(words, "IN NATURAL LANGUAGE MODE")
	}
	if p.accept(token.WITH) {
		p.expect(token.QUERY)
		p.expect(token.EXPANSION)
		words = append(words, "WITH QUERY EXPANSION")
	}
	return strings.Join(words, " ")
}

// parseCurrentTime parses CURRENT_TIMESTAMP and friends with an optional
// precision.
func (p *Parser) parseCurrentTime() ast.Expression {
	ct := &ast.CurrentTime{Position: p.current.Pos, Function: p.current.Token.String()}
	p.nextToken()
	if p.accept(token.LPAREN) {
		if p.currentIs(token.NUMBER) {
			n := p.parseSmallInt("precision")
			ct.Precision = &n
		}
		p.expect(token.RPAREN)
	}
	return ct
}

// parseSmallInt parses a NUMBER token used as a length, precision or count.
func (p *Parser) parseSmallInt(what string) int {
	if !p.currentIs(token.NUMBER) {
		p.unexpected("expected " + what)
	}
	n, err := strconv.Atoi(p.current.Value)
	if err != nil {
		p.errorf("invalid %s %s", what, p.current.Value)
	}
	p.nextToken()
	return n
}

// parseWindowSpec parses ( [name] [PARTITION BY ...] [ORDER BY ...] [frame] ).
func (p *Parser) parseWindowSpec() *ast.WindowSpec {
	p.enter("window spec")
	spec := &ast.WindowSpec{Position: p.current.Pos}
	p.expect(token.LPAREN)
	if p.isIdentifier() && !p.currentIs(token.GROUPS) {
		spec.Name = p.parseIdentifier("window name")
	}
	if p.accept(token.PARTITION) {
		p.expect(token.BY)
		spec.PartitionBy = p.parseExpressionList()
	}
	if p.accept(token.ORDER) {
		p.expect(token.BY)
		spec.OrderBy = p.parseSortItems()
	}
	switch p.current.Token {
	case token.ROWS, token.RANGE, token.GROUPS:
		spec.Frame = p.parseFrame()
	}
	p.expect(token.RPAREN)
	return spec
}

func (p *Parser) parseFrame() *ast.FrameClause {
	frame := &ast.FrameClause{Position: p.current.Pos, Unit: ast.FrameUnit(p.current.Token.String())}
	p.nextToken()
	if p.accept(token.BETWEEN) {
		frame.Start = p.parseFrameBound()
		p.expect(token.AND)
		frame.End = p.parseFrameBound()
	} else {
		frame.Start = p.parseFrameBound()
	}
	return frame
}

func (p *Parser) parseFrameBound() *ast.FrameBound {
	bound := &ast.FrameBound{Position: p.current.Pos}
	switch {
	case p.accept(token.UNBOUNDED):
		switch {
		case p.accept(token.PRECEDING):
			bound.Type = ast.UnboundedPreceding
		case p.accept(token.FOLLOWING):
			bound.Type = ast.UnboundedFollowing
		default:
			p.unexpected("expected PRECEDING or FOLLOWING")
		}
	case p.accept(token.CURRENT):
		p.expect(token.ROW)
		bound.Type = ast.CurrentRow
	default:
		bound.Value = p.parseExpression(LOWEST)
		switch {
		case p.accept(token.PRECEDING):
			bound.Type = ast.Preceding
		case p.accept(token.FOLLOWING):
			bound.Type = ast.Following
		default:
			p.unexpected("expected PRECEDING or FOLLOWING")
		}
	}
	return bound
}
