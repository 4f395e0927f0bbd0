package parser

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

// Operator precedence levels
const (
	LOWEST       = iota
	ASSIGN_PREC  // :=
	OR_PREC      // OR, ||
	XOR_PREC     // XOR
	AND_PREC     // AND, &&
	NOT_PREC     // NOT x
	BETWEEN_PREC // BETWEEN, CASE
	COMPARE      // =, <=>, <>, <, >, IS, LIKE, REGEXP, IN, MEMBER OF, SOUNDS LIKE
	BITOR_PREC   // |
	BITAND_PREC  // &
	SHIFT_PREC   // <<, >>
	ADD_PREC     // +, -
	MUL_PREC     // *, /, %, DIV, MOD
	BITXOR_PREC  // ^
	BITNOT_PREC  // ~x
	UNARY        // -x, +x
	BANG_PREC    // !x
	HIGHEST      // COLLATE
)

func (p *Parser) precedence(tok token.Token) int {
	switch tok {
	case token.ASSIGN:
		return ASSIGN_PREC
	case token.OR, token.PIPES:
		return OR_PREC
	case token.XOR:
		return XOR_PREC
	case token.AND, token.ANDAND:
		return AND_PREC
	case token.BETWEEN:
		return BETWEEN_PREC
	case token.EQ, token.NULL_SAFE_EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE,
		token.IS, token.LIKE, token.REGEXP, token.RLIKE, token.IN:
		return COMPARE
	case token.BIT_OR:
		return BITOR_PREC
	case token.BIT_AND:
		return BITAND_PREC
	case token.SHL, token.SHR:
		return SHIFT_PREC
	case token.PLUS, token.MINUS:
		return ADD_PREC
	case token.ASTERISK, token.SLASH, token.PERCENT, token.DIV, token.MOD:
		return MUL_PREC
	case token.CARET:
		return BITXOR_PREC
	case token.COLLATE:
		return HIGHEST
	default:
		return LOWEST
	}
}

// precedenceForCurrent returns the precedence for the current token. Words
// that only act as operators in front of a partner word look one ahead.
func (p *Parser) precedenceForCurrent() int {
	switch p.current.Token {
	case token.NOT:
		switch p.peek.Token {
		case token.BETWEEN:
			return BETWEEN_PREC
		case token.IN, token.LIKE, token.REGEXP, token.RLIKE:
			return COMPARE
		}
		return LOWEST
	case token.MEMBER:
		if p.peekIs(token.OF) {
			return COMPARE
		}
		return LOWEST
	case token.SOUNDS:
		if p.peekIs(token.LIKE) {
			return COMPARE
		}
		return LOWEST
	}
	return p.precedence(p.current.Token)
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefixExpression()
	return p.parseInfixLoop(left, precedence)
}

func (p *Parser) parseInfixLoop(left ast.Expression, precedence int) ast.Expression {
	for precedence < p.precedenceForCurrent() {
		left = p.parseInfixExpression(left)
	}
	return left
}

// parseExpressionList parses a comma separated list of at least one expression.
func (p *Parser) parseExpressionList() []ast.Expression {
	exprs := []ast.Expression{p.parseExpression(LOWEST)}
	for p.accept(token.COMMA) {
		exprs = append(exprs, p.parseExpression(LOWEST))
	}
	return exprs
}

// parseParenExpressionList parses ( expr, ... ), allowing an empty list.
func (p *Parser) parseParenExpressionList() []ast.Expression {
	p.expect(token.LPAREN)
	if p.accept(token.RPAREN) {
		return nil
	}
	exprs := p.parseExpressionList()
	p.expect(token.RPAREN)
	return exprs
}

func (p *Parser) isQueryStart() bool {
	return p.currentIs(token.SELECT) || p.currentIs(token.WITH)
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	pos := p.current.Pos

	switch p.current.Token {
	case token.NUMBER:
		return p.parseNumber()
	case token.FRACTION:
		return p.parseFraction()
	case token.HEXNUM, token.BITNUM:
		lit, err := ast.NewLongLiteral(pos, p.current.Value)
		if err != nil {
			p.errorf("%v", err)
		}
		p.nextToken()
		return lit
	case token.STRING, token.QUOTED_IDENT:
		return p.parseString()
	case token.NULL:
		p.nextToken()
		return &ast.NullLiteral{Position: pos}
	case token.TRUE, token.FALSE:
		value := p.currentIs(token.TRUE)
		p.nextToken()
		return &ast.BooleanLiteral{Position: pos, Value: value}
	case token.QUESTION:
		p.nextToken()
		param := &ast.Parameter{Position: pos, Index: p.params}
		p.params++
		return param
	case token.SESSION_VAR, token.SYSTEM_VAR:
		v := &ast.VariableReference{Position: pos, Name: p.current.Value, System: p.currentIs(token.SYSTEM_VAR)}
		p.nextToken()
		return v
	case token.LPAREN:
		return p.parseParenExpression()
	case token.MINUS, token.PLUS:
		op := ast.UnaryMinus
		if p.currentIs(token.PLUS) {
			op = ast.UnaryPlus
		}
		p.nextToken()
		return &ast.ArithmeticUnary{Position: pos, Op: op, Value: p.parseExpression(UNARY)}
	case token.TILDE:
		p.nextToken()
		return &ast.ArithmeticUnary{Position: pos, Op: ast.UnaryBitNot, Value: p.parseExpression(BITNOT_PREC)}
	case token.BANG:
		p.nextToken()
		return &ast.Not{Position: pos, Value: p.parseExpression(BANG_PREC)}
	case token.NOT:
		p.nextToken()
		return &ast.Not{Position: pos, Value: p.parseExpression(NOT_PREC)}
	case token.EXISTS:
		p.nextToken()
		return &ast.Exists{Position: pos, Subquery: p.parseSubquery()}
	case token.CASE:
		return p.parseCase()
	case token.INTERVAL:
		return p.parseInterval()
	case token.BINARY:
		p.nextToken()
		return &ast.Cast{
			Position: pos,
			Value:    p.parseExpression(UNARY),
			Type:     ast.NewFieldType(pos, ast.TypeBinary, "BINARY"),
		}
	case token.ROW:
		p.nextToken()
		return &ast.ListExpression{Position: pos, Row: true, Values: p.parseParenExpressionList()}
	case token.DEFAULT:
		if p.peekIs(token.LPAREN) {
			return p.parseKeywordCall()
		}
		p.nextToken()
		return &ast.DefaultValue{Position: pos}
	case token.MATCH:
		return p.parseMatch()
	case token.CURRENT_DATE, token.CURRENT_TIME, token.CURRENT_TIMESTAMP, token.LOCALTIME, token.LOCALTIMESTAMP:
		return p.parseCurrentTime()
	case token.CONVERT:
		return p.parseConvert()
	case token.DATE, token.TIME, token.TIMESTAMP:
		if p.peekIs(token.STRING) {
			return p.parseTypedLiteral()
		}
	}

	if p.peekIs(token.LPAREN) {
		if fn := p.parseBuiltinCall(); fn != nil {
			return fn
		}
	}
	if p.isIdentifier() {
		return p.parseNameExpression()
	}
	p.unexpected("expected expression")
	return nil
}

// parseNumber parses a decimal integer. Values past the unsigned 64-bit
// range become a DoubleLiteral.
func (p *Parser) parseNumber() ast.Expression {
	pos, text := p.current.Pos, p.current.Value
	lit, err := ast.NewLongLiteral(pos, text)
	if err == nil {
		p.nextToken()
		return lit
	}
	f, ferr := strconv.ParseFloat(text, 64)
	if ferr != nil {
		p.errorf("%v", err)
	}
	p.nextToken()
	return &ast.DoubleLiteral{Position: pos, Value: f, Text: text}
}

func (p *Parser) parseFraction() ast.Expression {
	pos, text := p.current.Pos, p.current.Value
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.errorf("invalid number %s", text)
	}
	p.nextToken()
	return &ast.DoubleLiteral{Position: pos, Value: f, Text: text}
}

// parseString parses a string literal. Adjacent string literals are
// concatenated.
func (p *Parser) parseString() ast.Expression {
	lit := &ast.StringLiteral{Position: p.current.Pos, Value: p.current.Value}
	p.nextToken()
	if p.currentIs(token.STRING) {
		var sb strings.Builder
		sb.WriteString(lit.Value)
		for p.currentIs(token.STRING) {
			sb.WriteString(p.current.Value)
			p.nextToken()
		}
		lit.Value = sb.String()
	}
	return lit
}

func (p *Parser) parseTypedLiteral() ast.Expression {
	pos, tok := p.current.Pos, p.current.Token
	p.nextToken()
	value := p.current.Value
	p.nextToken()
	switch tok {
	case token.DATE:
		return &ast.DateLiteral{Position: pos, Value: value}
	case token.TIME:
		return &ast.TimeLiteral{Position: pos, Value: value}
	}
	return &ast.TimestampLiteral{Position: pos, Value: value}
}

func (p *Parser) parseParenExpression() ast.Expression {
	pos := p.current.Pos
	p.expect(token.LPAREN)
	if p.isQueryStart() {
		q := p.parseQuery()
		p.expect(token.RPAREN)
		return &ast.Subquery{Position: pos, Query: q}
	}
	exprs := p.parseExpressionList()
	p.expect(token.RPAREN)
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &ast.ListExpression{Position: pos, Values: exprs}
}

// parseSubquery parses ( query ).
func (p *Parser) parseSubquery() *ast.Subquery {
	pos := p.current.Pos
	p.expect(token.LPAREN)
	if !p.isQueryStart() {
		p.unexpected("expected subquery")
	}
	q := p.parseQuery()
	p.expect(token.RPAREN)
	return &ast.Subquery{Position: pos, Query: q}
}

func (p *Parser) parseNameExpression() ast.Expression {
	name := p.parseQualifiedName("expression")
	if p.currentIs(token.LPAREN) {
		return p.parseFunctionCall(name)
	}
	return &ast.QualifiedNameReference{Position: name.Position, Name: name}
}

func (p *Parser) parseCase() ast.Expression {
	pos := p.current.Pos
	p.expect(token.CASE)

	var operand ast.Expression
	if !p.currentIs(token.WHEN) {
		operand = p.parseExpression(LOWEST)
	}

	var whens []*ast.WhenClause
	for p.currentIs(token.WHEN) {
		when := &ast.WhenClause{Position: p.current.Pos}
		p.nextToken()
		when.Condition = p.parseExpression(LOWEST)
		p.expect(token.THEN)
		when.Result = p.parseExpression(LOWEST)
		whens = append(whens, when)
	}
	if len(whens) == 0 {
		p.unexpected("expected WHEN")
	}

	var elseExpr ast.Expression
	if p.accept(token.ELSE) {
		elseExpr = p.parseExpression(LOWEST)
	}
	p.expect(token.END)

	if operand != nil {
		return &ast.SimpleCase{Position: pos, Operand: operand, Whens: whens, Else: elseExpr}
	}
	return &ast.SearchedCase{Position: pos, Whens: whens, Else: elseExpr}
}

var intervalUnits = map[token.Token]ast.IntervalUnit{
	token.MICROSECOND:        "MICROSECOND",
	token.SECOND:             "SECOND",
	token.MINUTE:             "MINUTE",
	token.HOUR:               "HOUR",
	token.DAY:                "DAY",
	token.WEEK:               "WEEK",
	token.MONTH:              "MONTH",
	token.QUARTER:            "QUARTER",
	token.YEAR:               "YEAR",
	token.SECOND_MICROSECOND: "SECOND_MICROSECOND",
	token.MINUTE_MICROSECOND: "MINUTE_MICROSECOND",
	token.MINUTE_SECOND:      "MINUTE_SECOND",
	token.HOUR_MICROSECOND:   "HOUR_MICROSECOND",
	token.HOUR_SECOND:        "HOUR_SECOND",
	token.HOUR_MINUTE:        "HOUR_MINUTE",
	token.DAY_MICROSECOND:    "DAY_MICROSECOND",
	token.DAY_SECOND:         "DAY_SECOND",
	token.DAY_MINUTE:         "DAY_MINUTE",
	token.DAY_HOUR:           "DAY_HOUR",
	token.YEAR_MONTH:         "YEAR_MONTH",
	token.SQL_TSI_SECOND:     "SECOND",
	token.SQL_TSI_MINUTE:     "MINUTE",
	token.SQL_TSI_HOUR:       "HOUR",
	token.SQL_TSI_DAY:        "DAY",
	token.SQL_TSI_WEEK:       "WEEK",
	token.SQL_TSI_MONTH:      "MONTH",
	token.SQL_TSI_QUARTER:    "QUARTER",
	token.SQL_TSI_YEAR:       "YEAR",
}

func (p *Parser) parseInterval() ast.Expression {
	pos := p.current.Pos
	p.expect(token.INTERVAL)
	value := p.parseExpression(LOWEST)
	unit, ok := intervalUnits[p.current.Token]
	if !ok {
		p.unexpected("expected interval unit")
	}
	p.nextToken()
	return &ast.IntervalLiteral{Position: pos, Value: value, Unit: unit}
}

var comparisonOps = map[token.Token]ast.ComparisonOp{
	token.EQ:           ast.CmpEqual,
	token.NEQ:          ast.CmpNotEqual,
	token.LT:           ast.CmpLess,
	token.LTE:          ast.CmpLessOrEqual,
	token.GT:           ast.CmpGreater,
	token.GTE:          ast.CmpGreaterOrEqual,
	token.NULL_SAFE_EQ: ast.CmpNullSafeEqual,
}

var arithmeticOps = map[token.Token]ast.ArithmeticOp{
	token.PLUS:     ast.OpAdd,
	token.MINUS:    ast.OpSubtract,
	token.ASTERISK: ast.OpMultiply,
	token.SLASH:    ast.OpDivide,
	token.PERCENT:  ast.OpModulus,
	token.DIV:      ast.OpIntDivide,
	token.MOD:      ast.OpMod,
	token.BIT_OR:   ast.OpBitOr,
	token.BIT_AND:  ast.OpBitAnd,
	token.CARET:    ast.OpBitXor,
	token.SHL:      ast.OpShiftLeft,
	token.SHR:      ast.OpShiftRight,
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	pos := p.current.Pos
	tok := p.current.Token

	if op, ok := arithmeticOps[tok]; ok {
		prec := p.precedence(tok)
		p.nextToken()
		return &ast.ArithmeticBinary{Position: pos, Op: op, Left: left, Right: p.parseExpression(prec)}
	}
	if op, ok := comparisonOps[tok]; ok {
		return p.parseComparison(left, op)
	}

	switch tok {
	case token.ASSIGN:
		p.nextToken()
		// Right associative
		return &ast.AssignmentExpression{Position: pos, Target: left, Value: p.parseExpression(ASSIGN_PREC - 1)}
	case token.OR, token.PIPES:
		p.nextToken()
		return &ast.LogicalBinary{Position: pos, Op: ast.LogicalOr, Left: left, Right: p.parseExpression(OR_PREC)}
	case token.XOR:
		p.nextToken()
		return &ast.LogicalBinary{Position: pos, Op: ast.LogicalXor, Left: left, Right: p.parseExpression(XOR_PREC)}
	case token.AND, token.ANDAND:
		p.nextToken()
		return &ast.LogicalBinary{Position: pos, Op: ast.LogicalAnd, Left: left, Right: p.parseExpression(AND_PREC)}
	case token.NOT:
		p.nextToken()
		return p.parseNegatable(left, pos, true)
	case token.BETWEEN, token.IN, token.LIKE, token.REGEXP, token.RLIKE:
		return p.parseNegatable(left, pos, false)
	case token.IS:
		return p.parseIs(left)
	case token.MEMBER:
		p.nextToken()
		p.expect(token.OF)
		p.expect(token.LPAREN)
		array := p.parseExpression(LOWEST)
		p.expect(token.RPAREN)
		return &ast.MemberOf{Position: pos, Value: left, Array: array}
	case token.SOUNDS:
		p.nextToken()
		p.expect(token.LIKE)
		return &ast.SoundsLike{Position: pos, Left: left, Right: p.parseExpression(COMPARE)}
	case token.COLLATE:
		p.nextToken()
		return &ast.Collate{Position: pos, Value: left, Collation: p.parseCharsetName("collation")}
	}
	p.unexpected("expected operator")
	return nil
}

// parseNegatable parses the operators that accept a NOT prefix. The NOT,
// if any, has already been consumed.
func (p *Parser) parseNegatable(left ast.Expression, pos token.Position, not bool) ast.Expression {
	switch p.current.Token {
	case token.BETWEEN:
		p.nextToken()
		lo := p.parseExpression(COMPARE)
		p.expect(token.AND)
		hi := p.parseExpression(COMPARE)
		return &ast.Between{Position: pos, Not: not, Value: left, Min: lo, Max: hi}
	case token.IN:
		p.nextToken()
		return &ast.In{Position: pos, Not: not, Value: left, List: p.parseInList()}
	case token.LIKE:
		p.nextToken()
		like := &ast.Like{Position: pos, Not: not, Value: left, Pattern: p.parseExpression(COMPARE)}
		if p.accept(token.ESCAPE) {
			like.Escape = p.parseExpression(COMPARE)
		}
		return like
	case token.REGEXP, token.RLIKE:
		p.nextToken()
		return &ast.Regexp{Position: pos, Not: not, Value: left, Pattern: p.parseExpression(COMPARE)}
	}
	p.unexpected("expected BETWEEN, IN, LIKE or REGEXP after NOT")
	return nil
}

func (p *Parser) parseInList() ast.Expression {
	pos := p.current.Pos
	if p.peekIs(token.SELECT) || p.peekIs(token.WITH) {
		return p.parseSubquery()
	}
	p.expect(token.LPAREN)
	values := p.parseExpressionList()
	p.expect(token.RPAREN)
	return &ast.InList{Position: pos, Values: values}
}

func (p *Parser) parseComparison(left ast.Expression, op ast.ComparisonOp) ast.Expression {
	pos := p.current.Pos
	p.nextToken()

	if (p.currentIs(token.ALL) || p.currentIs(token.ANY) || p.currentIs(token.SOME)) && p.peekIs(token.LPAREN) {
		quantifier := p.current.Token.String()
		p.nextToken()
		return &ast.QuantifiedComparison{
			Position:   pos,
			Op:         op,
			Quantifier: quantifier,
			Left:       left,
			Subquery:   p.parseSubquery(),
		}
	}
	return &ast.Comparison{Position: pos, Op: op, Left: left, Right: p.parseExpression(COMPARE)}
}

func (p *Parser) parseIs(left ast.Expression) ast.Expression {
	pos := p.current.Pos
	p.expect(token.IS)
	not := p.accept(token.NOT)

	switch p.current.Token {
	case token.NULL:
		p.nextToken()
		return &ast.IsNull{Position: pos, Not: not, Value: left}
	case token.TRUE, token.FALSE, token.UNKNOWN:
		truth := ast.TruthValue(p.current.Token.String())
		p.nextToken()
		return &ast.IsBoolean{Position: pos, Not: not, Value: left, Truth: truth}
	}
	p.unexpected("expected NULL, TRUE, FALSE or UNKNOWN")
	return nil
}

// parseCharsetName parses a character set or collation name.
func (p *Parser) parseCharsetName(what string) string {
	if p.currentIs(token.STRING) || p.currentIs(token.BINARY) {
		name := p.current.Value
		p.nextToken()
		return name
	}
	return p.parseIdentifier(what)
}
