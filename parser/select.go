package parser

import (
	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/token"
)

// parseQuery parses [WITH ...] body [ORDER BY ...] [LIMIT ...] [locking].
func (p *Parser) parseQuery() *ast.Query {
	p.enter("query")
	q := &ast.Query{Position: p.current.Pos}
	if p.currentIs(token.WITH) {
		q.With = p.parseWith()
	}
	q.Body = p.parseQueryBody()
	attachSuffix(q, p.parseQuerySuffix())
	return q
}

// querySuffix holds the clauses that may trail a query body.
type querySuffix struct {
	orderBy []*ast.SortItem
	limit   *ast.Limit
	lock    *ast.LockClause
}

func (p *Parser) parseQuerySuffix() querySuffix {
	var s querySuffix
	if p.accept(token.ORDER) {
		p.expect(token.BY)
		s.orderBy = p.parseSortItems()
	}
	if p.currentIs(token.LIMIT) {
		s.limit = p.parseLimit()
	}
	s.lock = p.parseLockClause()
	return s
}

// parseQueryBody parses set operations. INTERSECT binds tighter than UNION
// and EXCEPT; all of them associate to the left.
func (p *Parser) parseQueryBody() ast.QueryBody {
	left := p.parseQueryTerm()
	for p.currentIs(token.UNION) || p.currentIs(token.EXCEPT) {
		pos, tok := p.current.Pos, p.current.Token
		p.nextToken()
		all, distinct := p.parseSetQuantifier()
		right := p.parseQueryTerm()
		if tok == token.UNION {
			left = &ast.Union{Position: pos, Left: left, Right: right, All: all, Distinct: distinct}
		} else {
			left = &ast.Except{Position: pos, Left: left, Right: right, All: all, Distinct: distinct}
		}
	}
	return left
}

func (p *Parser) parseQueryTerm() ast.QueryBody {
	left := p.parseQueryPrimary()
	for p.currentIs(token.INTERSECT) {
		pos := p.current.Pos
		p.nextToken()
		all, distinct := p.parseSetQuantifier()
		right := p.parseQueryPrimary()
		left = &ast.Intersect{Position: pos, Left: left, Right: right, All: all, Distinct: distinct}
	}
	return left
}

func (p *Parser) parseSetQuantifier() (all, distinct bool) {
	switch {
	case p.accept(token.ALL):
		return true, false
	case p.accept(token.DISTINCT):
		return false, true
	}
	return false, false
}

func (p *Parser) parseQueryPrimary() ast.QueryBody {
	pos := p.current.Pos
	switch p.current.Token {
	case token.SELECT:
		return p.parseQuerySpecification()
	case token.TABLE:
		p.nextToken()
		return &ast.Table{Position: pos, Name: p.parseQualifiedName("table name")}
	case token.VALUES:
		return p.parseValues()
	case token.LPAREN:
		p.nextToken()
		q := p.parseQuery()
		p.expect(token.RPAREN)
		return &ast.TableSubquery{Position: pos, Query: q}
	}
	p.unexpected("expected SELECT, TABLE, VALUES or (")
	return nil
}

// parseValues parses VALUES row, ... where a row is ROW(...) or (...).
func (p *Parser) parseValues() *ast.Values {
	values := &ast.Values{Position: p.current.Pos}
	p.expect(token.VALUES)
	for {
		p.accept(token.ROW)
		values.Rows = append(values.Rows, p.parseParenExpressionList())
		if !p.accept(token.COMMA) {
			break
		}
	}
	return values
}

func (p *Parser) parseQuerySpecification() *ast.QuerySpecification {
	p.enter("select")
	spec := &ast.QuerySpecification{Position: p.current.Pos}
	sel := &ast.Select{Position: p.current.Pos}
	p.expect(token.SELECT)

	switch {
	case p.accept(token.ALL):
	case p.accept(token.DISTINCT), p.accept(token.DISTINCTROW):
		sel.Distinct = true
	}
	// The select list may be empty in front of FROM.
	if !p.currentIs(token.FROM) {
		sel.Items = p.parseSelectItems()
	}
	spec.Select = sel

	if p.accept(token.FROM) {
		spec.From = p.parseFrom()
	}
	if p.accept(token.WHERE) {
		spec.Where = p.parseExpression(LOWEST)
	}
	if p.currentIs(token.GROUP) {
		spec.GroupBy = p.parseGroupBy()
	}
	if p.accept(token.HAVING) {
		spec.Having = p.parseExpression(LOWEST)
	}
	if p.currentIs(token.WINDOW) {
		spec.Windows = p.parseWindowClause()
	}
	if p.accept(token.ORDER) {
		p.expect(token.BY)
		spec.OrderBy = p.parseSortItems()
	}
	if p.currentIs(token.LIMIT) {
		spec.Limit = p.parseLimit()
	}
	spec.Lock = p.parseLockClause()
	return spec
}

func (p *Parser) parseSelectItems() []ast.SelectItem {
	var items []ast.SelectItem
	for {
		items = append(items, p.parseSelectItem())
		if !p.accept(token.COMMA) {
			return items
		}
	}
}

func (p *Parser) parseSelectItem() ast.SelectItem {
	pos := p.current.Pos
	if p.accept(token.ASTERISK) {
		return &ast.AllColumns{Position: pos}
	}

	var expr ast.Expression
	if p.isIdentifier() && p.peekIs(token.DOT) {
		// Dotted names may end in * to select all columns of a table.
		name := &ast.QualifiedName{Position: pos, Parts: []string{p.current.Value}}
		p.nextToken()
		for p.accept(token.DOT) {
			if p.accept(token.ASTERISK) {
				return &ast.AllColumns{Position: pos, Prefix: name}
			}
			p.checkNameLength(name.Parts)
			name.Parts = append(name.Parts, p.parseNamePart())
		}
		var left ast.Expression
		if p.currentIs(token.LPAREN) {
			left = p.parseFunctionCall(name)
		} else {
			left = &ast.QualifiedNameReference{Position: pos, Name: name}
		}
		expr = p.parseInfixLoop(left, LOWEST)
	} else {
		expr = p.parseExpression(LOWEST)
	}
	return &ast.SingleColumn{Position: pos, Expr: expr, Alias: p.parseSelectAlias()}
}

// parseFrom parses the FROM list. Comma separated entries fold left to
// right into implicit joins, which bind looser than explicit JOINs.
func (p *Parser) parseFrom() ast.Relation {
	if p.accept(token.DUAL) {
		return nil
	}
	return p.parseRelationList()
}

func (p *Parser) parseRelationList() ast.Relation {
	rel := p.parseJoinedTable()
	for p.accept(token.COMMA) {
		right := p.parseJoinedTable()
		rel = &ast.Join{Position: rel.Pos(), Type: ast.JoinImplicit, Left: rel, Right: right}
	}
	return rel
}

func (p *Parser) parseJoinedTable() ast.Relation {
	left := p.parseTablePrimary()
	for {
		pos := p.current.Pos
		typ, natural, ok := p.parseJoinType()
		if !ok {
			return left
		}
		join := &ast.Join{Position: left.Pos(), Type: typ, Left: left, Right: p.parseTablePrimary()}
		switch {
		case natural:
			join.Criteria = &ast.NaturalJoin{Position: pos}
		case p.currentIs(token.ON):
			on := &ast.JoinOn{Position: p.current.Pos}
			p.nextToken()
			on.Expr = p.parseExpression(LOWEST)
			join.Criteria = on
		case p.currentIs(token.USING):
			using := &ast.JoinUsing{Position: p.current.Pos}
			p.nextToken()
			using.Columns = p.parseIdentifierList("column name")
			join.Criteria = using
		case typ == ast.JoinLeft || typ == ast.JoinRight || typ == ast.JoinFull:
			p.unexpected("expected ON or USING")
		}
		left = join
	}
}

// parseJoinType consumes a join operator up to and including JOIN.
func (p *Parser) parseJoinType() (typ ast.JoinType, natural, ok bool) {
	switch p.current.Token {
	case token.JOIN:
		p.nextToken()
		return ast.JoinInner, false, true
	case token.INNER:
		p.nextToken()
		p.expect(token.JOIN)
		return ast.JoinInner, false, true
	case token.CROSS:
		p.nextToken()
		p.expect(token.JOIN)
		return ast.JoinCross, false, true
	case token.LEFT, token.RIGHT:
		typ = ast.JoinLeft
		if p.currentIs(token.RIGHT) {
			typ = ast.JoinRight
		}
		p.nextToken()
		p.accept(token.OUTER)
		p.expect(token.JOIN)
		return typ, false, true
	case token.FULL:
		if !p.startsJoin() {
			return "", false, false
		}
		p.nextToken()
		p.accept(token.OUTER)
		p.expect(token.JOIN)
		return ast.JoinFull, false, true
	case token.NATURAL:
		p.nextToken()
		typ = ast.JoinInner
		switch p.current.Token {
		case token.LEFT, token.RIGHT:
			typ = ast.JoinLeft
			if p.currentIs(token.RIGHT) {
				typ = ast.JoinRight
			}
			p.nextToken()
			p.accept(token.OUTER)
		case token.INNER:
			p.nextToken()
		}
		p.expect(token.JOIN)
		return typ, true, true
	}
	return "", false, false
}

func (p *Parser) parseTablePrimary() ast.Relation {
	p.enter("table reference")
	pos := p.current.Pos
	if p.accept(token.LPAREN) {
		if p.isQueryStart() {
			q := p.parseQuery()
			p.expect(token.RPAREN)
			return p.parseRelationAlias(&ast.TableSubquery{Position: pos, Query: q})
		}
		rel := p.parseRelationList()
		p.expect(token.RPAREN)
		return p.parseRelationAlias(rel)
	}

	table := &ast.Table{Position: pos, Name: p.parseQualifiedName("table name")}
	if p.accept(token.PARTITION) {
		table.Partitions = p.parseIdentifierList("partition name")
	}
	alias := p.parseTableAlias()
	table.IndexHints = p.parseIndexHints()
	if alias == "" {
		return table
	}
	return &ast.AliasedRelation{Position: pos, Relation: table, Alias: alias}
}

// parseRelationAlias parses the optional alias of a derived table, with an
// optional column list.
func (p *Parser) parseRelationAlias(rel ast.Relation) ast.Relation {
	alias := p.parseTableAlias()
	if alias == "" {
		return rel
	}
	aliased := &ast.AliasedRelation{Position: rel.Pos(), Relation: rel, Alias: alias}
	if p.currentIs(token.LPAREN) {
		aliased.ColumnNames = p.parseIdentifierList("column name")
	}
	return aliased
}

var indexHintKinds = map[token.Token]ast.IndexHintKind{
	token.USE:    ast.UseIndex,
	token.FORCE:  ast.ForceIndex,
	token.IGNORE: ast.IgnoreIndex,
}

// parseIndexHints parses {USE | FORCE | IGNORE} {INDEX | KEY}
// [FOR {JOIN | ORDER BY | GROUP BY}] (index, ...) entries.
func (p *Parser) parseIndexHints() []*ast.IndexHint {
	var hints []*ast.IndexHint
	for {
		kind, ok := indexHintKinds[p.current.Token]
		if !ok {
			return hints
		}
		hint := &ast.IndexHint{Position: p.current.Pos, Kind: kind}
		p.nextToken()
		if !p.accept(token.INDEX) && !p.accept(token.KEY) {
			p.unexpected("expected INDEX or KEY")
		}
		if p.accept(token.FOR) {
			switch {
			case p.accept(token.JOIN):
				hint.For = "JOIN"
			case p.accept(token.ORDER):
				p.expect(token.BY)
				hint.For = "ORDER BY"
			case p.accept(token.GROUP):
				p.expect(token.BY)
				hint.For = "GROUP BY"
			default:
				p.unexpected("expected JOIN, ORDER BY or GROUP BY")
			}
		}
		p.expect(token.LPAREN)
		for !p.currentIs(token.RPAREN) {
			if p.currentIs(token.PRIMARY) {
				hint.Indexes = append(hint.Indexes, p.current.Value)
				p.nextToken()
			} else {
				hint.Indexes = append(hint.Indexes, p.parseIdentifier("index name"))
			}
			if !p.accept(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
		hints = append(hints, hint)
	}
}

func (p *Parser) parseGroupBy() *ast.GroupBy {
	group := &ast.GroupBy{Position: p.current.Pos}
	p.expect(token.GROUP)
	p.expect(token.BY)
	group.Items = p.parseExpressionList()
	if p.currentIs(token.WITH) && p.peekIs(token.ROLLUP) {
		p.nextToken()
		p.nextToken()
		group.WithRollup = true
	}
	return group
}

// parseWindowClause parses WINDOW name AS (spec), ...
func (p *Parser) parseWindowClause() []*ast.WindowDefinition {
	p.expect(token.WINDOW)
	var defs []*ast.WindowDefinition
	for {
		def := &ast.WindowDefinition{Position: p.current.Pos, Name: p.parseIdentifier("window name")}
		p.expect(token.AS)
		def.Spec = p.parseWindowSpec()
		defs = append(defs, def)
		if !p.accept(token.COMMA) {
			return defs
		}
	}
}

func (p *Parser) parseSortItems() []*ast.SortItem {
	var items []*ast.SortItem
	for {
		item := &ast.SortItem{Position: p.current.Pos, Ordering: ast.Ascending}
		item.Key = p.parseExpression(LOWEST)
		if p.accept(token.DESC) {
			item.Ordering = ast.Descending
		} else {
			p.accept(token.ASC)
		}
		if p.currentIs(token.NULLS) && (p.peekIs(token.FIRST) || p.peekIs(token.LAST)) {
			p.nextToken()
			item.NullOrdering = ast.NullsFirst
			if p.currentIs(token.LAST) {
				item.NullOrdering = ast.NullsLast
			}
			p.nextToken()
		}
		items = append(items, item)
		if !p.accept(token.COMMA) {
			return items
		}
	}
}

// parseLimit parses LIMIT ALL, LIMIT n, LIMIT offset, n and
// LIMIT n OFFSET offset.
func (p *Parser) parseLimit() *ast.Limit {
	limit := &ast.Limit{Position: p.current.Pos}
	p.expect(token.LIMIT)
	if p.accept(token.ALL) {
		limit.All = true
		return limit
	}
	first, firstParam := p.parseLimitValue()
	switch {
	case p.accept(token.COMMA):
		limit.Offset, limit.OffsetParam = first, firstParam
		limit.Count, limit.CountParam = p.parseLimitValue()
	case p.accept(token.OFFSET):
		limit.Count, limit.CountParam = first, firstParam
		limit.Offset, limit.OffsetParam = p.parseLimitValue()
	default:
		limit.Count, limit.CountParam = first, firstParam
	}
	return limit
}

func (p *Parser) parseLimitValue() (uint64, *ast.Parameter) {
	switch p.current.Token {
	case token.NUMBER, token.HEXNUM, token.BITNUM:
		v, err := ast.ParseInteger(p.current.Value)
		if err != nil {
			p.errorf("%v", err)
		}
		p.nextToken()
		return v, nil
	case token.QUESTION:
		param := &ast.Parameter{Position: p.current.Pos, Index: p.params}
		p.params++
		p.nextToken()
		return 0, param
	}
	p.unexpected("expected row count")
	return 0, nil
}

// parseLockClause parses FOR UPDATE, FOR SHARE and LOCK IN SHARE MODE with
// their wait options. It returns nil when no locking clause follows.
func (p *Parser) parseLockClause() *ast.LockClause {
	lock := &ast.LockClause{Position: p.current.Pos, ForUpdate: true}
	switch {
	case p.currentIs(token.FOR) && p.peekIs(token.UPDATE):
		lock.Mode = ast.LockForUpdate
	case p.currentIs(token.FOR) && p.peekIs(token.SHARE):
		lock.Mode = ast.LockShare
	case p.currentIs(token.LOCK):
		p.nextToken()
		p.expect(token.IN)
		p.expect(token.SHARE)
		p.expect(token.MODE)
		lock.Mode = ast.LockShare
		return lock
	default:
		return nil
	}
	p.nextToken()
	p.nextToken()

	switch {
	case p.grammar.isNowait(p.current.Token):
		p.nextToken()
		lock.NowaitOrWait = true
	case p.currentIs(token.WAIT):
		p.nextToken()
		if !p.currentIs(token.NUMBER) {
			p.unexpected("expected wait timeout")
		}
		lit, err := ast.NewLongLiteral(p.current.Pos, p.current.Value)
		if err != nil {
			p.errorf("%v", err)
		}
		p.nextToken()
		lock.NowaitOrWait = true
		lock.Wait = lit
	case p.currentIs(token.SKIP) && p.peekIs(token.LOCKED):
		p.nextToken()
		p.nextToken()
		lock.SkipLocked = true
	}
	return lock
}

func (p *Parser) parseWith() *ast.With {
	with := &ast.With{Position: p.current.Pos}
	p.expect(token.WITH)
	with.Recursive = p.accept(token.RECURSIVE)
	for {
		wq := &ast.WithQuery{Position: p.current.Pos, Name: p.parseIdentifier("query name")}
		if p.currentIs(token.LPAREN) {
			wq.ColumnNames = p.parseIdentifierList("column name")
		}
		p.expect(token.AS)
		p.expect(token.LPAREN)
		wq.Query = p.parseQuery()
		p.expect(token.RPAREN)
		with.Queries = append(with.Queries, wq)
		if !p.accept(token.COMMA) {
			return with
		}
	}
}
