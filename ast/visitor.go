package ast

// Visitor is the fallback of every visit. A visitor may additionally
// implement any of the per-kind methods, such as
//
//	VisitLongLiteral(*LongLiteral, any) any
//
// or the family methods declared below. Accept calls the most specific
// method available: the concrete kind first, then its family chain
// (for example Literal, then Expression), and finally VisitNode.
type Visitor interface {
	VisitNode(n Node, ctx any) any
}

// StatementVisitor receives statements without a per-kind method.
type StatementVisitor interface {
	VisitStatement(n Statement, ctx any) any
}

// RelationVisitor receives relations without a more specific method.
type RelationVisitor interface {
	VisitRelation(n Relation, ctx any) any
}

// QueryBodyVisitor receives query bodies without a more specific method.
type QueryBodyVisitor interface {
	VisitQueryBody(n QueryBody, ctx any) any
}

// SetOperationVisitor receives UNION, INTERSECT and EXCEPT nodes without a
// per-kind method.
type SetOperationVisitor interface {
	VisitSetOperation(n SetOperation, ctx any) any
}

// JoinCriteriaVisitor receives join criteria without a per-kind method.
type JoinCriteriaVisitor interface {
	VisitJoinCriteria(n JoinCriteria, ctx any) any
}

// SelectItemVisitor receives select items without a per-kind method.
type SelectItemVisitor interface {
	VisitSelectItem(n SelectItem, ctx any) any
}

// ExpressionVisitor receives expressions without a more specific method.
type ExpressionVisitor interface {
	VisitExpression(n Expression, ctx any) any
}

// LiteralVisitor receives literals without a per-kind method.
type LiteralVisitor interface {
	VisitLiteral(n Literal, ctx any) any
}

func visitStatement(v Visitor, n Statement, ctx any) any {
	if x, ok := v.(StatementVisitor); ok {
		return x.VisitStatement(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func visitRelation(v Visitor, n Relation, ctx any) any {
	if x, ok := v.(RelationVisitor); ok {
		return x.VisitRelation(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func visitQueryBody(v Visitor, n QueryBody, ctx any) any {
	if x, ok := v.(QueryBodyVisitor); ok {
		return x.VisitQueryBody(n, ctx)
	}
	return visitRelation(v, n, ctx)
}

func visitSetOperation(v Visitor, n SetOperation, ctx any) any {
	if x, ok := v.(SetOperationVisitor); ok {
		return x.VisitSetOperation(n, ctx)
	}
	return visitQueryBody(v, n, ctx)
}

func visitJoinCriteria(v Visitor, n JoinCriteria, ctx any) any {
	if x, ok := v.(JoinCriteriaVisitor); ok {
		return x.VisitJoinCriteria(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func visitSelectItem(v Visitor, n SelectItem, ctx any) any {
	if x, ok := v.(SelectItemVisitor); ok {
		return x.VisitSelectItem(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func visitExpression(v Visitor, n Expression, ctx any) any {
	if x, ok := v.(ExpressionVisitor); ok {
		return x.VisitExpression(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func visitLiteral(v Visitor, n Literal, ctx any) any {
	if x, ok := v.(LiteralVisitor); ok {
		return x.VisitLiteral(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Statements

func (n *Query) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitQuery(*Query, any) any }); ok {
		return x.VisitQuery(n, ctx)
	}
	return visitStatement(v, n, ctx)
}

func (n *Insert) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitInsert(*Insert, any) any }); ok {
		return x.VisitInsert(n, ctx)
	}
	return visitStatement(v, n, ctx)
}

func (n *Update) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitUpdate(*Update, any) any }); ok {
		return x.VisitUpdate(n, ctx)
	}
	return visitStatement(v, n, ctx)
}

func (n *Delete) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitDelete(*Delete, any) any }); ok {
		return x.VisitDelete(n, ctx)
	}
	return visitStatement(v, n, ctx)
}

func (n *Commit) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitCommit(*Commit, any) any }); ok {
		return x.VisitCommit(n, ctx)
	}
	return visitStatement(v, n, ctx)
}

func (n *CreateTable) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitCreateTable(*CreateTable, any) any }); ok {
		return x.VisitCreateTable(n, ctx)
	}
	return visitStatement(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Query bodies

func (n *QuerySpecification) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitQuerySpecification(*QuerySpecification, any) any }); ok {
		return x.VisitQuerySpecification(n, ctx)
	}
	return visitQueryBody(v, n, ctx)
}

func (n *TableSubquery) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitTableSubquery(*TableSubquery, any) any }); ok {
		return x.VisitTableSubquery(n, ctx)
	}
	return visitQueryBody(v, n, ctx)
}

func (n *Values) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitValues(*Values, any) any }); ok {
		return x.VisitValues(n, ctx)
	}
	return visitQueryBody(v, n, ctx)
}

func (n *Table) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitTable(*Table, any) any }); ok {
		return x.VisitTable(n, ctx)
	}
	return visitQueryBody(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Set operations

func (n *Union) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitUnion(*Union, any) any }); ok {
		return x.VisitUnion(n, ctx)
	}
	return visitSetOperation(v, n, ctx)
}

func (n *Intersect) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIntersect(*Intersect, any) any }); ok {
		return x.VisitIntersect(n, ctx)
	}
	return visitSetOperation(v, n, ctx)
}

func (n *Except) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitExcept(*Except, any) any }); ok {
		return x.VisitExcept(n, ctx)
	}
	return visitSetOperation(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Relations

func (n *AliasedRelation) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitAliasedRelation(*AliasedRelation, any) any }); ok {
		return x.VisitAliasedRelation(n, ctx)
	}
	return visitRelation(v, n, ctx)
}

func (n *Join) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitJoin(*Join, any) any }); ok {
		return x.VisitJoin(n, ctx)
	}
	return visitRelation(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Join criteria

func (n *JoinOn) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitJoinOn(*JoinOn, any) any }); ok {
		return x.VisitJoinOn(n, ctx)
	}
	return visitJoinCriteria(v, n, ctx)
}

func (n *JoinUsing) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitJoinUsing(*JoinUsing, any) any }); ok {
		return x.VisitJoinUsing(n, ctx)
	}
	return visitJoinCriteria(v, n, ctx)
}

func (n *NaturalJoin) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitNaturalJoin(*NaturalJoin, any) any }); ok {
		return x.VisitNaturalJoin(n, ctx)
	}
	return visitJoinCriteria(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Select items

func (n *AllColumns) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitAllColumns(*AllColumns, any) any }); ok {
		return x.VisitAllColumns(n, ctx)
	}
	return visitSelectItem(v, n, ctx)
}

func (n *SingleColumn) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSingleColumn(*SingleColumn, any) any }); ok {
		return x.VisitSingleColumn(n, ctx)
	}
	return visitSelectItem(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Literals

func (n *NullLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitNullLiteral(*NullLiteral, any) any }); ok {
		return x.VisitNullLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *BooleanLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitBooleanLiteral(*BooleanLiteral, any) any }); ok {
		return x.VisitBooleanLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *LongLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitLongLiteral(*LongLiteral, any) any }); ok {
		return x.VisitLongLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *DoubleLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitDoubleLiteral(*DoubleLiteral, any) any }); ok {
		return x.VisitDoubleLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *StringLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitStringLiteral(*StringLiteral, any) any }); ok {
		return x.VisitStringLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *DateLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitDateLiteral(*DateLiteral, any) any }); ok {
		return x.VisitDateLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *TimeLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitTimeLiteral(*TimeLiteral, any) any }); ok {
		return x.VisitTimeLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *TimestampLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitTimestampLiteral(*TimestampLiteral, any) any }); ok {
		return x.VisitTimestampLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

func (n *IntervalLiteral) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIntervalLiteral(*IntervalLiteral, any) any }); ok {
		return x.VisitIntervalLiteral(n, ctx)
	}
	return visitLiteral(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Expressions

func (n *ArithmeticBinary) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitArithmeticBinary(*ArithmeticBinary, any) any }); ok {
		return x.VisitArithmeticBinary(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *ArithmeticUnary) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitArithmeticUnary(*ArithmeticUnary, any) any }); ok {
		return x.VisitArithmeticUnary(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *LogicalBinary) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitLogicalBinary(*LogicalBinary, any) any }); ok {
		return x.VisitLogicalBinary(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Not) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitNot(*Not, any) any }); ok {
		return x.VisitNot(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Comparison) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitComparison(*Comparison, any) any }); ok {
		return x.VisitComparison(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *QuantifiedComparison) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitQuantifiedComparison(*QuantifiedComparison, any) any }); ok {
		return x.VisitQuantifiedComparison(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Between) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitBetween(*Between, any) any }); ok {
		return x.VisitBetween(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *In) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIn(*In, any) any }); ok {
		return x.VisitIn(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *InList) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitInList(*InList, any) any }); ok {
		return x.VisitInList(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Like) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitLike(*Like, any) any }); ok {
		return x.VisitLike(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Regexp) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitRegexp(*Regexp, any) any }); ok {
		return x.VisitRegexp(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *SoundsLike) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSoundsLike(*SoundsLike, any) any }); ok {
		return x.VisitSoundsLike(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *IsNull) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIsNull(*IsNull, any) any }); ok {
		return x.VisitIsNull(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *IsBoolean) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIsBoolean(*IsBoolean, any) any }); ok {
		return x.VisitIsBoolean(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *MemberOf) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitMemberOf(*MemberOf, any) any }); ok {
		return x.VisitMemberOf(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Exists) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitExists(*Exists, any) any }); ok {
		return x.VisitExists(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *FunctionCall) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitFunctionCall(*FunctionCall, any) any }); ok {
		return x.VisitFunctionCall(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *AggregateFunction) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitAggregateFunction(*AggregateFunction, any) any }); ok {
		return x.VisitAggregateFunction(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *GroupConcat) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitGroupConcat(*GroupConcat, any) any }); ok {
		return x.VisitGroupConcat(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Cast) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitCast(*Cast, any) any }); ok {
		return x.VisitCast(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Convert) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitConvert(*Convert, any) any }); ok {
		return x.VisitConvert(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Trim) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitTrim(*Trim, any) any }); ok {
		return x.VisitTrim(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *WindowFunction) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitWindowFunction(*WindowFunction, any) any }); ok {
		return x.VisitWindowFunction(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *MatchAgainst) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitMatchAgainst(*MatchAgainst, any) any }); ok {
		return x.VisitMatchAgainst(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *CurrentTime) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitCurrentTime(*CurrentTime, any) any }); ok {
		return x.VisitCurrentTime(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *SimpleCase) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSimpleCase(*SimpleCase, any) any }); ok {
		return x.VisitSimpleCase(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *SearchedCase) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSearchedCase(*SearchedCase, any) any }); ok {
		return x.VisitSearchedCase(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Subquery) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSubquery(*Subquery, any) any }); ok {
		return x.VisitSubquery(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *QualifiedNameReference) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitQualifiedNameReference(*QualifiedNameReference, any) any }); ok {
		return x.VisitQualifiedNameReference(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *ListExpression) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitListExpression(*ListExpression, any) any }); ok {
		return x.VisitListExpression(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Parameter) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitParameter(*Parameter, any) any }); ok {
		return x.VisitParameter(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *VariableReference) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitVariableReference(*VariableReference, any) any }); ok {
		return x.VisitVariableReference(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *AssignmentExpression) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitAssignmentExpression(*AssignmentExpression, any) any }); ok {
		return x.VisitAssignmentExpression(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *DefaultValue) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitDefaultValue(*DefaultValue, any) any }); ok {
		return x.VisitDefaultValue(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

func (n *Collate) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitCollate(*Collate, any) any }); ok {
		return x.VisitCollate(n, ctx)
	}
	return visitExpression(v, n, ctx)
}

// -----------------------------------------------------------------------------
// Clauses and other nodes

func (n *ColumnDefinition) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitColumnDefinition(*ColumnDefinition, any) any }); ok {
		return x.VisitColumnDefinition(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *IndexDefinition) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIndexDefinition(*IndexDefinition, any) any }); ok {
		return x.VisitIndexDefinition(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *TableOption) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitTableOption(*TableOption, any) any }); ok {
		return x.VisitTableOption(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *Assignment) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitAssignment(*Assignment, any) any }); ok {
		return x.VisitAssignment(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *Select) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSelect(*Select, any) any }); ok {
		return x.VisitSelect(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *GroupBy) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitGroupBy(*GroupBy, any) any }); ok {
		return x.VisitGroupBy(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *Limit) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitLimit(*Limit, any) any }); ok {
		return x.VisitLimit(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *LockClause) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitLockClause(*LockClause, any) any }); ok {
		return x.VisitLockClause(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *SortItem) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitSortItem(*SortItem, any) any }); ok {
		return x.VisitSortItem(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *With) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitWith(*With, any) any }); ok {
		return x.VisitWith(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *WithQuery) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitWithQuery(*WithQuery, any) any }); ok {
		return x.VisitWithQuery(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *IndexHint) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitIndexHint(*IndexHint, any) any }); ok {
		return x.VisitIndexHint(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *WindowDefinition) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitWindowDefinition(*WindowDefinition, any) any }); ok {
		return x.VisitWindowDefinition(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *WindowSpec) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitWindowSpec(*WindowSpec, any) any }); ok {
		return x.VisitWindowSpec(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *FrameClause) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitFrameClause(*FrameClause, any) any }); ok {
		return x.VisitFrameClause(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *FrameBound) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitFrameBound(*FrameBound, any) any }); ok {
		return x.VisitFrameBound(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *QualifiedName) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitQualifiedName(*QualifiedName, any) any }); ok {
		return x.VisitQualifiedName(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *WhenClause) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitWhenClause(*WhenClause, any) any }); ok {
		return x.VisitWhenClause(n, ctx)
	}
	return v.VisitNode(n, ctx)
}

func (n *FieldType) Accept(v Visitor, ctx any) any {
	if x, ok := v.(interface{ VisitFieldType(*FieldType, any) any }); ok {
		return x.VisitFieldType(n, ctx)
	}
	return v.VisitNode(n, ctx)
}
