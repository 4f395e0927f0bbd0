package ast

import "github.com/sqlc-dev/obsql/token"

// ArithmeticOp is a binary arithmetic or bitwise operator.
type ArithmeticOp string

const (
	OpAdd        ArithmeticOp = "+"
	OpSubtract   ArithmeticOp = "-"
	OpMultiply   ArithmeticOp = "*"
	OpDivide     ArithmeticOp = "/"
	OpModulus    ArithmeticOp = "%"
	OpIntDivide  ArithmeticOp = "DIV"
	OpMod        ArithmeticOp = "MOD"
	OpBitOr      ArithmeticOp = "|"
	OpBitAnd     ArithmeticOp = "&"
	OpBitXor     ArithmeticOp = "^"
	OpShiftLeft  ArithmeticOp = "<<"
	OpShiftRight ArithmeticOp = ">>"
)

// ArithmeticBinary is left op right.
type ArithmeticBinary struct {
	Position token.Position `json:"-"`
	Op       ArithmeticOp   `json:"op"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func (a *ArithmeticBinary) Pos() token.Position { return a.Position }
func (a *ArithmeticBinary) expressionNode()     {}

// UnaryOp is a prefix arithmetic operator.
type UnaryOp string

const (
	UnaryMinus  UnaryOp = "-"
	UnaryPlus   UnaryOp = "+"
	UnaryBitNot UnaryOp = "~"
)

// ArithmeticUnary is op value.
type ArithmeticUnary struct {
	Position token.Position `json:"-"`
	Op       UnaryOp        `json:"op"`
	Value    Expression     `json:"value"`
}

func (a *ArithmeticUnary) Pos() token.Position { return a.Position }
func (a *ArithmeticUnary) expressionNode()     {}

// LogicalOp is AND, OR or XOR.
type LogicalOp string

const (
	LogicalAnd LogicalOp = "AND"
	LogicalOr  LogicalOp = "OR"
	LogicalXor LogicalOp = "XOR"
)

// LogicalBinary is left AND|OR|XOR right. && and || map to AND and OR.
type LogicalBinary struct {
	Position token.Position `json:"-"`
	Op       LogicalOp      `json:"op"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func (l *LogicalBinary) Pos() token.Position { return l.Position }
func (l *LogicalBinary) expressionNode()     {}

// Not is NOT value or !value.
type Not struct {
	Position token.Position `json:"-"`
	Value    Expression     `json:"value"`
}

func (n *Not) Pos() token.Position { return n.Position }
func (n *Not) expressionNode()     {}

// ComparisonOp is a comparison operator.
type ComparisonOp string

const (
	CmpEqual          ComparisonOp = "="
	CmpNotEqual       ComparisonOp = "<>"
	CmpLess           ComparisonOp = "<"
	CmpLessOrEqual    ComparisonOp = "<="
	CmpGreater        ComparisonOp = ">"
	CmpGreaterOrEqual ComparisonOp = ">="
	CmpNullSafeEqual  ComparisonOp = "<=>"
)

// Comparison is left op right.
type Comparison struct {
	Position token.Position `json:"-"`
	Op       ComparisonOp   `json:"op"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func (c *Comparison) Pos() token.Position { return c.Position }
func (c *Comparison) expressionNode()     {}

// QuantifiedComparison is left op ALL|ANY|SOME (subquery).
type QuantifiedComparison struct {
	Position   token.Position `json:"-"`
	Op         ComparisonOp   `json:"op"`
	Quantifier string         `json:"quantifier"`
	Left       Expression     `json:"left"`
	Subquery   *Subquery      `json:"subquery"`
}

func (q *QuantifiedComparison) Pos() token.Position { return q.Position }
func (q *QuantifiedComparison) expressionNode()     {}

// Between is value [NOT] BETWEEN min AND max.
type Between struct {
	Position token.Position `json:"-"`
	Not      bool           `json:"not,omitempty"`
	Value    Expression     `json:"value"`
	Min      Expression     `json:"min"`
	Max      Expression     `json:"max"`
}

func (b *Between) Pos() token.Position { return b.Position }
func (b *Between) expressionNode()     {}

// In is value [NOT] IN list, where list is an *InList or a *Subquery.
type In struct {
	Position token.Position `json:"-"`
	Not      bool           `json:"not,omitempty"`
	Value    Expression     `json:"value"`
	List     Expression     `json:"list"`
}

func (i *In) Pos() token.Position { return i.Position }
func (i *In) expressionNode()     {}

// InList is the parenthesized value list of IN.
type InList struct {
	Position token.Position `json:"-"`
	Values   []Expression   `json:"values"`
}

func (i *InList) Pos() token.Position { return i.Position }
func (i *InList) expressionNode()     {}

// Like is value [NOT] LIKE pattern [ESCAPE escape].
type Like struct {
	Position token.Position `json:"-"`
	Not      bool           `json:"not,omitempty"`
	Value    Expression     `json:"value"`
	Pattern  Expression     `json:"pattern"`
	Escape   Expression     `json:"escape,omitempty"`
}

func (l *Like) Pos() token.Position { return l.Position }
func (l *Like) expressionNode()     {}

// Regexp is value [NOT] REGEXP|RLIKE pattern.
type Regexp struct {
	Position token.Position `json:"-"`
	Not      bool           `json:"not,omitempty"`
	Value    Expression     `json:"value"`
	Pattern  Expression     `json:"pattern"`
}

func (r *Regexp) Pos() token.Position { return r.Position }
func (r *Regexp) expressionNode()     {}

// SoundsLike is left SOUNDS LIKE right.
type SoundsLike struct {
	Position token.Position `json:"-"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func (s *SoundsLike) Pos() token.Position { return s.Position }
func (s *SoundsLike) expressionNode()     {}

// IsNull is value IS [NOT] NULL.
type IsNull struct {
	Position token.Position `json:"-"`
	Not      bool           `json:"not,omitempty"`
	Value    Expression     `json:"value"`
}

func (i *IsNull) Pos() token.Position { return i.Position }
func (i *IsNull) expressionNode()     {}

// TruthValue is the right side of IS [NOT] TRUE|FALSE|UNKNOWN.
type TruthValue string

const (
	TruthTrue    TruthValue = "TRUE"
	TruthFalse   TruthValue = "FALSE"
	TruthUnknown TruthValue = "UNKNOWN"
)

// IsBoolean is value IS [NOT] TRUE|FALSE|UNKNOWN.
type IsBoolean struct {
	Position token.Position `json:"-"`
	Not      bool           `json:"not,omitempty"`
	Value    Expression     `json:"value"`
	Truth    TruthValue     `json:"truth"`
}

func (i *IsBoolean) Pos() token.Position { return i.Position }
func (i *IsBoolean) expressionNode()     {}

// MemberOf is value MEMBER OF (json_array).
type MemberOf struct {
	Position token.Position `json:"-"`
	Value    Expression     `json:"value"`
	Array    Expression     `json:"array"`
}

func (m *MemberOf) Pos() token.Position { return m.Position }
func (m *MemberOf) expressionNode()     {}

// Exists is EXISTS (subquery).
type Exists struct {
	Position token.Position `json:"-"`
	Subquery *Subquery      `json:"subquery"`
}

func (e *Exists) Pos() token.Position { return e.Position }
func (e *Exists) expressionNode()     {}

// FunctionCall is a call of a function that has no dedicated node.
type FunctionCall struct {
	Position token.Position `json:"-"`
	Name     *QualifiedName `json:"name"`
	Distinct bool           `json:"distinct,omitempty"`
	Args     []Expression   `json:"args"`
}

func (f *FunctionCall) Pos() token.Position { return f.Position }
func (f *FunctionCall) expressionNode()     {}

// AggregateFunction is COUNT, SUM, AVG, MIN, MAX and the other aggregates.
type AggregateFunction struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"` // upper case
	Distinct bool           `json:"distinct,omitempty"`
	Star     bool           `json:"star,omitempty"` // COUNT(*)
	Args     []Expression   `json:"args,omitempty"`
}

func (a *AggregateFunction) Pos() token.Position { return a.Position }
func (a *AggregateFunction) expressionNode()     {}

// GroupConcat is GROUP_CONCAT([DISTINCT] args [ORDER BY ...] [SEPARATOR s]).
type GroupConcat struct {
	Position  token.Position `json:"-"`
	Distinct  bool           `json:"distinct,omitempty"`
	Args      []Expression   `json:"args"`
	OrderBy   []*SortItem    `json:"order_by,omitempty"`
	Separator *string        `json:"separator,omitempty"`
}

func (g *GroupConcat) Pos() token.Position { return g.Position }
func (g *GroupConcat) expressionNode()     {}

// Cast is CAST(value AS type), and also BINARY value.
type Cast struct {
	Position token.Position `json:"-"`
	Value    Expression     `json:"value"`
	Type     *FieldType     `json:"type"`
}

func (c *Cast) Pos() token.Position { return c.Position }
func (c *Cast) expressionNode()     {}

// Convert is CONVERT(value, type) or CONVERT(value USING charset).
type Convert struct {
	Position token.Position `json:"-"`
	Value    Expression     `json:"value"`
	Type     *FieldType     `json:"type,omitempty"`
	Using    string         `json:"using,omitempty"`
}

func (c *Convert) Pos() token.Position { return c.Position }
func (c *Convert) expressionNode()     {}

// Trim is TRIM([BOTH|LEADING|TRAILING] [chars] FROM value).
type Trim struct {
	Position token.Position `json:"-"`
	Spec     string         `json:"spec,omitempty"`
	Chars    Expression     `json:"chars,omitempty"`
	Value    Expression     `json:"value"`
}

func (t *Trim) Pos() token.Position { return t.Position }
func (t *Trim) expressionNode()     {}

// WindowFunction is a function evaluated OVER a window.
type WindowFunction struct {
	Position      token.Position `json:"-"`
	Function      Expression     `json:"function"` // *FunctionCall or *AggregateFunction
	NullTreatment string         `json:"null_treatment,omitempty"`
	Over          *WindowSpec    `json:"over"`
}

func (w *WindowFunction) Pos() token.Position { return w.Position }
func (w *WindowFunction) expressionNode()     {}

// MatchAgainst is MATCH (columns) AGAINST (expr [modifier]).
type MatchAgainst struct {
	Position token.Position `json:"-"`
	Columns  []Expression   `json:"columns"`
	Against  Expression     `json:"against"`
	Modifier string         `json:"modifier,omitempty"`
}

func (m *MatchAgainst) Pos() token.Position { return m.Position }
func (m *MatchAgainst) expressionNode()     {}

// CurrentTime is CURRENT_DATE, CURRENT_TIME, CURRENT_TIMESTAMP, LOCALTIME
// or LOCALTIMESTAMP, optionally with a precision.
type CurrentTime struct {
	Position  token.Position `json:"-"`
	Function  string         `json:"function"`
	Precision *int           `json:"precision,omitempty"`
}

func (c *CurrentTime) Pos() token.Position { return c.Position }
func (c *CurrentTime) expressionNode()     {}

// WhenClause is one WHEN ... THEN ... arm of a CASE.
type WhenClause struct {
	Position  token.Position `json:"-"`
	Condition Expression     `json:"condition"`
	Result    Expression     `json:"result"`
}

func (w *WhenClause) Pos() token.Position { return w.Position }

// SimpleCase is CASE operand WHEN value THEN result ... END.
type SimpleCase struct {
	Position token.Position `json:"-"`
	Operand  Expression     `json:"operand"`
	Whens    []*WhenClause  `json:"whens"`
	Else     Expression     `json:"else,omitempty"`
}

func (s *SimpleCase) Pos() token.Position { return s.Position }
func (s *SimpleCase) expressionNode()     {}

// SearchedCase is CASE WHEN condition THEN result ... END.
type SearchedCase struct {
	Position token.Position `json:"-"`
	Whens    []*WhenClause  `json:"whens"`
	Else     Expression     `json:"else,omitempty"`
}

func (s *SearchedCase) Pos() token.Position { return s.Position }
func (s *SearchedCase) expressionNode()     {}

// Subquery is a parenthesized query used as an expression.
type Subquery struct {
	Position token.Position `json:"-"`
	Query    *Query         `json:"query"`
}

func (s *Subquery) Pos() token.Position { return s.Position }
func (s *Subquery) expressionNode()     {}

// QualifiedNameReference is a column or other named value reference.
type QualifiedNameReference struct {
	Position token.Position `json:"-"`
	Name     *QualifiedName `json:"name"`
}

func (q *QualifiedNameReference) Pos() token.Position { return q.Position }
func (q *QualifiedNameReference) expressionNode()     {}

// ListExpression is a parenthesized row (a, b, ...) or ROW(a, b, ...).
type ListExpression struct {
	Position token.Position `json:"-"`
	Row      bool           `json:"row,omitempty"`
	Values   []Expression   `json:"values"`
}

func (l *ListExpression) Pos() token.Position { return l.Position }
func (l *ListExpression) expressionNode()     {}

// Parameter is a ? placeholder. Index counts from zero in source order.
type Parameter struct {
	Position token.Position `json:"-"`
	Index    int            `json:"index"`
}

func (p *Parameter) Pos() token.Position { return p.Position }
func (p *Parameter) expressionNode()     {}

// VariableReference is @name or @@name.
type VariableReference struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
	System   bool           `json:"system,omitempty"`
}

func (v *VariableReference) Pos() token.Position { return v.Position }
func (v *VariableReference) expressionNode()     {}

// AssignmentExpression is target := value.
type AssignmentExpression struct {
	Position token.Position `json:"-"`
	Target   Expression     `json:"target"`
	Value    Expression     `json:"value"`
}

func (a *AssignmentExpression) Pos() token.Position { return a.Position }
func (a *AssignmentExpression) expressionNode()     {}

// DefaultValue is the DEFAULT keyword used as a value.
type DefaultValue struct {
	Position token.Position `json:"-"`
}

func (d *DefaultValue) Pos() token.Position { return d.Position }
func (d *DefaultValue) expressionNode()     {}

// Collate is value COLLATE collation.
type Collate struct {
	Position  token.Position `json:"-"`
	Value     Expression     `json:"value"`
	Collation string         `json:"collation"`
}

func (c *Collate) Pos() token.Position { return c.Position }
func (c *Collate) expressionNode()     {}
