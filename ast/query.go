package ast

import (
	"strings"

	"github.com/sqlc-dev/obsql/token"
)

// QuerySpecification is a single SELECT block.
type QuerySpecification struct {
	Position token.Position      `json:"-"`
	Select   *Select             `json:"select"`
	From     Relation            `json:"from,omitempty"`
	Where    Expression          `json:"where,omitempty"`
	GroupBy  *GroupBy            `json:"group_by,omitempty"`
	Having   Expression          `json:"having,omitempty"`
	Windows  []*WindowDefinition `json:"windows,omitempty"`
	OrderBy  []*SortItem         `json:"order_by,omitempty"`
	Limit    *Limit              `json:"limit,omitempty"`
	Lock     *LockClause         `json:"lock,omitempty"`
}

func (q *QuerySpecification) Pos() token.Position { return q.Position }
func (q *QuerySpecification) relationNode()       {}
func (q *QuerySpecification) queryBodyNode()      {}

// Select is the select list of a QuerySpecification.
type Select struct {
	Position token.Position `json:"-"`
	Distinct bool           `json:"distinct,omitempty"`
	Items    []SelectItem   `json:"items"`
}

func (s *Select) Pos() token.Position { return s.Position }

// GroupBy is a GROUP BY clause.
type GroupBy struct {
	Position   token.Position `json:"-"`
	Items      []Expression   `json:"items"`
	WithRollup bool           `json:"with_rollup,omitempty"`
}

func (g *GroupBy) Pos() token.Position { return g.Position }

// Limit is a normalized LIMIT clause. Count and Offset are zero unless
// given; a placeholder in either position is kept in CountParam or
// OffsetParam and leaves the numeric field at zero.
type Limit struct {
	Position    token.Position `json:"-"`
	Count       uint64         `json:"count"`
	Offset      uint64         `json:"offset"`
	CountParam  *Parameter     `json:"count_param,omitempty"`
	OffsetParam *Parameter     `json:"offset_param,omitempty"`
	All         bool           `json:"all,omitempty"` // LIMIT ALL, unbounded
}

func (l *Limit) Pos() token.Position { return l.Position }

// LockMode is the kind of row lock requested by a query.
type LockMode string

const (
	LockForUpdate LockMode = "FOR UPDATE"
	LockShare     LockMode = "LOCK IN SHARE MODE"
)

// LockClause is a FOR UPDATE or LOCK IN SHARE MODE suffix. Every form
// reduces to the (ForUpdate, NowaitOrWait) pair; Mode and Wait keep the
// spelling details.
type LockClause struct {
	Position     token.Position `json:"-"`
	ForUpdate    bool           `json:"for_update"`
	NowaitOrWait bool           `json:"nowait_or_wait"`
	Mode         LockMode       `json:"mode"`
	Wait         *LongLiteral   `json:"wait,omitempty"` // WAIT n
	SkipLocked   bool           `json:"skip_locked,omitempty"`
}

func (l *LockClause) Pos() token.Position { return l.Position }

// Ordering is the direction of a sort key.
type Ordering string

const (
	Ascending  Ordering = "ASC"
	Descending Ordering = "DESC"
)

// NullOrdering says where NULLs sort.
type NullOrdering string

const (
	NullsUndefined NullOrdering = ""
	NullsFirst     NullOrdering = "NULLS FIRST"
	NullsLast      NullOrdering = "NULLS LAST"
)

// SortItem is one ORDER BY key.
type SortItem struct {
	Position     token.Position `json:"-"`
	Key          Expression     `json:"key"`
	Ordering     Ordering       `json:"ordering"`
	NullOrdering NullOrdering   `json:"null_ordering,omitempty"`
}

func (s *SortItem) Pos() token.Position { return s.Position }

// With is a WITH clause.
type With struct {
	Position  token.Position `json:"-"`
	Recursive bool           `json:"recursive,omitempty"`
	Queries   []*WithQuery   `json:"queries"`
}

func (w *With) Pos() token.Position { return w.Position }

// WithQuery is one common table expression.
type WithQuery struct {
	Position    token.Position `json:"-"`
	Name        string         `json:"name"`
	ColumnNames []string       `json:"column_names,omitempty"`
	Query       *Query         `json:"query"`
}

func (w *WithQuery) Pos() token.Position { return w.Position }

// Union represents left UNION [ALL | DISTINCT] right.
type Union struct {
	Position token.Position `json:"-"`
	Left     QueryBody      `json:"left"`
	Right    QueryBody      `json:"right"`
	Distinct bool           `json:"distinct,omitempty"`
	All      bool           `json:"all,omitempty"`
}

func (u *Union) Pos() token.Position               { return u.Position }
func (u *Union) Operands() (left, right QueryBody) { return u.Left, u.Right }
func (u *Union) IsDistinct() bool                  { return !u.All }
func (u *Union) relationNode()                     {}
func (u *Union) queryBodyNode()                    {}
func (u *Union) setOperationNode()                 {}

// Intersect represents left INTERSECT [ALL | DISTINCT] right.
type Intersect struct {
	Position token.Position `json:"-"`
	Left     QueryBody      `json:"left"`
	Right    QueryBody      `json:"right"`
	Distinct bool           `json:"distinct,omitempty"`
	All      bool           `json:"all,omitempty"`
}

func (i *Intersect) Pos() token.Position               { return i.Position }
func (i *Intersect) Operands() (left, right QueryBody) { return i.Left, i.Right }
func (i *Intersect) IsDistinct() bool                  { return !i.All }
func (i *Intersect) relationNode()                     {}
func (i *Intersect) queryBodyNode()                    {}
func (i *Intersect) setOperationNode()                 {}

// Except represents left EXCEPT [ALL | DISTINCT] right.
type Except struct {
	Position token.Position `json:"-"`
	Left     QueryBody      `json:"left"`
	Right    QueryBody      `json:"right"`
	Distinct bool           `json:"distinct,omitempty"`
	All      bool           `json:"all,omitempty"`
}

func (e *Except) Pos() token.Position               { return e.Position }
func (e *Except) Operands() (left, right QueryBody) { return e.Left, e.Right }
func (e *Except) IsDistinct() bool                  { return !e.All }
func (e *Except) relationNode()                     {}
func (e *Except) queryBodyNode()                    {}
func (e *Except) setOperationNode()                 {}

// TableSubquery is a parenthesized query used as a relation or operand.
type TableSubquery struct {
	Position token.Position `json:"-"`
	Query    *Query         `json:"query"`
}

func (t *TableSubquery) Pos() token.Position { return t.Position }
func (t *TableSubquery) relationNode()       {}
func (t *TableSubquery) queryBodyNode()      {}

// Values is a VALUES row list.
type Values struct {
	Position token.Position `json:"-"`
	Rows     [][]Expression `json:"rows"`
}

func (v *Values) Pos() token.Position { return v.Position }
func (v *Values) relationNode()       {}
func (v *Values) queryBodyNode()      {}

// Table is a named table reference.
type Table struct {
	Position   token.Position `json:"-"`
	Name       *QualifiedName `json:"name"`
	Partitions []string       `json:"partitions,omitempty"`
	IndexHints []*IndexHint   `json:"index_hints,omitempty"`
}

func (t *Table) Pos() token.Position { return t.Position }
func (t *Table) relationNode()       {}
func (t *Table) queryBodyNode()      {}

// IndexHintKind is USE, FORCE or IGNORE.
type IndexHintKind string

const (
	UseIndex    IndexHintKind = "USE"
	ForceIndex  IndexHintKind = "FORCE"
	IgnoreIndex IndexHintKind = "IGNORE"
)

// IndexHint is a table index hint such as FORCE INDEX (idx).
type IndexHint struct {
	Position token.Position `json:"-"`
	Kind     IndexHintKind  `json:"kind"`
	For      string         `json:"for,omitempty"` // JOIN, ORDER BY or GROUP BY
	Indexes  []string       `json:"indexes"`
}

func (i *IndexHint) Pos() token.Position { return i.Position }

// AliasedRelation is a relation with an alias.
type AliasedRelation struct {
	Position    token.Position `json:"-"`
	Relation    Relation       `json:"relation"`
	Alias       string         `json:"alias"`
	ColumnNames []string       `json:"column_names,omitempty"`
}

func (a *AliasedRelation) Pos() token.Position { return a.Position }
func (a *AliasedRelation) relationNode()       {}

// JoinType is the kind of a join.
type JoinType string

const (
	JoinInner    JoinType = "INNER"
	JoinLeft     JoinType = "LEFT"
	JoinRight    JoinType = "RIGHT"
	JoinFull     JoinType = "FULL"
	JoinCross    JoinType = "CROSS"
	JoinImplicit JoinType = "IMPLICIT" // comma separated FROM list
)

// Join is a binary join. Criteria is nil for CROSS and IMPLICIT joins.
type Join struct {
	Position token.Position `json:"-"`
	Type     JoinType       `json:"type"`
	Left     Relation       `json:"left"`
	Right    Relation       `json:"right"`
	Criteria JoinCriteria   `json:"criteria,omitempty"`
}

func (j *Join) Pos() token.Position { return j.Position }
func (j *Join) relationNode()       {}

// JoinOn is an ON join condition.
type JoinOn struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
}

func (j *JoinOn) Pos() token.Position { return j.Position }
func (j *JoinOn) joinCriteriaNode()   {}

// JoinUsing is USING (columns).
type JoinUsing struct {
	Position token.Position `json:"-"`
	Columns  []string       `json:"columns"`
}

func (j *JoinUsing) Pos() token.Position { return j.Position }
func (j *JoinUsing) joinCriteriaNode()   {}

// NaturalJoin marks a NATURAL join.
type NaturalJoin struct {
	Position token.Position `json:"-"`
}

func (n *NaturalJoin) Pos() token.Position { return n.Position }
func (n *NaturalJoin) joinCriteriaNode()   {}

// AllColumns is * or prefix.*.
type AllColumns struct {
	Position token.Position `json:"-"`
	Prefix   *QualifiedName `json:"prefix,omitempty"`
}

func (a *AllColumns) Pos() token.Position { return a.Position }
func (a *AllColumns) selectItemNode()     {}

// SingleColumn is an expression with an optional alias.
type SingleColumn struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Alias    string         `json:"alias,omitempty"`
}

func (s *SingleColumn) Pos() token.Position { return s.Position }
func (s *SingleColumn) selectItemNode()     {}

// WindowDefinition is a named window of the WINDOW clause.
type WindowDefinition struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
	Spec     *WindowSpec    `json:"spec"`
}

func (w *WindowDefinition) Pos() token.Position { return w.Position }

// WindowSpec is an OVER (...) specification or a reference to a named window.
type WindowSpec struct {
	Position    token.Position `json:"-"`
	Name        string         `json:"name,omitempty"` // existing window name
	PartitionBy []Expression   `json:"partition_by,omitempty"`
	OrderBy     []*SortItem    `json:"order_by,omitempty"`
	Frame       *FrameClause   `json:"frame,omitempty"`
}

func (w *WindowSpec) Pos() token.Position { return w.Position }

// FrameUnit is ROWS, RANGE or GROUPS.
type FrameUnit string

const (
	FrameRows   FrameUnit = "ROWS"
	FrameRange  FrameUnit = "RANGE"
	FrameGroups FrameUnit = "GROUPS"
)

// FrameClause is a window frame. End is nil for the single bound form.
type FrameClause struct {
	Position token.Position `json:"-"`
	Unit     FrameUnit      `json:"unit"`
	Start    *FrameBound    `json:"start"`
	End      *FrameBound    `json:"end,omitempty"`
}

func (f *FrameClause) Pos() token.Position { return f.Position }

// BoundType is the kind of a frame bound.
type BoundType string

const (
	UnboundedPreceding BoundType = "UNBOUNDED PRECEDING"
	Preceding          BoundType = "PRECEDING"
	CurrentRow         BoundType = "CURRENT ROW"
	Following          BoundType = "FOLLOWING"
	UnboundedFollowing BoundType = "UNBOUNDED FOLLOWING"
)

// FrameBound is one end of a window frame.
type FrameBound struct {
	Position token.Position `json:"-"`
	Type     BoundType      `json:"type"`
	Value    Expression     `json:"value,omitempty"`
}

func (f *FrameBound) Pos() token.Position { return f.Position }

// QualifiedName is a dotted name of one to three parts.
type QualifiedName struct {
	Position token.Position `json:"-"`
	Parts    []string       `json:"parts"`
}

func (q *QualifiedName) Pos() token.Position { return q.Position }

// String joins the parts with dots.
func (q *QualifiedName) String() string {
	return strings.Join(q.Parts, ".")
}

// Suffix returns the last part of the name.
func (q *QualifiedName) Suffix() string {
	if len(q.Parts) == 0 {
		return ""
	}
	return q.Parts[len(q.Parts)-1]
}
