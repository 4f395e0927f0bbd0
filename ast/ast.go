// Package ast defines the abstract syntax tree for MySQL and OceanBase SQL.
package ast

import (
	"github.com/sqlc-dev/obsql/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
	// Accept dispatches to the most specific method v implements for the
	// node, falling back along the node's family to Visitor.VisitNode.
	Accept(v Visitor, ctx any) any
}

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Literal is the interface implemented by literal value expressions.
type Literal interface {
	Expression
	literalNode()
}

// Relation is anything that can appear in a FROM clause.
type Relation interface {
	Node
	relationNode()
}

// QueryBody is the body of a Query: a SELECT, a set operation, a table,
// a VALUES list or a parenthesized query.
type QueryBody interface {
	Relation
	queryBodyNode()
}

// SetOperation is a UNION, INTERSECT or EXCEPT node. It always has exactly
// two operands; chains nest to the left.
type SetOperation interface {
	QueryBody
	Operands() (left, right QueryBody)
	IsDistinct() bool
	setOperationNode()
}

// SelectItem is one entry of a select list.
type SelectItem interface {
	Node
	selectItemNode()
}

// JoinCriteria is the ON, USING or NATURAL part of a join.
type JoinCriteria interface {
	Node
	joinCriteriaNode()
}

// -----------------------------------------------------------------------------
// Statements

// Query is a complete query: an optional WITH clause, a body and the outer
// ORDER BY, LIMIT and locking suffix.
type Query struct {
	Position token.Position `json:"-"`
	With     *With          `json:"with,omitempty"`
	Body     QueryBody      `json:"body"`
	OrderBy  []*SortItem    `json:"order_by,omitempty"`
	Limit    *Limit         `json:"limit,omitempty"`
	Lock     *LockClause    `json:"lock,omitempty"`
}

func (q *Query) Pos() token.Position { return q.Position }
func (q *Query) statementNode()      {}

// Insert represents INSERT [IGNORE] INTO.
type Insert struct {
	Position    token.Position `json:"-"`
	Ignore      bool           `json:"ignore,omitempty"`
	Target      *QualifiedName `json:"target"`
	Columns     []string       `json:"columns,omitempty"`
	Query       *Query         `json:"query,omitempty"` // VALUES rows or a SELECT
	Set         []*Assignment  `json:"set,omitempty"`   // INSERT ... SET form
	OnDuplicate []*Assignment  `json:"on_duplicate,omitempty"`
}

func (i *Insert) Pos() token.Position { return i.Position }
func (i *Insert) statementNode()      {}

// Update represents a single or multi-table UPDATE.
type Update struct {
	Position token.Position `json:"-"`
	Ignore   bool           `json:"ignore,omitempty"`
	Table    Relation       `json:"table"`
	Set      []*Assignment  `json:"set"`
	Where    Expression     `json:"where,omitempty"`
	OrderBy  []*SortItem    `json:"order_by,omitempty"`
	Limit    *Limit         `json:"limit,omitempty"`
}

func (u *Update) Pos() token.Position { return u.Position }
func (u *Update) statementNode()      {}

// Delete represents DELETE FROM.
type Delete struct {
	Position token.Position `json:"-"`
	Table    Relation       `json:"table"`
	Where    Expression     `json:"where,omitempty"`
	OrderBy  []*SortItem    `json:"order_by,omitempty"`
	Limit    *Limit         `json:"limit,omitempty"`
}

func (d *Delete) Pos() token.Position { return d.Position }
func (d *Delete) statementNode()      {}

// Commit represents COMMIT [WORK].
type Commit struct {
	Position token.Position `json:"-"`
}

func (c *Commit) Pos() token.Position { return c.Position }
func (c *Commit) statementNode()      {}

// CreateTable represents CREATE TABLE.
type CreateTable struct {
	Position    token.Position      `json:"-"`
	IfNotExists bool                `json:"if_not_exists,omitempty"`
	Name        *QualifiedName      `json:"name"`
	Columns     []*ColumnDefinition `json:"columns"`
	Indexes     []*IndexDefinition  `json:"indexes,omitempty"`
	Options     []*TableOption      `json:"options,omitempty"`
}

func (c *CreateTable) Pos() token.Position { return c.Position }
func (c *CreateTable) statementNode()      {}

// ColumnDefinition is one column of a CREATE TABLE.
type ColumnDefinition struct {
	Position      token.Position `json:"-"`
	Name          string         `json:"name"`
	Type          *FieldType     `json:"type"`
	NotNull       bool           `json:"not_null,omitempty"`
	Null          bool           `json:"null,omitempty"` // explicit NULL
	Default       Expression     `json:"default,omitempty"`
	OnUpdate      Expression     `json:"on_update,omitempty"`
	AutoIncrement bool           `json:"auto_increment,omitempty"`
	PrimaryKey    bool           `json:"primary_key,omitempty"`
	Unique        bool           `json:"unique,omitempty"`
	Collate       string         `json:"collate,omitempty"`
	Comment       string         `json:"comment,omitempty"`
}

func (c *ColumnDefinition) Pos() token.Position { return c.Position }

// IndexKind is the kind of a table index.
type IndexKind string

const (
	IndexNormal  IndexKind = "INDEX"
	IndexPrimary IndexKind = "PRIMARY KEY"
	IndexUnique  IndexKind = "UNIQUE"
)

// IndexDefinition is an index declared inside CREATE TABLE.
type IndexDefinition struct {
	Position token.Position `json:"-"`
	Kind     IndexKind      `json:"kind"`
	Name     string         `json:"name,omitempty"`
	Columns  []*SortItem    `json:"columns"`
	Options  []*TableOption `json:"options,omitempty"`
}

func (i *IndexDefinition) Pos() token.Position { return i.Position }

// TableOption is a NAME [=] value pair of a table or index definition.
type TableOption struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"` // upper case
	Value    string         `json:"value"`
}

func (t *TableOption) Pos() token.Position { return t.Position }

// Assignment is a column = value pair of SET or ON DUPLICATE KEY UPDATE.
type Assignment struct {
	Position token.Position `json:"-"`
	Column   *QualifiedName `json:"column"`
	Value    Expression     `json:"value"`
}

func (a *Assignment) Pos() token.Position { return a.Position }
