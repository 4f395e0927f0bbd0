package format

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

// formatQuery formats a query with its WITH clause and trailing suffix.
func formatQuery(sb *strings.Builder, q *ast.Query) {
	if q == nil {
		return
	}
	if q.With != nil {
		formatWith(sb, q.With)
		sb.WriteString(" ")
	}
	queryBody(sb, q.Body)
	orderLimit(sb, q.OrderBy, q.Limit)
	lockClause(sb, q.Lock)
}

func formatWith(sb *strings.Builder, w *ast.With) {
	sb.WriteString("WITH ")
	if w.Recursive {
		sb.WriteString("RECURSIVE ")
	}
	for i, wq := range w.Queries {
		if i > 0 {
			sb.WriteString(", ")
		}
		ident(sb, wq.Name)
		if len(wq.ColumnNames) > 0 {
			sb.WriteString(" ")
			identList(sb, wq.ColumnNames)
		}
		sb.WriteString(" AS (")
		formatQuery(sb, wq.Query)
		sb.WriteString(")")
	}
}

func queryBody(sb *strings.Builder, body ast.QueryBody) {
	switch b := body.(type) {
	case *ast.QuerySpecification:
		formatQuerySpecification(sb, b)
	case ast.SetOperation:
		left, right := b.Operands()
		queryBody(sb, left)
		sb.WriteString(" ")
		sb.WriteString(setOperator(b))
		sb.WriteString(" ")
		queryBody(sb, right)
	case *ast.TableSubquery:
		sb.WriteString("(")
		formatQuery(sb, b.Query)
		sb.WriteString(")")
	case *ast.Values:
		formatValues(sb, b)
	case *ast.Table:
		sb.WriteString("TABLE ")
		qualifiedName(sb, b.Name)
	}
}

func setOperator(op ast.SetOperation) string {
	var word string
	var all, distinct bool
	switch o := op.(type) {
	case *ast.Union:
		word, all, distinct = "UNION", o.All, o.Distinct
	case *ast.Intersect:
		word, all, distinct = "INTERSECT", o.All, o.Distinct
	case *ast.Except:
		word, all, distinct = "EXCEPT", o.All, o.Distinct
	}
	switch {
	case all:
		return word + " ALL"
	case distinct:
		return word + " DISTINCT"
	}
	return word
}

func formatValues(sb *strings.Builder, v *ast.Values) {
	sb.WriteString("VALUES ")
	for i, row := range v.Rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		expressionList(sb, row)
	}
}

// formatQuerySpecification formats a single SELECT block.
func formatQuerySpecification(sb *strings.Builder, q *ast.QuerySpecification) {
	sb.WriteString("SELECT")
	if q.Select != nil {
		if q.Select.Distinct {
			sb.WriteString(" DISTINCT")
		}
		for i, item := range q.Select.Items {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
			selectItem(sb, item)
		}
	}

	if q.From != nil {
		sb.WriteString(" FROM ")
		relation(sb, q.From)
	}
	if q.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, q.Where)
	}
	if q.GroupBy != nil {
		sb.WriteString(" GROUP BY ")
		expressions(sb, q.GroupBy.Items)
		if q.GroupBy.WithRollup {
			sb.WriteString(" WITH ROLLUP")
		}
	}
	if q.Having != nil {
		sb.WriteString(" HAVING ")
		Expression(sb, q.Having)
	}
	for i, w := range q.Windows {
		if i == 0 {
			sb.WriteString(" WINDOW ")
		} else {
			sb.WriteString(", ")
		}
		ident(sb, w.Name)
		sb.WriteString(" AS ")
		windowSpecBody(sb, w.Spec)
	}
	orderLimit(sb, q.OrderBy, q.Limit)
	lockClause(sb, q.Lock)
}

func selectItem(sb *strings.Builder, item ast.SelectItem) {
	switch it := item.(type) {
	case *ast.AllColumns:
		if it.Prefix != nil {
			qualifiedName(sb, it.Prefix)
			sb.WriteString(".")
		}
		sb.WriteString("*")
	case *ast.SingleColumn:
		Expression(sb, it.Expr)
		if it.Alias != "" {
			sb.WriteString(" AS ")
			ident(sb, it.Alias)
		}
	}
}

func orderLimit(sb *strings.Builder, orderBy []*ast.SortItem, limit *ast.Limit) {
	if len(orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sortItems(sb, orderBy)
	}
	if limit != nil {
		sb.WriteString(" ")
		formatLimit(sb, limit)
	}
}

func sortItems(sb *strings.Builder, items []*ast.SortItem) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, item.Key)
		if item.Ordering == ast.Descending {
			sb.WriteString(" DESC")
		}
		if item.NullOrdering != ast.NullsUndefined {
			sb.WriteString(" ")
			sb.WriteString(string(item.NullOrdering))
		}
	}
}

// formatLimit uses the offset, count form so placeholders keep their
// source order.
func formatLimit(sb *strings.Builder, l *ast.Limit) {
	sb.WriteString("LIMIT ")
	if l.All {
		sb.WriteString("ALL")
		return
	}
	if l.Offset != 0 || l.OffsetParam != nil {
		limitValue(sb, l.Offset, l.OffsetParam)
		sb.WriteString(", ")
	}
	limitValue(sb, l.Count, l.CountParam)
}

func limitValue(sb *strings.Builder, v uint64, param *ast.Parameter) {
	if param != nil {
		sb.WriteString("?")
		return
	}
	sb.WriteString(strconv.FormatUint(v, 10))
}

func lockClause(sb *strings.Builder, l *ast.LockClause) {
	if l == nil {
		return
	}
	plain := !l.NowaitOrWait && !l.SkipLocked
	switch {
	case l.Mode == ast.LockShare && plain:
		sb.WriteString(" LOCK IN SHARE MODE")
		return
	case l.Mode == ast.LockShare:
		sb.WriteString(" FOR SHARE")
	default:
		sb.WriteString(" FOR UPDATE")
	}
	switch {
	case l.Wait != nil:
		sb.WriteString(" WAIT ")
		Expression(sb, l.Wait)
	case l.NowaitOrWait:
		sb.WriteString(" NOWAIT")
	case l.SkipLocked:
		sb.WriteString(" SKIP LOCKED")
	}
}

// windowSpec writes a window reference by name when it has nothing else.
func windowSpec(sb *strings.Builder, w *ast.WindowSpec) {
	if w.Name != "" && len(w.PartitionBy) == 0 && len(w.OrderBy) == 0 && w.Frame == nil {
		ident(sb, w.Name)
		return
	}
	windowSpecBody(sb, w)
}

func windowSpecBody(sb *strings.Builder, w *ast.WindowSpec) {
	var parts []string
	if w.Name != "" {
		var name strings.Builder
		ident(&name, w.Name)
		parts = append(parts, name.String())
	}
	if len(w.PartitionBy) > 0 {
		var part strings.Builder
		part.WriteString("PARTITION BY ")
		expressions(&part, w.PartitionBy)
		parts = append(parts, part.String())
	}
	if len(w.OrderBy) > 0 {
		var order strings.Builder
		order.WriteString("ORDER BY ")
		sortItems(&order, w.OrderBy)
		parts = append(parts, order.String())
	}
	if w.Frame != nil {
		var frame strings.Builder
		frameClause(&frame, w.Frame)
		parts = append(parts, frame.String())
	}
	sb.WriteString("(")
	sb.WriteString(strings.Join(parts, " "))
	sb.WriteString(")")
}

func frameClause(sb *strings.Builder, f *ast.FrameClause) {
	sb.WriteString(string(f.Unit))
	sb.WriteString(" ")
	if f.End == nil {
		frameBound(sb, f.Start)
		return
	}
	sb.WriteString("BETWEEN ")
	frameBound(sb, f.Start)
	sb.WriteString(" AND ")
	frameBound(sb, f.End)
}

func frameBound(sb *strings.Builder, b *ast.FrameBound) {
	if b.Value != nil {
		operand(sb, b.Value)
		sb.WriteString(" ")
	}
	sb.WriteString(string(b.Type))
}

// formatInsert formats INSERT statements.
func formatInsert(sb *strings.Builder, ins *ast.Insert) {
	sb.WriteString("INSERT ")
	if ins.Ignore {
		sb.WriteString("IGNORE ")
	}
	sb.WriteString("INTO ")
	qualifiedName(sb, ins.Target)
	if len(ins.Columns) > 0 {
		sb.WriteString(" ")
		identList(sb, ins.Columns)
	}
	switch {
	case ins.Query != nil:
		sb.WriteString(" ")
		formatQuery(sb, ins.Query)
	case len(ins.Set) > 0:
		sb.WriteString(" SET ")
		assignments(sb, ins.Set)
	}
	if len(ins.OnDuplicate) > 0 {
		sb.WriteString(" ON DUPLICATE KEY UPDATE ")
		assignments(sb, ins.OnDuplicate)
	}
}

func assignments(sb *strings.Builder, list []*ast.Assignment) {
	for i, a := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		qualifiedName(sb, a.Column)
		sb.WriteString(" = ")
		Expression(sb, a.Value)
	}
}

func formatUpdate(sb *strings.Builder, upd *ast.Update) {
	sb.WriteString("UPDATE ")
	if upd.Ignore {
		sb.WriteString("IGNORE ")
	}
	relation(sb, upd.Table)
	sb.WriteString(" SET ")
	assignments(sb, upd.Set)
	if upd.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, upd.Where)
	}
	orderLimit(sb, upd.OrderBy, upd.Limit)
}

func formatDelete(sb *strings.Builder, del *ast.Delete) {
	sb.WriteString("DELETE FROM ")
	relation(sb, del.Table)
	if del.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, del.Where)
	}
	orderLimit(sb, del.OrderBy, del.Limit)
}

// formatCreateTable formats CREATE TABLE. Columns are written before
// indexes.
func formatCreateTable(sb *strings.Builder, c *ast.CreateTable) {
	sb.WriteString("CREATE TABLE ")
	if c.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	qualifiedName(sb, c.Name)
	sb.WriteString(" (")
	n := 0
	sep := func() {
		if n > 0 {
			sb.WriteString(", ")
		}
		n++
	}
	for _, col := range c.Columns {
		sep()
		columnDefinition(sb, col)
	}
	for _, idx := range c.Indexes {
		sep()
		indexDefinition(sb, idx)
	}
	sb.WriteString(")")
	for _, opt := range c.Options {
		sb.WriteString(" ")
		tableOption(sb, opt)
	}
}

func columnDefinition(sb *strings.Builder, col *ast.ColumnDefinition) {
	ident(sb, col.Name)
	sb.WriteString(" ")
	fieldType(sb, col.Type)
	if col.NotNull {
		sb.WriteString(" NOT NULL")
	}
	if col.Null {
		sb.WriteString(" NULL")
	}
	if col.Default != nil {
		sb.WriteString(" DEFAULT ")
		operand(sb, col.Default)
	}
	if col.OnUpdate != nil {
		sb.WriteString(" ON UPDATE ")
		operand(sb, col.OnUpdate)
	}
	if col.AutoIncrement {
		sb.WriteString(" AUTO_INCREMENT")
	}
	if col.PrimaryKey {
		sb.WriteString(" PRIMARY KEY")
	}
	if col.Unique {
		sb.WriteString(" UNIQUE")
	}
	if col.Collate != "" {
		sb.WriteString(" COLLATE ")
		ident(sb, col.Collate)
	}
	if col.Comment != "" {
		sb.WriteString(" COMMENT ")
		quoteString(sb, col.Comment)
	}
}

func indexDefinition(sb *strings.Builder, idx *ast.IndexDefinition) {
	sb.WriteString(string(idx.Kind))
	if idx.Name != "" {
		sb.WriteString(" ")
		ident(sb, idx.Name)
	}
	sb.WriteString(" (")
	for i, item := range idx.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		indexColumn(sb, item.Key)
		if item.Ordering == ast.Descending {
			sb.WriteString(" DESC")
		}
	}
	sb.WriteString(")")
	for _, opt := range idx.Options {
		sb.WriteString(" ")
		tableOption(sb, opt)
	}
}

// indexColumn writes a key part. A prefix length key is held as a call of
// the column name.
func indexColumn(sb *strings.Builder, key ast.Expression) {
	switch k := key.(type) {
	case *ast.FunctionCall:
		qualifiedName(sb, k.Name)
		expressionList(sb, k.Args)
	default:
		Expression(sb, key)
	}
}

// tableOption writes NAME = value. Values other than plain numbers are
// written as strings, which every option accepts.
func tableOption(sb *strings.Builder, opt *ast.TableOption) {
	sb.WriteString(opt.Name)
	switch {
	case opt.Name == "USING":
		sb.WriteString(" ")
		sb.WriteString(opt.Value)
	case isDigits(opt.Value):
		sb.WriteString(" = ")
		sb.WriteString(opt.Value)
	default:
		sb.WriteString(" = ")
		quoteString(sb, opt.Value)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
