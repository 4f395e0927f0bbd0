package token

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect selects the keyword table and grammar variant used for a parse.
type Dialect int

const (
	// Generic is the MySQL-compatible dialect.
	Generic Dialect = iota
	// OceanBase is the OceanBase flavored MySQL dialect.
	OceanBase
)

func (d Dialect) String() string {
	switch d {
	case Generic:
		return "mysql"
	case OceanBase:
		return "oceanbase"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect resolves a dialect name. Matching is case-insensitive and
// accepts "mysql", "generic", "oceanbase" and "ob".
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mysql", "generic":
		return Generic, nil
	case "oceanbase", "ob":
		return OceanBase, nil
	}
	return Generic, fmt.Errorf("unknown dialect %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler so a Dialect can be
// read straight from configuration files.
func (d *Dialect) UnmarshalText(text []byte) error {
	v, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Table returns the keyword table for the dialect.
func (d Dialect) Table() *Table {
	if d == OceanBase {
		return oceanbaseTable
	}
	return genericTable
}

// TableFor returns the keyword table for d.
func TableFor(d Dialect) *Table { return d.Table() }

// Class is the reservation class of a keyword within one dialect.
type Class int

const (
	// None means the word is not a keyword in the dialect.
	None Class = iota
	// Reserved words are never usable as bare identifiers.
	Reserved
	// NonReserved words are keywords that may also be used as identifiers.
	NonReserved
	// NotKeyword words behave as identifiers almost everywhere but take
	// part in a handful of dedicated productions.
	NotKeyword
)

func (c Class) String() string {
	switch c {
	case Reserved:
		return "reserved"
	case NonReserved:
		return "non-reserved"
	case NotKeyword:
		return "not-keyword"
	}
	return "none"
}

// Table is the static keyword classification of one dialect. Tables are
// built once at init time and are read-only afterwards.
type Table struct {
	dialect Dialect
	classes map[Token]Class
}

func newTable(d Dialect, groups map[Class][]Token) *Table {
	t := &Table{dialect: d, classes: make(map[Token]Class)}
	for class, toks := range groups {
		for _, tok := range toks {
			if prev, ok := t.classes[tok]; ok && prev != class {
				panic(fmt.Sprintf("token: %s listed as both %s and %s in %s", tok, prev, class, d))
			}
			t.classes[tok] = class
		}
	}
	return t
}

// Dialect returns the dialect this table belongs to.
func (t *Table) Dialect() Dialect { return t.dialect }

// Lookup classifies a bare word. Words the dialect does not know are IDENT.
func (t *Table) Lookup(word string) (Token, Class) {
	tok, ok := keywords[strings.ToUpper(word)]
	if !ok {
		return IDENT, None
	}
	class, ok := t.classes[tok]
	if !ok {
		return IDENT, None
	}
	return tok, class
}

// Class returns the class of tok in this dialect.
func (t *Table) Class(tok Token) Class {
	return t.classes[tok]
}

// IsIdentifier reports whether tok may stand in identifier position.
func (t *Table) IsIdentifier(tok Token) bool {
	switch tok {
	case IDENT, BACKQUOTED_IDENT, DIGIT_IDENT:
		return true
	}
	c := t.classes[tok]
	return c == NonReserved || c == NotKeyword
}

// Words returns the sorted spellings of every keyword in class c.
func (t *Table) Words(c Class) []string {
	var words []string
	for tok, class := range t.classes {
		if class == c {
			words = append(words, tok.String())
		}
	}
	sort.Strings(words)
	return words
}

var (
	genericTable   *Table
	oceanbaseTable *Table
)

// Keywords reserved by both dialects.
var sharedReserved = []Token{
	ALL, AND, ANY, AS, ASC, BETWEEN, BINARY, BOTH, BY, CASE, CHAR, CHARACTER,
	COLLATE, CONVERT, CREATE, CROSS, CURRENT_DATE, CURRENT_TIME, CURRENT_TIMESTAMP,
	DEFAULT, DELETE, DESC, DISTINCT, DISTINCTROW, DIV, DUAL, ELSE, EXCEPT, EXISTS,
	FALSE, FOR, FORCE, FROM, GROUP, HAVING, IF, IGNORE, IN, INDEX, INNER, INSERT,
	INTERSECT, INTERVAL, INTO, IS, JOIN, KEY, LEADING, LEFT, LIKE, LIMIT, LOCALTIME,
	LOCALTIMESTAMP, LOCK, MATCH, MOD, NATURAL, NOT, NULL, OF, ON, OR, ORDER, OUTER,
	OVER, PARTITION, PRIMARY, RANGE, RECURSIVE, REGEXP, RIGHT, RLIKE, ROW, ROWS,
	SELECT, SET, SOME, TABLE, THEN, TRAILING, TRUE, UNION, UNIQUE, UNSIGNED, UPDATE,
	USE, USING, VALUES, WHEN, WHERE, WINDOW, WITH, XOR,
}

// Built-in function names that are keywords but remain usable as identifiers.
var sharedNonReserved = []Token{
	AGAINST, AVG, BIT_AND_FUNC, BIT_OR_FUNC, BIT_XOR_FUNC, CAST, COUNT, GROUP_CONCAT,
	MAX, MEMBER, MIN, RESPECT, SKIP, SOUNDS, STD, STDDEV, STDDEV_POP, STDDEV_SAMP,
	SUBSTR, SUBSTRING, SUM, TRIM, VAR_POP, VAR_SAMP, VARIANCE,
}

// Type names, interval units and clause options.
var sharedSoft = []Token{
	ARRAY, AUTO_INCREMENT, BIGINT, BOOLEAN, CHARSET, COMMENT_KW, COMMIT, COMPRESSION,
	CURRENT, DATE, DATETIME, DAY, DECIMAL, DOUBLE, DUPLICATE, END, ENGINE, ESCAPE,
	EXPANSION, FIRST, FLOAT, FOLLOWING, FULL, HOUR, INT, INTEGER, JSON, LANGUAGE,
	LAST, LOCKED, MICROSECOND, MINUTE, MODE, MONTH, NOWAIT, NULLS, OFFSET, PRECEDING,
	QUARTER, QUERY, REAL, ROLLUP, SECOND, SEPARATOR, SHARE, SIGNED, SQL_TSI_DAY,
	SQL_TSI_HOUR, SQL_TSI_MINUTE, SQL_TSI_MONTH, SQL_TSI_QUARTER, SQL_TSI_SECOND,
	SQL_TSI_WEEK, SQL_TSI_YEAR, TEXT, TIME, TIMESTAMP, TINYINT, UNBOUNDED, UNKNOWN,
	VARCHAR, WAIT, WEEK, YEAR,
}

// Ranking and offset window functions.
var windowFunctions = []Token{
	CUME_DIST, DENSE_RANK, FIRST_VALUE, LAG, LAST_VALUE, LEAD, NTH_VALUE, NTILE,
	PERCENT_RANK, RANK, ROW_NUMBER,
}

// Compound INTERVAL units.
var compoundUnits = []Token{
	DAY_HOUR, DAY_MICROSECOND, DAY_MINUTE, DAY_SECOND, HOUR_MICROSECOND,
	HOUR_MINUTE, HOUR_SECOND, MINUTE_MICROSECOND, MINUTE_SECOND,
	SECOND_MICROSECOND, YEAR_MONTH,
}

// OceanBase table options and lock spellings.
var oceanbaseOnly = []Token{
	BLOCK_SIZE, NO_WAIT, PCTFREE, REPLICA_NUM, TABLET_SIZE, USE_BLOOM_FILTER,
}

func concat(lists ...[]Token) []Token {
	var out []Token
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func init() {
	genericTable = newTable(Generic, map[Class][]Token{
		Reserved:    concat(sharedReserved, windowFunctions, compoundUnits, []Token{GROUPS, ZONE_TYPE}),
		NonReserved: sharedNonReserved,
		NotKeyword:  sharedSoft,
	})
	// OceanBase only distinguishes reserved from non-reserved.
	oceanbaseTable = newTable(OceanBase, map[Class][]Token{
		Reserved: sharedReserved,
		NonReserved: concat(sharedNonReserved, sharedSoft, windowFunctions, compoundUnits,
			oceanbaseOnly, []Token{GROUPS, ZONE_TYPE}),
	})
}
