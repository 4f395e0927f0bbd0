// Package token defines the lexical tokens shared by the MySQL and OceanBase dialects.
package token

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	COMMENT

	// Literals
	IDENT            // identifiers
	BACKQUOTED_IDENT // `name`
	QUOTED_IDENT     // "name"
	DIGIT_IDENT      // identifiers starting with digits like 1abc
	NUMBER           // integer literals
	FRACTION         // decimal or exponent literals
	HEXNUM           // 0x1F or X'1F'
	BITNUM           // 0b101 or B'101'
	STRING           // 'string'
	SESSION_VAR      // @name
	SYSTEM_VAR       // @@name

	// Operators
	ASSIGN       // :=
	EQ           // =
	NULL_SAFE_EQ // <=>
	NEQ          // != or <>
	LT           // <
	LTE          // <=
	GT           // >
	GTE          // >=
	PLUS         // +
	MINUS        // -
	ASTERISK     // *
	SLASH        // /
	PERCENT      // %
	PIPES        // ||
	ANDAND       // &&
	BIT_OR       // |
	BIT_AND      // &
	CARET        // ^
	TILDE        // ~
	SHL          // <<
	SHR          // >>
	BANG         // !

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	QUESTION  // ?

	// Keywords
	keyword_beg
	AGAINST
	ALL
	AND
	ANY
	ARRAY
	AS
	ASC
	AUTO_INCREMENT
	AVG
	BETWEEN
	BIGINT
	BINARY
	BIT_AND_FUNC
	BIT_OR_FUNC
	BIT_XOR_FUNC
	BLOCK_SIZE
	BOOLEAN
	BOTH
	BY
	CASE
	CAST
	CHAR
	CHARACTER
	CHARSET
	COLLATE
	COMMENT_KW
	COMMIT
	COMPRESSION
	CONVERT
	COUNT
	CREATE
	CROSS
	CUME_DIST
	CURRENT
	CURRENT_DATE
	CURRENT_TIME
	CURRENT_TIMESTAMP
	DATE
	DATETIME
	DAY
	DAY_HOUR
	DAY_MICROSECOND
	DAY_MINUTE
	DAY_SECOND
	DECIMAL
	DEFAULT
	DELETE
	DENSE_RANK
	DESC
	DISTINCT
	DISTINCTROW
	DIV
	DOUBLE
	DUAL
	DUPLICATE
	ELSE
	END
	ENGINE
	ESCAPE
	EXCEPT
	EXISTS
	EXPANSION
	FALSE
	FIRST
	FIRST_VALUE
	FLOAT
	FOLLOWING
	FOR
	FORCE
	FROM
	FULL
	GROUP
	GROUP_CONCAT
	GROUPS
	HAVING
	HOUR
	HOUR_MICROSECOND
	HOUR_MINUTE
	HOUR_SECOND
	IF
	IGNORE
	IN
	INDEX
	INNER
	INSERT
	INT
	INTEGER
	INTERSECT
	INTERVAL
	INTO
	IS
	JOIN
	JSON
	KEY
	LAG
	LANGUAGE
	LAST
	LAST_VALUE
	LEAD
	LEADING
	LEFT
	LIKE
	LIMIT
	LOCALTIME
	LOCALTIMESTAMP
	LOCK
	LOCKED
	MATCH
	MAX
	MEMBER
	MICROSECOND
	MIN
	MINUTE
	MINUTE_MICROSECOND
	MINUTE_SECOND
	MOD
	MODE
	MONTH
	NATURAL
	NO_WAIT
	NOT
	NOWAIT
	NTH_VALUE
	NTILE
	NULL
	NULLS
	OF
	OFFSET
	ON
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	PCTFREE
	PERCENT_RANK
	PRECEDING
	PRIMARY
	QUARTER
	QUERY
	RANGE
	RANK
	REAL
	RECURSIVE
	REGEXP
	REPLICA_NUM
	RESPECT
	RIGHT
	RLIKE
	ROLLUP
	ROW
	ROW_NUMBER
	ROWS
	SECOND
	SECOND_MICROSECOND
	SELECT
	SEPARATOR
	SET
	SHARE
	SIGNED
	SKIP
	SOME
	SOUNDS
	SQL_TSI_DAY
	SQL_TSI_HOUR
	SQL_TSI_MINUTE
	SQL_TSI_MONTH
	SQL_TSI_QUARTER
	SQL_TSI_SECOND
	SQL_TSI_WEEK
	SQL_TSI_YEAR
	STD
	STDDEV
	STDDEV_POP
	STDDEV_SAMP
	SUBSTR
	SUBSTRING
	SUM
	TABLE
	TABLET_SIZE
	TEXT
	THEN
	TIME
	TIMESTAMP
	TINYINT
	TRAILING
	TRIM
	TRUE
	UNBOUNDED
	UNION
	UNIQUE
	UNKNOWN
	UNSIGNED
	UPDATE
	USE
	USE_BLOOM_FILTER
	USING
	VALUES
	VAR_POP
	VAR_SAMP
	VARCHAR
	VARIANCE
	WAIT
	WEEK
	WHEN
	WHERE
	WINDOW
	WITH
	XOR
	YEAR
	YEAR_MONTH
	ZONE_TYPE
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:            "IDENT",
	BACKQUOTED_IDENT: "BACKQUOTED_IDENT",
	QUOTED_IDENT:     "QUOTED_IDENT",
	DIGIT_IDENT:      "DIGIT_IDENT",
	NUMBER:           "NUMBER",
	FRACTION:         "FRACTION",
	HEXNUM:           "HEXNUM",
	BITNUM:           "BITNUM",
	STRING:           "STRING",
	SESSION_VAR:      "SESSION_VAR",
	SYSTEM_VAR:       "SYSTEM_VAR",

	ASSIGN:       ":=",
	EQ:           "=",
	NULL_SAFE_EQ: "<=>",
	NEQ:          "<>",
	LT:           "<",
	LTE:          "<=",
	GT:           ">",
	GTE:          ">=",
	PLUS:         "+",
	MINUS:        "-",
	ASTERISK:     "*",
	SLASH:        "/",
	PERCENT:      "%",
	PIPES:        "||",
	ANDAND:       "&&",
	BIT_OR:       "|",
	BIT_AND:      "&",
	CARET:        "^",
	TILDE:        "~",
	SHL:          "<<",
	SHR:          ">>",
	BANG:         "!",

	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	QUESTION:  "?",

	AGAINST:            "AGAINST",
	ALL:                "ALL",
	AND:                "AND",
	ANY:                "ANY",
	ARRAY:              "ARRAY",
	AS:                 "AS",
	ASC:                "ASC",
	AUTO_INCREMENT:     "AUTO_INCREMENT",
	AVG:                "AVG",
	BETWEEN:            "BETWEEN",
	BIGINT:             "BIGINT",
	BINARY:             "BINARY",
	BIT_AND_FUNC:       "BIT_AND",
	BIT_OR_FUNC:        "BIT_OR",
	BIT_XOR_FUNC:       "BIT_XOR",
	BLOCK_SIZE:         "BLOCK_SIZE",
	BOOLEAN:            "BOOLEAN",
	BOTH:               "BOTH",
	BY:                 "BY",
	CASE:               "CASE",
	CAST:               "CAST",
	CHAR:               "CHAR",
	CHARACTER:          "CHARACTER",
	CHARSET:            "CHARSET",
	COLLATE:            "COLLATE",
	COMMENT_KW:         "COMMENT",
	COMMIT:             "COMMIT",
	COMPRESSION:        "COMPRESSION",
	CONVERT:            "CONVERT",
	COUNT:              "COUNT",
	CREATE:             "CREATE",
	CROSS:              "CROSS",
	CUME_DIST:          "CUME_DIST",
	CURRENT:            "CURRENT",
	CURRENT_DATE:       "CURRENT_DATE",
	CURRENT_TIME:       "CURRENT_TIME",
	CURRENT_TIMESTAMP:  "CURRENT_TIMESTAMP",
	DATE:               "DATE",
	DATETIME:           "DATETIME",
	DAY:                "DAY",
	DAY_HOUR:           "DAY_HOUR",
	DAY_MICROSECOND:    "DAY_MICROSECOND",
	DAY_MINUTE:         "DAY_MINUTE",
	DAY_SECOND:         "DAY_SECOND",
	DECIMAL:            "DECIMAL",
	DEFAULT:            "DEFAULT",
	DELETE:             "DELETE",
	DENSE_RANK:         "DENSE_RANK",
	DESC:               "DESC",
	DISTINCT:           "DISTINCT",
	DISTINCTROW:        "DISTINCTROW",
	DIV:                "DIV",
	DOUBLE:             "DOUBLE",
	DUAL:               "DUAL",
	DUPLICATE:          "DUPLICATE",
	ELSE:               "ELSE",
	END:                "END",
	ENGINE:             "ENGINE",
	ESCAPE:             "ESCAPE",
	EXCEPT:             "EXCEPT",
	EXISTS:             "EXISTS",
	EXPANSION:          "EXPANSION",
	FALSE:              "FALSE",
	FIRST:              "FIRST",
	FIRST_VALUE:        "FIRST_VALUE",
	FLOAT:              "FLOAT",
	FOLLOWING:          "FOLLOWING",
	FOR:                "FOR",
	FORCE:              "FORCE",
	FROM:               "FROM",
	FULL:               "FULL",
	GROUP:              "GROUP",
	GROUP_CONCAT:       "GROUP_CONCAT",
	GROUPS:             "GROUPS",
	HAVING:             "HAVING",
	HOUR:               "HOUR",
	HOUR_MICROSECOND:   "HOUR_MICROSECOND",
	HOUR_MINUTE:        "HOUR_MINUTE",
	HOUR_SECOND:        "HOUR_SECOND",
	IF:                 "IF",
	IGNORE:             "IGNORE",
	IN:                 "IN",
	INDEX:              "INDEX",
	INNER:              "INNER",
	INSERT:             "INSERT",
	INT:                "INT",
	INTEGER:            "INTEGER",
	INTERSECT:          "INTERSECT",
	INTERVAL:           "INTERVAL",
	INTO:               "INTO",
	IS:                 "IS",
	JOIN:               "JOIN",
	JSON:               "JSON",
	KEY:                "KEY",
	LAG:                "LAG",
	LANGUAGE:           "LANGUAGE",
	LAST:               "LAST",
	LAST_VALUE:         "LAST_VALUE",
	LEAD:               "LEAD",
	LEADING:            "LEADING",
	LEFT:               "LEFT",
	LIKE:               "LIKE",
	LIMIT:              "LIMIT",
	LOCALTIME:          "LOCALTIME",
	LOCALTIMESTAMP:     "LOCALTIMESTAMP",
	LOCK:               "LOCK",
	LOCKED:             "LOCKED",
	MATCH:              "MATCH",
	MAX:                "MAX",
	MEMBER:             "MEMBER",
	MICROSECOND:        "MICROSECOND",
	MIN:                "MIN",
	MINUTE:             "MINUTE",
	MINUTE_MICROSECOND: "MINUTE_MICROSECOND",
	MINUTE_SECOND:      "MINUTE_SECOND",
	MOD:                "MOD",
	MODE:               "MODE",
	MONTH:              "MONTH",
	NATURAL:            "NATURAL",
	NO_WAIT:            "NO_WAIT",
	NOT:                "NOT",
	NOWAIT:             "NOWAIT",
	NTH_VALUE:          "NTH_VALUE",
	NTILE:              "NTILE",
	NULL:               "NULL",
	NULLS:              "NULLS",
	OF:                 "OF",
	OFFSET:             "OFFSET",
	ON:                 "ON",
	OR:                 "OR",
	ORDER:              "ORDER",
	OUTER:              "OUTER",
	OVER:               "OVER",
	PARTITION:          "PARTITION",
	PCTFREE:            "PCTFREE",
	PERCENT_RANK:       "PERCENT_RANK",
	PRECEDING:          "PRECEDING",
	PRIMARY:            "PRIMARY",
	QUARTER:            "QUARTER",
	QUERY:              "QUERY",
	RANGE:              "RANGE",
	RANK:               "RANK",
	REAL:               "REAL",
	RECURSIVE:          "RECURSIVE",
	REGEXP:             "REGEXP",
	REPLICA_NUM:        "REPLICA_NUM",
	RESPECT:            "RESPECT",
	RIGHT:              "RIGHT",
	RLIKE:              "RLIKE",
	ROLLUP:             "ROLLUP",
	ROW:                "ROW",
	ROW_NUMBER:         "ROW_NUMBER",
	ROWS:               "ROWS",
	SECOND:             "SECOND",
	SECOND_MICROSECOND: "SECOND_MICROSECOND",
	SELECT:             "SELECT",
	SEPARATOR:          "SEPARATOR",
	SET:                "SET",
	SHARE:              "SHARE",
	SIGNED:             "SIGNED",
	SKIP:               "SKIP",
	SOME:               "SOME",
	SOUNDS:             "SOUNDS",
	SQL_TSI_DAY:        "SQL_TSI_DAY",
	SQL_TSI_HOUR:       "SQL_TSI_HOUR",
	SQL_TSI_MINUTE:     "SQL_TSI_MINUTE",
	SQL_TSI_MONTH:      "SQL_TSI_MONTH",
	SQL_TSI_QUARTER:    "SQL_TSI_QUARTER",
	SQL_TSI_SECOND:     "SQL_TSI_SECOND",
	SQL_TSI_WEEK:       "SQL_TSI_WEEK",
	SQL_TSI_YEAR:       "SQL_TSI_YEAR",
	STD:                "STD",
	STDDEV:             "STDDEV",
	STDDEV_POP:         "STDDEV_POP",
	STDDEV_SAMP:        "STDDEV_SAMP",
	SUBSTR:             "SUBSTR",
	SUBSTRING:          "SUBSTRING",
	SUM:                "SUM",
	TABLE:              "TABLE",
	TABLET_SIZE:        "TABLET_SIZE",
	TEXT:               "TEXT",
	THEN:               "THEN",
	TIME:               "TIME",
	TIMESTAMP:          "TIMESTAMP",
	TINYINT:            "TINYINT",
	TRAILING:           "TRAILING",
	TRIM:               "TRIM",
	TRUE:               "TRUE",
	UNBOUNDED:          "UNBOUNDED",
	UNION:              "UNION",
	UNIQUE:             "UNIQUE",
	UNKNOWN:            "UNKNOWN",
	UNSIGNED:           "UNSIGNED",
	UPDATE:             "UPDATE",
	USE:                "USE",
	USE_BLOOM_FILTER:   "USE_BLOOM_FILTER",
	USING:              "USING",
	VALUES:             "VALUES",
	VAR_POP:            "VAR_POP",
	VAR_SAMP:           "VAR_SAMP",
	VARCHAR:            "VARCHAR",
	VARIANCE:           "VARIANCE",
	WAIT:               "WAIT",
	WEEK:               "WEEK",
	WHEN:               "WHEN",
	WHERE:              "WHERE",
	WINDOW:             "WINDOW",
	WITH:               "WITH",
	XOR:                "XOR",
	YEAR:               "YEAR",
	YEAR_MONTH:         "YEAR_MONTH",
	ZONE_TYPE:          "ZONE_TYPE",
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return ""
}

// keywords maps every keyword spelling to its token, regardless of dialect.
// Dialect tables decide which of these a given dialect actually recognizes.
var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, keyword_end-keyword_beg)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		keywords[tokens[i]] = i
	}
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsLiteral returns true for literal value tokens.
func (tok Token) IsLiteral() bool {
	switch tok {
	case NUMBER, FRACTION, HEXNUM, BITNUM, STRING:
		return true
	}
	return false
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset (0-based)
	Line   int // line number (1-based)
	Column int // column number (1-based, in runes)
}
