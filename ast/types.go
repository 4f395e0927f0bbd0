package ast

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/obsql/token"
)

// UnspecifiedLength marks a FieldType length or decimal that was not given.
const UnspecifiedLength = -1

// SQLType is the type tag of a FieldType.
type SQLType int

const (
	TypeUnknown SQLType = iota
	TypeBinary
	TypeChar
	TypeDate
	TypeYear
	TypeDatetime
	TypeDecimal
	TypeTime
	TypeInteger // SIGNED [INTEGER], UNSIGNED [INTEGER] and INT
	TypeJSON
	TypeDouble
	TypeFloat
	TypeReal
	TypeTinyInt
	TypeBigInt
	TypeVarchar
	TypeTimestamp
	TypeText
	TypeBoolean
)

var sqlTypeNames = [...]string{
	TypeUnknown:   "UNKNOWN",
	TypeBinary:    "BINARY",
	TypeChar:      "CHAR",
	TypeDate:      "DATE",
	TypeYear:      "YEAR",
	TypeDatetime:  "DATETIME",
	TypeDecimal:   "DECIMAL",
	TypeTime:      "TIME",
	TypeInteger:   "INTEGER",
	TypeJSON:      "JSON",
	TypeDouble:    "DOUBLE",
	TypeFloat:     "FLOAT",
	TypeReal:      "REAL",
	TypeTinyInt:   "TINYINT",
	TypeBigInt:    "BIGINT",
	TypeVarchar:   "VARCHAR",
	TypeTimestamp: "TIMESTAMP",
	TypeText:      "TEXT",
	TypeBoolean:   "BOOLEAN",
}

func (t SQLType) String() string {
	if t >= 0 && int(t) < len(sqlTypeNames) {
		return sqlTypeNames[t]
	}
	return fmt.Sprintf("SQLType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t SQLType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Signedness records an explicit SIGNED or UNSIGNED qualifier.
type Signedness string

const (
	SignUnspecified Signedness = ""
	Signed          Signedness = "SIGNED"
	Unsigned        Signedness = "UNSIGNED"
)

// FieldType is a CAST/CONVERT target or a column type.
type FieldType struct {
	Position token.Position `json:"-"`
	Type     SQLType        `json:"type"`
	Name     string         `json:"name,omitempty"` // type name as written, upper case; empty for bare SIGNED/UNSIGNED
	Length   int            `json:"length"`
	Decimal  int            `json:"decimal"`
	Sign     Signedness     `json:"sign,omitempty"`
	Charset  string         `json:"charset,omitempty"`
	Binary   bool           `json:"binary,omitempty"` // CHAR(n) BINARY
	Array    bool           `json:"array,omitempty"`  // CAST(... AS type ARRAY)
}

func (f *FieldType) Pos() token.Position { return f.Position }

// NewFieldType returns a FieldType with unspecified length and decimal.
func NewFieldType(pos token.Position, t SQLType, name string) *FieldType {
	return &FieldType{
		Position: pos,
		Type:     t,
		Name:     strings.ToUpper(name),
		Length:   UnspecifiedLength,
		Decimal:  UnspecifiedLength,
	}
}

// String renders the type the way it would be written in a CAST.
func (f *FieldType) String() string {
	var sb strings.Builder
	sb.WriteString(string(f.Sign))
	if f.Sign != SignUnspecified && f.Name != "" {
		sb.WriteString(" ")
	}
	sb.WriteString(f.Name)
	switch {
	case f.Length != UnspecifiedLength && f.Decimal != UnspecifiedLength:
		fmt.Fprintf(&sb, "(%d, %d)", f.Length, f.Decimal)
	case f.Length != UnspecifiedLength:
		fmt.Fprintf(&sb, "(%d)", f.Length)
	}
	if f.Binary {
		sb.WriteString(" BINARY")
	}
	if f.Charset != "" {
		sb.WriteString(" CHARACTER SET ")
		sb.WriteString(f.Charset)
	}
	if f.Array {
		sb.WriteString(" ARRAY")
	}
	return sb.String()
}
