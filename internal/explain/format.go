package explain

import (
	"math"
	"strconv"
	"strings"

	"github.com/sqlc-dev/obsql/ast"
)

// FormatFloat formats a float the way the dump prints DoubleLiteral values.
func FormatFloat(val float64) string {
	if math.IsInf(val, 1) {
		return "inf"
	}
	if math.IsInf(val, -1) {
		return "-inf"
	}
	if math.IsNaN(val) {
		return "nan"
	}
	// Scientific notation for very small or very large magnitudes
	absVal := math.Abs(val)
	if (absVal > 0 && absVal < 1e-6) || absVal >= 1e21 {
		s := strconv.FormatFloat(val, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		s = strings.Replace(s, "e+0", "e+", 1)
		s = strings.Replace(s, "e+", "e", 1)
		return s
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// quote renders s as a single quoted SQL string.
func quote(s string) string {
	return "'" + escapeStringLiteral(s) + "'"
}

func escapeStringLiteral(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\x00':
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

func names(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return "(" + strings.Join(list, ", ") + ")"
}

func qualified(name *ast.QualifiedName) string {
	if name == nil {
		return ""
	}
	return name.String()
}
