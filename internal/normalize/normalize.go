// Package normalize provides text normalization used to compare SQL
// statements that differ only in layout.
package normalize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	parenSpaceRegex   = regexp.MustCompile(`\(\s+|\s+\)`)
	commaSpaceRegex   = regexp.MustCompile(`\s*,\s*`)
	trailingSemiRegex = regexp.MustCompile(`[\s;]+$`)
)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// ForCompare strips comments and trailing semicolons, collapses whitespace
// and tightens the spacing around parentheses and commas.
func ForCompare(s string) string {
	s = Whitespace(StripComments(s))
	s = parenSpaceRegex.ReplaceAllStringFunc(s, strings.TrimSpace)
	s = commaSpaceRegex.ReplaceAllString(s, ", ")
	return trailingSemiRegex.ReplaceAllString(s, "")
}

// StripComments removes SQL comments from a query string.
// It handles:
//   - Line comments: -- followed by a space, and # to end of line
//   - Block comments: /* ... */, which do not nest
//
// Quoted strings and identifiers are copied unchanged.
func StripComments(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		switch {
		case s[i] == '#' || isDashComment(s, i):
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		case i+1 < len(s) && s[i] == '/' && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return result.String()
			}
			i += end + 4
			result.WriteByte(' ')
			continue
		case s[i] == '\'' || s[i] == '"' || s[i] == '`':
			i = copyQuoted(&result, s, i)
			continue
		}
		result.WriteByte(s[i])
		i++
	}

	return result.String()
}

// isDashComment reports whether a -- comment starts at i. The dashes must
// be followed by whitespace or the end of input.
func isDashComment(s string, i int) bool {
	if i+1 >= len(s) || s[i] != '-' || s[i+1] != '-' {
		return false
	}
	return i+2 == len(s) || s[i+2] == ' ' || s[i+2] == '\t' || s[i+2] == '\n' || s[i+2] == '\r'
}

// copyQuoted copies the quoted run starting at i and returns the index
// after its closing quote.
func copyQuoted(sb *strings.Builder, s string, i int) int {
	quote := s[i]
	sb.WriteByte(quote)
	i++
	for i < len(s) {
		c := s[i]
		sb.WriteByte(c)
		i++
		switch {
		case c == '\\' && quote != '`' && i < len(s):
			sb.WriteByte(s[i])
			i++
		case c == quote:
			if i < len(s) && s[i] == quote {
				sb.WriteByte(s[i])
				i++
				continue
			}
			return i
		}
	}
	return i
}
