// Package diag renders source excerpts with caret markers for error messages.
package diag

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Location is a resolved position inside a source text.
type Location struct {
	Line   int    // 1-based line number
	Column int    // 0-based column, in runes
	Text   string // the full line, without its newline
}

// Locate finds the line containing the byte offset. It reports false when
// the offset does not point at a character of the input, which includes
// the end of input.
func Locate(src string, offset int) (Location, bool) {
	if offset < 0 || offset >= len(src) {
		return Location{}, false
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	line := strings.TrimSuffix(src[start:end], "\r")
	return Location{
		Line:   strings.Count(src[:start], "\n") + 1,
		Column: utf8.RuneCountInString(src[start:offset]),
		Text:   line,
	}, true
}

// Caret returns a marker line for text. It is indented to column (a rune
// offset into line) and holds one caret per display cell of text, at least
// one. Tabs in the indent are kept so the marker lines up in a terminal,
// and East Asian wide runes count as two cells.
func Caret(line string, column int, text string) string {
	var sb strings.Builder
	i := 0
	for _, r := range line {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", cells(r)))
		}
		i++
	}
	n := 0
	for _, r := range text {
		if r == '\n' {
			break
		}
		n += cells(r)
	}
	if n == 0 {
		n = 1
	}
	sb.WriteString(strings.Repeat("^", n))
	return sb.String()
}

// Render locates offset in src and returns the offending line and its
// caret line. It reports false when the position cannot be resolved.
func Render(src string, offset int, text string) (line, caret string, ok bool) {
	loc, ok := Locate(src, offset)
	if !ok {
		return "", "", false
	}
	return loc.Text, Caret(loc.Text, loc.Column, text), true
}

func cells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
