package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	src := "SELECT a\nFROM t\r\nWHERE x"

	loc, ok := Locate(src, 0)
	require.True(t, ok)
	assert.Equal(t, Location{Line: 1, Column: 0, Text: "SELECT a"}, loc)

	loc, ok = Locate(src, 14)
	require.True(t, ok)
	assert.Equal(t, Location{Line: 2, Column: 5, Text: "FROM t"}, loc)

	loc, ok = Locate(src, 17)
	require.True(t, ok)
	assert.Equal(t, Location{Line: 3, Column: 0, Text: "WHERE x"}, loc)
}

func TestLocateOutOfRange(t *testing.T) {
	_, ok := Locate("SELECT", 6)
	assert.False(t, ok, "end of input has no character to point at")
	_, ok = Locate("SELECT", -1)
	assert.False(t, ok)
	_, ok = Locate("", 0)
	assert.False(t, ok)
}

func TestCaret(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		text   string
		want   string
	}{
		{"start", "FROM FROM t", 0, "FROM", "^^^^"},
		{"indented", "SELECT FROM FROM t", 12, "FROM", "            ^^^^"},
		{"empty token", "SELECT", 3, "", "   ^"},
		{"tabs kept", "\tSELECT\t?", 8, "?", "\t      \t^"},
		{"wide runes in indent", "SELECT '中文' x", 12, "x", "              ^"},
		{"wide token", "SELECT 中文", 7, "中文", "       ^^^^"},
		{"multiline token", "SELECT 'a", 7, "'a\nb'", "       ^^"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Caret(tc.line, tc.column, tc.text))
		})
	}
}

func TestRender(t *testing.T) {
	line, caret, ok := Render("SELECT 1;\nSELECT FROM FROM t", 22, "FROM")
	require.True(t, ok)
	assert.Equal(t, "SELECT FROM FROM t", line)
	assert.Equal(t, "            ^^^^", caret)

	_, _, ok = Render("SELECT", 6, "")
	assert.False(t, ok)
}
