package shellarg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_Posix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "a.css", "'a.css'"},
		{"empty", "", "''"},
		{"spaces", "a b", "'a b'"},
		{"single quote", "it's", `'it'\''s'`},
		{"only quotes", "''", `''\'''\'''`},
		{"metacharacters", "$(rm -rf /)", `'$(rm -rf /)'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

// Runs of N backslashes before an embedded quote must become 2N+1
// backslashes before the escaped quote.
func TestQuoteWindows_BackslashQuoteRuns(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, `a\"b`},
		{1, `a\\\"b`},
		{2, `a\\\\\"b`},
		{5, `a\\\\\\\\\\\"b`},
	}
	for _, tt := range tests {
		in := "a" + strings.Repeat(`\`, tt.n) + `"b`
		got := QuoteWindows(in, false, false)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

// A trailing backslash run must double when the token is quoted, so the
// closing quote survives.
func TestQuoteWindows_TrailingBackslashes(t *testing.T) {
	tests := []struct {
		k    int
		want string
	}{
		{0, `"a b"`},
		{1, `"a b\\"`},
		{3, `"a b\\\\\\"`},
	}
	for _, tt := range tests {
		in := "a b" + strings.Repeat(`\`, tt.k)
		got := QuoteWindows(in, false, false)
		assert.Equal(t, tt.want, got, "k=%d", tt.k)
	}
}

func TestQuoteWindows(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		escapeMeta bool
		isExe      bool
		want       string
	}{
		{"plain", "in.html", false, false, "in.html"},
		{"empty is quoted", "", false, false, `""`},
		{"whitespace quoted", "my file.html", false, false, `"my file.html"`},
		{"tab quoted", "a\tb", false, false, "\"a\tb\""},
		{"vertical tab quoted", "a\vb", false, false, "\"a\vb\""},
		{"carriage return quoted", "a\rb", false, false, "\"a\rb\""},
		{"form feed quoted", "a\fb", false, false, "\"a\fb\""},
		{"trailing backslash unquoted token", `C:\dir\`, false, false, `C:\dir\`},
		{"meta chars without escapeMeta", "a&b", false, false, "a&b"},
		{"meta chars force quoting", "a&b", true, false, `"a&b"`},
		{"percent expansion caret escaped", "%PATH%", true, false, `^%PATH^%`},
		{"embedded quote caret escaped", `a"b`, true, false, `a\^"b`},
		{"quotes and percent", `%TEMP%\"x`, true, false, `^%TEMP^%\\\^"x`},
		{"exe with spaces no meta", `C:\Program Files\engine.exe`, true, true, `"C:\Program Files\engine.exe"`},
		{"exe without spaces meta chars", `eng(1)`, true, true, `"eng(1)"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteWindows(tt.in, tt.escapeMeta, tt.isExe))
		})
	}
}

// The executable-name suppression applies only when the token needs quoting
// and carries no embedded quotes; a quoted exe token must never grow carets.
func TestQuoteWindows_ExecutableSuppression(t *testing.T) {
	got := QuoteWindows(`C:\Program Files\docpress.exe`, true, true)
	assert.NotContains(t, got, "^")
	assert.Equal(t, `"C:\Program Files\docpress.exe"`, got)

	// Same token as a non-exe argument: quoting is enough too (no meta
	// trigger beyond whitespace), so output matches.
	asArg := QuoteWindows(`C:\Program Files\docpress.exe`, true, false)
	assert.Equal(t, got, asArg)
}

// Quote wrapping happens before caret escaping, so wrapping quotes are
// themselves caret-escaped when meta escaping applies.
func TestQuoteWindows_QuoteThenCaretOrder(t *testing.T) {
	got := QuoteWindows(`a "b" %V%`, true, false)
	assert.True(t, strings.HasPrefix(got, `^"`), "got %q", got)
	assert.True(t, strings.HasSuffix(got, `^"`), "got %q", got)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, `'docpress' '--verbose' 'in file.html'`,
		Join([]string{"docpress", "--verbose", "in file.html"}))
}

func TestJoinWindows(t *testing.T) {
	got := JoinWindows([]string{`C:\Program Files\engine.exe`, "--verbose", "in file.html"}, true)
	assert.Equal(t, `"C:\Program Files\engine.exe" --verbose "in file.html"`, got)
}
