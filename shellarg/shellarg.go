// Package shellarg escapes strings for use as single command-line arguments.
//
// Two escaping dialects are provided:
//
//   - [Quote] — POSIX shells: single-quote wrapping, safe for any byte
//     sequence regardless of context.
//   - [QuoteWindows] — the Windows command interpreter (cmd.exe), whose
//     quoting rules interact with argument splitting, backslash runs, and
//     environment-variable expansion. The algorithm mirrors the quoting
//     behavior the engine's own launcher expects.
//
// On every platform Go supports, os/exec hands the child an argv array, so
// conversion tokens never pass through a shell. These functions exist for the
// rendering surface: building a faithful single-string command line for debug
// logging, or for callers who must hand the invocation to a shell themselves.
package shellarg

import (
	"regexp"
	"strings"
)

// metaChars are the cmd.exe metacharacters that require caret escaping when a
// command line is interpreted by the shell rather than passed as argv.
const metaChars = `"^&|<>()%`

// quoteTriggers are the cmd.exe metacharacters whose presence forces quoting
// (but not caret escaping — double quotes neutralize them).
const quoteTriggers = `^&|<>()`

// whitespaceChars force quoting. Argument splitting only delimits on space
// and tab, but any whitespace inside an unquoted token is unsafe to pass
// through verbatim.
const whitespaceChars = " \t\n\v\f\r"

// envRef matches a %name%-shaped substring that cmd.exe would expand.
var envRef = regexp.MustCompile(`%\w+%`)

// Quote escapes raw for use as one argument word in a POSIX shell.
// The value is wrapped in single quotes, with each embedded single quote
// emitted as '\'' (close quote, escaped quote, reopen quote). This is safe
// independent of shell metacharacters in raw.
func Quote(raw string) string {
	return "'" + strings.ReplaceAll(raw, "'", `'\''`) + "'"
}

// QuoteWindows escapes raw for use as one argument on a Windows command line.
//
// escapeMeta requests defensive caret escaping of cmd.exe metacharacters,
// needed when the assembled command line will be interpreted by the shell
// (cmd /c) rather than passed to CreateProcess directly. isExe marks the
// executable-name token, which must never be caret-escaped when it only
// needs quoting: a caret inside the quoted program name would break
// argument splitting.
func QuoteWindows(raw string, escapeMeta, isExe bool) string {
	needQuote := raw == "" || strings.ContainsAny(raw, whitespaceChars)

	escaped, quoteSubs := escapeEmbeddedQuotes(raw)

	needMeta := false
	if escapeMeta {
		if quoteSubs > 0 || envRef.MatchString(escaped) {
			needMeta = true
		}
		if isExe && quoteSubs == 0 && needQuote {
			// Quoting alone protects the program name; caret escaping a
			// quoted executable token breaks argument splitting.
			needMeta = false
		} else if strings.ContainsAny(escaped, quoteTriggers) {
			needQuote = true
		}
	}

	if needQuote {
		escaped = `"` + doubleTrailingBackslashes(escaped) + `"`
	}
	if needMeta {
		escaped = caretEscape(escaped)
	}
	return escaped
}

// escapeEmbeddedQuotes rewrites each run of N backslashes followed by a
// double quote as 2N+1 backslashes followed by the quote, so the backslashes
// still read as literal backslashes and the quote reads as a literal quote.
// Returns the rewritten string and the number of quotes rewritten.
func escapeEmbeddedQuotes(s string) (string, int) {
	var b strings.Builder
	subs := 0
	run := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			run++
		case '"':
			b.WriteString(strings.Repeat(`\`, 2*run+1))
			b.WriteByte('"')
			run = 0
			subs++
		default:
			b.WriteString(strings.Repeat(`\`, run))
			run = 0
			b.WriteByte(s[i])
		}
	}
	b.WriteString(strings.Repeat(`\`, run))
	return b.String(), subs
}

// doubleTrailingBackslashes doubles a trailing backslash run so the run
// cannot escape the closing quote added around it.
func doubleTrailingBackslashes(s string) string {
	trimmed := strings.TrimRight(s, `\`)
	run := len(s) - len(trimmed)
	if run == 0 {
		return s
	}
	return trimmed + strings.Repeat(`\`, 2*run)
}

// caretEscape prefixes every cmd.exe metacharacter with a caret. Applied
// after quote wrapping, so the wrapping quotes are themselves escaped.
func caretEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(metaChars, s[i]) >= 0 {
			b.WriteByte('^')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Join renders args as a single POSIX shell command line, quoting each token.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}

// JoinWindows renders args as a single Windows command line. The first token
// is treated as the executable name. escapeMeta requests caret escaping for
// command lines that will pass through cmd.exe.
func JoinWindows(args []string, escapeMeta bool) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = QuoteWindows(a, escapeMeta, i == 0)
	}
	return strings.Join(quoted, " ")
}
