// Package enginelog parses the structured diagnostic protocol emitted by the
// formatting engine on its error stream.
//
// The protocol is line oriented, UTF-8, one record per line, classified by a
// four-character tag prefix:
//
//	fin|success
//	fin|failure
//	msg|err|<location>|<text>
//	msg|wrn|<location>|<text>
//	msg|inf|<location>|<text>
//	dat|<key>|<value>
//
// A fin line is terminal: the parser stops consuming and reports the overall
// outcome. Message text and data values may themselves contain pipe
// characters, so field splitting is capped. Lines outside the tagged format
// (the engine writes plain text when structured logging fails to initialize)
// are recovered through a plain-text prefix fallback.
package enginelog

import (
	"bufio"
	"io"
	"strings"
)

// Severity classifies a diagnostic message.
type Severity string

const (
	// SeverityError is an engine error message (tag "err").
	SeverityError Severity = "error"

	// SeverityWarning is an engine warning message (tag "wrn").
	SeverityWarning Severity = "warning"

	// SeverityInfo is an engine informational message (tag "inf").
	SeverityInfo Severity = "info"

	// SeverityDebug is used for untagged or unrecognized output recovered
	// through the fallback path.
	SeverityDebug Severity = "debug"
)

// Message is one parsed diagnostic record from a msg| line (or the fallback
// path). Messages are produced in emission order; no ordering by severity is
// implied.
type Message struct {
	// Severity classifies the message.
	Severity Severity

	// Location identifies the source of the message (typically a filename
	// or filename:line). Empty for fallback messages.
	Location string

	// Text is the message body. May contain pipe characters.
	Text string
}

// Data is one parsed dat| record: an opaque key/value pair passed through to
// the caller.
type Data struct {
	Key   string
	Value string
}

// Result is the accumulated outcome of one diagnostic stream.
type Result struct {
	// Success reports whether the engine emitted fin|success. A stream
	// that ends without any fin line, or with any other fin token, is not
	// a success.
	Success bool

	// Finished reports whether a fin| line was seen at all. When false,
	// the stream ended early (engine crash, pipe closed) and Success is
	// necessarily false.
	Finished bool

	// Messages holds the parsed diagnostic messages in emission order.
	Messages []Message

	// Data holds the parsed dat records in emission order.
	Data []Data
}

// Fallback prefixes for unstructured diagnostics, written by the engine when
// structured logging itself is unavailable.
const (
	plainErrorPrefix   = "error: "
	plainWarningPrefix = "warning: "
)

const finSuccess = "success"

// Parse consumes the diagnostic stream from r until a terminal fin| line or
// EOF and returns the accumulated result. After a fin line, no further bytes
// are read from r — callers draining an OS pipe must discard the remainder
// themselves. A stream that ends without a fin line yields Success=false
// with all records seen before EOF preserved; that is a defined degraded
// outcome, not an error. The returned error is non-nil only for read
// failures on r.
func Parse(r io.Reader) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for scanner.Scan() {
		if res.consumeLine(scanner.Text()) {
			return res, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// maxLineBytes bounds a single diagnostic line. Engine messages quote
// document content, so lines can be long, but never unbounded.
const maxLineBytes = 1 << 20

// consumeLine applies one line to the result, returning true when the line
// is terminal (fin|).
func (res *Result) consumeLine(line string) bool {
	if len(line) >= 4 {
		switch line[:4] {
		case "fin|":
			res.Finished = true
			res.Success = line[4:] == finSuccess
			return true
		case "msg|":
			res.appendMessage(line[4:])
			return false
		case "dat|":
			res.appendData(line[4:])
			return false
		}
	}
	res.appendFallback(line)
	return false
}

// appendMessage parses the remainder of a msg| line. The split is capped at
// three fields so pipes inside the message text survive.
func (res *Result) appendMessage(rest string) {
	fields := strings.SplitN(rest, "|", 3)
	msg := Message{Severity: mapSeverity(fields[0])}
	if len(fields) > 1 {
		msg.Location = fields[1]
	}
	if len(fields) > 2 {
		msg.Text = fields[2]
	}
	res.Messages = append(res.Messages, msg)
}

// appendData parses the remainder of a dat| line. The split is capped at two
// fields so pipes inside the value survive.
func (res *Result) appendData(rest string) {
	fields := strings.SplitN(rest, "|", 2)
	d := Data{Key: fields[0]}
	if len(fields) > 1 {
		d.Value = fields[1]
	}
	res.Data = append(res.Data, d)
}

// appendFallback recovers a line outside the tagged format. Two plain-text
// prefixes carry severity; everything else is recorded verbatim at debug
// severity so no engine output is silently dropped.
func (res *Result) appendFallback(line string) {
	switch {
	case strings.HasPrefix(line, plainErrorPrefix):
		res.Messages = append(res.Messages, Message{
			Severity: SeverityError,
			Text:     line[len(plainErrorPrefix):],
		})
	case strings.HasPrefix(line, plainWarningPrefix):
		res.Messages = append(res.Messages, Message{
			Severity: SeverityWarning,
			Text:     line[len(plainWarningPrefix):],
		})
	default:
		res.Messages = append(res.Messages, Message{
			Severity: SeverityDebug,
			Text:     line,
		})
	}
}

// mapSeverity maps a wire severity tag to a Severity. Unknown tags map to
// debug rather than failing: the tag set has grown before and older clients
// must keep accepting newer engines.
func mapSeverity(tag string) Severity {
	switch tag {
	case "err":
		return SeverityError
	case "wrn":
		return SeverityWarning
	case "inf":
		return SeverityInfo
	default:
		return SeverityDebug
	}
}
