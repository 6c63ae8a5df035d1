// Package pdfpress is a process-orchestration client for an external
// document-formatting engine. It builds the engine's command line from a
// structured option set, runs the engine as a child process with all three
// standard streams redirected, and parses the structured log the engine
// writes on its diagnostic stream into messages, data records, and a
// success/failure outcome.
//
// # Core Types
//
//   - [Converter] — option aggregate plus the conversion operation family
//   - [Options] — one field or setter per recognized engine flag
//   - [Invocation] — an immutable argument vector, rebuilt per call
//   - [Result] — outcome flag plus ordered diagnostic collections
//
// Subpackages carry the two self-contained algorithms: [shellarg] escapes
// tokens for shell-interpreted command lines, and [enginelog] parses the
// engine's tagged diagnostic line protocol.
//
// # Quick Start
//
//	conv := pdfpress.New("/usr/bin/docpress")
//	conv.AddStyleSheet("print.css")
//	conv.Title = "Quarterly Report"
//
//	res, err := conv.ConvertToFile(ctx, "report.pdf", "report.html")
//	if err != nil {
//	    log.Fatal(err) // engine could not be started
//	}
//	if !res.Success {
//	    for _, m := range res.Errors() {
//	        fmt.Println(m.Location, m.Text)
//	    }
//	}
//
// A failed conversion (invalid CSS, missing resources) is a normal outcome
// reported through [Result.Success] and [Result.Messages]; only failures to
// start the engine at all surface as errors ([LaunchError], [ErrUnavailable]).
//
// Each conversion call owns its own process and pipes, so independent
// conversions may run concurrently from separate Converters.
//
// [shellarg]: github.com/pressworks/pdfpress/shellarg
// [enginelog]: github.com/pressworks/pdfpress/enginelog
package pdfpress
