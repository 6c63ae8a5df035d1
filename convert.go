package pdfpress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pressworks/pdfpress/enginelog"
)

// Result is the outcome of one conversion call. The caller owns it after
// return; nothing in it is shared with later calls.
type Result struct {
	// Success reports whether the engine declared the conversion
	// successful. An engine that ran but failed (missing glyphs, invalid
	// CSS, unreadable input) yields Success=false with explanatory
	// Messages; that is a normal outcome, not an error.
	Success bool

	// Messages holds the engine's diagnostics in emission order.
	Messages []enginelog.Message

	// Data holds the engine's dat records in emission order.
	Data []enginelog.Data
}

// Errors collects the error-severity messages from the result.
func (r *Result) Errors() []enginelog.Message {
	var out []enginelog.Message
	for _, m := range r.Messages {
		if m.Severity == enginelog.SeverityError {
			out = append(out, m)
		}
	}
	return out
}

// Converter invokes the formatting engine. Configure it through the embedded
// [Options] setters, then call conversion operations any number of times;
// each call reads the options once, builds a fresh command line, and runs
// one engine process. A Converter holds no state across calls beyond the
// options themselves, so independent conversions from separate goroutines
// need separate Converters only if they need different options.
type Converter struct {
	Options

	enginePath string
	log        zerolog.Logger
}

// ConverterOption configures a Converter at construction time.
type ConverterOption func(*Converter)

// WithLogger attaches a zerolog logger. Command lines and outcomes are
// logged at debug level with a per-conversion correlation id. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) ConverterOption {
	return func(c *Converter) {
		c.log = logger
	}
}

// New creates a Converter that runs the engine executable at enginePath.
// The path may be bare (resolved against PATH at launch time) or absolute.
func New(enginePath string, opts ...ConverterOption) *Converter {
	c := &Converter{
		enginePath: enginePath,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// EnginePath returns the configured engine executable path.
func (c *Converter) EnginePath() string { return c.enginePath }

// Validate checks that the engine executable exists and is executable,
// without running a conversion. Returns an error wrapping [ErrUnavailable]
// when it is not.
func (c *Converter) Validate() error {
	if _, err := exec.LookPath(c.enginePath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, c.enginePath, err)
	}
	return nil
}

// EngineVersion runs the engine's version query and returns its output.
func (c *Converter) EngineVersion(ctx context.Context) (string, error) {
	resolved, err := exec.LookPath(c.enginePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnavailable, c.enginePath, err)
	}
	out, err := exec.CommandContext(ctx, resolved, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("pdfpress: engine version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Convert formats the input documents, letting the engine derive the output
// file name from the first input per its own naming convention.
func (c *Converter) Convert(ctx context.Context, inputs ...string) (*Result, error) {
	if err := requireInputs(inputs); err != nil {
		return nil, err
	}
	return c.run(ctx, LogNormal, inputs, nil, io.Discard)
}

// ConvertToFile formats the input documents into the named output file.
// Multiple inputs produce a single combined document.
func (c *Converter) ConvertToFile(ctx context.Context, output string, inputs ...string) (*Result, error) {
	if err := requireInputs(inputs); err != nil {
		return nil, err
	}
	pos := appendOutput(inputs, output)
	return c.run(ctx, LogNormal, pos, nil, io.Discard)
}

// ConvertToWriter formats the input documents and streams the result to w
// as it is produced; the whole document is never buffered in memory.
func (c *Converter) ConvertToWriter(ctx context.Context, w io.Writer, inputs ...string) (*Result, error) {
	if err := requireInputs(inputs); err != nil {
		return nil, err
	}
	pos := appendOutput(inputs, "-")
	return c.run(ctx, LogNormal, pos, nil, w)
}

// ConvertString formats an in-memory document into the named output file.
// The document is fed to the engine over its standard input.
func (c *Converter) ConvertString(ctx context.Context, doc, output string) (*Result, error) {
	pos := appendOutput([]string{"-"}, output)
	return c.run(ctx, LogBuffered, pos, strings.NewReader(doc), io.Discard)
}

// ConvertStringToWriter formats an in-memory document and streams the
// result to w.
func (c *Converter) ConvertStringToWriter(ctx context.Context, doc string, w io.Writer) (*Result, error) {
	pos := appendOutput([]string{"-"}, "-")
	return c.run(ctx, LogBuffered, pos, strings.NewReader(doc), w)
}

// ConvertInputList formats the documents named by a list file (one input
// path per line, read by the engine itself) into the named output file.
func (c *Converter) ConvertInputList(ctx context.Context, listPath, output string) (*Result, error) {
	pos := appendOutput([]string{"--input-list=" + listPath}, output)
	return c.run(ctx, LogNormal, pos, nil, io.Discard)
}

// ConvertInputListToWriter formats the documents named by a list file and
// streams the result to w.
func (c *Converter) ConvertInputListToWriter(ctx context.Context, listPath string, w io.Writer) (*Result, error) {
	pos := appendOutput([]string{"--input-list=" + listPath}, "-")
	return c.run(ctx, LogNormal, pos, nil, w)
}

// Rasterize renders the input documents as page images named by template,
// which must contain a page number placeholder when more than one page is
// produced. Image format and resolution follow the raster options.
func (c *Converter) Rasterize(ctx context.Context, template string, inputs ...string) (*Result, error) {
	if err := requireInputs(inputs); err != nil {
		return nil, err
	}
	pos := appendRasterOutput(inputs, template)
	return c.run(ctx, LogNormal, pos, nil, io.Discard)
}

// RasterizeToWriter renders the input documents and streams the image data
// to w. The raster options must select a single page.
func (c *Converter) RasterizeToWriter(ctx context.Context, w io.Writer, inputs ...string) (*Result, error) {
	if err := requireInputs(inputs); err != nil {
		return nil, err
	}
	pos := appendRasterOutput(inputs, "-")
	return c.run(ctx, LogNormal, pos, nil, w)
}

// RasterizeString renders an in-memory document as page images named by
// template.
func (c *Converter) RasterizeString(ctx context.Context, doc, template string) (*Result, error) {
	pos := appendRasterOutput([]string{"-"}, template)
	return c.run(ctx, LogBuffered, pos, strings.NewReader(doc), io.Discard)
}

// RasterizeStringToWriter renders an in-memory document and streams the
// image data to w.
func (c *Converter) RasterizeStringToWriter(ctx context.Context, doc string, w io.Writer) (*Result, error) {
	pos := appendRasterOutput([]string{"-"}, "-")
	return c.run(ctx, LogBuffered, pos, strings.NewReader(doc), w)
}

// RasterizeInputList renders the documents named by a list file as page
// images named by template.
func (c *Converter) RasterizeInputList(ctx context.Context, listPath, template string) (*Result, error) {
	pos := appendRasterOutput([]string{"--input-list=" + listPath}, template)
	return c.run(ctx, LogNormal, pos, nil, io.Discard)
}

// run is the shared conversion path: build the invocation, launch, pump,
// translate the parsed log into a Result.
func (c *Converter) run(ctx context.Context, mode LogMode, positional []string, input io.Reader, output io.Writer) (*Result, error) {
	inv := buildInvocation(c.enginePath, &c.Options, mode, positional)

	id := uuid.NewString()
	c.log.Debug().
		Str("conversion", id).
		Str("command", inv.CommandLine()).
		Msg("starting engine")

	proc, err := launch(ctx, inv)
	if err != nil {
		c.log.Debug().Str("conversion", id).Err(err).Msg("engine launch failed")
		return nil, err
	}

	parsed, err := proc.pump(ctx, input, output)
	if err != nil {
		c.log.Debug().Str("conversion", id).Err(err).Msg("engine run aborted")
		return nil, err
	}

	res := &Result{
		Success:  parsed.Success,
		Messages: parsed.Messages,
		Data:     parsed.Data,
	}
	c.log.Debug().
		Str("conversion", id).
		Bool("success", res.Success).
		Int("messages", len(res.Messages)).
		Msg("engine finished")
	return res, nil
}

func requireInputs(inputs []string) error {
	if len(inputs) == 0 {
		return errors.New("pdfpress: no input documents")
	}
	return nil
}

// appendOutput appends the --output token without mutating inputs.
func appendOutput(inputs []string, output string) []string {
	pos := make([]string, 0, len(inputs)+1)
	pos = append(pos, inputs...)
	return append(pos, "--output="+output)
}

// appendRasterOutput appends the --raster-output token without mutating
// inputs.
func appendRasterOutput(inputs []string, template string) []string {
	pos := make([]string, 0, len(inputs)+1)
	pos = append(pos, inputs...)
	return append(pos, "--raster-output="+template)
}
