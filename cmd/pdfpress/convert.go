package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pressworks/pdfpress"
	"github.com/pressworks/pdfpress/enginelog"
)

var convertFlags struct {
	output     string
	inputType  string
	styles     []string
	scripts    []string
	media      string
	pageSize   string
	pageMargin string
	javascript bool
	noNetwork  bool
	insecure   bool
	title      string
	author     string
	extra      []string
}

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert documents to a PDF",
	Long: `Convert one or more input documents to a single PDF. With no inputs the
document is read from standard input. An output of "-" (or none, when
reading standard input) streams the PDF to standard output.`,
	RunE: runConvert,
}

var rasterizeFlags struct {
	output  string
	format  string
	dpi     int
	quality int
	pages   string
}

var rasterizeCmd = &cobra.Command{
	Use:   "rasterize [inputs...]",
	Short: "Render documents as page images",
	Long: `Render input documents as one image per page. The output template names
the image files and should contain a printf-style page number placeholder,
e.g. page_%02d.png.`,
	RunE: runRasterize,
}

func init() {
	fl := convertCmd.Flags()
	fl.StringVarP(&convertFlags.output, "output", "o", "", `output file ("-" for stdout)`)
	fl.StringVar(&convertFlags.inputType, "input", "", "input type: auto, html, or xml")
	fl.StringArrayVar(&convertFlags.styles, "style", nil, "apply a style sheet (repeatable)")
	fl.StringArrayVar(&convertFlags.scripts, "script", nil, "run a script before conversion (repeatable)")
	fl.StringVar(&convertFlags.media, "media", "", "CSS media type")
	fl.StringVar(&convertFlags.pageSize, "page-size", "", "page size (e.g. A4)")
	fl.StringVar(&convertFlags.pageMargin, "page-margin", "", "page margin (e.g. 2cm)")
	fl.BoolVar(&convertFlags.javascript, "javascript", false, "enable document scripting")
	fl.BoolVar(&convertFlags.noNetwork, "no-network", false, "forbid network access")
	fl.BoolVar(&convertFlags.insecure, "insecure", false, "skip TLS verification")
	fl.StringVar(&convertFlags.title, "pdf-title", "", "PDF title metadata")
	fl.StringVar(&convertFlags.author, "pdf-author", "", "PDF author metadata")
	fl.StringArrayVar(&convertFlags.extra, "raw", nil, "pass a raw engine token (repeatable)")

	rl := rasterizeCmd.Flags()
	rl.StringVarP(&rasterizeFlags.output, "output", "o", "", "output template, e.g. page_%02d.png")
	rl.StringVar(&rasterizeFlags.format, "format", "", "image format: auto, png, or jpeg")
	rl.IntVar(&rasterizeFlags.dpi, "dpi", 0, "output resolution")
	rl.IntVar(&rasterizeFlags.quality, "jpeg-quality", -1, "JPEG quality percentage")
	rl.StringVar(&rasterizeFlags.pages, "pages", "", "page range to render")
	_ = rasterizeCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCmd, rasterizeCmd)
}

// newConverter builds a Converter from config-file defaults and shared
// convert flags.
func newConverter() (*pdfpress.Converter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	engine, err := resolveEngine(cfg)
	if err != nil {
		return nil, err
	}

	conv := pdfpress.New(engine, pdfpress.WithLogger(logger))
	for _, s := range cfg.Styles {
		conv.AddStyleSheet(s)
	}
	for _, s := range cfg.Scripts {
		conv.AddScript(s)
	}
	conv.Media = cfg.Media
	conv.PageSize = cfg.PageSize
	conv.PageMargin = cfg.PageMargin
	conv.JavaScript = cfg.JavaScript
	conv.NoNetwork = cfg.NoNetwork
	conv.Insecure = cfg.Insecure
	return conv, nil
}

func runConvert(cmd *cobra.Command, inputs []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}

	conv.SetInputType(pdfpress.InputType(convertFlags.inputType))
	for _, s := range convertFlags.styles {
		conv.AddStyleSheet(s)
	}
	for _, s := range convertFlags.scripts {
		conv.AddScript(s)
	}
	if convertFlags.media != "" {
		conv.Media = convertFlags.media
	}
	if convertFlags.pageSize != "" {
		conv.PageSize = convertFlags.pageSize
	}
	if convertFlags.pageMargin != "" {
		conv.PageMargin = convertFlags.pageMargin
	}
	conv.JavaScript = conv.JavaScript || convertFlags.javascript
	conv.NoNetwork = conv.NoNetwork || convertFlags.noNetwork
	conv.Insecure = conv.Insecure || convertFlags.insecure
	conv.Title = convertFlags.title
	conv.Author = convertFlags.author
	for _, tok := range convertFlags.extra {
		conv.AddOption(tok)
	}

	ctx := cmd.Context()
	var res *pdfpress.Result

	switch {
	case len(inputs) == 0:
		// Read the document from stdin; stream the PDF to stdout unless an
		// output file is named.
		doc, readErr := readAllStdin()
		if readErr != nil {
			return readErr
		}
		if convertFlags.output == "" || convertFlags.output == "-" {
			res, err = conv.ConvertStringToWriter(ctx, doc, os.Stdout)
		} else {
			res, err = conv.ConvertString(ctx, doc, convertFlags.output)
		}
	case convertFlags.output == "-":
		res, err = conv.ConvertToWriter(ctx, os.Stdout, inputs...)
	case convertFlags.output == "":
		res, err = conv.Convert(ctx, inputs...)
	default:
		res, err = conv.ConvertToFile(ctx, convertFlags.output, inputs...)
	}
	if err != nil {
		return err
	}
	return report(res)
}

func runRasterize(cmd *cobra.Command, inputs []string) error {
	if len(inputs) == 0 {
		return errors.New("rasterize requires at least one input document")
	}
	conv, err := newConverter()
	if err != nil {
		return err
	}

	conv.SetRasterFormat(pdfpress.RasterFormat(rasterizeFlags.format))
	if rasterizeFlags.dpi > 0 {
		if err := conv.SetRasterDPI(rasterizeFlags.dpi); err != nil {
			return err
		}
	}
	if rasterizeFlags.quality >= 0 {
		if err := conv.SetRasterJPEGQuality(rasterizeFlags.quality); err != nil {
			return err
		}
	}
	conv.RasterPages = rasterizeFlags.pages

	ctx := cmd.Context()
	var res *pdfpress.Result
	if rasterizeFlags.output == "-" {
		res, err = conv.RasterizeToWriter(ctx, os.Stdout, inputs...)
	} else {
		res, err = conv.Rasterize(ctx, rasterizeFlags.output, inputs...)
	}
	if err != nil {
		return err
	}
	return report(res)
}

func readAllStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

var severityColors = map[enginelog.Severity]*color.Color{
	enginelog.SeverityError:   color.New(color.FgRed, color.Bold),
	enginelog.SeverityWarning: color.New(color.FgYellow),
	enginelog.SeverityInfo:    color.New(color.FgCyan),
	enginelog.SeverityDebug:   color.New(color.Faint),
}

// report prints the engine diagnostics and turns an unsuccessful outcome
// into a non-zero exit.
func report(res *pdfpress.Result) error {
	if noColor {
		color.NoColor = true
	}
	for _, m := range res.Messages {
		c, ok := severityColors[m.Severity]
		if !ok {
			c = color.New()
		}
		prefix := c.Sprintf("%s", m.Severity)
		if m.Location != "" {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", prefix, m.Location, m.Text)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, m.Text)
		}
	}
	if !res.Success {
		return errors.New("conversion failed")
	}
	return nil
}
