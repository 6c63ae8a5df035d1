package pdfpress

import (
	"runtime"
	"strconv"

	"github.com/pressworks/pdfpress/shellarg"
)

// LogMode selects how the engine delivers its structured log.
type LogMode string

const (
	// LogNormal emits structured log lines as events happen. Used by
	// operations whose input the engine reads from files.
	LogNormal LogMode = "normal"

	// LogBuffered holds structured log lines until the conversion ends.
	// Used by operations that feed the engine over its standard input, so
	// log traffic cannot interleave with input consumption.
	LogBuffered LogMode = "buffered"
)

// Invocation is the fully assembled argument vector for one engine run:
// the executable path followed by option tokens and positional arguments.
// An Invocation is immutable once built and is rebuilt fresh for every
// conversion call, since any option may have changed in between.
type Invocation struct {
	args []string
}

// Path returns the executable path token.
func (inv *Invocation) Path() string { return inv.args[0] }

// Args returns a copy of the full argument vector, executable included.
func (inv *Invocation) Args() []string {
	out := make([]string, len(inv.args))
	copy(out, inv.args)
	return out
}

// CommandLine renders the invocation as a single shell command line for the
// current platform, with every token escaped. This is the form written to
// debug logs and the form to use when the invocation must pass through a
// shell; the launcher itself hands the argv vector to the OS directly.
func (inv *Invocation) CommandLine() string {
	if runtime.GOOS == "windows" {
		return shellarg.JoinWindows(inv.args, true)
	}
	return shellarg.Join(inv.args)
}

// buildInvocation assembles the argument vector from an options snapshot.
// Tokens are emitted in a fixed canonical order grouped by concern, one
// combined --flag=value token per set value flag, bare tokens for true
// toggles, nothing for default-valued fields. Repeatable fields emit one
// token per entry in insertion order. positional is appended last.
func buildInvocation(exePath string, o *Options, mode LogMode, positional []string) *Invocation {
	args := []string{exePath, "--structured-log=" + string(mode)}

	// Logging.
	args = appendFlag(args, "--verbose", o.Verbose)
	args = appendFlag(args, "--debug", o.Debug)
	args = appendValue(args, "--log", o.LogFile)
	args = appendFlag(args, "--no-warn-css-unknown", o.NoWarnCSSUnknown)
	args = appendFlag(args, "--no-warn-css-unsupported", o.NoWarnCSSUnsupported)

	// Input.
	if t := o.InputType(); t != InputAuto {
		args = append(args, "-i", string(t))
	}
	args = appendValue(args, "--baseurl", o.BaseURL)
	for _, r := range o.remaps {
		args = append(args, "--remap="+r.URL+"="+r.Dir)
	}
	args = appendValue(args, "--fileroot", o.FileRoot)
	args = appendFlag(args, "--xinclude", o.XInclude)
	args = appendFlag(args, "--xinclude-errors", o.XIncludeErrors)
	args = appendFlag(args, "--iframes", o.Iframes)
	args = appendFlag(args, "--no-local-files", o.NoLocalFiles)

	// Network.
	args = appendFlag(args, "--no-network", o.NoNetwork)
	args = appendFlag(args, "--no-redirects", o.NoRedirects)
	args = appendValue(args, "--auth-user", o.AuthUser)
	args = appendValue(args, "--auth-password", o.AuthPassword)
	args = appendValue(args, "--auth-server", o.AuthServer)
	if m := o.AuthMethod(); m != AuthBasic {
		args = append(args, "--auth-method="+string(m))
	}
	args = appendFlag(args, "--no-auth-preemptive", o.NoAuthPreemptive)
	args = appendValue(args, "--http-proxy", o.HTTPProxy)
	if o.httpTimeout > 0 {
		args = append(args, "--http-timeout="+strconv.Itoa(o.httpTimeout))
	}
	for _, c := range o.cookies {
		args = append(args, "--cookie="+c)
	}
	args = appendValue(args, "--cookiejar", o.CookieJar)
	args = appendValue(args, "--ssl-cacert", o.SSLCACert)
	args = appendValue(args, "--ssl-capath", o.SSLCAPath)
	args = appendValue(args, "--ssl-cert", o.SSLCert)
	if t := o.SSLCertType(); t != KeyTypePEM {
		args = append(args, "--ssl-cert-type="+string(t))
	}
	args = appendValue(args, "--ssl-key", o.SSLKey)
	if t := o.SSLKeyType(); t != KeyTypePEM {
		args = append(args, "--ssl-key-type="+string(t))
	}
	args = appendValue(args, "--ssl-key-password", o.SSLKeyPassword)
	args = appendFlag(args, "--insecure", o.Insecure)
	args = appendFlag(args, "--no-parallel-downloads", o.NoParallelDownloads)

	// CSS.
	args = appendValue(args, "--media", o.Media)
	args = appendValue(args, "--page-size", o.PageSize)
	args = appendValue(args, "--page-margin", o.PageMargin)
	for _, s := range o.styleSheets {
		args = append(args, "--style="+s)
	}
	args = appendFlag(args, "--no-author-style", o.NoAuthorStyle)
	args = appendFlag(args, "--no-default-style", o.NoDefaultStyle)

	// JavaScript.
	args = appendFlag(args, "--javascript", o.JavaScript)
	for _, s := range o.scripts {
		args = append(args, "--script="+s)
	}
	if o.maxPasses > 0 {
		args = append(args, "--max-passes="+strconv.Itoa(o.maxPasses))
	}

	// PDF output.
	args = appendValue(args, "--pdf-profile", o.PDFProfile)
	args = appendValue(args, "--pdf-output-intent", o.PDFOutputIntent)
	// --convert-colors is meaningless without an output intent profile, so
	// it is only ever emitted after one.
	args = appendFlag(args, "--convert-colors", o.ConvertColors && o.PDFOutputIntent != "")
	for _, a := range o.fileAttachments {
		args = append(args, "--attach="+a)
	}
	args = appendFlag(args, "--no-artificial-fonts", o.NoArtificialFonts)
	args = appendFlag(args, "--no-embed-fonts", o.NoEmbedFonts)
	args = appendFlag(args, "--no-subset-fonts", o.NoSubsetFonts)
	args = appendFlag(args, "--force-identity-encoding", o.ForceIdentityEncoding)
	args = appendFlag(args, "--no-compress", o.NoCompress)
	args = appendFlag(args, "--no-object-streams", o.NoObjectStreams)
	for _, s := range o.pdfScripts {
		args = append(args, "--pdf-script="+s)
	}
	for _, es := range o.pdfEventScripts {
		args = append(args, "--pdf-event-script="+string(es.event)+":"+es.script)
	}

	// PDF metadata.
	args = appendValue(args, "--pdf-title", o.Title)
	args = appendValue(args, "--pdf-subject", o.Subject)
	args = appendValue(args, "--pdf-author", o.Author)
	args = appendValue(args, "--pdf-keywords", o.Keywords)
	args = appendValue(args, "--pdf-creator", o.Creator)

	// PDF encryption. Empty passwords are omitted, not passed as empty
	// quoted values.
	args = appendFlag(args, "--encrypt", o.Encrypt)
	if o.encryptKeyBits > 0 {
		args = append(args, "--key-bits="+strconv.Itoa(o.encryptKeyBits))
	}
	args = appendValue(args, "--user-password", o.UserPassword)
	args = appendValue(args, "--owner-password", o.OwnerPassword)
	args = appendFlag(args, "--disallow-print", o.DisallowPrint)
	args = appendFlag(args, "--disallow-copy", o.DisallowCopy)
	args = appendFlag(args, "--disallow-annotate", o.DisallowAnnotate)
	args = appendFlag(args, "--disallow-modify", o.DisallowModify)

	// Raster.
	if f := o.RasterFormat(); f != RasterAuto {
		args = append(args, "--raster-format="+string(f))
	}
	if o.rasterQualitySet {
		args = append(args, "--raster-jpeg-quality="+strconv.Itoa(o.rasterJPEGQuality))
	}
	args = appendValue(args, "--raster-pages", o.RasterPages)
	if o.rasterDPI > 0 {
		args = append(args, "--raster-dpi="+strconv.Itoa(o.rasterDPI))
	}

	// License.
	args = appendValue(args, "--license-file", o.LicenseFile)
	args = appendValue(args, "--license-key", o.LicenseKey)

	// Free-form.
	args = append(args, o.extraOptions...)

	args = append(args, positional...)
	return &Invocation{args: args}
}

// appendFlag appends a bare toggle token when on is true.
func appendFlag(args []string, flag string, on bool) []string {
	if on {
		args = append(args, flag)
	}
	return args
}

// appendValue appends a combined --flag=value token when value is non-empty.
func appendValue(args []string, flag, value string) []string {
	if value != "" {
		args = append(args, flag+"="+value)
	}
	return args
}
