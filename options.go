package pdfpress

import "strconv"

// InputType selects how the engine parses its input documents.
type InputType string

const (
	// InputAuto lets the engine detect the document type. This is the
	// default, and the fallback for unrecognized values.
	InputAuto InputType = "auto"

	InputHTML InputType = "html"
	InputXML  InputType = "xml"
)

// RasterFormat selects the image format for rasterize operations.
type RasterFormat string

const (
	// RasterAuto derives the format from the output file name. Default and
	// fallback for unrecognized values.
	RasterAuto RasterFormat = "auto"

	RasterPNG  RasterFormat = "png"
	RasterJPEG RasterFormat = "jpeg"
)

// KeyType identifies the encoding of a TLS client certificate or key file.
type KeyType string

const (
	// KeyTypePEM is the default and the fallback for unrecognized values.
	KeyTypePEM KeyType = "pem"

	KeyTypeDER KeyType = "der"
)

// AuthMethod selects the HTTP authentication method.
type AuthMethod string

const (
	AuthBasic     AuthMethod = "basic"
	AuthDigest    AuthMethod = "digest"
	AuthNTLM      AuthMethod = "ntlm"
	AuthNegotiate AuthMethod = "negotiate"
)

// PDFEvent names a document lifecycle event a PDF script can be attached to.
type PDFEvent string

const (
	EventWillClose PDFEvent = "will-close"
	EventWillSave  PDFEvent = "will-save"
	EventDidSave   PDFEvent = "did-save"
	EventWillPrint PDFEvent = "will-print"
	EventDidPrint  PDFEvent = "did-print"
)

// Remap maps a URL prefix to a local directory, consumed by the engine's
// resource resolver.
type Remap struct {
	URL string
	Dir string
}

// eventScript is one per-event PDF script entry. Entries keep insertion
// order; re-adding an event replaces its script in place.
type eventScript struct {
	event  PDFEvent
	script string
}

// Options is the mutable configuration aggregate read once per conversion
// call to build the engine command line. The zero value is ready to use and
// corresponds to the engine's own defaults: a default-valued field is never
// emitted on the command line.
//
// Plain toggles and free-form scalars are exported fields. Fields with
// validation or ordering invariants sit behind methods: strict setters
// return an *[OptionError] for out-of-range scalars and leave the prior
// value unchanged, lenient setters silently fall back to the documented
// default for unrecognized enumerated values, and repeatable collections
// grow through Add methods that preserve insertion order without
// deduplication (the engine consumes repeated flags positionally).
type Options struct {
	// Logging.

	// Verbose enables informational engine messages.
	Verbose bool

	// Debug enables debug engine messages.
	Debug bool

	// LogFile appends a copy of the engine log to the named file.
	LogFile string

	// NoWarnCSSUnknown suppresses warnings about unknown CSS features.
	NoWarnCSSUnknown bool

	// NoWarnCSSUnsupported suppresses warnings about unsupported CSS.
	NoWarnCSSUnsupported bool

	// Input.

	inputType InputType

	// BaseURL resolves relative URLs in the input documents.
	BaseURL string

	// FileRoot is the directory for absolute local paths in the input.
	FileRoot string

	// XInclude enables XInclude processing for XML input.
	XInclude bool

	// XIncludeErrors reports XInclude resolution failures as errors.
	XIncludeErrors bool

	// Iframes enables iframe processing.
	Iframes bool

	// NoLocalFiles forbids access to local files via file: URLs.
	NoLocalFiles bool

	remaps []Remap

	// Network.

	// NoNetwork forbids downloading resources over the network.
	NoNetwork bool

	// NoRedirects disables following HTTP redirects.
	NoRedirects bool

	// AuthUser and AuthPassword supply HTTP authentication credentials.
	AuthUser     string
	AuthPassword string

	// AuthServer restricts authentication to the given server.
	AuthServer string

	authMethod AuthMethod

	// NoAuthPreemptive waits for an authentication challenge instead of
	// sending credentials up front.
	NoAuthPreemptive bool

	// HTTPProxy names a proxy server for all HTTP requests.
	HTTPProxy string

	httpTimeout int

	cookies []string

	// CookieJar names a file to read and store HTTP cookies.
	CookieJar string

	// TLS configuration, passed through to the engine's fetcher.
	SSLCACert      string
	SSLCAPath      string
	SSLCert        string
	SSLKey         string
	SSLKeyPassword string

	sslCertType KeyType
	sslKeyType  KeyType

	// Insecure disables TLS verification.
	Insecure bool

	// NoParallelDownloads fetches resources one at a time.
	NoParallelDownloads bool

	// CSS.

	styleSheets []string

	// Media is the CSS media type used for rendering (e.g. "print").
	Media string

	// PageSize and PageMargin are free-form CSS page geometry values.
	PageSize   string
	PageMargin string

	// NoAuthorStyle ignores style sheets referenced by the documents.
	NoAuthorStyle bool

	// NoDefaultStyle ignores the engine's built-in default style sheet.
	NoDefaultStyle bool

	// JavaScript.

	// JavaScript enables script execution in input documents.
	JavaScript bool

	scripts   []string
	maxPasses int

	// PDF output.

	// PDFProfile selects a PDF conformance profile (e.g. "PDF/A-1b").
	PDFProfile string

	// PDFOutputIntent names an ICC profile describing the intended output
	// device.
	PDFOutputIntent string

	// ConvertColors converts document colors to the output intent color
	// space. Emitted only when PDFOutputIntent is also set.
	ConvertColors bool

	fileAttachments []string

	// NoArtificialFonts disables synthesis of missing bold/italic faces.
	NoArtificialFonts bool

	// NoEmbedFonts disables embedding of fonts in the PDF.
	NoEmbedFonts bool

	// NoSubsetFonts embeds whole fonts instead of subsets.
	NoSubsetFonts bool

	// ForceIdentityEncoding uses full font names in the PDF.
	ForceIdentityEncoding bool

	// NoCompress disables stream compression.
	NoCompress bool

	// NoObjectStreams disables PDF object streams.
	NoObjectStreams bool

	pdfScripts      []string
	pdfEventScripts []eventScript

	// PDF metadata.

	Title    string
	Subject  string
	Author   string
	Keywords string
	Creator  string

	// PDF encryption.

	// Encrypt enables PDF encryption.
	Encrypt bool

	encryptKeyBits int

	// UserPassword and OwnerPassword protect the PDF. Empty passwords are
	// omitted from the command line rather than passed as empty values.
	UserPassword  string
	OwnerPassword string

	// Disallow* revoke the corresponding PDF permissions.
	DisallowPrint    bool
	DisallowCopy     bool
	DisallowAnnotate bool
	DisallowModify   bool

	// Raster.

	rasterFormat      RasterFormat
	rasterJPEGQuality int
	rasterQualitySet  bool
	rasterDPI         int

	// RasterPages selects which pages to rasterize, in the engine's page
	// range syntax.
	RasterPages string

	// License.

	// LicenseFile names a license file to load.
	LicenseFile string

	// LicenseKey supplies a license key directly.
	LicenseKey string

	// Free-form.

	extraOptions []string
}

// SetInputType selects the input document type. Unrecognized values fall
// back to [InputAuto]; this never fails.
func (o *Options) SetInputType(t InputType) {
	switch t {
	case InputHTML, InputXML:
		o.inputType = t
	default:
		o.inputType = InputAuto
	}
}

// InputType returns the effective input type.
func (o *Options) InputType() InputType {
	if o.inputType == "" {
		return InputAuto
	}
	return o.inputType
}

// SetAuthMethod selects the HTTP authentication method. Unrecognized values
// fall back to [AuthBasic].
func (o *Options) SetAuthMethod(m AuthMethod) {
	switch m {
	case AuthDigest, AuthNTLM, AuthNegotiate:
		o.authMethod = m
	default:
		o.authMethod = AuthBasic
	}
}

// AuthMethod returns the effective HTTP authentication method.
func (o *Options) AuthMethod() AuthMethod {
	if o.authMethod == "" {
		return AuthBasic
	}
	return o.authMethod
}

// SetSSLCertType selects the client certificate encoding. Unrecognized
// values fall back to [KeyTypePEM].
func (o *Options) SetSSLCertType(t KeyType) {
	o.sslCertType = normalizeKeyType(t)
}

// SSLCertType returns the effective client certificate encoding.
func (o *Options) SSLCertType() KeyType {
	if o.sslCertType == "" {
		return KeyTypePEM
	}
	return o.sslCertType
}

// SetSSLKeyType selects the client key encoding. Unrecognized values fall
// back to [KeyTypePEM].
func (o *Options) SetSSLKeyType(t KeyType) {
	o.sslKeyType = normalizeKeyType(t)
}

// SSLKeyType returns the effective client key encoding.
func (o *Options) SSLKeyType() KeyType {
	if o.sslKeyType == "" {
		return KeyTypePEM
	}
	return o.sslKeyType
}

func normalizeKeyType(t KeyType) KeyType {
	if t == KeyTypeDER {
		return KeyTypeDER
	}
	return KeyTypePEM
}

// SetRasterFormat selects the raster image format. Unrecognized values fall
// back to [RasterAuto].
func (o *Options) SetRasterFormat(f RasterFormat) {
	switch f {
	case RasterPNG, RasterJPEG:
		o.rasterFormat = f
	default:
		o.rasterFormat = RasterAuto
	}
}

// RasterFormat returns the effective raster image format.
func (o *Options) RasterFormat() RasterFormat {
	if o.rasterFormat == "" {
		return RasterAuto
	}
	return o.rasterFormat
}

// SetHTTPTimeout sets the network fetch timeout in seconds. Values below 1
// are rejected.
func (o *Options) SetHTTPTimeout(seconds int) error {
	if seconds <= 0 {
		return &OptionError{
			Option: "http-timeout",
			Value:  strconv.Itoa(seconds),
			Reason: "timeout must be at least 1 second",
		}
	}
	o.httpTimeout = seconds
	return nil
}

// HTTPTimeout returns the network fetch timeout in seconds, 0 if unset.
func (o *Options) HTTPTimeout() int { return o.httpTimeout }

// SetMaxPasses limits the number of layout passes for script-driven
// relayout. Values below 1 are rejected.
func (o *Options) SetMaxPasses(n int) error {
	if n <= 0 {
		return &OptionError{
			Option: "max-passes",
			Value:  strconv.Itoa(n),
			Reason: "pass count must be at least 1",
		}
	}
	o.maxPasses = n
	return nil
}

// MaxPasses returns the layout pass limit, 0 if unset.
func (o *Options) MaxPasses() int { return o.maxPasses }

// SetEncryptKeyBits sets the PDF encryption key size. The engine supports
// 40-bit and 128-bit keys only; any other size is rejected and prior
// encryption settings are unchanged.
func (o *Options) SetEncryptKeyBits(bits int) error {
	if bits != 40 && bits != 128 {
		return &OptionError{
			Option: "key-bits",
			Value:  strconv.Itoa(bits),
			Reason: "key size must be 40 or 128",
		}
	}
	o.encryptKeyBits = bits
	return nil
}

// EncryptKeyBits returns the PDF encryption key size, 0 if unset.
func (o *Options) EncryptKeyBits() int { return o.encryptKeyBits }

// SetRasterJPEGQuality sets the JPEG quality percentage for raster output.
// Values outside [0, 100] are rejected.
func (o *Options) SetRasterJPEGQuality(percent int) error {
	if percent < 0 || percent > 100 {
		return &OptionError{
			Option: "raster-jpeg-quality",
			Value:  strconv.Itoa(percent),
			Reason: "quality must be between 0 and 100",
		}
	}
	o.rasterJPEGQuality = percent
	o.rasterQualitySet = true
	return nil
}

// SetRasterDPI sets the raster output resolution. Values below 1 are
// rejected.
func (o *Options) SetRasterDPI(dpi int) error {
	if dpi <= 0 {
		return &OptionError{
			Option: "raster-dpi",
			Value:  strconv.Itoa(dpi),
			Reason: "resolution must be at least 1 dpi",
		}
	}
	o.rasterDPI = dpi
	return nil
}

// RasterDPI returns the raster output resolution, 0 if unset.
func (o *Options) RasterDPI() int { return o.rasterDPI }

// AddStyleSheet appends a user style sheet. Repeated additions are kept in
// order, including duplicates.
func (o *Options) AddStyleSheet(path string) {
	o.styleSheets = append(o.styleSheets, path)
}

// ClearStyleSheets removes all user style sheets.
func (o *Options) ClearStyleSheets() { o.styleSheets = nil }

// AddScript appends a JavaScript file to run before conversion.
func (o *Options) AddScript(path string) {
	o.scripts = append(o.scripts, path)
}

// ClearScripts removes all scripts.
func (o *Options) ClearScripts() { o.scripts = nil }

// AddCookie appends a Set-Cookie header value sent with HTTP requests.
func (o *Options) AddCookie(cookie string) {
	o.cookies = append(o.cookies, cookie)
}

// ClearCookies removes all cookies.
func (o *Options) ClearCookies() { o.cookies = nil }

// AddRemap maps a URL prefix to a local directory.
func (o *Options) AddRemap(url, dir string) {
	o.remaps = append(o.remaps, Remap{URL: url, Dir: dir})
}

// ClearRemaps removes all remap rules.
func (o *Options) ClearRemaps() { o.remaps = nil }

// AddFileAttachment attaches a file to the generated PDF.
func (o *Options) AddFileAttachment(path string) {
	o.fileAttachments = append(o.fileAttachments, path)
}

// ClearFileAttachments removes all file attachments.
func (o *Options) ClearFileAttachments() { o.fileAttachments = nil }

// AddPDFScript attaches an AcroJS script that runs when the PDF is opened.
func (o *Options) AddPDFScript(script string) {
	o.pdfScripts = append(o.pdfScripts, script)
}

// ClearPDFScripts removes all document-open PDF scripts.
func (o *Options) ClearPDFScripts() { o.pdfScripts = nil }

// AddPDFEventScript attaches an AcroJS script to a document lifecycle event.
// Adding a script for an event that already has one replaces it in place,
// keeping the original insertion position.
func (o *Options) AddPDFEventScript(event PDFEvent, script string) {
	for i := range o.pdfEventScripts {
		if o.pdfEventScripts[i].event == event {
			o.pdfEventScripts[i].script = script
			return
		}
	}
	o.pdfEventScripts = append(o.pdfEventScripts, eventScript{event: event, script: script})
}

// ClearPDFEventScripts removes all per-event PDF scripts.
func (o *Options) ClearPDFEventScripts() { o.pdfEventScripts = nil }

// AddOption appends a raw command-line token for engine flags this package
// has no field for. Tokens are passed through verbatim, after all generated
// flags.
func (o *Options) AddOption(token string) {
	o.extraOptions = append(o.extraOptions, token)
}

// ClearOptions removes all free-form tokens.
func (o *Options) ClearOptions() { o.extraOptions = nil }
