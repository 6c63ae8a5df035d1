package pdfpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_StrictSetters(t *testing.T) {
	tests := []struct {
		name   string
		set    func(o *Options) error
		option string
	}{
		{"timeout zero", func(o *Options) error { return o.SetHTTPTimeout(0) }, "http-timeout"},
		{"timeout negative", func(o *Options) error { return o.SetHTTPTimeout(-5) }, "http-timeout"},
		{"max passes zero", func(o *Options) error { return o.SetMaxPasses(0) }, "max-passes"},
		{"key bits 64", func(o *Options) error { return o.SetEncryptKeyBits(64) }, "key-bits"},
		{"key bits zero", func(o *Options) error { return o.SetEncryptKeyBits(0) }, "key-bits"},
		{"quality negative", func(o *Options) error { return o.SetRasterJPEGQuality(-1) }, "raster-jpeg-quality"},
		{"quality over 100", func(o *Options) error { return o.SetRasterJPEGQuality(101) }, "raster-jpeg-quality"},
		{"dpi zero", func(o *Options) error { return o.SetRasterDPI(0) }, "raster-dpi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Options
			err := tt.set(&o)
			var optErr *OptionError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.option, optErr.Option)
		})
	}
}

// A rejected value leaves the previously accepted value in place.
func TestOptions_RejectedValueKeepsPriorState(t *testing.T) {
	var o Options
	require.NoError(t, o.SetEncryptKeyBits(40))
	o.Encrypt = true
	o.OwnerPassword = "secret"

	err := o.SetEncryptKeyBits(64)
	require.Error(t, err)

	assert.Equal(t, 40, o.EncryptKeyBits())
	assert.True(t, o.Encrypt)
	assert.Equal(t, "secret", o.OwnerPassword)
}

func TestOptions_BoundaryValuesAccepted(t *testing.T) {
	var o Options
	assert.NoError(t, o.SetHTTPTimeout(1))
	assert.NoError(t, o.SetRasterJPEGQuality(0))
	assert.NoError(t, o.SetRasterJPEGQuality(100))
	assert.NoError(t, o.SetEncryptKeyBits(40))
	assert.NoError(t, o.SetEncryptKeyBits(128))
	assert.NoError(t, o.SetRasterDPI(1))
	assert.NoError(t, o.SetMaxPasses(1))
}

// Enumerated fields never reject: unrecognized values silently fall back to
// the documented default.
func TestOptions_LenientEnumFallback(t *testing.T) {
	var o Options

	o.SetInputType("foo")
	assert.Equal(t, InputAuto, o.InputType())
	o.SetInputType(InputHTML)
	assert.Equal(t, InputHTML, o.InputType())
	o.SetInputType("pdf")
	assert.Equal(t, InputAuto, o.InputType())

	o.SetRasterFormat("tiff")
	assert.Equal(t, RasterAuto, o.RasterFormat())
	o.SetRasterFormat(RasterJPEG)
	assert.Equal(t, RasterJPEG, o.RasterFormat())

	o.SetSSLKeyType("pkcs12")
	assert.Equal(t, KeyTypePEM, o.SSLKeyType())
	o.SetSSLCertType(KeyTypeDER)
	assert.Equal(t, KeyTypeDER, o.SSLCertType())

	o.SetAuthMethod("kerberos")
	assert.Equal(t, AuthBasic, o.AuthMethod())
	o.SetAuthMethod(AuthDigest)
	assert.Equal(t, AuthDigest, o.AuthMethod())
}

func TestOptions_ZeroValueGetters(t *testing.T) {
	var o Options
	assert.Equal(t, InputAuto, o.InputType())
	assert.Equal(t, RasterAuto, o.RasterFormat())
	assert.Equal(t, KeyTypePEM, o.SSLCertType())
	assert.Equal(t, KeyTypePEM, o.SSLKeyType())
	assert.Equal(t, AuthBasic, o.AuthMethod())
	assert.Zero(t, o.HTTPTimeout())
	assert.Zero(t, o.EncryptKeyBits())
}

func TestOptionError_Message(t *testing.T) {
	var o Options
	err := o.SetHTTPTimeout(-1)
	assert.EqualError(t, err, `pdfpress: option --http-timeout: invalid value "-1": timeout must be at least 1 second`)
}
