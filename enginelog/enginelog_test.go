package enginelog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, s string) *Result {
	t.Helper()
	res, err := Parse(strings.NewReader(s))
	require.NoError(t, err)
	return res
}

func TestParse_MessageWithPipesThenSuccess(t *testing.T) {
	res := parseString(t, "msg|err|file.html|Some error|with|pipes\nfin|success\n")

	assert.True(t, res.Success)
	assert.True(t, res.Finished)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, Message{
		Severity: SeverityError,
		Location: "file.html",
		Text:     "Some error|with|pipes",
	}, res.Messages[0])
}

func TestParse_Failure(t *testing.T) {
	res := parseString(t, "fin|failure\n")
	assert.False(t, res.Success)
	assert.True(t, res.Finished)
}

// Any fin token other than the literal "success" is failure-equivalent.
func TestParse_UnknownFinToken(t *testing.T) {
	for _, token := range []string{"", "ok", "SUCCESS", "success "} {
		res := parseString(t, "fin|"+token+"\n")
		assert.False(t, res.Success, "token %q", token)
		assert.True(t, res.Finished, "token %q", token)
	}
}

// EOF without a fin line is the degraded outcome: failure, records preserved.
func TestParse_EOFWithoutFin(t *testing.T) {
	res := parseString(t, "msg|wrn|a.html|slow resource\ndat|pages|3\n")

	assert.False(t, res.Success)
	assert.False(t, res.Finished)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, SeverityWarning, res.Messages[0].Severity)
	require.Len(t, res.Data, 1)
	assert.Equal(t, Data{Key: "pages", Value: "3"}, res.Data[0])
}

func TestParse_DataValueWithPipes(t *testing.T) {
	res := parseString(t, "dat|qualifier|a|b|c\nfin|success\n")
	require.Len(t, res.Data, 1)
	assert.Equal(t, Data{Key: "qualifier", Value: "a|b|c"}, res.Data[0])
}

// Nothing after a fin line is consumed from the stream.
func TestParse_StopsAtFin(t *testing.T) {
	r := strings.NewReader("fin|success\nmsg|err|x|never seen\n")
	res, err := Parse(r)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Messages)
}

func TestParse_Fallback(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Message
	}{
		{
			name: "plain error prefix",
			line: "error: could not load license",
			want: Message{Severity: SeverityError, Text: "could not load license"},
		},
		{
			name: "plain warning prefix",
			line: "warning: deprecated option",
			want: Message{Severity: SeverityWarning, Text: "deprecated option"},
		},
		{
			name: "unstructured line",
			line: "segault in module 7",
			want: Message{Severity: SeverityDebug, Text: "segault in module 7"},
		},
		{
			name: "unknown four-char tag",
			line: "xxx|whatever",
			want: Message{Severity: SeverityDebug, Text: "xxx|whatever"},
		},
		{
			name: "short line",
			line: "fi",
			want: Message{Severity: SeverityDebug, Text: "fi"},
		},
		{
			name: "empty line",
			line: "",
			want: Message{Severity: SeverityDebug, Text: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseString(t, tt.line+"\nfin|success\n")
			require.Len(t, res.Messages, 1)
			assert.Equal(t, tt.want, res.Messages[0])
		})
	}
}

func TestParse_TruncatedMsgFields(t *testing.T) {
	res := parseString(t, "msg|err\nmsg|inf|somewhere\nfin|failure\n")
	require.Len(t, res.Messages, 2)
	assert.Equal(t, Message{Severity: SeverityError}, res.Messages[0])
	assert.Equal(t, Message{Severity: SeverityInfo, Location: "somewhere"}, res.Messages[1])
}

func TestParse_UnknownSeverityTag(t *testing.T) {
	res := parseString(t, "msg|vrb|x|very verbose\nfin|success\n")
	require.Len(t, res.Messages, 1)
	assert.Equal(t, SeverityDebug, res.Messages[0].Severity)
}

func TestParse_EmissionOrderPreserved(t *testing.T) {
	res := parseString(t, strings.Join([]string{
		"msg|inf||one",
		"msg|err||two",
		"msg|wrn||three",
		"fin|failure",
	}, "\n"))
	require.Len(t, res.Messages, 3)
	assert.Equal(t, "one", res.Messages[0].Text)
	assert.Equal(t, "two", res.Messages[1].Text)
	assert.Equal(t, "three", res.Messages[2].Text)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestParse_ReadError(t *testing.T) {
	readErr := errors.New("pipe burst")
	res, err := Parse(failingReader{err: readErr})
	assert.ErrorIs(t, err, readErr)
	assert.False(t, res.Success)
}
