package cmdhelper_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/pintname/pkg/cmdhelper"
)

func TestFprintf(t *testing.T) {
	buf := &bytes.Buffer{}
	cmdhelper.Fprintf(buf, "hello %s", "world")
	assert.Equal(t, "hello world\n", buf.String())

	// a trailing newline is not duplicated
	buf.Reset()
	cmdhelper.Fprintf(buf, "hello\n")
	assert.Equal(t, "hello\n", buf.String())
}

func TestPrettifyJSON(t *testing.T) {
	testcases := []struct {
		name  string
		input any
		want  string
	}{
		{"bytes", []byte(`{"a":1}`), "{\n  \"a\": 1\n}"},
		{"string", `{"a":1}`, "{\n  \"a\": 1\n}"},
		{"object", map[string]int{"a": 1}, "{\n  \"a\": 1\n}"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cmdhelper.PrettifyJSON(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}

	_, err := cmdhelper.PrettifyJSON([]byte(`{invalid`))
	assert.Error(t, err)
}

func TestEncodeYAML(t *testing.T) {
	got, err := cmdhelper.EncodeYAML(map[string]string{"provider": "amazon"})
	require.NoError(t, err)
	assert.Equal(t, "provider: amazon\n", string(got))
}
