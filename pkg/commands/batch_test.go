package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatchCommand(stdin string) *BatchCommand {
	c := NewBatchCommand()
	c.fs = afero.NewMemMapFs()
	c.clock = clock.NewMock()
	c.stdin = strings.NewReader(stdin)
	return c
}

func decodeNDJSON(t *testing.T, data []byte) []imageView {
	t.Helper()
	views := []imageView{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	for decoder.More() {
		var v imageView
		require.NoError(t, decoder.Decode(&v))
		views = append(views, v)
	}
	return views
}

func TestBatchCommand_Stdin(t *testing.T) {
	c := newTestBatchCommand(strings.Join([]string{
		"# pint catalog dump",
		"ec2 suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
		"",
		"gce sles-15-sp1-v20191205",
	}, "\n"))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := c.ToCLI()
	cmd.Writer = out
	cmd.ErrWriter = errOut

	require.NoError(t, cmd.Run(context.Background(), []string{"batch"}))

	views := decodeNDJSON(t, out.Bytes())
	require.Len(t, views, 2)
	assert.Equal(t, "amazon", views[0].Provider)
	assert.Equal(t, "google", views[1].Provider)
	assert.Contains(t, errOut.String(), "parsed 2, failed 0, skipped 2, cache hits 0")
}

func TestBatchCommand_FileWithFixedProvider(t *testing.T) {
	c := newTestBatchCommand("")
	lines := strings.Join([]string{
		"suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
		"suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
		"suse-sles-12-sp5-v20201110-hvm-ssd-x86_64",
	}, "\n")
	require.NoError(t, afero.WriteFile(c.fs, "names.txt", []byte(lines), 0o644))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := c.ToCLI()
	cmd.Writer = out
	cmd.ErrWriter = errOut

	require.NoError(t, cmd.Run(context.Background(), []string{
		"batch", "--provider", "ec2", "--file", "names.txt",
	}))

	views := decodeNDJSON(t, out.Bytes())
	require.Len(t, views, 3)
	assert.Contains(t, errOut.String(), "parsed 3, failed 0, skipped 0, cache hits 1")
}

func TestBatchCommand_NoCache(t *testing.T) {
	c := newTestBatchCommand(strings.Join([]string{
		"ec2 suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
		"ec2 suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
	}, "\n"))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := c.ToCLI()
	cmd.Writer = out
	cmd.ErrWriter = errOut

	require.NoError(t, cmd.Run(context.Background(), []string{"batch", "--no-cache"}))
	assert.Contains(t, errOut.String(), "parsed 2, failed 0, skipped 0, cache hits 0")
}

func TestBatchCommand_GzipFile(t *testing.T) {
	c := newTestBatchCommand("")
	compressed := &bytes.Buffer{}
	gz := gzip.NewWriter(compressed)
	_, err := gz.Write([]byte("sles-15-sp1-v20191205\nopensuse-leap-15-1-v20190618\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, afero.WriteFile(c.fs, "catalog.txt.gz", compressed.Bytes(), 0o644))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := c.ToCLI()
	cmd.Writer = out
	cmd.ErrWriter = errOut

	require.NoError(t, cmd.Run(context.Background(), []string{
		"batch", "--provider", "gce", "--file", "catalog.txt.gz",
	}))

	views := decodeNDJSON(t, out.Bytes())
	require.Len(t, views, 2)
	assert.Equal(t, "sles-15-sp1", views[0].BaseName)
}

func TestBatchCommand_OutputNone(t *testing.T) {
	c := newTestBatchCommand("ec2 suse-sles-15-sp4-v20220101-hvm-ssd-x86_64\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := c.ToCLI()
	cmd.Writer = out
	cmd.ErrWriter = errOut

	require.NoError(t, cmd.Run(context.Background(), []string{"batch", "--output", "none"}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "parsed 1")
}

func TestBatchCommand_Failures(t *testing.T) {
	input := strings.Join([]string{
		"ec2 suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
		"not-a-provider-name-pair",
		"ec2 ???",
		"gce sles-15-sp1-v20191205",
	}, "\n")

	t.Run("keep going", func(t *testing.T) {
		c := newTestBatchCommand(input)
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := c.ToCLI()
		cmd.Writer = out
		cmd.ErrWriter = errOut

		err := cmd.Run(context.Background(), []string{"batch"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 name(s) failed to parse")

		views := decodeNDJSON(t, out.Bytes())
		assert.Len(t, views, 2)
		assert.Contains(t, errOut.String(), "parsed 2, failed 2, skipped 0")
	})

	t.Run("fail fast", func(t *testing.T) {
		c := newTestBatchCommand(input)
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := c.ToCLI()
		cmd.Writer = out
		cmd.ErrWriter = errOut

		require.Error(t, cmd.Run(context.Background(), []string{"batch", "--fail-fast"}))
		views := decodeNDJSON(t, out.Bytes())
		assert.Len(t, views, 1)
	})
}

func TestBatchCommand_UnknownOutput(t *testing.T) {
	c := newTestBatchCommand("")
	cmd := c.ToCLI()
	cmd.Writer = &bytes.Buffer{}
	cmd.ErrWriter = &bytes.Buffer{}
	assert.Error(t, cmd.Run(context.Background(), []string{"batch", "--output", "xml"}))
}
