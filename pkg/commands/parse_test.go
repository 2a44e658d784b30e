package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_Text(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewParseCommand().ToCLI()
	cmd.Writer = out

	err := cmd.Run(context.Background(), []string{
		"parse", "--provider", "ec2", "suse-sles-15-sp4-v20220101-hvm-ssd-x86_64",
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Base Name       : suse-sles-15-sp4")
	assert.Contains(t, out.String(), "Datestamp       : 20220101")
	assert.Contains(t, out.String(), "Platform        : linux/amd64")
	assert.Contains(t, out.String(), "Virtualization  : hvm")
	assert.Contains(t, out.String(), "Payment         : payg")
}

func TestParseCommand_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewParseCommand().ToCLI()
	cmd.Writer = out

	err := cmd.Run(context.Background(), []string{
		"parse", "--provider", "azure", "--output", "json",
		"b4b5cf1e57164bf798e8e7e751a15c50__suse-sles-15-sp5-byos-v20230623-arm64",
	})
	require.NoError(t, err)

	var views []imageView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "microsoft", views[0].Provider)
	assert.Equal(t, "suse-sles-15-sp5-byos", views[0].BaseName)
	assert.Equal(t, "b4b5cf1e57164bf798e8e7e751a15c50", views[0].UUIDPrefix)
	assert.Equal(t, "aarch64", views[0].CloudArch)
	assert.Equal(t, "byos", views[0].Payment)
}

func TestParseCommand_MultipleNames(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewParseCommand().ToCLI()
	cmd.Writer = out

	err := cmd.Run(context.Background(), []string{
		"parse", "--provider", "gce", "--output", "json",
		"sles-15-sp1-v20191205", "opensuse-leap-15-1-v20190618",
	})
	require.NoError(t, err)

	var views []imageView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "sles-15-sp1", views[0].BaseName)
	assert.Equal(t, "opensuse-leap-15-1", views[1].BaseName)
}

func TestParseCommand_Errors(t *testing.T) {
	testcases := []struct {
		name string
		args []string
	}{
		{"unknown provider", []string{"parse", "--provider", "dummy", "sles-15-sp1-v20191205"}},
		{"unparsable name", []string{"parse", "--provider", "ec2", "???"}},
		{"unknown output", []string{"parse", "--provider", "ec2", "--output", "xml", "sles-15-sp1-v20191205"}},
		{"no args", []string{"parse", "--provider", "ec2"}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewParseCommand().ToCLI()
			cmd.Writer = &bytes.Buffer{}
			assert.Error(t, cmd.Run(context.Background(), tc.args))
		})
	}
}
