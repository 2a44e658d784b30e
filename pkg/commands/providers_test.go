package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvidersCommand_Table(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewProvidersCommand().ToCLI()
	cmd.Writer = out

	require.NoError(t, cmd.Run(context.Background(), []string{"providers"}))

	assert.Contains(t, out.String(), "amazon")
	assert.Contains(t, out.String(), "EC2")
	assert.Contains(t, out.String(), "ec2, aws")
	assert.Contains(t, out.String(), "microsoft")
}

func TestProvidersCommand_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewProvidersCommand().ToCLI()
	cmd.Writer = out

	require.NoError(t, cmd.Run(context.Background(), []string{"providers", "-o", "json"}))

	var views []providerView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 5)
	byName := map[string]providerView{}
	for _, v := range views {
		byName[v.Provider] = v
	}
	assert.Equal(t, "ec2", byName["amazon"].ShortName)
	assert.Equal(t, "EC2", byName["amazon"].DisplayName)
	assert.Contains(t, byName["microsoft"].Aliases, "azure")
	assert.Contains(t, byName["google"].Aliases, "gcp")
}

func TestProvidersCommand_UnknownOutput(t *testing.T) {
	cmd := NewProvidersCommand().ToCLI()
	cmd.Writer = &bytes.Buffer{}
	assert.Error(t, cmd.Run(context.Background(), []string{"providers", "-o", "xml"}))
}
