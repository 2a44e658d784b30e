package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/pintname/pkg/appinfo"
)

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewVersionCommand().ToCLI()
	cmd.Writer = out

	require.NoError(t, cmd.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), appinfo.GetVersion().Version)
}

func TestVersionCommand_Short(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewVersionCommand().ToCLI()
	cmd.Writer = out

	require.NoError(t, cmd.Run(context.Background(), []string{"version", "--short"}))
	assert.Contains(t, out.String(), appinfo.GetVersion().Version)
}
