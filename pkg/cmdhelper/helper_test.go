package cmdhelper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/pintname/pkg/cmdhelper"
)

func TestBeforeFunc(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	called := false
	before := cmdhelper.BeforeFunc(func(_ context.Context, _ *cli.Command) error {
		called = true
		return nil
	})
	got, err := before(ctx, &cli.Command{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, ctx, got)

	wantErr := errors.New("rejected")
	failing := cmdhelper.BeforeFunc(func(_ context.Context, _ *cli.Command) error {
		return wantErr
	})
	got, err = failing(ctx, &cli.Command{})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, ctx, got)
}

func TestArgGuards(t *testing.T) {
	newCommand := func(guard cmdhelper.ActionFunc) *cli.Command {
		return &cli.Command{
			Name:   "test",
			Before: cmdhelper.BeforeFunc(guard),
			Action: func(_ context.Context, _ *cli.Command) error { return nil },
		}
	}

	require.NoError(t, newCommand(cmdhelper.MinimumNArgs(1)).Run(context.Background(), []string{"test", "a"}))
	assert.Error(t, newCommand(cmdhelper.MinimumNArgs(2)).Run(context.Background(), []string{"test", "a"}))

	require.NoError(t, newCommand(cmdhelper.NoArgs()).Run(context.Background(), []string{"test"}))
	assert.Error(t, newCommand(cmdhelper.NoArgs()).Run(context.Background(), []string{"test", "extra"}))
}
