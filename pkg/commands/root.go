package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/pintname/pkg/cmdhelper"
	"github.com/wuxler/pintname/pkg/commands/internal/options"
)

// New returns the root command of the application.
func New() *cli.Command {
	common := options.NewCommon()
	return &cli.Command{
		Name:                  "pintname",
		Usage:                 "pintname decodes SUSE public cloud image names into their typed fields",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags:                 common.Flags(),
		Before:                cmdhelper.BeforeFunc(common.ConfigureLogging),
		Commands: []*cli.Command{
			NewParseCommand().ToCLI(),
			NewProvidersCommand().ToCLI(),
			NewBatchCommand().ToCLI(),
			NewVersionCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
}
