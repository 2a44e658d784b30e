// Package commands implements the pintname cli commands.
package commands

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/pintname/pkg/cmdhelper"
	"github.com/wuxler/pintname/pkg/name"
)

// NewParseCommand returns a ParseCommand with default values.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		DefaultArch: name.DefaultArch,
		Output:      "text",
	}
}

// ParseCommand decodes image names into their typed fields.
type ParseCommand struct {
	Provider    string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Strict      bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
	DefaultArch string `json:"default_arch,omitempty" yaml:"default_arch,omitempty"`
	Output      string `json:"output,omitempty" yaml:"output,omitempty"`
}

// ToCLI tranforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Decode image names into typed fields",
		UsageText: `pintname parse [OPTIONS] NAME...

# Decode an Amazon EC2 image name:
$ pintname parse --provider ec2 suse-sles-15-sp4-v20220101-hvm-ssd-x86_64

# Decode an Azure image name and print the fields as json:
$ pintname parse --provider azure --output json suse-sles-12-sp5-basic-v20200922

# Select the provider interactively:
$ pintname parse suse-sles-15-sp4-v20220101-hvm-ssd-x86_64
`,
		ArgsUsage: "NAME...",
		Flags:     c.Flags(),
		Before:    cmdhelper.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ParseCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "provider",
			Aliases:     []string{"p"},
			Usage:       "cloud provider the names belong to, e.g. \"ec2\" or \"azure\"",
			Sources:     cli.EnvVars("PINTNAME_PROVIDER"),
			Destination: &c.Provider,
			Value:       c.Provider,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "require a recognized product base and a datestamp",
			Destination: &c.Strict,
			Value:       c.Strict,
		},
		&cli.StringFlag{
			Name:        "default-arch",
			Usage:       "architecture reported when a name carries no arch token",
			Destination: &c.DefaultArch,
			Value:       c.DefaultArch,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Destination: &c.Output,
			Value:       c.Output,
		},
	}
}

// Run is the main function for the current command.
func (c *ParseCommand) Run(_ context.Context, cmd *cli.Command) error {
	provider := c.Provider
	if provider == "" {
		selected, err := c.promptProvider()
		if err != nil {
			return fmt.Errorf("provider is required: %w", err)
		}
		provider = selected
	}
	opts := []name.Option{
		name.WithStrict(c.Strict),
		name.WithDefaultArch(c.DefaultArch),
	}
	views := make([]imageView, 0, cmd.Args().Len())
	for _, image := range cmd.Args().Slice() {
		n, err := name.Parse(provider, image, opts...)
		if err != nil {
			return err
		}
		views = append(views, newImageView(n))
	}
	return writeViews(cmd.Writer, c.Output, views)
}

// promptProvider asks for a provider interactively when none was given on
// the command line.
func (c *ParseCommand) promptProvider() (string, error) {
	providers := name.AllProviders()
	prompt := promptui.Select{
		Label: "Select provider",
		Items: lo.Map(providers, func(p name.Provider, _ int) string {
			return fmt.Sprintf("%s (%s)", p, p.DisplayName())
		}),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return providers[idx].String(), nil
}
