package commands

import (
	"context"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/pintname/pkg/cmdhelper"
	"github.com/wuxler/pintname/pkg/errdefs"
	"github.com/wuxler/pintname/pkg/name"
)

// NewProvidersCommand returns a ProvidersCommand with default values.
func NewProvidersCommand() *ProvidersCommand {
	return &ProvidersCommand{
		Output: "table",
	}
}

// ProvidersCommand lists the supported cloud providers.
type ProvidersCommand struct {
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// providerView is the output representation of a provider.
type providerView struct {
	Provider    string   `json:"provider" yaml:"provider"`
	ShortName   string   `json:"short_name" yaml:"short_name"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Aliases     []string `json:"aliases" yaml:"aliases"`
}

// ToCLI tranforms to a *cli.Command.
func (c *ProvidersCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:   "providers",
		Usage:  "List the supported cloud providers and their aliases",
		Flags:  c.Flags(),
		Before: cmdhelper.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ProvidersCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       `output format, oneof ["table", "json", "yaml"]`,
			Destination: &c.Output,
			Value:       c.Output,
		},
	}
}

// Run is the main function for the current command.
func (c *ProvidersCommand) Run(_ context.Context, cmd *cli.Command) error {
	views := lo.Map(name.AllProviders(), func(p name.Provider, _ int) providerView {
		return providerView{
			Provider:    p.String(),
			ShortName:   p.ShortName(),
			DisplayName: p.DisplayName(),
			Aliases:     p.Aliases(),
		}
	})

	switch c.Output {
	case "table", "text", "":
		table := tablewriter.NewWriter(cmd.Writer)
		table.SetHeader([]string{"Provider", "Short", "Display", "Aliases"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		for _, v := range views {
			table.Append([]string{v.Provider, v.ShortName, v.DisplayName, strings.Join(v.Aliases, ", ")})
		}
		table.Render()
		return nil
	case "json":
		data, err := cmdhelper.PrettifyJSON(views)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", strings.TrimRight(string(data), "\n"))
		return nil
	case "yaml", "yml":
		data, err := cmdhelper.EncodeYAML(views)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", strings.TrimRight(string(data), "\n"))
		return nil
	}
	return errdefs.Newf(errdefs.ErrUnsupported, "unknown output format %q", c.Output)
}
