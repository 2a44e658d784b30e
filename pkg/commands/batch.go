package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/pintname/pkg/cmdhelper"
	"github.com/wuxler/pintname/pkg/errdefs"
	"github.com/wuxler/pintname/pkg/name"
	"github.com/wuxler/pintname/pkg/util/xcache"
	"github.com/wuxler/pintname/pkg/xlog"
)

// gzipMagic is the two byte magic number of the gzip format.
var gzipMagic = []byte{0x1f, 0x8b}

// NewBatchCommand returns a BatchCommand with default values.
func NewBatchCommand() *BatchCommand {
	return &BatchCommand{
		Output: "ndjson",
		fs:     afero.NewOsFs(),
		clock:  clock.New(),
		stdin:  os.Stdin,
	}
}

// BatchCommand decodes a line oriented list of image names from a file or
// stdin, e.g. a pint catalog dump.
type BatchCommand struct {
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
	Strict   bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
	NoCache  bool   `json:"no_cache,omitempty" yaml:"no_cache,omitempty"`
	FailFast bool   `json:"fail_fast,omitempty" yaml:"fail_fast,omitempty"`

	fs    afero.Fs
	clock clock.Clock
	stdin io.Reader
}

// BatchSummary accounts for the processed lines of a batch run.
type BatchSummary struct {
	Parsed    int `json:"parsed" yaml:"parsed"`
	Failed    int `json:"failed" yaml:"failed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	CacheHits int `json:"cache_hits" yaml:"cache_hits"`
}

// ToCLI tranforms to a *cli.Command.
func (c *BatchCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Decode a line oriented list of image names",
		UsageText: `pintname batch [OPTIONS]

# Decode EC2 names from a file, one name per line:
$ pintname batch --provider ec2 --file names.txt

# Decode "PROVIDER NAME" lines from stdin:
$ cat names.txt | pintname batch

# Decode a gzip compressed pint catalog dump, counting only:
$ pintname batch --provider gce --file catalog.txt.gz --output none
`,
		Flags:  c.Flags(),
		Before: cmdhelper.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *BatchCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "provider",
			Aliases:     []string{"p"},
			Usage:       "cloud provider for all lines; when unset every line must be \"PROVIDER NAME\"",
			Sources:     cli.EnvVars("PINTNAME_PROVIDER"),
			Destination: &c.Provider,
			Value:       c.Provider,
		},
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "read names from the file instead of stdin, transparently gunzipped",
			Destination: &c.File,
			Value:       c.File,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       `output format, oneof ["ndjson", "none"]`,
			Destination: &c.Output,
			Value:       c.Output,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "require a recognized product base and a datestamp",
			Destination: &c.Strict,
			Value:       c.Strict,
		},
		&cli.BoolFlag{
			Name:        "no-cache",
			Usage:       "do not memoize repeated names",
			Destination: &c.NoCache,
			Value:       c.NoCache,
		},
		&cli.BoolFlag{
			Name:        "fail-fast",
			Usage:       "stop at the first name that fails to parse",
			Destination: &c.FailFast,
			Value:       c.FailFast,
		},
	}
}

// Run is the main function for the current command.
func (c *BatchCommand) Run(ctx context.Context, cmd *cli.Command) error {
	if c.Output != "ndjson" && c.Output != "none" {
		return errdefs.Newf(errdefs.ErrUnsupported, "unknown output format %q", c.Output)
	}
	start := c.clock.Now()

	input, err := c.openInput(cmd)
	if err != nil {
		return err
	}
	defer input.Close()

	summary, err := c.process(ctx, cmd, input)
	elapsed := c.clock.Since(start)
	cmdhelper.Fprintf(cmd.Root().ErrWriter,
		"parsed %d, failed %d, skipped %d, cache hits %d in %s",
		summary.Parsed, summary.Failed, summary.Skipped, summary.CacheHits, elapsed)
	return err
}

func (c *BatchCommand) process(ctx context.Context, cmd *cli.Command, input io.Reader) (BatchSummary, error) {
	var cache xcache.Cache[name.ImageName]
	if c.NoCache {
		cache = xcache.NewDiscard[name.ImageName]()
	} else {
		cache = xcache.NewMemory[name.ImageName]()
	}
	opts := []name.Option{name.WithStrict(c.Strict)}

	summary := BatchSummary{}
	var firstErr error
	encoder := json.NewEncoder(cmd.Writer)
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			summary.Skipped++
			continue
		}
		provider, image, err := c.splitLine(line)
		if err != nil {
			summary.Failed++
			if c.FailFast {
				return summary, err
			}
			if firstErr == nil {
				firstErr = err
			}
			xlog.Warn("skipping malformed line", "line", line, "reason", err.Error())
			continue
		}

		var parseErr error
		loaded := false
		n, ok := cache.Get(ctx, provider+" "+image, xcache.WithLoader(
			func(_ context.Context, _ string) (name.ImageName, bool) {
				loaded = true
				parsed, err := name.Parse(provider, image, opts...)
				if err != nil {
					parseErr = err
					return name.ImageName{}, false
				}
				return parsed, true
			}))
		if !ok {
			summary.Failed++
			if c.FailFast {
				return summary, parseErr
			}
			if firstErr == nil {
				firstErr = parseErr
			}
			xlog.Warn("skipping unparsable image name", "provider", provider, "image", image)
			continue
		}
		if !loaded {
			summary.CacheHits++
		}
		summary.Parsed++
		if c.Output == "ndjson" {
			if err := encoder.Encode(newImageView(n)); err != nil {
				return summary, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, err
	}
	if firstErr != nil {
		return summary, fmt.Errorf("%d name(s) failed to parse, first failure: %w", summary.Failed, firstErr)
	}
	return summary, nil
}

// splitLine resolves a line into a provider key and an image name. With the
// --provider flag the whole line is the name, otherwise the line is expected
// to be "PROVIDER NAME".
func (c *BatchCommand) splitLine(line string) (string, string, error) {
	if c.Provider != "" {
		return c.Provider, line, nil
	}
	provider, image, ok := strings.Cut(line, " ")
	if !ok || strings.TrimSpace(image) == "" {
		return "", "", errdefs.Newf(errdefs.ErrInvalidParameter,
			"line %q is not of the form \"PROVIDER NAME\"", line)
	}
	return provider, strings.TrimSpace(image), nil
}

// openInput opens the input file, or falls back to stdin when no file was
// given. Gzip compressed input is detected by its magic number.
func (c *BatchCommand) openInput(_ *cli.Command) (io.ReadCloser, error) {
	var reader io.Reader
	closer := io.Closer(io.NopCloser(nil))
	if c.File == "" || c.File == "-" {
		reader = c.stdin
	} else {
		f, err := c.fs.Open(c.File)
		if err != nil {
			return nil, err
		}
		reader = f
		closer = f
	}

	buffered := bufio.NewReader(reader)
	magic, err := buffered.Peek(len(gzipMagic))
	if err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			closer.Close() //nolint:errcheck // best effort cleanup
			return nil, err
		}
		return readCloser{Reader: gz, Closer: closer}, nil
	}
	return readCloser{Reader: buffered, Closer: closer}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
