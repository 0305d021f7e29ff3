package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/antennas/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; "-" writes to stdout
	format   string // dot, svg or json
	detailed bool   // positions and degrees in node labels
	effects  bool   // draw clipped effect points
	noCache  bool   // bypass the artifact cache
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}
	cmd := &cobra.Command{
		Use:   "render <grid>",
		Short: "Draw the interference graph as Graphviz DOT or SVG",
		Long: `Draw the interference graph with every antenna pinned at its grid position.
SVG output is rendered with Graphviz. The json format writes a full report of
antennas, edges and effect points. SVG and JSON are cached by grid content and
options.`,
		Example: `  antennas render city.txt
  antennas render city.txt --format dot -o - | dot -Kneato -Tpng > city.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <grid>.<format>, - for stdout)")
	cmd.Flags().StringVar(&opts.format, "format", pipeline.FormatSVG, "output format: dot, svg or json")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show positions and degrees in labels")
	cmd.Flags().BoolVar(&opts.effects, "effects", false, "draw effect points inside the grid")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		logger.Warn("Cache unavailable, rendering without it", "err", err)
		runner = pipeline.NewRunner(nil, nil, c.Logger)
	}
	defer runner.Close()

	res, err := c.build(ctx, runner, input)
	if err != nil {
		return err
	}

	var spin *spinner
	if opts.format == pipeline.FormatSVG {
		spin = newSpinner(ctx, os.Stderr, "Rendering SVG...")
		spin.start()
	}
	data, cached, err := runner.RenderWithCacheInfo(ctx, res, pipeline.RenderOptions{
		Format:   opts.format,
		Detailed: opts.detailed,
		Effects:  opts.effects,
	})
	if spin != nil {
		spin.stop()
		if spin.interrupted() {
			return ctx.Err()
		}
	}
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))
	printSuccess("Rendered %s", res.Source)
	printStats(res.Stats.Vertices, res.Stats.Edges, cached)
	printFile(output)
	return nil
}
