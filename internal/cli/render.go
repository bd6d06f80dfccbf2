package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
)

// renderOptions holds flags for the render command.
type renderOptions struct {
	renderFlags
	output  string
	noCache bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <layout.json>",
		Short: "Render a saved layout",
		Long: `Render a layout previously written with "generate -f json" into other
formats. The layout is not regenerated.`,
		Example: `  barrierkit render barrier-islands-128x128-s7.json -f png --scale 8
  barrierkit render layout.json -f txt -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.formats, "format", "f", "", "output formats: svg, png, txt (comma-separated)")
	f.StringVarP(&opts.output, "output", "o", "", "output file or base path (- for stdout)")
	f.Float64Var(&opts.cellSize, "cell-size", 0, "SVG cell size in user units")
	f.IntVar(&opts.scale, "scale", 0, "PNG pixels per cell")
	f.BoolVar(&opts.centers, "centers", false, "mark island centers")
	f.BoolVar(&opts.gridLines, "grid-lines", false, "draw the cell lattice in SVG output")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	l, err := layout.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded layout", "path", input, "kind", l.Kind, "size", fmt.Sprintf("%dx%d", l.Width, l.Height))

	popts, err := c.cfg.PipelineOptions()
	if err != nil {
		return err
	}
	applyRenderFlags(cmd, &popts, opts.renderFlags)
	popts.Width, popts.Height = l.Width, l.Height
	popts.Logger = c.Logger
	if err := popts.ValidateForRender(); err != nil {
		return err
	}

	def := strings.TrimSuffix(input, filepath.Ext(input))
	paths, err := outputPaths(popts.Formats, opts.output, def)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if filepath.Clean(p) == filepath.Clean(input) {
			return errors.New(errors.ErrCodeInvalidPath, "refusing to overwrite input %s", input)
		}
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, l, popts)
	if err != nil {
		return err
	}
	prog.done("Rendered " + strings.Join(popts.Formats, ", "))

	written, err := writeArtifacts(artifacts, popts.Formats, paths)
	if err != nil {
		return err
	}
	if opts.output == stdoutPath {
		return nil
	}

	printSuccess("Rendered %s %dx%d", l.Kind, l.Width, l.Height)
	printStats(len(l.Locations), len(l.Centers), l.Attempts, hit)
	for _, p := range written {
		printFile(p)
	}
	return nil
}
