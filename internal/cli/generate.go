package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
)

// generateOptions holds flags for the generate command.
type generateOptions struct {
	kind        string
	width       int
	height      int
	seed        uint64
	formats     string
	output      string
	cellSize    float64
	scale       int
	centers     bool
	gridLines   bool
	maxAttempts int
	noCache     bool
	refresh     bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a barrier layout",
		Long: `Generate a barrier layout and write it in one or more formats.

Kinds are given by name or number (see "barrierkit kinds"). Randomized
kinds are reproducible from --seed.`,
		Example: `  barrierkit generate -k islands --seed 7
  barrierkit generate -k staggered-blocks -f svg,png -o out/blocks
  barrierkit generate -k 2 -f txt -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.generatePipelineOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd, popts, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.kind, "kind", "k", "", "barrier kind (name or 0-6)")
	f.IntVar(&opts.width, "width", 0, "grid width in cells")
	f.IntVar(&opts.height, "height", 0, "grid height in cells")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for randomized kinds")
	f.StringVarP(&opts.formats, "format", "f", "", "output formats: svg, png, json, txt (comma-separated)")
	f.StringVarP(&opts.output, "output", "o", "", "output file or base path (- for stdout)")
	f.Float64Var(&opts.cellSize, "cell-size", 0, "SVG cell size in user units")
	f.IntVar(&opts.scale, "scale", 0, "PNG pixels per cell")
	f.BoolVar(&opts.centers, "centers", false, "mark island centers")
	f.BoolVar(&opts.gridLines, "grid-lines", false, "draw the cell lattice in SVG output")
	f.IntVar(&opts.maxAttempts, "max-attempts", 0, "placement retry limit for randomized kinds")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&opts.refresh, "refresh", false, "regenerate even when cached")

	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// generatePipelineOptions layers explicitly set flags over the config file.
func (c *CLI) generatePipelineOptions(cmd *cobra.Command, opts generateOptions) (pipeline.Options, error) {
	popts, err := c.cfg.PipelineOptions()
	if err != nil {
		return popts, err
	}
	f := cmd.Flags()
	if f.Changed("kind") {
		k, err := barrier.ParseKind(opts.kind)
		if err != nil {
			return popts, err
		}
		popts.Kind = k
	}
	if f.Changed("width") {
		popts.Width = opts.width
	}
	if f.Changed("height") {
		popts.Height = opts.height
	}
	if f.Changed("seed") {
		popts.Seed = opts.seed
	}
	if f.Changed("max-attempts") {
		popts.MaxAttempts = opts.maxAttempts
	}
	applyRenderFlags(cmd, &popts, renderFlags{
		formats:   opts.formats,
		cellSize:  opts.cellSize,
		scale:     opts.scale,
		centers:   opts.centers,
		gridLines: opts.gridLines,
	})
	popts.Refresh = opts.refresh
	popts.Logger = c.Logger
	return popts, popts.ValidateAndSetDefaults()
}

func (c *CLI) runGenerate(cmd *cobra.Command, popts pipeline.Options, opts generateOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	name := defaultName(popts.Kind.String(), popts.Width, popts.Height, popts.Seed)
	paths, err := outputPaths(popts.Formats, opts.output, name)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Generating %s...", popts.String()))
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("Generated " + popts.Kind.String())

	written, err := writeArtifacts(result.Artifacts, popts.Formats, paths)
	if err != nil {
		return err
	}
	if opts.output == stdoutPath {
		return nil
	}

	printSuccess("Generated %s", popts.String())
	printStats(result.Stats.Cells, result.Stats.Centers, result.Stats.Attempts,
		result.CacheInfo.GenerateHit && result.CacheInfo.RenderHit)
	for _, p := range written {
		printFile(p)
	}
	if jsonPath, ok := paths[pipeline.FormatJSON]; ok {
		printNextStep("Re-render", "barrierkit render "+jsonPath+" -f png")
	}
	return nil
}

// renderFlags are the render options shared by generate and render.
type renderFlags struct {
	formats   string
	cellSize  float64
	scale     int
	centers   bool
	gridLines bool
}

func applyRenderFlags(cmd *cobra.Command, popts *pipeline.Options, rf renderFlags) {
	f := cmd.Flags()
	if f.Changed("format") {
		popts.Formats = pipeline.ParseFormats(rf.formats)
	}
	if f.Changed("cell-size") {
		popts.CellSize = rf.cellSize
	}
	if f.Changed("scale") {
		popts.Scale = rf.scale
	}
	if f.Changed("centers") {
		popts.ShowCenters = rf.centers
	}
	if f.Changed("grid-lines") {
		popts.GridLines = rf.gridLines
	}
}

func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, k := range barrier.Kinds() {
		if strings.HasPrefix(k.String(), toComplete) {
			out = append(out, k.String()+"\t"+k.Description())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatJSON, pipeline.FormatText},
		cobra.ShellCompDirectiveNoFileComp
}
