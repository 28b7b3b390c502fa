package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squaremap/pkg/errors"
	"github.com/matzehuels/squaremap/pkg/treemap"
)

// Output formats for the layout command.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	x, y    float64 // top-left corner of the bounding rectangle
	width   float64 // bounding rectangle width
	height  float64 // bounding rectangle height
	sort    bool    // lay weights out largest first
	padding float64 // empty space between neighboring tiles
	format  string  // output format: "table" or "json"
	config  string  // optional TOML file with flag defaults
}

// layoutCommand creates the layout command for computing treemap layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout WEIGHT [WEIGHT...]",
		Short: "Compute a squarified treemap layout for the given weights",
		Long: `Compute a squarified treemap layout for the given weights.

Each weight becomes one rectangle whose area is proportional to the weight.
Rectangles are emitted in input order (or descending-area order with --sort)
and together tile the bounding rectangle exactly.

Weights must be positive numbers. The bounding rectangle defaults to
0,0 800x600 and can be changed with --x/--y/--width/--height or through a
TOML config file (--config).`,
		Example: `  squaremap layout 500 433 78 25 25 7
  squaremap layout --width 1000 --height 1000 --sort 6 6 4 3 2 2 1
  squaremap layout --format json --pad 2 10 20 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.x, "x", 0, "left edge of the bounding rectangle")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "top edge of the bounding rectangle")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "bounding rectangle width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "bounding rectangle height")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "lay weights out in descending order")
	cmd.Flags().Float64Var(&opts.padding, "pad", 0, "padding between rectangles")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: table (default), json")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML file with default flag values")

	return cmd
}

// runLayout parses the weights, computes the layout, and prints it.
func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, args []string, opts layoutOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	applyConfig(&opts, cfg, cmd)

	weights, err := parseWeights(args)
	if err != nil {
		return err
	}
	logger.Debugf("parsed %d weights", len(weights))

	bounds := treemap.Rect{X: opts.x, Y: opts.y, DX: opts.width, DY: opts.height}
	logger.Debugf("frame %gx%g at (%g, %g)", bounds.DX, bounds.DY, bounds.X, bounds.Y)

	prog := newProgress(logger)
	rects, err := treemap.Layout(weights, bounds, treemap.Options{
		Sort:    opts.sort,
		Padding: opts.padding,
	})
	if err != nil {
		return fmt.Errorf("compute layout: %s", errors.UserMessage(err))
	}
	prog.done(fmt.Sprintf("Placed %d rectangles", len(rects)))

	switch opts.format {
	case formatJSON:
		return writeJSON(cmd, rects)
	case formatTable:
		printTable(rects, bounds)
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want table or json)", opts.format)
	}
}

// applyConfig fills in flag values the user did not set explicitly.
func applyConfig(opts *layoutOpts, cfg Config, cmd *cobra.Command) {
	if !cmd.Flags().Changed("x") {
		opts.x = cfg.X
	}
	if !cmd.Flags().Changed("y") {
		opts.y = cfg.Y
	}
	if !cmd.Flags().Changed("width") {
		opts.width = cfg.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.height = cfg.Height
	}
	if !cmd.Flags().Changed("sort") {
		opts.sort = cfg.Sort
	}
	if !cmd.Flags().Changed("pad") {
		opts.padding = cfg.Padding
	}
	if !cmd.Flags().Changed("format") {
		opts.format = cfg.Format
	}
}

// parseWeights converts positional arguments into weights.
func parseWeights(args []string) ([]float64, error) {
	weights := make([]float64, len(args))
	for i, arg := range args {
		w, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "weight %q is not a number", arg)
		}
		weights[i] = w
	}
	return weights, nil
}

// rectJSON is the wire shape for one rectangle in JSON output.
type rectJSON struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// writeJSON prints the rectangles as a JSON array to the command's stdout.
func writeJSON(cmd *cobra.Command, rects []treemap.Rect) error {
	out := make([]rectJSON, len(rects))
	for i, r := range rects {
		out[i] = rectJSON{X: r.X, Y: r.Y, DX: r.DX, DY: r.DY}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printTable prints the rectangles as a styled table with area shares and
// aspect ratios.
func printTable(rects []treemap.Rect, bounds treemap.Rect) {
	printSuccess("Layout complete")
	printNewline()

	fmt.Println(styleHeader.Render(fmt.Sprintf("  %-4s %12s %12s %12s %12s %8s %7s",
		"#", "x", "y", "dx", "dy", "area%", "ratio")))

	total := bounds.Area()
	for i, r := range rects {
		line := fmt.Sprintf("  %-4d %12.3f %12.3f %12.3f %12.3f %7.2f%% %7.2f",
			i, r.X, r.Y, r.DX, r.DY, 100*r.Area()/total, r.AspectRatio())
		fmt.Println(styleValue.Render(line))
	}

	printNewline()
	printDetail("%d rectangles in %gx%g frame", len(rects), bounds.DX, bounds.DY)
}
