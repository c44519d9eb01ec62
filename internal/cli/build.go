package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	palette "github.com/gogpu/gg-palette"
)

type buildOpts struct {
	out      string
	format   string
	sampling string
}

func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <paints.toml>",
		Short: "Build the paint texture and write it as an image",
		Long: `Build decodes the paint list, lays it out and fills the 256x256 paint
texture, then writes the texture to --out and prints the layout table.

The image format follows --format, or the --out extension when unset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "palette.png", "output image path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "image format: png, bmp or tiff")
	cmd.Flags().StringVar(&opts.sampling, "sampling", "", "gradient sampling: wrap or linear (overrides the paint file)")

	return cmd
}

func runBuild(ctx context.Context, w io.Writer, path string, opts buildOpts) error {
	format, err := resolveFormat(opts.format, opts.out)
	if err != nil {
		return err
	}

	res, err := layoutPaintFile(ctx, path, opts.sampling)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	data, err := res.built.BuildPaintData(res.pal)
	if err != nil {
		return fmt.Errorf("fill paint texture: %w", err)
	}
	if err := writeImage(opts.out, data.Image(), format); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	prog.done("Wrote paint texture", "path", opts.out, "format", format)

	_, err = fmt.Fprintf(w, "%s\n%s\n", layoutTable(res.pal, res.built), layoutSummary(res.pal, res.built))
	return err
}

// layoutResult is a decoded and laid-out paint file.
type layoutResult struct {
	pal    *palette.Palette
	pushed []pushedPaint
	built  *palette.BuiltPalette
}

// layoutPaintFile loads the paint list at path and builds its palette
// layout. samplingFlag overrides the file's sampling mode when non-empty.
func layoutPaintFile(ctx context.Context, path, samplingFlag string) (*layoutResult, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := loadPaintFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	sampling, err := f.sampling(samplingFlag)
	if err != nil {
		return nil, err
	}
	pal, pushed, err := f.buildPalette()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dups := 0
	for _, p := range pushed {
		if p.Dup {
			dups++
			logger.Debug("Deduplicated paint", "entry", p.Entry, "id", p.ID.String())
		}
	}

	built, err := palette.Build(pal, palette.WithSampling(sampling), palette.WithLogger(slogFor(logger)))
	if err != nil {
		return nil, fmt.Errorf("build palette: %w", err)
	}
	prog.done("Laid out palette", "entries", len(pushed), "paints", pal.Len(), "duplicates", dups)

	return &layoutResult{pal: pal, pushed: pushed, built: built}, nil
}
