package main

import (
	"fmt"

	"github.com/philipparndt/heightmap2obj/internal/config"
	"github.com/philipparndt/heightmap2obj/internal/convert"
	"github.com/spf13/cobra"
)

var meshFlags struct {
	scale     float64
	maxHeight float64
	strict    bool
	workers   int
}

var convertCmd = &cobra.Command{
	Use:   "convert <image> [output.obj]",
	Short: "Convert a heightmap image to an OBJ file",
	Long: `Convert a heightmap image (PNG, JPEG, GIF, BMP, TIFF or WebP) to an OBJ mesh.
The output defaults to the image path with an .obj extension.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addMeshFlags(convertCmd)
}

// addMeshFlags registers the flags overriding the mesh section of the config
func addMeshFlags(cmd *cobra.Command) {
	defaults := config.Default().Mesh
	cmd.Flags().Float64VarP(&meshFlags.scale, "scale", "s", defaults.Scale, "Scale applied to all three axes")
	cmd.Flags().Float64VarP(&meshFlags.maxHeight, "max-height", "m", defaults.MaxHeight, "Height of a white pixel before scaling")
	cmd.Flags().BoolVar(&meshFlags.strict, "strict", defaults.Strict, "Reject zero or negative scale and max height")
	cmd.Flags().IntVarP(&meshFlags.workers, "workers", "j", defaults.Workers, "Goroutines generating vertices (0 = one per CPU)")
}

// applyMeshFlags copies explicitly set flags over the loaded config
func applyMeshFlags(cmd *cobra.Command) error {
	if cmd.Flags().Changed("scale") {
		cfg.Mesh.Scale = meshFlags.scale
	}
	if cmd.Flags().Changed("max-height") {
		cfg.Mesh.MaxHeight = meshFlags.maxHeight
	}
	if cmd.Flags().Changed("strict") {
		cfg.Mesh.Strict = meshFlags.strict
	}
	if cmd.Flags().Changed("workers") {
		cfg.Mesh.Workers = meshFlags.workers
	}
	return cfg.Validate()
}

// conversionRequest builds the request from positional arguments
func conversionRequest(args []string) convert.Request {
	req := convert.Request{
		InputPath: args[0],
		Params:    cfg.Params(),
	}
	if len(args) > 1 {
		req.OutputPath = args[1]
	} else {
		req.OutputPath = convert.DefaultOutputPath(req.InputPath)
	}
	return req
}

func conversionOptions() convert.Options {
	return convert.Options{Workers: cfg.Mesh.Workers, Strict: cfg.Mesh.Strict}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := applyMeshFlags(cmd); err != nil {
		return err
	}

	summary, err := convert.Run(cmd.Context(), conversionRequest(args), conversionOptions(), convert.WriterReporter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.Details())
	return nil
}
