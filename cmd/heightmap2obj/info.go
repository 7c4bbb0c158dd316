package main

import (
	"fmt"

	"github.com/philipparndt/heightmap2obj/pkg/analysis"
	"github.com/philipparndt/heightmap2obj/pkg/obj"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an OBJ file",
	Long:  "Show the header comments, vertex and face counts, dimensions, height range and edge statistics of an OBJ file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := obj.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing OBJ file: %w", err)
	}

	result := analysis.Analyze(model)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "OBJ File Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n", filename)
	for _, c := range model.Comments {
		fmt.Fprintf(out, "  # %s\n", c)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Faces: %d\n", result.FaceCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))

	if result.VertexCount == 0 {
		return nil
	}

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Fprintf(out, "  Height (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Fprintf(out, "  Depth (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Fprintf(out, "  Height range: %.6f .. %.6f\n\n", result.MinHeight, result.MaxHeight)

	if result.EdgeCount > 0 {
		fmt.Fprintln(out, "Edge Lengths:")
		fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
		fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
		fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
	}
	return nil
}
