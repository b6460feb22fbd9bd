package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/render"
)

func newFeaturesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the input features with their ranges and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeatures(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "md", "Output format: json or md")
	return cmd
}

func runFeatures(w io.Writer, format string) error {
	specs := features.Catalog()
	switch format {
	case "json":
		data, err := json.MarshalIndent(specs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		fmt.Fprint(w, render.Catalog(specs))
	default:
		return exitError(3, "unknown format: %s", format)
	}
	return nil
}
