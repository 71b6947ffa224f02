package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/internal/trace"
	"github.com/classlens/classlens/reader"
	"github.com/classlens/classlens/render"
)

var cyclesOutput string

var cyclesCmd = &cobra.Command{
	Use:     "cycles <input>",
	Short:   "Find circular class dependencies in a class diagram",
	Example: `  classlens cycles diagram.xml -o cycles.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		input := args[0]

		d, result, err := reader.Read(ctx, input, reader.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("read %s: %w", input, err)
		}
		if result.HasErrors() {
			return newDiagnosticsError(input, result)
		}

		finder := cycle.NewFinder(d, cycle.WithLogger(logger))
		trace.Info(ctx, logger, "classlens.cycles.find", slog.String("input", input))
		cycles, err := finder.Find(ctx)
		if err != nil {
			return fmt.Errorf("find cycles: %w", err)
		}

		w, asJSON, closeFn, err := openOutput(cyclesOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		if asJSON {
			return render.WriteCyclesJSON(w, cycles, render.WithIndent("  "))
		}
		return render.WriteCycles(w, cycles)
	},
}

func init() {
	cyclesCmd.Flags().StringVarP(&cyclesOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(cyclesCmd)
}
