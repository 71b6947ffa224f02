package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/classlens/classlens/config"
	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/internal/trace"
	"github.com/classlens/classlens/metric"
	"github.com/classlens/classlens/pattern"
	"github.com/classlens/classlens/reader"
	"github.com/classlens/classlens/render"
)

var (
	infoConfigPath string
	infoOutput     string
)

var infoCmd = &cobra.Command{
	Use:     "info <input>",
	Aliases: []string{"metrics"},
	Short:   "Compute maintainability metrics for a class diagram",
	Example: `  classlens info diagram.xml
  classlens info diagram.xml -c weights.json -o report.json`,
	Args: cobra.ExactArgs(1),
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

		var weights config.Weights
		if infoConfigPath != "" {
			weights, err = config.Load(ctx, infoConfigPath, config.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("load weight config %s: %w", infoConfigPath, err)
			}
		}

		cfinder := cycle.NewFinder(d, cycle.WithLogger(logger))
		pfinder := pattern.NewFinder(d, pattern.WithLogger(logger))
		aggregator := metric.NewAggregator(d, cfinder, pfinder, weights.MetricWeights(), weights.DevelopmentCost())

		trace.Info(ctx, logger, "classlens.info.compute", slog.String("input", input))
		metrics, err := aggregator.Compute(ctx)
		if err != nil {
			return fmt.Errorf("compute metrics: %w", err)
		}

		w, asJSON, closeFn, err := openOutput(infoOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		if asJSON {
			return render.WriteMetricsJSON(w, metrics, render.WithIndent("  "))
		}
		return render.WriteMetrics(w, metrics)
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoConfigPath, "config", "c", "", "metric-weight configuration file")
	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(infoCmd)
}
