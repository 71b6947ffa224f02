package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/classlens/classlens/internal/trace"
	"github.com/classlens/classlens/pattern"
	"github.com/classlens/classlens/reader"
	"github.com/classlens/classlens/render"
)

var (
	patternsKindFlag string
	patternsOutput   string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns <input>",
	Short: "Detect design-pattern matches in a class diagram",
	Example: `  classlens patterns diagram.xml
  classlens patterns -p singleton diagram.xml -o matches.json`,
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

		finder := pattern.NewFinder(d, pattern.WithLogger(logger))
		trace.Info(ctx, logger, "classlens.patterns.find", slog.String("input", input))
		matches, err := finder.Find(ctx)
		if err != nil {
			return fmt.Errorf("find patterns: %w", err)
		}

		if patternsKindFlag != "" {
			kind, err := parsePatternKind(patternsKindFlag)
			if err != nil {
				return err
			}
			matches = filterByKind(matches, kind)
		}

		w, asJSON, closeFn, err := openOutput(patternsOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		if asJSON {
			return render.WritePatternsJSON(w, matches, render.WithIndent("  "))
		}
		return render.WritePatterns(w, matches)
	},
}

func init() {
	patternsCmd.Flags().StringVarP(&patternsKindFlag, "pattern", "p", "", "only report matches of this pattern kind")
	patternsCmd.Flags().StringVarP(&patternsOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(patternsCmd)
}

func filterByKind(matches []pattern.Match, kind pattern.Kind) []pattern.Match {
	var out []pattern.Match
	for _, m := range matches {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

var patternKindsByName = func() map[string]pattern.Kind {
	all := []pattern.Kind{
		pattern.AbstractFactory, pattern.Adapter, pattern.Bridge, pattern.Composite,
		pattern.Decorator, pattern.Facade, pattern.FactoryMethod, pattern.Prototype,
		pattern.Proxy, pattern.Singleton,
	}
	m := make(map[string]pattern.Kind, len(all))
	for _, k := range all {
		slug := strings.ToLower(strings.ReplaceAll(k.String(), " ", "-"))
		m[slug] = k
		m[strings.ReplaceAll(slug, "-", "")] = k
	}
	return m
}()

func parsePatternKind(name string) (pattern.Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if kind, ok := patternKindsByName[key]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("unknown pattern kind %q", name)
}
