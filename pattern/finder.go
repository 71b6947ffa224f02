package pattern

import (
	"context"
	"log/slog"

	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/internal/trace"
)

// Option configures a [Finder].
type Option func(*finderConfig)

type finderConfig struct {
	logger   *slog.Logger
	matchers []Matcher
}

// WithLogger enables debug logging for the search. Pass nil to disable
// logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *finderConfig) { cfg.logger = logger }
}

// WithMatchers overrides the set of matchers a Finder runs; by default a
// Finder runs every matcher from [Matchers].
func WithMatchers(matchers ...Matcher) Option {
	return func(cfg *finderConfig) { cfg.matchers = matchers }
}

// Finder runs every pattern matcher over a diagram and caches the
// combined, deduplicated result.
type Finder struct {
	diagram  *diagram.Diagram
	config   finderConfig
	computed bool
	matches  []Match
}

// NewFinder constructs a Finder over d.
func NewFinder(d *diagram.Diagram, opts ...Option) *Finder {
	cfg := finderConfig{matchers: Matchers()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Finder{diagram: d, config: cfg}
}

// Find returns every pattern match in the diagram, deduplicated across
// matchers that can report the same participant set. The result is
// memoized.
func (f *Finder) Find(ctx context.Context) ([]Match, error) {
	op := trace.Begin(ctx, f.config.logger, "classlens.pattern.find")
	var err error
	defer func() { op.End(err) }()

	if f.computed {
		return f.matches, nil
	}

	var found []Match
	for _, m := range f.config.matchers {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for _, match := range m.Find(f.diagram) {
			if !containsMatch(found, match) {
				found = append(found, match)
				trace.Debug(ctx, f.config.logger, "pattern found",
					slog.String("kind", match.Kind.String()))
			}
		}
	}

	f.matches = found
	f.computed = true
	return found, nil
}

func containsMatch(matches []Match, candidate Match) bool {
	for _, existing := range matches {
		if existing.Equal(candidate) {
			return true
		}
	}
	return false
}

// InvolvedClasses returns the set of distinct classes participating in
// any of matches.
func InvolvedClasses(matches []Match) []*diagram.Class {
	seen := make(map[*diagram.Class]bool)
	var out []*diagram.Class
	for _, m := range matches {
		for _, c := range m.Classes {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Types returns the set of distinct pattern kinds present in matches.
func Types(matches []Match) []Kind {
	seen := make(map[Kind]bool)
	var out []Kind
	for _, m := range matches {
		if !seen[m.Kind] {
			seen[m.Kind] = true
			out = append(out, m.Kind)
		}
	}
	return out
}
