package cycle

import (
	"context"
	"log/slog"

	"github.com/classlens/classlens/cycle/internal/walk"
	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/internal/trace"
)

// Finder searches a diagram for dependency cycles. A Finder is cheap to
// construct; [Finder.Find] memoizes its result, so repeated calls after
// the first return the cached slice.
type Finder struct {
	diagram  *diagram.Diagram
	config   finderConfig
	computed bool
	cycles   []Cycle
}

// NewFinder constructs a Finder over d.
func NewFinder(d *diagram.Diagram, opts ...Option) *Finder {
	cfg := finderConfig{kinds: []diagram.RelKind{
		diagram.AssociationKind,
		diagram.DependencyKind,
		diagram.GeneralizationKind,
		diagram.RealizationKind,
	}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Finder{diagram: d, config: cfg}
}

// Find returns every cycle in the diagram, deduplicated up to rotation,
// following the relationship kinds configured via [WithRelationKinds].
// The result is memoized: subsequent calls return the cached slice
// without re-searching.
func (f *Finder) Find(ctx context.Context) ([]Cycle, error) {
	op := trace.Begin(ctx, f.config.logger, "classlens.cycle.find")
	var err error
	defer func() { op.End(err) }()

	if f.computed {
		return f.cycles, nil
	}

	var found []Cycle
	for cls := range f.diagram.Classes(false) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for _, members := range walk.FindCycles(cls, f.edgesOf) {
			candidate := New(members)
			if !containsRotation(found, candidate) {
				found = append(found, candidate)
				trace.Debug(ctx, f.config.logger, "cycle found",
					slog.String("cycle", candidate.String()))
			}
		}
	}

	f.cycles = found
	f.computed = true
	return found, nil
}

func (f *Finder) edgesOf(cls *diagram.Class) []*diagram.Class {
	var out []*diagram.Class
	for related := range f.diagram.RelatedClasses(cls, diagram.LHS, nil, f.config.kinds...) {
		out = append(out, related)
	}
	return out
}
