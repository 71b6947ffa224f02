package cycle

import (
	"log/slog"

	"github.com/classlens/classlens/diagram"
)

// Option configures a [Finder].
type Option func(*finderConfig)

type finderConfig struct {
	logger *slog.Logger
	kinds  []diagram.RelKind
}

// WithLogger enables debug logging for the search. Pass nil to disable
// logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *finderConfig) {
		cfg.logger = logger
	}
}

// WithRelationKinds restricts which relationship kinds the search follows
// when looking for a cycle. The default, used when this option is
// omitted, is all four kinds — association, dependency, generalization,
// and realization — so any relationship graph cycle is found, not just
// circular dependencies.
func WithRelationKinds(kinds ...diagram.RelKind) Option {
	return func(cfg *finderConfig) {
		cfg.kinds = append([]diagram.RelKind(nil), kinds...)
	}
}
