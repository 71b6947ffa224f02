package reader

import "log/slog"

// Option configures a Read or ReadString call.
type Option func(*config)

type config struct {
	sourceName string
	strict     bool
	limit      int
	logger     *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{sourceName: "<document>"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSourceName labels every diagnostic collected during the read with
// name, e.g. a file path. Defaults to "<document>".
func WithSourceName(name string) Option {
	return func(c *config) { c.sourceName = name }
}

// WithStrict promotes reader-tolerance hints (skipped relationships,
// skipped references) to Error severity, which makes the read return a
// non-nil error; the offending element is still dropped. Intended for CI
// lint mode.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithIssueLimit caps the number of diagnostics a single read will
// collect before further issues are dropped. A limit of 0 (the default)
// means unlimited.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.limit = limit }
}
