// Package config loads the optional metric-weight configuration consumed
// by the metric aggregator's remediation-cost calculation.
//
// The configuration file is a flat JSON object mapping metric identifiers
// (e.g. "classes_in_pattern", "development_cost") to numeric weights. It
// is parsed jsonc-tolerant (// and /* */ comments, trailing commas):
// permissive by default, [WithStrictJSON] to require exact JSON.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/classlens/classlens/diag"
	"github.com/classlens/classlens/internal/trace"
	"github.com/classlens/classlens/metric"
)

// developmentCostKey is the weight-map entry consumed directly by the
// aggregator as its development-cost constant rather than as a
// remediation-cost term.
const developmentCostKey = "development_cost"

// Weights is a metric identifier to weight mapping, loaded from a
// configuration file. A zero-value Weights has every weight default to 0
// and DevelopmentCost default to 0.0, matching an unconfigured run.
type Weights map[string]float64

// DevelopmentCost returns the configured development_cost entry, or 0.0
// if absent.
func (w Weights) DevelopmentCost() float64 {
	return w[developmentCostKey]
}

// MetricWeights converts w into the weight map [metric.Aggregator]
// consumes for its remediation-cost linear combination. The
// development_cost entry, if present, rides along harmlessly: it never
// matches a base metric identifier, so it contributes nothing to
// remediation cost.
func (w Weights) MetricWeights() metric.Weights {
	return metric.Weights(w)
}

// Option configures a Load call.
type Option func(*loadConfig)

type loadConfig struct {
	strictJSON bool
	logger     *slog.Logger
}

// WithStrictJSON disables jsonc preprocessing, requiring the
// configuration file to be exact JSON with no comments or trailing commas.
func WithStrictJSON(strict bool) Option {
	return func(c *loadConfig) { c.strictJSON = strict }
}

// WithLogger sets the logger used for trace instrumentation during a load.
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) { c.logger = logger }
}

// Load reads and parses the weight configuration file at path.
func Load(ctx context.Context, path string, opts ...Option) (Weights, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "classlens.config.load", slog.String("path", path))
	var err error
	defer func() { op.End(err) }()

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("config: read %s: %w", path, err)
		return nil, err
	}

	var weights Weights
	weights, err = parse(ctx, data, &cfg)
	return weights, err
}

// Parse parses weight configuration data already held in memory.
func Parse(data []byte, opts ...Option) (Weights, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return parse(context.Background(), data, &cfg)
}

func parse(ctx context.Context, data []byte, cfg *loadConfig) (Weights, error) {
	processed := data
	if !cfg.strictJSON {
		processed = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var raw map[string]json.Number
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", diag.ErrConfigParse, err)
	}

	weights := make(Weights, len(raw))
	for key, num := range raw {
		v, err := num.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: weight %q is not a number: %v", diag.ErrConfigParse, key, err)
		}
		weights[key] = v
	}

	trace.Debug(ctx, cfg.logger, "configuration parsed", slog.Int("weight_count", len(weights)))
	return weights, nil
}
