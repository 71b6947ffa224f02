package render

import (
	"encoding/json"
	"io"

	"github.com/classlens/classlens/cycle"
	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/metric"
	"github.com/classlens/classlens/pattern"
)

// WriteOption configures JSON serialization.
type WriteOption func(*writeConfig)

type writeConfig struct {
	indent string
}

// WithIndent sets the indentation string for pretty-printing. Use "" for
// compact output (the default), "\t" for tabs, or "  " for two spaces.
func WithIndent(indent string) WriteOption {
	return func(c *writeConfig) { c.indent = indent }
}

func marshal(v any, cfg *writeConfig) ([]byte, error) {
	if cfg.indent != "" {
		return json.MarshalIndent(v, "", cfg.indent)
	}
	return json.Marshal(v)
}

// MarshalPatterns serializes matches grouped by pattern kind name, each
// group a list of objects whose fields are the pattern's own fields
// (e.g. Singleton's attribute/method, AbstractFactory's
// products/concrete_factories/concrete_products), classes rendered by
// qualified name:
//
//	{"Singleton": [{"class": "pkg.Config", "attribute": "instance", "method": "getInstance"}], "Adapter": [...]}
func MarshalPatterns(matches []pattern.Match, opts ...WriteOption) ([]byte, error) {
	cfg := &writeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return marshal(buildPatternOutput(matches), cfg)
}

// WritePatternsJSON writes the MarshalPatterns output to w.
func WritePatternsJSON(w io.Writer, matches []pattern.Match, opts ...WriteOption) error {
	data, err := MarshalPatterns(matches, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func buildPatternOutput(matches []pattern.Match) map[string][]map[string]any {
	output := make(map[string][]map[string]any)
	for _, m := range matches {
		key := m.Kind.String()
		output[key] = append(output[key], patternFields(m))
	}
	return output
}

// patternFields converts a Match's Fields into a JSON-friendly object:
// *diagram.Class values become qualified-name strings, []*diagram.Class
// values become qualified-name string slices, and strings pass through
// unchanged. A match with no named fields falls back to its plain class
// list.
func patternFields(m pattern.Match) map[string]any {
	if len(m.Fields) == 0 {
		names := make([]string, len(m.Classes))
		for i, c := range m.Classes {
			names[i] = c.QualifiedName()
		}
		return map[string]any{"classes": names}
	}
	out := make(map[string]any, len(m.Fields))
	for key, v := range m.Fields {
		switch value := v.(type) {
		case *diagram.Class:
			out[key] = value.QualifiedName()
		case []*diagram.Class:
			names := make([]string, len(value))
			for i, c := range value {
				names[i] = c.QualifiedName()
			}
			out[key] = names
		case string:
			out[key] = value
		default:
			out[key] = value
		}
	}
	return out
}

// MarshalCycles serializes cycles as an array of arrays of qualified class
// names, each inner array one cycle in member order.
func MarshalCycles(cycles []cycle.Cycle, opts ...WriteOption) ([]byte, error) {
	cfg := &writeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	out := make([][]string, len(cycles))
	for i, c := range cycles {
		members := c.Members()
		names := make([]string, len(members))
		for j, cls := range members {
			names[j] = cls.QualifiedName()
		}
		out[i] = names
	}
	return marshal(out, cfg)
}

// WriteCyclesJSON writes the MarshalCycles output to w.
func WriteCyclesJSON(w io.Writer, cycles []cycle.Cycle, opts ...WriteOption) error {
	data, err := MarshalCycles(cycles, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// MarshalMetrics serializes metrics as a flat {identifier: value} object.
func MarshalMetrics(metrics []metric.Metric, opts ...WriteOption) ([]byte, error) {
	cfg := &writeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		out[m.Identifier()] = m.Value()
	}
	return marshal(out, cfg)
}

// WriteMetricsJSON writes the MarshalMetrics output to w.
func WriteMetricsJSON(w io.Writer, metrics []metric.Metric, opts ...WriteOption) error {
	data, err := MarshalMetrics(metrics, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
