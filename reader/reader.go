// Package reader materializes a [diagram.Diagram] from an XML class-diagram
// document.
//
// The documents this package reads describe classes, datatypes,
// stereotypes, packages, and relationships as a nested element tree; Read
// walks that tree in two passes, exactly mirroring how the rest of this
// module expects a Diagram to be built: every class, datatype, and
// stereotype exists before any relationship or association is resolved
// against it.
//
// Read is tolerant of a malformed or incomplete relationship: rather than
// aborting the whole document, it records a diagnostic and drops just
// that relationship. Use [WithStrict] to turn that tolerance off.
package reader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/classlens/classlens/diag"
	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/internal/trace"
)

// WithLogger sets the logger used for trace instrumentation during a read.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Read parses the XML class-diagram document at path and returns the
// resulting Diagram together with a diagnostics result describing any
// reader-tolerance issues encountered. A non-nil error indicates the
// document could not be parsed at all (malformed XML, unreadable file) or,
// under [WithStrict], that a tolerated issue was promoted to a hard
// failure.
func Read(ctx context.Context, path string, opts ...Option) (*diagram.Diagram, diag.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diag.Result{}, fmt.Errorf("reader: open %s: %w", path, err)
	}
	defer f.Close()

	opts = append([]Option{WithSourceName(path)}, opts...)
	return read(ctx, f, opts)
}

// ReadString parses an XML class-diagram document already held in memory.
func ReadString(ctx context.Context, doc string, opts ...Option) (*diagram.Diagram, diag.Result, error) {
	return read(ctx, strings.NewReader(doc), opts)
}

func read(ctx context.Context, r io.Reader, opts []Option) (*diagram.Diagram, diag.Result, error) {
	cfg := newConfig(opts)

	op := trace.Begin(ctx, cfg.logger, "classlens.reader.read", slog.String("source", cfg.sourceName))

	root, err := parseNode(r)
	if err != nil {
		werr := fmt.Errorf("%w: %v", diag.ErrMalformedXML, err)
		op.End(werr)
		return nil, diag.Result{}, werr
	}

	models := root
	if m := root.find(tagModels); m != nil {
		models = m
	}

	p := &parser{
		diagram: diagram.New(),
		issues:  diag.NewCollector(cfg.limit),
		cfg:     cfg,
	}

	p.parseStereotypes(models)
	p.parseDatatypes(models)
	p.parseClasses(models, nil)
	p.parsePackages(models)
	if p.fatal != nil {
		op.End(p.fatal)
		return nil, diag.Result{}, p.fatal
	}
	p.parseRelationships(models)

	result := p.issues.Result()
	if cfg.strict && result.HasErrors() {
		op.End(errStrictAbort)
		return p.diagram, result, errStrictAbort
	}

	op.End(nil, slog.Int("issue_count", result.Len()))
	return p.diagram, result, nil
}

var errStrictAbort = fmt.Errorf("reader: aborted in strict mode due to reader-tolerance issues")

// parser holds the mutable state threaded through a single Read/ReadString
// call. It is not safe for concurrent use and does not outlive the call
// that creates it.
type parser struct {
	diagram *diagram.Diagram
	issues  *diag.Collector
	cfg     config
	fatal   error
}

func (p *parser) warn(code diag.Code, message string, details ...diag.Detail) {
	severity := diag.Hint
	if p.cfg.strict {
		severity = diag.Error
	}
	p.issues.Collect(diag.NewIssue(severity, code, message).
		WithSourceName(p.cfg.sourceName).
		WithDetails(details...).
		Build())
}

// fail records an unrecoverable element-construction failure: the node's
// required identifier attribute is missing or empty. Unlike a dangling
// relationship reference, this aborts the entire read.
func (p *parser) fail(n *node, tag string) {
	if p.fatal != nil {
		return
	}
	p.fatal = fmt.Errorf("reader: %s element has no identifier", tag)
}

// failWith records err, wrapped, as the read's unrecoverable failure, if
// one has not already been recorded.
func (p *parser) failWith(err error) {
	if p.fatal != nil {
		return
	}
	p.fatal = fmt.Errorf("reader: %w", err)
}
