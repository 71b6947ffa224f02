package lsp

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/classlens/classlens/diag"
	"github.com/classlens/classlens/reader"
)

// Notifier sends an LSP notification. It abstracts away glsp.Context so
// tests can capture notifications without a live connection.
type Notifier func(method string, params any)

// document is an open text document tracked by the workspace.
type document struct {
	version int
	text    string
}

// Workspace tracks open class-diagram documents and re-analyzes them
// through reader.ReadString whenever their contents change, publishing the
// resulting diagnostics back to the client.
type Workspace struct {
	logger *slog.Logger

	mu        sync.Mutex
	documents map[string]*document
}

// NewWorkspace constructs a Workspace. If logger is nil, slog.Default() is
// used.
func NewWorkspace(logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{
		logger:    logger.With(slog.String("component", "workspace")),
		documents: make(map[string]*document),
	}
}

// DocumentOpened records a newly opened document.
func (w *Workspace) DocumentOpened(uri string, version int, text string) {
	w.mu.Lock()
	w.documents[uri] = &document{version: version, text: text}
	w.mu.Unlock()
}

// DocumentChanged updates an open document's contents.
func (w *Workspace) DocumentChanged(uri string, version int, text string) {
	w.mu.Lock()
	w.documents[uri] = &document{version: version, text: text}
	w.mu.Unlock()
}

// DocumentClosed forgets a document and clears any diagnostics published
// for it.
func (w *Workspace) DocumentClosed(notify Notifier, uri string) {
	w.mu.Lock()
	delete(w.documents, uri)
	w.mu.Unlock()

	if notify != nil {
		notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
}

// AnalyzeAndPublish re-reads the document at uri through reader.ReadString and
// publishes the resulting diagnostics. A malformed document that the reader
// cannot parse at all is reported as a single diagnostic carrying the parse
// error; reader-tolerance issues (skipped relationships, unresolved
// references) are reported individually.
func (w *Workspace) AnalyzeAndPublish(notify Notifier, ctx context.Context, uri string) {
	w.mu.Lock()
	doc, ok := w.documents[uri]
	w.mu.Unlock()
	if !ok {
		return
	}

	sourceName := uri
	if path, err := URIToPath(uri); err == nil {
		sourceName = filepath.Base(path)
	}

	_, result, err := reader.ReadString(ctx, doc.text, reader.WithSourceName(sourceName))

	var diagnostics []protocol.Diagnostic
	if err != nil {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    wholeDocumentRange(doc.text),
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   sourcePtr(),
			Message:  err.Error(),
		})
	} else {
		for _, issue := range result.Issues() {
			diagnostics = append(diagnostics, issueToDiagnostic(issue))
		}
	}

	w.logger.Debug("analysis complete",
		slog.String("uri", uri),
		slog.Int("issue_count", len(diagnostics)),
	)

	if notify == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// issueToDiagnostic converts a diag.Issue into an LSP Diagnostic. Issues
// carry no position information — the diag package dropped span tracking —
// so every diagnostic gets an empty range at the start of the document.
func issueToDiagnostic(issue diag.Issue) protocol.Diagnostic {
	message := issue.Message()
	if hint := issue.Hint(); hint != "" {
		message += " (" + hint + ")"
	}
	code := issue.Code().String()
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{}},
		Severity: severityPtr(severityToLSP(issue.Severity())),
		Code:     &protocol.IntegerOrString{Value: code},
		Source:   sourcePtr(),
		Message:  message,
	}
}

func severityToLSP(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.Fatal, diag.Error:
		return protocol.DiagnosticSeverityError
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	case diag.Info:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func sourcePtr() *string {
	s := "classlens"
	return &s
}

func wholeDocumentRange(text string) protocol.Range {
	lastLine := protocol.UInteger(strings.Count(text, "\n"))
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: lastLine, Character: 0},
	}
}
