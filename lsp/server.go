// Package lsp implements a Language Server Protocol server that publishes
// reader diagnostics for class-diagram XML documents as an editor opens and
// edits them. It does not offer completion, hover, or go-to-definition:
// publishing diagnostics is its entire surface.
package lsp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	// commonlog is a required dependency of github.com/tliron/glsp. It is
	// silenced in NewServer via commonlog.Configure(0, nil) because this
	// server logs through slog instead. The blank import of the "simple"
	// backend is required by glsp at runtime.
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "classlens-lsp"

// isDiagramURI reports whether uri refers to a class-diagram XML document.
func isDiagramURI(uri string) bool {
	path, err := URIToPath(uri)
	if err != nil {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

// Server is the class-diagram language server.
type Server struct {
	logger    *slog.Logger
	handler   protocol.Handler
	server    *server.Server
	workspace *Workspace

	shutdownCalled bool

	closeOnce sync.Once
	closeErr  error
}

// NewServer creates a new language server. If logger is nil, slog.Default()
// is used.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger.With(slog.String("component", "server")),
		workspace: NewWorkspace(logger),
	}

	commonlog.Configure(0, nil)

	s.handler = protocol.Handler{
		Initialize:    s.initialize,
		Initialized:   s.initialized,
		Shutdown:      s.shutdown,
		Exit:          s.exit,
		SetTrace:      s.setTrace,
		CancelRequest: s.cancelRequest,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}

	s.server = server.NewServer(&s.handler, serverName, false)

	return s
}

// Handler returns the protocol handler, for testing.
func (s *Server) Handler() *protocol.Handler { return &s.handler }

// RunStdio runs the server using stdio transport.
func (s *Server) RunStdio() error {
	if err := s.server.RunStdio(); err != nil {
		return fmt.Errorf("run stdio: %w", err)
	}
	return nil
}

// Shutdown logs the start of a graceful shutdown; it does not close the
// connection, which is Close's job.
func (s *Server) Shutdown() {
	s.logger.Info("initiating shutdown")
}

// Close closes the JSON-RPC connection, causing RunStdio to return. Close
// is idempotent and safe to call before RunStdio (returns nil if the
// connection is not yet ready).
func (s *Server) Close() error {
	conn := s.server.GetStdio()
	if conn == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		if err := conn.Close(); err != nil {
			s.closeErr = fmt.Errorf("close connection: %w", err)
		}
	})
	return s.closeErr
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.logger.Info("initialize request received")

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	if syncOpts, ok := capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions); ok {
		syncOpts.Change = &syncKind
	}

	version := "dev"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.logger.Info("server initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.logger.Info("shutdown request received")
	s.shutdownCalled = true
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) exit(_ *glsp.Context) error {
	exitCode := 0
	if !s.shutdownCalled {
		s.logger.Warn("exit called without shutdown")
		exitCode = 1
	}
	s.logger.Info("exit notification received", slog.Int("exit_code", exitCode))
	os.Exit(exitCode)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) cancelRequest(ctx *glsp.Context, params *protocol.CancelParams) error {
	s.logger.Debug("cancelRequest", slog.Any("id", params.ID))
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !isDiagramURI(uri) {
		s.logger.Debug("ignoring didOpen for unsupported file type", slog.String("uri", uri))
		return nil
	}

	s.workspace.DocumentOpened(uri, int(params.TextDocument.Version), params.TextDocument.Text)
	s.workspace.AnalyzeAndPublish(notifierFrom(ctx), context.Background(), uri)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !isDiagramURI(uri) {
		s.logger.Debug("ignoring didChange for unsupported file type", slog.String("uri", uri))
		return nil
	}

	for _, rawChange := range params.ContentChanges {
		if change, ok := rawChange.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.workspace.DocumentChanged(uri, int(params.TextDocument.Version), change.Text)
		}
	}
	s.workspace.AnalyzeAndPublish(notifierFrom(ctx), context.Background(), uri)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !isDiagramURI(uri) {
		return nil
	}
	s.workspace.DocumentClosed(notifierFrom(ctx), uri)
	return nil
}

func notifierFrom(ctx *glsp.Context) Notifier {
	if ctx == nil {
		return nil
	}
	return func(method string, params any) { ctx.Notify(method, params) }
}
