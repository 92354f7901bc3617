package lsp

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ecsl/internal/ast"
	"ecsl/internal/parser"
)

// document is the last text received for a URI and the last program that
// parsed cleanly from it.
type document struct {
	text    string
	program *ast.Program
}

// EcslHandler implements the LSP server handlers for ECSL
type EcslHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
	opts []parser.Option
	log  commonlog.Logger
}

// NewEcslHandler creates a handler that parses documents with opts
func NewEcslHandler(opts ...parser.Option) *EcslHandler {
	return &EcslHandler{
		docs: make(map[protocol.DocumentUri]*document),
		opts: opts,
		log:  commonlog.GetLogger("ecsl.lsp"),
	}
}

// Handler wires the handler methods into a glsp protocol handler.
func (h *EcslHandler) Handler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                 h.Initialize,
		Initialized:                h.Initialized,
		Shutdown:                   h.Shutdown,
		SetTrace:                   h.SetTrace,
		TextDocumentDidOpen:        h.TextDocumentDidOpen,
		TextDocumentDidChange:      h.TextDocumentDidChange,
		TextDocumentDidClose:       h.TextDocumentDidClose,
		TextDocumentCompletion:     h.TextDocumentCompletion,
		TextDocumentDocumentSymbol: h.TextDocumentDocumentSymbol,
	}
}

// Initialize responds to the client's initialize request and advertises the server's capabilities
func (h *EcslHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: Name,
		},
	}, nil
}

// Initialized is called once the client has received the capabilities
func (h *EcslHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *EcslHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

func (h *EcslHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its diagnostics
func (h *EcslHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)
	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange reparses the whole document; only full sync is advertised
func (h *EcslHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Infof("changed %s", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.update(ctx, params.TextDocument.URI, change.Text)
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				h.update(ctx, params.TextDocument.URI, change.Text)
			}
		}
	}
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *EcslHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the statement and clause keywords
func (h *EcslHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword

	keywords := append(append([]string(nil), parser.StatementKeywords...), parser.ClauseKeywords...)
	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &kind,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentDocumentSymbol lists the statements of the last clean parse
func (h *EcslHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	h.mu.RLock()
	doc, ok := h.docs[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok || doc.program == nil {
		return []protocol.DocumentSymbol{}, nil
	}
	return DocumentSymbols(doc.program, doc.text), nil
}

// update parses text, remembers it and publishes zero or one diagnostic.
func (h *EcslHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	filename := uriToPath(uri)
	program, err := parser.ParseSource(filename, text, h.opts...)

	h.mu.Lock()
	doc, ok := h.docs[uri]
	if !ok {
		doc = &document{}
		h.docs[uri] = doc
	}
	doc.text = text
	if err == nil {
		doc.program = program
	}
	h.mu.Unlock()

	diagnostics := []protocol.Diagnostic{}
	if err != nil {
		h.log.Debugf("%s: %s", uri, err)
		diagnostics = append(diagnostics, ConvertError(err, text, filename))
	}
	publish(ctx, uri, diagnostics)
}

// uriToPath converts a file URI to a platform-local path; other URIs are
// returned unchanged.
func uriToPath(rawURI string) string {
	u, err := url.Parse(rawURI)
	if err != nil || u.Scheme != "file" {
		return rawURI
	}

	path := u.Path

	// On Windows, remove the leading slash of /C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path)
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
