package server

import (
	con "context"
	"fmt"

	"tsmls/internal/analysis"
	"tsmls/internal/candidates"
	"tsmls/internal/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	text := params.TextDocument.Text

	s.docs.Replace(uri, text)
	publishDiagnostics(context, uri, s.diagnosticsFor(text))
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	// Full sync is advertised: every change event carries the complete new
	// document content.
	var text string
	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			text = change.Text
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}

	uri := params.TextDocument.URI
	s.docs.Replace(uri, text)
	publishDiagnostics(context, uri, s.diagnosticsFor(text))
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.docs.Remove(uri)
	publishDiagnostics(context, uri, nil)
	return nil
}

// diagnosticsFor runs the extraction pipeline on text against a freshly
// listed candidate set.
func (s *Server) diagnosticsFor(text string) []protocol.Diagnostic {
	literals := parser.Extract(con.Background(), s.engine, []byte(text), s.config.TargetIdentifier)
	set := candidates.NewSet(candidates.List(s.config.CandidateRoot))
	findings := analysis.Diagnose(literals, set)

	severity := severityFor(s.config.Severity)
	source := lsName
	diagnostics := make([]protocol.Diagnostic, 0, len(findings))
	for _, f := range findings {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(text, f.Range),
			Severity: &severity,
			Source:   &source,
			Message:  f.Message,
			Data:     f.Payload,
		})
	}
	return diagnostics
}

func publishDiagnostics(
	context *glsp.Context,
	uri protocol.DocumentUri,
	diagnostics []protocol.Diagnostic,
) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func severityFor(policy string) protocol.DiagnosticSeverity {
	switch policy {
	case "warning":
		return protocol.DiagnosticSeverityWarning
	case "information":
		return protocol.DiagnosticSeverityInformation
	case "hint":
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}
