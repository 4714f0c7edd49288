package server

import (
	con "context"
	"fmt"

	"tsmls/internal/analysis"
	"tsmls/internal/candidates"
	"tsmls/internal/config"
	"tsmls/internal/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	text, ok := s.docs.Read(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	var triggered bool
	switch s.config.TriggerMode {
	case config.TriggerLine:
		line, found := analysis.TriggerLine(text, s.config.TriggerPrefix)
		triggered = found && params.Position.Line == line
	default:
		literals := parser.Extract(con.Background(), s.engine, []byte(text), s.config.TargetIdentifier)
		triggered = analysis.InsideLiteral(literals, toPoint(text, params.Position))
	}
	if !triggered {
		return nil, nil
	}

	names := candidates.List(s.config.CandidateRoot)
	kind := protocol.CompletionItemKindFolder
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		detail := "Directory"
		// The insert text keeps its own quotes; inside an existing literal
		// this doubles them.
		insert := fmt.Sprintf("%q", name)
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &insert,
		})
	}
	return items, nil
}
