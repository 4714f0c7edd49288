package server

import (
	"fmt"

	"tsmls/internal/analysis"
	"tsmls/internal/candidates"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentCodeAction(
	context *glsp.Context,
	params *protocol.CodeActionParams,
) (any, error) {
	set := candidates.NewSet(candidates.List(s.config.CandidateRoot))

	kind := protocol.CodeActionKindQuickFix
	var actions []protocol.CodeAction
	for _, diagnostic := range params.Context.Diagnostics {
		// The payload is the invalid literal's raw text, attached by
		// diagnosticsFor. Anything else means the diagnostic is not ours.
		payload, ok := diagnostic.Data.(string)
		if !ok {
			continue
		}

		for _, match := range analysis.Suggest(payload, set, s.config.MatchLimit) {
			actions = append(actions, protocol.CodeAction{
				Title:       fmt.Sprintf("Replace with %q", match.Name),
				Kind:        &kind,
				Diagnostics: []protocol.Diagnostic{diagnostic},
				Edit: &protocol.WorkspaceEdit{
					Changes: map[protocol.DocumentUri][]protocol.TextEdit{
						params.TextDocument.URI: {{
							Range:   diagnostic.Range,
							NewText: fmt.Sprintf("%q", match.Name),
						}},
					},
				},
			})
		}
	}
	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}
