// Package analysis contains the validation, completion and quickfix
// decision logic. It works on protocol-agnostic shapes; the server package
// converts to LSP types at the boundary.
package analysis

import (
	"fmt"

	"tsmls/internal/candidates"
	"tsmls/internal/parser"
)

// Finding flags one array element whose text names no entry in the
// candidate set.
type Finding struct {
	Range   parser.Range
	Message string
	// Payload is the literal's raw text. It rides along as the diagnostic's
	// opaque data so the quickfix path never has to re-parse.
	Payload string
}

// Diagnose compares every literal against the candidate set and returns one
// finding per invalid literal, in document order. Valid literals produce
// nothing; unused candidates produce nothing.
func Diagnose(literals []parser.PositionalLiteral, set candidates.Set) []Finding {
	var findings []Finding
	for _, lit := range literals {
		if set.Contains(lit.Text) {
			continue
		}
		findings = append(findings, Finding{
			Range:   lit.Range,
			Message: fmt.Sprintf("folder %q does not exist in the suggestions directory", lit.Text),
			Payload: lit.Text,
		})
	}
	return findings
}
