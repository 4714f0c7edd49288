package server

import (
	"os"
	"path/filepath"
	"testing"

	"tsmls/internal/config"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func completionParams(uri protocol.DocumentUri, line, character uint32) *protocol.CompletionParams {
	return &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: line, Character: character},
		},
	}
}

func TestCompletionInsideLiteral(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"dir_a", "dir_b"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	cfg := config.Default()
	cfg.CandidateRoot = root
	s := newTestServer(t, cfg)

	uri := protocol.DocumentUri("file:///a.ts")
	s.docs.Replace(uri, `export const folders = ["dir_a", "dir_x"];`)

	// Character 27 sits strictly inside the first literal's content.
	result, err := s.textDocumentCompletion(nil, completionParams(uri, 0, 27))
	if err != nil {
		t.Fatal(err)
	}
	items, ok := result.([]protocol.CompletionItem)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(items) != 2 {
		t.Fatalf("expected one item per candidate, got %d", len(items))
	}
	for i, want := range []string{"dir_a", "dir_b"} {
		if items[i].Label != want {
			t.Errorf("item %d: expected label %q, got %q", i, want, items[i].Label)
		}
		if items[i].InsertText == nil || *items[i].InsertText != `"`+want+`"` {
			t.Errorf("item %d: expected quote-wrapped insert text, got %v", i, items[i].InsertText)
		}
		if items[i].Kind == nil || *items[i].Kind != protocol.CompletionItemKindFolder {
			t.Errorf("item %d: expected folder kind", i)
		}
	}

	// Outside any literal there are no items.
	result, err = s.textDocumentCompletion(nil, completionParams(uri, 0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("expected no items outside a literal, got %+v", result)
	}

	// Unknown document degrades to a neutral result.
	result, err = s.textDocumentCompletion(nil, completionParams("file:///other.ts", 0, 27))
	if err != nil || result != nil {
		t.Errorf("expected nil result for unknown document, got %v, %v", result, err)
	}
}

func TestCompletionLineTrigger(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "dir_a"), 0755); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.CandidateRoot = root
	cfg.TriggerMode = config.TriggerLine
	s := newTestServer(t, cfg)

	uri := protocol.DocumentUri("file:///a.ts")
	s.docs.Replace(uri, "// xyz\nconst a = 1;\n")

	result, err := s.textDocumentCompletion(nil, completionParams(uri, 0, 3))
	if err != nil {
		t.Fatal(err)
	}
	items, ok := result.([]protocol.CompletionItem)
	if !ok || len(items) != 1 || items[0].Label != "dir_a" {
		t.Fatalf("expected dir_a on the trigger line, got %+v", result)
	}

	result, err = s.textDocumentCompletion(nil, completionParams(uri, 1, 3))
	if err != nil || result != nil {
		t.Errorf("expected no items off the trigger line, got %v, %v", result, err)
	}
}
