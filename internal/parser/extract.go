package parser

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const itemCapture = "item"

// literalQuery matches a variable declarator whose name equals the target
// identifier and whose initializer is an array literal, capturing every
// string element.
const literalQuery = `
(variable_declarator
  name: ((identifier) @name (#eq? @name "%s"))
  value: (array (string) @item))
`

// Extract parses source and returns every string element of array literals
// assigned to target, in document order. Ranges span the literal content
// only, excluding the quote characters. Parse and query failures degrade to
// an empty result.
func Extract(ctx context.Context, engine Engine, source []byte, target string) []PositionalLiteral {
	tree, err := engine.Parse(ctx, source)
	if err != nil {
		log.Printf("extract: parse failed: %v", err)
		return nil
	}
	defer tree.Close()

	pattern := fmt.Sprintf(literalQuery, escapeTarget(target))
	captures, err := tree.Query([]byte(pattern), source)
	if err != nil {
		log.Printf("extract: query failed: %v", err)
		return nil
	}

	var literals []PositionalLiteral
	for _, c := range captures {
		if c.Name != itemCapture {
			continue
		}
		literals = append(literals, stripQuotes(c))
	}
	return literals
}

// stripQuotes narrows a captured string node to its enclosed content. An
// empty literal ("") narrows to a zero-width range.
func stripQuotes(c Capture) PositionalLiteral {
	text := c.Text
	r := c.Range
	if len(text) >= 2 && isQuote(text[0]) && text[len(text)-1] == text[0] {
		text = text[1 : len(text)-1]
		r.Start.Column++
		r.End.Column--
	}
	return PositionalLiteral{Text: text, Range: r}
}

func isQuote(b byte) bool {
	return b == '"' || b == '\'' || b == '`'
}

// escapeTarget keeps quote characters in the identifier from breaking the
// #eq? predicate string.
func escapeTarget(target string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(target)
}
