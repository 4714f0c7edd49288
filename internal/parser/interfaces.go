package parser

import "context"

// Point is a position in source text. Column counts bytes, not runes.
type Point struct {
	Row    uint32
	Column uint32
}

// Range is an inclusive-exclusive span in source text.
type Range struct {
	Start Point
	End   Point
}

// PositionalLiteral is a string literal value paired with the range of its
// enclosed content, i.e. the characters between the quote marks.
type PositionalLiteral struct {
	Text  string
	Range Range
}

// Capture is a named node matched by a structural pattern query.
type Capture struct {
	Name  string
	Text  string
	Range Range
}

// Tree is a parsed document that can answer structural pattern queries.
type Tree interface {
	Query(pattern []byte, source []byte) ([]Capture, error)
	Close()
}

// Engine abstracts the parsing backend so that extraction, diagnostics,
// completion and quickfix logic never touch a concrete grammar library.
type Engine interface {
	Parse(ctx context.Context, source []byte) (Tree, error)
	Close() error
}
