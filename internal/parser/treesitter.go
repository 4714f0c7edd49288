package parser

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var lang = typescript.GetLanguage()

// ErrEngineClosed is returned by Parse after the engine has been closed.
var ErrEngineClosed = errors.New("parser engine is closed")

// TSEngine is a tree-sitter backed Engine. It keeps a fixed pool of parser
// instances; trees are created per call and never retained.
type TSEngine struct {
	pool      chan *sitter.Parser
	size      int
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewTSEngine creates a TSEngine with n pooled parsers.
func NewTSEngine(n int) *TSEngine {
	e := &TSEngine{pool: make(chan *sitter.Parser, n), size: n}
	for i := 0; i < n; i++ {
		p := sitter.NewParser()
		p.SetLanguage(lang)
		e.pool <- p
	}
	return e
}

// Parse produces a fresh syntax tree for source using one parser from the
// pool. The caller owns the returned Tree and must Close it.
func (e *TSEngine) Parse(ctx context.Context, source []byte) (Tree, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	p := <-e.pool
	defer func() { e.pool <- p }()

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	return &tsTree{tree: tree}, nil
}

// Close releases all parsers in the pool. The channel stays open so an
// in-flight Parse can still return its parser; the counted drain waits for
// it. Close is idempotent; Parse after Close reports ErrEngineClosed.
func (e *TSEngine) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		for i := 0; i < e.size; i++ {
			p := <-e.pool
			p.Close()
		}
	})
	return nil
}

type tsTree struct {
	tree *sitter.Tree
}

// Query runs pattern against the tree, applying predicate filtering, and
// returns all captures in document order.
func (t *tsTree) Query(pattern []byte, source []byte) ([]Capture, error) {
	q, err := sitter.NewQuery(pattern, lang)
	if err != nil {
		return nil, err
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, t.tree.RootNode())

	var captures []Capture
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, source)

		for _, c := range m.Captures {
			captures = append(captures, Capture{
				Name: q.CaptureNameForId(c.Index),
				Text: c.Node.Content(source),
				Range: Range{
					Start: Point{Row: c.Node.StartPoint().Row, Column: c.Node.StartPoint().Column},
					End:   Point{Row: c.Node.EndPoint().Row, Column: c.Node.EndPoint().Column},
				},
			})
		}
	}
	return captures, nil
}

func (t *tsTree) Close() {
	t.tree.Close()
}
