package analysis

import (
	"strings"

	"tsmls/internal/parser"
)

// InsideLiteral reports whether pt lies strictly inside the content range of
// any literal: same row, column strictly between start and end. A zero-width
// range has no interior.
func InsideLiteral(literals []parser.PositionalLiteral, pt parser.Point) bool {
	for _, lit := range literals {
		r := lit.Range
		if pt.Row == r.Start.Row && pt.Row == r.End.Row &&
			pt.Column > r.Start.Column && pt.Column < r.End.Column {
			return true
		}
	}
	return false
}

// TriggerLine returns the zero-based line number of the first line of text
// containing substr.
func TriggerLine(text string, substr string) (uint32, bool) {
	for i, line := range strings.Split(text, "\n") {
		if strings.Contains(line, substr) {
			return uint32(i), true
		}
	}
	return 0, false
}
