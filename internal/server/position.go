package server

import (
	"strings"
	"unicode/utf8"

	"tsmls/internal/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toPoint converts an LSP Position (UTF-16 code units) into a byte-column
// point within document.
func toPoint(document string, pos protocol.Position) parser.Point {
	lines := strings.Split(document, "\n")
	if int(pos.Line) >= len(lines) {
		pos.Line = uint32(len(lines) - 1)
	}

	// Traverse runes in the target line to match the UTF-16 unit count.
	var unitCount, byteCount int
	for _, r := range lines[pos.Line] {
		units := 1
		if r > 0xFFFF {
			units = 2
		}
		if uint32(unitCount+units) > pos.Character {
			break
		}
		unitCount += units
		byteCount += utf8.RuneLen(r)
	}
	return parser.Point{Row: pos.Line, Column: uint32(byteCount)}
}

// toProtocolPosition converts a byte-column point into an LSP Position
// (UTF-16 code units) within document.
func toProtocolPosition(document string, pt parser.Point) protocol.Position {
	lines := strings.Split(document, "\n")
	if int(pt.Row) >= len(lines) {
		pt.Row = uint32(len(lines) - 1)
	}
	line := lines[pt.Row]
	if int(pt.Column) > len(line) {
		pt.Column = uint32(len(line))
	}

	var units uint32
	for _, r := range line[:pt.Column] {
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return protocol.Position{Line: pt.Row, Character: units}
}

func toProtocolRange(document string, r parser.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(document, r.Start),
		End:   toProtocolPosition(document, r.End),
	}
}
