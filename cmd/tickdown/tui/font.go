package tui

import "strings"

// glyphHeight is the number of rows of every glyph.
const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	'.': {" ", " ", " ", " ", "█"},
	'-': {"   ", "   ", "███", "   ", "   "},
	' ': {" ", " ", " ", " ", " "},
}

// bigText renders s in the block font. Runes without a glyph are drawn
// on the middle row.
func bigText(s string) []string {
	var rows [glyphHeight]strings.Builder
	for i, r := range s {
		g, ok := glyphs[r]
		if !ok {
			g = [glyphHeight]string{" ", " ", string(r), " ", " "}
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteByte(' ')
			}
			rows[row].WriteString(g[row])
		}
	}

	out := make([]string, glyphHeight)
	for row := range rows {
		out[row] = rows[row].String()
	}
	return out
}
