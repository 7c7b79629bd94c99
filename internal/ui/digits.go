package ui

import "strings"

// digitHeight is the number of lines a rendered glyph occupies.
const digitHeight = 3

var glyphs = map[rune][digitHeight]string{
	'0': {"╭─╮", "│ │", "╰─╯"},
	'1': {"╶┐ ", " │ ", "╶┴╴"},
	'2': {"╶─╮", "┌─┘", "╰─╴"},
	'3': {"╶─╮", " ─┤", "╶─╯"},
	'4': {"╷ ╷", "╰─┤", "  ╵"},
	'5': {"╭─╴", "╰─╮", "╶─╯"},
	'6': {"╭─╴", "├─╮", "╰─╯"},
	'7': {"╶─┐", "  │", "  ╵"},
	'8': {"╭─╮", "├─┤", "╰─╯"},
	'9': {"╭─╮", "╰─┤", "╶─╯"},
	':': {" ", ":", " "},
	'.': {" ", " ", "."},
	',': {" ", " ", ","},
	' ': {" ", " ", " "},
}

// RenderDigits draws s as three-line box-drawing digits.
// Characters without a glyph are drawn on the middle line.
func RenderDigits(s string) string {
	var rows [digitHeight]strings.Builder
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			g = [digitHeight]string{" ", string(r), " "}
		}
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	lines := make([]string, digitHeight)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
