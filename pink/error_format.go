package pink

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// formatCodeFrame renders the offending line, preceded by the line before it
// when there is one, with a caret under pos. Tabs ahead of the column are kept
// in the caret padding so the caret lines up in a terminal.
func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}
	text, ok := sourceLine(source, pos.Line)
	if !ok {
		return ""
	}

	column := min(max(pos.Column, 1), utf8.RuneCountInString(text)+1)
	width := len(fmt.Sprint(pos.Line))

	var b strings.Builder
	fmt.Fprintf(&b, "  --> line %d, column %d", pos.Line, column)
	if pos.Line > 1 {
		if prev, ok := sourceLine(source, pos.Line-1); ok && strings.TrimSpace(prev) != "" {
			fmt.Fprintf(&b, "\n %*d | %s", width, pos.Line-1, prev)
		}
	}
	fmt.Fprintf(&b, "\n %*d | %s", width, pos.Line, text)
	fmt.Fprintf(&b, "\n %*s | %s^", width, "", caretPadding(text, column))
	return b.String()
}

// sourceLine returns the 1-based line n without its line terminator.
func sourceLine(source string, n int) (string, bool) {
	for line := 1; ; line++ {
		end := strings.IndexByte(source, '\n')
		if line == n {
			if end >= 0 {
				source = source[:end]
			}
			return strings.TrimSuffix(source, "\r"), true
		}
		if end < 0 {
			return "", false
		}
		source = source[end+1:]
	}
}

func caretPadding(text string, column int) string {
	var pad strings.Builder
	for i, r := range []rune(text) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	return pad.String()
}
