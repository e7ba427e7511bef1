// Package indent implements the one-step indentation nudge used when editing
// Io source. It is deliberately not a bracket-depth calculator: each estimate
// either adds one tab-width step to the line's current indentation or
// retracts it to column zero, judged only against the previous non-blank
// line. Strictly causal — lines after the one under edit are never read.
package indent

import (
	"strings"
)

// Width returns the indentation of line in columns. Spaces count one column,
// tabs advance to the next multiple of tabWidth. Measurement stops at the
// first non-whitespace byte, so a whitespace-only line measures its full
// length.
func Width(line string, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	cols := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			cols++
		case '\t':
			cols += tabWidth - cols%tabWidth
		default:
			return cols
		}
	}
	return cols
}

// IsBlank reports whether the line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// prevNonBlankWidth scans backward for the nearest non-blank line and
// returns its indentation; zero when every line is blank.
func prevNonBlankWidth(lines []string, tabWidth int) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if !IsBlank(lines[i]) {
			return Width(lines[i], tabWidth)
		}
	}
	return 0
}

// Estimate computes the indentation the line under edit should get.
// preceding holds the lines above it (oldest first), current is the line's
// present text. The nudge: propose current indentation plus one step; if the
// proposal overshoots the previous non-blank line's indentation by more than
// one step, retract to zero.
func Estimate(preceding []string, current string, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	cur := Width(current, tabWidth)
	prev := prevNonBlankWidth(preceding, tabWidth)

	proposed := cur + tabWidth
	if proposed-prev > tabWidth {
		return 0
	}
	return proposed
}

// EstimateContext is Estimate over a whole history whose final line is the
// line under edit.
func EstimateContext(lines []string, tabWidth int) int {
	if len(lines) == 0 {
		return Estimate(nil, "", tabWidth)
	}
	return Estimate(lines[:len(lines)-1], lines[len(lines)-1], tabWidth)
}

// Apply rewrites the line's leading whitespace to exactly cols spaces,
// preserving everything after the indentation.
func Apply(line string, cols int) string {
	if cols < 0 {
		cols = 0
	}
	rest := strings.TrimLeft(line, " \t")
	if rest == "" && cols == 0 {
		return ""
	}
	return strings.Repeat(" ", cols) + rest
}

// Continuation computes the state of a fresh line inserted below the line
// under edit. The new line keeps the current indentation, snapped down to a
// whole number of tab-width steps. When the split line is a comment line the
// marker run (plus its trailing spaces) is returned as prefix so the comment
// continues on the new line.
func Continuation(currentIndent int, current string, tabWidth int) (indentCols int, prefix string) {
	if tabWidth < 1 {
		tabWidth = 1
	}
	if currentIndent < 0 {
		currentIndent = 0
	}
	indentCols = (currentIndent / tabWidth) * tabWidth
	prefix = CommentMarker(current)
	return indentCols, prefix
}

// CommentMarker returns the comment-marker text of a comment line: after
// leading whitespace, one or more repetitions of '#' or "//", plus the
// spaces that follow them. Non-comment lines yield "".
func CommentMarker(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	start := i
	for i < len(line) {
		if line[i] == '#' {
			i++
			continue
		}
		if line[i] == '/' && i+1 < len(line) && line[i+1] == '/' {
			i += 2
			continue
		}
		break
	}
	if i == start {
		return ""
	}
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return line[start:i]
}
