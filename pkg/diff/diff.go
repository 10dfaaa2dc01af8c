// Package diff renders line differences between two texts side by side,
// leaving out the lines both texts share.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ColumnWidth is the width the left column is padded to
const ColumnWidth = 60

const noNewline = " (no newline at end)"

// SideBySide compares want (left) against got (right) line by line.
// Changed lines render as "left | right", lines only in want as "left <",
// lines only in got as "> right". Identical texts yield "".
func SideBySide(want, got string) string {
	a := splitLines(want)
	b := splitLines(got)

	var sb strings.Builder
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'e':
			continue
		case 'd':
			for _, l := range a[op.I1:op.I2] {
				writeLeft(&sb, display(l))
			}
		case 'i':
			for _, r := range b[op.J1:op.J2] {
				writeRight(&sb, display(r))
			}
		case 'r':
			writeReplace(&sb, a[op.I1:op.I2], b[op.J1:op.J2])
		}
	}
	return sb.String()
}

// Equal reports whether the texts have no differences
func Equal(want, got string) bool {
	return SideBySide(want, got) == ""
}

func writeReplace(sb *strings.Builder, left, right []string) {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(left):
			writeRight(sb, display(right[i]))
		case i >= len(right):
			writeLeft(sb, display(left[i]))
		default:
			l, r := display(left[i]), display(right[i])
			if l == r {
				// only the line terminator differs
				l, r = annotate(left[i]), annotate(right[i])
			}
			fmt.Fprintf(sb, "%-*s | %s\n", ColumnWidth, l, r)
		}
	}
}

func writeLeft(sb *strings.Builder, line string) {
	fmt.Fprintf(sb, "%-*s <\n", ColumnWidth, line)
}

func writeRight(sb *strings.Builder, line string) {
	fmt.Fprintf(sb, "%*s > %s\n", ColumnWidth, "", line)
}

// splitLines keeps each line's terminator so a missing final newline
// is a difference
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func display(line string) string {
	return strings.TrimSuffix(line, "\n")
}

func annotate(line string) string {
	if strings.HasSuffix(line, "\n") {
		return display(line)
	}
	return line + noNewline
}
