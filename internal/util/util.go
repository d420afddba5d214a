// Package util holds small text helpers for the terminal renderer.
package util

import (
	"strings"
	"unicode/utf8"
)

// TruncateAt shortens s to at most length runes, ending it in "..." if it had
// to be cut.
func TruncateAt(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length <= 3:
		return string(r[:max(length, 0)])
	default:
		return string(r[:length-3]) + "..."
	}
}

// PadCenter centers s in a field of the given width.
// Strings that don't fit are returned unchanged.
func PadCenter(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// Wrap breaks text into lines of at most width runes, breaking at spaces where
// possible.
// Words longer than width are split.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			for utf8.RuneCountInString(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				r := []rune(word)
				lines = append(lines, string(r[:width]))
				word = string(r[width:])
			}
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
