package completion

import (
	"strings"
	"unicode"
)

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}

// firstLine keeps completion descriptions on a single line
func firstLine(desc string) string {
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		return desc[:i]
	}

	return desc
}

// functionName turns a program name into a valid shell function name
func functionName(programName string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, programName)
}
