// Package stringtest provides helpers for constructing expected string
// values in tests, with explicit control over line endings and
// indentation.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// Doc joins multiple strings with LF line endings and appends a trailing
// newline, matching the shape of a serialized text document.
//
// Example:
//
//	want := stringtest.Doc(
//		"line1",
//		"line2",
//	) // -> "line1\nline2\n"
func Doc(ss ...string) string {
	return JoinLF(ss...) + "\n"
}

// Input dedents a raw-string literal for use as test input. The first
// leading newline and the last trailing newline are stripped, then the
// common leading whitespace of all non-empty lines is removed.
// Whitespace-only lines become empty lines.
//
// Example:
//
//	in := stringtest.Input(`
//	    key: value
//	    nested:
//	      child: data`)
//	// -> "key: value\nnested:\n  child: data"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	// Find the common indent across non-blank lines.
	indent := -1

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}

		n := len(line) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		indent = 0
	}

	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			lines[i] = ""

			continue
		}

		lines[i] = line[indent:]
	}

	return strings.Join(lines, "\n")
}
