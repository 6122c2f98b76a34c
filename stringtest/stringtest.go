// Package stringtest provides helpers for constructing expected multi-line
// text in tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// Doc joins multiple strings with LF line endings and appends a trailing
// newline, the shape of a serialized YAML document.
//
// Example:
//
//	want := stringtest.Doc(
//		"---",
//		`key: "value"`,
//	) // -> "---\nkey: \"value\"\n"
func Doc(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}
