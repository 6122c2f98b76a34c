package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IndexLine formats the registration line for a template in the library's
// index file, expanding a shortened command form against the full command.
// Each full word's remainder after its short form is wrapped in the index
// file's optional-suffix syntax:
//
//	IndexLine("cisco_ios", "show ip route", 1, "sh ip ro")
//	// `cisco_ios_show_ip_route.textfsm, .*, cisco_ios, sh\[\[ow]] ip ro\[\[ute]]`
func IndexLine(vendor, command string, index int, short string) string {
	_, templatePath := Files(vendor, command, index)

	words := strings.Fields(command)
	parts := make([]string, 0, len(words))

	for i, shortWord := range strings.Fields(short) {
		if i >= len(words) {
			break
		}

		rest := strings.ReplaceAll(words[i], shortWord, "")
		if rest == "" {
			parts = append(parts, shortWord)
		} else {
			parts = append(parts, shortWord+`\[\[`+rest+"]]")
		}
	}

	return fmt.Sprintf("%s, .*, %s, %s",
		filepath.Base(templatePath), vendor, strings.Join(parts, " "))
}
