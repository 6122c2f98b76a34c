package workspace

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// rulePrefix marks the two-space-indented match expression lines inside a
// template state block.
const rulePrefix = "  ^"

// ruleAction captures the trailing state transition of a rule line, e.g.
// " -> Record".
var ruleAction = regexp.MustCompile(`( -> .*)$`)

// BlankSub rewrites the template file at path in place, replacing every run
// of whitespace inside a rule's match expression with `\s+`. Only lines
// starting with the rule prefix are touched; the trailing transition, if
// any, is preserved verbatim.
func BlankSub(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRewrite, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, rulePrefix) {
			continue
		}

		lines[i] = subRuleBlanks(line)
	}

	err = os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRewrite, err)
	}

	return nil
}

// subRuleBlanks rewrites a single rule line.
func subRuleBlanks(line string) string {
	rule := line[2:]

	action := ruleAction.FindString(rule)
	if action != "" {
		rule = rule[:len(rule)-len(action)]
	}

	rule = strings.Join(strings.Fields(rule), " ")
	rule = strings.ReplaceAll(rule, " ", `\s+`)

	return "  " + rule + action
}
