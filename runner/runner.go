// Package runner loads TextFSM templates and applies them to raw command
// output, producing ordered records suitable for the yamlfmt canonical
// writer. Pattern matching itself is delegated to
// [github.com/sirikothe/gotextfsm].
package runner

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sirikothe/gotextfsm"
)

// Sentinel errors returned by this package.
var (
	ErrReadTemplate  = errors.New("read template")
	ErrParseTemplate = errors.New("parse template")
	ErrParseInput    = errors.New("parse input")
)

// Template is a compiled TextFSM template plus its capture header in
// definition order.
type Template struct {
	fsm    gotextfsm.TextFSM
	header []string
}

// Load reads and compiles the TextFSM template at path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	return Parse(string(data))
}

// Parse compiles TextFSM template source.
func Parse(src string) (*Template, error) {
	fsm := gotextfsm.TextFSM{}

	err := fsm.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}

	return &Template{fsm: fsm, header: header(src)}, nil
}

// Header returns the capture names in template definition order.
func (t *Template) Header() []string {
	return t.header
}

// Run applies the template to text and returns one record per parsed row.
// Field names are the lower-cased capture names, in header order; values are
// strings or lists of strings.
func (t *Template) Run(text string) ([]yaml.MapSlice, error) {
	out := gotextfsm.ParserOutput{}

	err := out.ParseTextString(text, t.fsm, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseInput, err)
	}

	records := make([]yaml.MapSlice, 0, len(out.Dict))

	for _, row := range out.Dict {
		rec := make(yaml.MapSlice, 0, len(t.header))

		for _, name := range t.header {
			val, ok := row[name]
			if !ok {
				continue
			}

			rec = append(rec, yaml.MapItem{
				Key:   strings.ToLower(name),
				Value: recordValue(val),
			})
		}

		records = append(records, rec)
	}

	return records, nil
}

// header extracts Value names in definition order. The engine stores values
// in a map, which loses the column order templates are written in, so the
// order is recovered from the Value definition lines: the name is the field
// immediately before the capture expression.
func header(src string) []string {
	var names []string

	for line := range strings.SplitSeq(src, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "Value" {
			continue
		}

		for i := 2; i < len(fields); i++ {
			if strings.HasPrefix(fields[i], "(") {
				names = append(names, fields[i-1])

				break
			}
		}
	}

	return names
}

// recordValue converts an engine capture into a record value: a string, or a
// []any of strings for List captures.
func recordValue(v any) any {
	switch val := v.(type) {
	case string:
		return val

	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}

		return out
	}

	return fmt.Sprint(v)
}
