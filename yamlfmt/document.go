package yamlfmt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// RecordsKey is the top-level mapping key holding the parsed records.
const RecordsKey = "parsed_sample"

// Sentinel errors returned by this package.
var (
	ErrReadInput       = errors.New("read input")
	ErrDecode          = errors.New("decode yaml")
	ErrMissingRecords  = errors.New("missing records key")
	ErrUnexpectedShape = errors.New("unexpected value shape")
	ErrWriteOutput     = errors.New("write output")
)

// Document pairs a decoded YAML value tree with its comment registry.
//
// Body is the logical value: a [yaml.MapSlice] for mappings (order
// preserving), []any for sequences, and plain scalars at the leaves.
// Comments are formatting metadata keyed by structural path (for example
// "$.parsed_sample[0].status"); they are not part of the logical value. A
// nil Comments map means the Document carries no comment metadata.
type Document struct {
	Body     any
	Comments yaml.CommentMap
}

// NewDocument builds a fresh Document holding records under [RecordsKey],
// with no comment metadata.
func NewDocument(records []yaml.MapSlice) *Document {
	rows := make([]any, len(records))
	for i, rec := range records {
		rows[i] = rec
	}

	return &Document{
		Body: yaml.MapSlice{{Key: RecordsKey, Value: rows}},
	}
}

// Load decodes a YAML document from r, preserving mapping order and
// collecting comments into the Document's registry.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	cm := yaml.CommentMap{}

	var body any

	err = yaml.UnmarshalWithOptions(data, &body, yaml.UseOrderedMap(), yaml.CommentToMap(cm))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &Document{Body: body, Comments: cm}, nil
}

// LoadFile decodes the YAML document at path. See [Load].
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close() //nolint:errcheck // Read-only file.

	return Load(f)
}

// records returns the record list stored under [RecordsKey].
func (d *Document) records() ([]any, error) {
	body, ok := d.Body.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, want a mapping", ErrMissingRecords, d.Body)
	}

	for _, item := range body {
		key, ok := item.Key.(string)
		if !ok || key != RecordsKey {
			continue
		}

		rows, ok := item.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q holds %T, want a sequence", ErrUnexpectedShape, RecordsKey, item.Value)
		}

		return rows, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrMissingRecords, RecordsKey)
}
