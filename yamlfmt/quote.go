package yamlfmt

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Scalar is a leaf value wrapped for forced double-quoted serialization.
//
// Template captures are always strings, but many look like numbers or
// booleans; quoting every leaf keeps the reloaded types unambiguous.
type Scalar string

// MarshalYAML implements [yaml.BytesMarshaler] by emitting the value as a
// double-quoted YAML scalar.
func (s Scalar) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

// QuoteRecords wraps every leaf value of every record in [Scalar], in place.
// Each record must be an ordered mapping whose values are strings, numbers,
// or lists of those; anything else returns [ErrUnexpectedShape] rather than
// serializing corrupted data.
func QuoteRecords(records []any) error {
	for i, entry := range records {
		rec, ok := entry.(yaml.MapSlice)
		if !ok {
			return fmt.Errorf("%w: record %d is %T, want a mapping", ErrUnexpectedShape, i, entry)
		}

		for j := range rec {
			quoted, err := quoteValue(rec[j].Value)
			if err != nil {
				return fmt.Errorf("record %d, field %v: %w", i, rec[j].Key, err)
			}

			rec[j].Value = quoted
		}
	}

	return nil
}

// quoteValue returns v wrapped for forced quoting. Lists are wrapped
// per-element.
func quoteValue(v any) (any, error) {
	switch val := v.(type) {
	case Scalar:
		return val, nil
	case string:
		return Scalar(val), nil
	case int, int64, uint64, float64:
		return Scalar(fmt.Sprint(val)), nil

	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = Scalar(s)
		}

		return out, nil

	case []any:
		out := make([]any, len(val))

		for i, elem := range val {
			quoted, err := quoteValue(elem)
			if err != nil {
				return nil, err
			}

			out[i] = quoted
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnexpectedShape, v)
}
