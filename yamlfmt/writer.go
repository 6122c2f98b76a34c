package yamlfmt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

// documentStart is the explicit document-start marker every canonical file
// begins with.
const documentStart = "---\n"

// encodeOptions is the process-wide canonical serialization configuration:
// block style, 2-space indent with indented sequences. Initialized once and
// read-only for the process lifetime.
var encodeOptions = []yaml.EncodeOption{
	yaml.Indent(2),
	yaml.IndentSequence(true),
}

// Encode canonicalizes doc in place and serializes it to w.
//
// The Document must hold a record list under [RecordsKey]; every record leaf
// is quoted and every comment normalized before serialization. A Document
// with no comment metadata is fine; a missing records key, a malformed
// record, or a write failure propagates.
func Encode(doc *Document, w io.Writer) error {
	records, err := doc.records()
	if err != nil {
		return err
	}

	err = QuoteRecords(records)
	if err != nil {
		return err
	}

	NormalizeComments(doc.Comments)

	opts := encodeOptions
	if len(doc.Comments) > 0 {
		opts = append(slices.Clip(opts), yaml.WithComment(doc.Comments))
	}

	out, err := yaml.MarshalWithOptions(doc.Body, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = io.WriteString(w, documentStart)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// WriteFile canonicalizes doc in place and writes it to path, overwriting
// any existing file. See [Encode].
func WriteFile(doc *Document, path string) error {
	var buf bytes.Buffer

	err := Encode(doc, &buf)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, buf.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
