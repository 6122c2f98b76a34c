// Package yamlfmt canonicalizes parsed-sample YAML files.
//
// A [Document] pairs a decoded YAML value tree with the comment registry
// goccy/go-yaml collects during decoding. [Encode] and [WriteFile] rewrite a
// Document into its canonical form:
//
//   - every comment line gets exactly one space after the "#" marker, with
//     multi-line comment groups kept together ([NormalizeRemark],
//     [NormalizeComment], [NormalizeComments]);
//   - every leaf value of every record under the top-level "parsed_sample"
//     key is wrapped in [Scalar] so it serializes double-quoted
//     ([QuoteRecords]);
//   - the whole tree is serialized block-style with an explicit "---"
//     document start, 2-space indent, and indented sequences.
//
// Canonical output is a fixed point: loading a canonicalized file and
// encoding it again produces the same bytes. Documents are mutated in place;
// the caller owns the Document for the duration of the call.
package yamlfmt
