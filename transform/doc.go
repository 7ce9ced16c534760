// Package transform is the document-processing driver around editor: it
// decodes a JSON or YAML byte stream into a value tree, applies a Patcher,
// and re-encodes the result.
//
// Decoding uses goccy/go-yaml with ordered maps, so object member order
// survives the round trip, and since YAML 1.2 is a superset of JSON,
// one decoder covers both input formats. The output format follows the input
// unless forced with WithFormat.
//
//	p := editor.New()
//	p.AddSet(".version", "2.0", editor.SetAny)
//	tr, err := transform.New(p, transform.WithPretty(true))
//	out, err := tr.Bytes(in)
//
// File transforms rewrite in place through a temporary file, optionally
// keeping the previous contents as "<path>.orig". Non-UTF-8 input is
// decoded via the WithCharset option.
package transform
