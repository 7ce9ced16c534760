package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/jsonedit/jsonedit/editor"
)

// Format identifies the serialization format of a document.
type Format string

const (
	// FormatAuto detects the format from the document content.
	FormatAuto Format = "auto"
	// FormatJSON is JSON input or output.
	FormatJSON Format = "json"
	// FormatYAML is YAML input or output.
	FormatYAML Format = "yaml"
)

// Transformer applies a Patcher to serialized documents.
//
// A Transformer is immutable after New and may be reused across documents.
type Transformer struct {
	patcher *editor.Patcher
	format  Format
	pretty  bool
	charset string
	keep    bool
}

// New creates a Transformer around the given Patcher.
func New(p *editor.Patcher, opts ...Option) (*Transformer, error) {
	if p == nil {
		return nil, fmt.Errorf("transform: patcher cannot be nil")
	}
	t := &Transformer{
		patcher: p,
		format:  FormatAuto,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("transform: invalid option: %w", err)
		}
	}
	return t, nil
}

// Transform reads one document from r, applies the patch pipeline, and
// writes the result to w.
func (t *Transformer) Transform(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("transform: reading input: %w", err)
	}

	out, err := t.Bytes(data)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("transform: writing output: %w", err)
	}
	return nil
}

// Bytes applies the patch pipeline to one serialized document and returns
// the serialized result.
func (t *Transformer) Bytes(data []byte) ([]byte, error) {
	data, err := t.decodeCharset(data)
	if err != nil {
		return nil, err
	}

	format := t.format
	if format == FormatAuto {
		format = DetectFormat(data)
	}

	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("transform: parsing document: %w", err)
	}

	doc, err = t.patcher.Apply(doc)
	if err != nil {
		return nil, err
	}

	return t.encode(doc, format)
}

// Document applies the patch pipeline to an already-decoded value tree.
func (t *Transformer) Document(doc any) (any, error) {
	return t.patcher.Apply(doc)
}

// encode serializes a value tree in the requested format.
func (t *Transformer) encode(doc any, format Format) ([]byte, error) {
	if format == FormatJSON {
		data, err := yaml.MarshalWithOptions(doc, yaml.JSON())
		if err != nil {
			return nil, fmt.Errorf("transform: encoding document: %w", err)
		}
		// The YAML encoder's JSON style is valid but loosely spaced;
		// normalize through encoding/json for stable output.
		var buf bytes.Buffer
		if t.pretty {
			err = json.Indent(&buf, data, "", "  ")
		} else {
			err = json.Compact(&buf, bytes.TrimSpace(data))
		}
		if err != nil {
			return nil, fmt.Errorf("transform: formatting document: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("transform: encoding document: %w", err)
	}
	return data, nil
}

// decodeCharset converts data to UTF-8 when a charset option is set.
func (t *Transformer) decodeCharset(data []byte) ([]byte, error) {
	if t.charset == "" {
		return data, nil
	}
	enc, err := htmlindex.Get(t.charset)
	if err != nil {
		return nil, fmt.Errorf("transform: unknown charset %q: %w", t.charset, err)
	}
	decoded, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("transform: decoding %s input: %w", t.charset, err)
	}
	return decoded, nil
}

// DetectFormat guesses the serialization format of a document from its
// content. JSON documents start with '{' or '['; everything else is
// treated as YAML, which also covers scalar JSON documents since YAML
// parses them identically.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[' || trimmed[0] == '"') {
		return FormatJSON
	}
	return FormatYAML
}

// Value parses an operation payload from a command-line style argument.
// An argument starting with "@" names a file to read the value from;
// anything else is parsed as a literal. Parsing is lenient: a bare word
// that is not valid JSON becomes a string.
func Value(arg string) (any, error) {
	var data []byte
	if strings.HasPrefix(arg, "@") {
		var err error
		data, err = os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("transform: reading value file: %w", err)
		}
	} else {
		data = []byte(arg)
	}

	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("transform: parsing value %q: %w", arg, err)
	}
	return v, nil
}
