package transform

import "fmt"

// Option is a function that configures a Transformer.
type Option func(*Transformer) error

// WithFormat forces the output format instead of following the input.
func WithFormat(f Format) Option {
	return func(t *Transformer) error {
		switch f {
		case FormatAuto, FormatJSON, FormatYAML:
			t.format = f
			return nil
		default:
			return fmt.Errorf("unknown format %q", f)
		}
	}
}

// WithPretty enables indented JSON output. YAML output is always indented.
func WithPretty(pretty bool) Option {
	return func(t *Transformer) error {
		t.pretty = pretty
		return nil
	}
}

// WithCharset declares the character encoding of the input, which is
// decoded to UTF-8 before parsing. Names are resolved through the WHATWG
// encoding index ("latin1", "windows-1252", "shift_jis", ...). An empty
// name means the input already is UTF-8.
func WithCharset(name string) Option {
	return func(t *Transformer) error {
		t.charset = name
		return nil
	}
}

// WithKeepOriginal preserves a file's previous contents as "<path>.orig"
// when transforming it in place.
func WithKeepOriginal(keep bool) Option {
	return func(t *Transformer) error {
		t.keep = keep
		return nil
	}
}
