package transform

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonedit/jsonedit/editerrors"
	"github.com/jsonedit/jsonedit/editor"
)

func newTransformer(t *testing.T, p *editor.Patcher, opts ...Option) *Transformer {
	t.Helper()
	tr, err := New(p, opts...)
	require.NoError(t, err)
	return tr
}

func TestNew(t *testing.T) {
	t.Run("nil patcher", func(t *testing.T) {
		_, err := New(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "patcher cannot be nil")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(editor.New(), WithFormat("xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})
}

func TestBytesJSON(t *testing.T) {
	t.Run("pass-through preserves member order", func(t *testing.T) {
		tr := newTransformer(t, editor.New())
		out, err := tr.Bytes([]byte(`{"zebra":1,"alpha":2,"mid":[1,2,3]}`))
		require.NoError(t, err)
		assert.Equal(t, `{"zebra":1,"alpha":2,"mid":[1,2,3]}`+"\n", string(out))
	})

	t.Run("set and remove", func(t *testing.T) {
		p := editor.New()
		p.AddSet(".b", "two", editor.SetAny)
		p.AddRemove(".a", editor.RemoveAny)
		tr := newTransformer(t, p)

		out, err := tr.Bytes([]byte(`{"a":1,"c":3}`))
		require.NoError(t, err)
		assert.Equal(t, `{"c":3,"b":"two"}`+"\n", string(out))
	})

	t.Run("pretty", func(t *testing.T) {
		tr := newTransformer(t, editor.New(), WithPretty(true))
		out, err := tr.Bytes([]byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": 1\n}\n", string(out))
	})

	t.Run("array document", func(t *testing.T) {
		p := editor.New()
		p.AddInsert("[1]", 99)
		tr := newTransformer(t, p)

		out, err := tr.Bytes([]byte(`[1,2,3]`))
		require.NoError(t, err)
		assert.Equal(t, "[1,99,2,3]\n", string(out))
	})

	t.Run("operation errors pass through unwrapped", func(t *testing.T) {
		p := editor.New()
		p.AddRemove(".missing", editor.RemoveExisting)
		tr := newTransformer(t, p)

		_, err := tr.Bytes([]byte(`{"a":1}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, editerrors.ErrPrecondition)
	})

	t.Run("malformed input", func(t *testing.T) {
		tr := newTransformer(t, editor.New())
		_, err := tr.Bytes([]byte(`{"a":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing document")
	})
}

func TestBytesYAML(t *testing.T) {
	t.Run("yaml in yaml out", func(t *testing.T) {
		p := editor.New()
		p.AddSet(".servers[]", yaml.MapSlice{{Key: "port", Value: 8080}}, editor.SetAny)
		tr := newTransformer(t, p)

		out, err := tr.Bytes([]byte("name: demo\nservers:\n- port: 80\n"))
		require.NoError(t, err)

		var reparsed any
		require.NoError(t, yaml.UnmarshalWithOptions(out, &reparsed, yaml.UseOrderedMap()))
		doc, ok := reparsed.(yaml.MapSlice)
		require.True(t, ok)
		assert.Equal(t, "name", doc[0].Key)
		servers := doc[1].Value.([]any)
		require.Len(t, servers, 2)
		assert.EqualValues(t, 8080, servers[1].(yaml.MapSlice)[0].Value)
	})

	t.Run("yaml in json out", func(t *testing.T) {
		tr := newTransformer(t, editor.New(), WithFormat(FormatJSON))
		out, err := tr.Bytes([]byte("a: 1\nb:\n- x\n- y\n"))
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":["x","y"]}`+"\n", string(out))
	})
}

func TestTransform(t *testing.T) {
	p := editor.New()
	p.AddSet(".a", 2, editor.SetAny)
	tr := newTransformer(t, p)

	var out bytes.Buffer
	err := tr.Transform(strings.NewReader(`{"a":1}`), &out)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`+"\n", out.String())
}

func TestCharset(t *testing.T) {
	t.Run("latin1 input", func(t *testing.T) {
		tr := newTransformer(t, editor.New(), WithCharset("latin1"))
		// "café" in ISO 8859-1.
		out, err := tr.Bytes([]byte("{\"name\":\"caf\xe9\"}"))
		require.NoError(t, err)
		assert.Equal(t, `{"name":"café"}`+"\n", string(out))
	})

	t.Run("unknown charset", func(t *testing.T) {
		tr := newTransformer(t, editor.New(), WithCharset("no-such-charset"))
		_, err := tr.Bytes([]byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown charset")
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Format
	}{
		{name: "object", in: `{"a":1}`, want: FormatJSON},
		{name: "array", in: `[1]`, want: FormatJSON},
		{name: "string scalar", in: `"hi"`, want: FormatJSON},
		{name: "leading whitespace", in: "\n\t {\"a\":1}", want: FormatJSON},
		{name: "mapping", in: "a: 1\n", want: FormatYAML},
		{name: "sequence", in: "- 1\n- 2\n", want: FormatYAML},
		{name: "empty", in: "", want: FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat([]byte(tt.in)))
		})
	}
}

func TestValue(t *testing.T) {
	t.Run("number literal", func(t *testing.T) {
		v, err := Value("42")
		require.NoError(t, err)
		assert.EqualValues(t, 42, v)
	})

	t.Run("bare word becomes a string", func(t *testing.T) {
		v, err := Value("hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("object keeps member order", func(t *testing.T) {
		v, err := Value(`{"z":1,"a":2}`)
		require.NoError(t, err)
		obj, ok := v.(yaml.MapSlice)
		require.True(t, ok)
		require.Len(t, obj, 2)
		assert.Equal(t, "z", obj[0].Key)
		assert.Equal(t, "a", obj[1].Key)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "value.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1,2]`), 0o644))

		v, err := Value("@" + path)
		require.NoError(t, err)
		arr, ok := v.([]any)
		require.True(t, ok)
		assert.Len(t, arr, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Value("@" + filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading value file")
	})
}

func TestFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("in place", func(t *testing.T) {
		path := write(t, `{"a":1}`)

		p := editor.New()
		p.AddSet(".a", 2, editor.SetAny)
		require.NoError(t, newTransformer(t, p).File(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":2}`+"\n", string(data))

		_, err = os.Stat(path + ".orig")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("keep original", func(t *testing.T) {
		path := write(t, `{"a":1}`)

		p := editor.New()
		p.AddSet(".a", 2, editor.SetAny)
		require.NoError(t, newTransformer(t, p, WithKeepOriginal(true)).File(path))

		orig, err := os.ReadFile(path + ".orig")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(orig))
	})

	t.Run("failed transform leaves the file untouched", func(t *testing.T) {
		path := write(t, `{"a":1}`)

		p := editor.New()
		p.AddRemove(".missing", editor.RemoveExisting)
		require.Error(t, newTransformer(t, p).File(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("to another path", func(t *testing.T) {
		in := write(t, `{"a":1}`)
		out := filepath.Join(filepath.Dir(in), "out.json")

		p := editor.New()
		p.AddSet(".b", true, editor.SetAny)
		require.NoError(t, newTransformer(t, p).FileTo(in, out))

		inData, err := os.ReadFile(in)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(inData))

		outData, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":true}`+"\n", string(outData))
	})
}
