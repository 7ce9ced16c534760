package mcpserver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callPatch(t *testing.T, input patchInput) (*mcp.CallToolResult, patchOutput) {
	t.Helper()
	result, output, err := handlePatch(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	return result, output
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandlePatchInline(t *testing.T) {
	result, output := callPatch(t, patchInput{
		Doc: docInput{Content: `{"a":1,"b":[1,2]}`},
		Operations: []patchOperation{
			{Op: "set", Spec: ".a", Value: float64(2)},
			{Op: "insert", Spec: ".b[1]", Value: float64(99)},
			{Op: "remove", Spec: ".b[0]"},
		},
	})
	require.Nil(t, result)
	assert.Equal(t, 3, output.OperationCount)
	assert.Equal(t, "json", output.Format)
	assert.Equal(t, `{"a":2,"b":[99,2]}`+"\n", output.Document)
	assert.Empty(t, output.WrittenTo)
}

func TestHandlePatchObjectValue(t *testing.T) {
	// The SDK delivers object payloads as map[string]any; a later operation
	// must still be able to descend into the value the first one set.
	result, output := callPatch(t, patchInput{
		Doc: docInput{Content: `{}`},
		Operations: []patchOperation{
			{Op: "set", Spec: ".server", Value: map[string]any{"port": float64(80)}},
			{Op: "set", Spec: ".server.port", Value: float64(8080), Mode: "existing"},
		},
	})
	require.Nil(t, result)
	assert.Equal(t, `{"server":{"port":8080}}`+"\n", output.Document)
}

func TestHandlePatchFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(in, []byte("name: demo\n"), 0o644))

	result, output := callPatch(t, patchInput{
		Doc:        docInput{File: in},
		Operations: []patchOperation{{Op: "set", Spec: ".name", Value: "patched"}},
		Output:     out,
	})
	require.Nil(t, result)
	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, out, output.WrittenTo)
	assert.Empty(t, output.Document)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: patched")
}

func TestHandlePatchFormatOverride(t *testing.T) {
	result, output := callPatch(t, patchInput{
		Doc:        docInput{Content: "a: 1\n"},
		Operations: []patchOperation{{Op: "set", Spec: ".b", Value: float64(2)}},
		Format:     "json",
		Pretty:     true,
	})
	require.Nil(t, result)
	assert.Equal(t, "json", output.Format)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}\n", output.Document)
}

func TestHandlePatchInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input patchInput
		want  string
	}{
		{
			name:  "no document",
			input: patchInput{Operations: []patchOperation{{Op: "remove", Spec: ".a"}}},
			want:  "exactly one of file or content",
		},
		{
			name: "both document sources",
			input: patchInput{
				Doc:        docInput{File: "x", Content: "{}"},
				Operations: []patchOperation{{Op: "remove", Spec: ".a"}},
			},
			want: "not both",
		},
		{
			name:  "no operations",
			input: patchInput{Doc: docInput{Content: "{}"}},
			want:  "at least one operation",
		},
		{
			name: "unknown op",
			input: patchInput{
				Doc:        docInput{Content: "{}"},
				Operations: []patchOperation{{Op: "replace", Spec: ".a"}},
			},
			want: `unknown op "replace"`,
		},
		{
			name: "insert with a mode",
			input: patchInput{
				Doc:        docInput{Content: "[]"},
				Operations: []patchOperation{{Op: "insert", Spec: "[0]", Mode: "existing"}},
			},
			want: "insert does not take a mode",
		},
		{
			name: "bad set mode",
			input: patchInput{
				Doc:        docInput{Content: "{}"},
				Operations: []patchOperation{{Op: "set", Spec: ".a", Mode: "maybe"}},
			},
			want: `"maybe"`,
		},
		{
			name: "failing operation",
			input: patchInput{
				Doc:        docInput{Content: "{}"},
				Operations: []patchOperation{{Op: "remove", Spec: ".missing", Mode: "existing"}},
			},
			want: `processing spec ".missing"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := callPatch(t, tt.input)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestSanitizeError(t *testing.T) {
	err := errors.New("failed to read document: open /tmp/secret/doc.json: no such file or directory")
	got := sanitizeError(err)
	assert.NotContains(t, got, "/tmp/secret")
	assert.Contains(t, got, "<path>")
	assert.Empty(t, sanitizeError(nil))
}
