package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonedit/jsonedit/editor"
	"github.com/jsonedit/jsonedit/transform"
)

// docInput represents the two ways a document can be provided to the patch
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

type patchOperation struct {
	Op    string `json:"op"              jsonschema:"Operation kind: set\\, remove\\, or insert"`
	Spec  string `json:"spec"            jsonschema:"Path spec addressing the target\\, e.g. .servers[0].port or .tags[]"`
	Value any    `json:"value,omitempty" jsonschema:"Value payload for set and insert"`
	Mode  string `json:"mode,omitempty"  jsonschema:"Existence precondition: any (default)\\, existing\\, or non-existing (set only)"`
}

type patchInput struct {
	Doc        docInput         `json:"doc"               jsonschema:"The document to patch"`
	Operations []patchOperation `json:"operations"        jsonschema:"Operations to apply\\, in order"`
	Pretty     bool             `json:"pretty,omitempty"  jsonschema:"Indent JSON output"`
	Format     string           `json:"format,omitempty"  jsonschema:"Force output format: json or yaml. Default follows the input."`
	Output     string           `json:"output,omitempty"  jsonschema:"File path to write the patched document. If omitted the document is returned inline."`
}

type patchOutput struct {
	OperationCount int    `json:"operation_count"`
	Format         string `json:"format"`
	Document       string `json:"document,omitempty"`
	WrittenTo      string `json:"written_to,omitempty"`
}

func handlePatch(_ context.Context, _ *mcp.CallToolRequest, input patchInput) (*mcp.CallToolResult, patchOutput, error) {
	data, err := readDoc(input.Doc)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	p, err := buildPatcher(input.Operations)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	format := transform.Format(input.Format)
	if input.Format == "" {
		format = transform.DetectFormat(data)
	}

	tr, err := transform.New(p,
		transform.WithFormat(format),
		transform.WithPretty(input.Pretty),
	)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	result, err := tr.Bytes(data)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	output := patchOutput{
		OperationCount: p.Len(),
		Format:         string(format),
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, result, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), patchOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(result)
	}

	return nil, output, nil
}

func readDoc(doc docInput) ([]byte, error) {
	switch {
	case doc.File != "" && doc.Content != "":
		return nil, fmt.Errorf("provide either file or content, not both")
	case doc.File != "":
		data, err := os.ReadFile(doc.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		return data, nil
	case doc.Content != "":
		return []byte(doc.Content), nil
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}

// buildPatcher translates the tool's operation list into a Patcher.
func buildPatcher(ops []patchOperation) (*editor.Patcher, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("at least one operation is required")
	}

	p := editor.New()
	for i, op := range ops {
		switch op.Op {
		case "set":
			mode, err := editor.ParseSetMode(op.Mode)
			if err != nil {
				return nil, fmt.Errorf("operation[%d]: %w", i, err)
			}
			value, err := orderedValue(op.Value)
			if err != nil {
				return nil, fmt.Errorf("operation[%d]: %w", i, err)
			}
			p.AddSet(op.Spec, value, mode)

		case "remove":
			mode, err := editor.ParseRemoveMode(op.Mode)
			if err != nil {
				return nil, fmt.Errorf("operation[%d]: %w", i, err)
			}
			p.AddRemove(op.Spec, mode)

		case "insert":
			if op.Mode != "" && op.Mode != "any" {
				return nil, fmt.Errorf("operation[%d]: insert does not take a mode", i)
			}
			value, err := orderedValue(op.Value)
			if err != nil {
				return nil, fmt.Errorf("operation[%d]: %w", i, err)
			}
			p.AddInsert(op.Spec, value)

		default:
			return nil, fmt.Errorf("operation[%d]: unknown op %q (want set, remove, or insert)", i, op.Op)
		}
	}
	return p, nil
}

// orderedValue converts a value payload from the SDK's map-based JSON
// decoding into the ordered representation the editor operates on, so
// later operations can descend into it.
func orderedValue(v any) (any, error) {
	switch v.(type) {
	case nil, bool, string, float64, int64, json.Number:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("invalid value payload: %w", err)
	}
	var ordered any
	if err := yaml.UnmarshalWithOptions(data, &ordered, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("invalid value payload: %w", err)
	}
	return ordered, nil
}
