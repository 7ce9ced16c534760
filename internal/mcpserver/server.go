// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the jsonedit patch pipeline as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonedit/jsonedit"
)

const serverInstructions = `jsonedit MCP server: applies path-addressed edits to JSON and YAML documents.

The patch tool takes one document (inline content or a file path) and an ordered list of operations, each one of:
- set: insert or replace the addressed member/element (mode: any, existing, non-existing)
- remove: delete the addressed member/element (mode: any, existing)
- insert: shift-insert a new element into an array

Path specs chain object members (.name) and array indices ([0], [-1], [] to append), e.g. ".servers[0].port". Operations apply strictly in list order; the first failing operation aborts the patch and reports the spec offset that failed.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonedit", Version: jsonedit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch",
		Description: "Apply an ordered list of set/remove/insert operations to a JSON or YAML document. Provide the document inline via content or as a file path. Returns the patched document; set output to write it to a file instead. Output format follows the input unless format is set to json or yaml.",
	}, handlePatch)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
