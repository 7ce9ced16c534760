// Package jsonedit provides path-addressed editing of JSON and YAML documents.
//
// jsonedit applies ordered lists of mutation operations (set, remove,
// insert) to parsed document trees. Each operation addresses its target
// with a compact path spec such as ".servers[0].port" or ".tags[]", and
// set/remove carry an existence-mode precondition so a patch can require
// that its target already exists (or does not) before touching it.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - editor: the mutation operations and the Patcher pipeline
//   - transform: the stream/file driver that decodes a document, applies a
//     Patcher, and re-encodes it in the source format
//   - editerrors: structured error types for programmatic handling
//
// # Quick Start
//
// Patch a document in memory:
//
//	import "github.com/jsonedit/jsonedit/editor"
//
//	p := editor.New()
//	p.AddSet(".info.title", "Renamed", editor.SetAny)
//	p.AddRemove(".deprecated", editor.RemoveAny)
//	doc, err := p.Apply(doc)
//
// Patch a file in place, keeping a backup:
//
//	import "github.com/jsonedit/jsonedit/transform"
//
//	tr, err := transform.New(p, transform.WithKeepOriginal(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = tr.File("config.json")
//
// The jsonedit command wraps the same pipeline for shell use, and the MCP
// server (jsonedit mcp) exposes it as a tool over stdio.
package jsonedit
