// Package editor applies path-addressed mutations to JSON value trees.
//
// A document is the any-typed tree the goccy/go-yaml decoder produces with
// ordered maps enabled: objects are yaml.MapSlice, arrays are []any, and
// scalars are Go scalars. The mutation primitives Set, Remove, and Insert
// each address their target with a compact path spec such as
// ".servers[0].port", guarded by an existence-mode precondition where the
// operation supports one.
//
// A Patcher collects an ordered list of mutations once and then applies
// them, in registration order, to any number of documents:
//
//	p := editor.New()
//	p.AddSet(".info.title", "Renamed", editor.SetAny)
//	p.AddRemove(".paths", editor.RemoveExisting)
//	doc, err = p.Apply(doc)
//
// A Patcher is immutable once built and safe for concurrent use, provided
// each concurrent Apply call operates on its own document tree.
//
// Failures are structured editerrors values: spec syntax errors, type
// mismatches, out-of-range indices, failed existence preconditions, and
// unsupported operations, each wrapped with the spec text and the offset
// of the step that failed.
package editor
