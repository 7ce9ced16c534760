// Package editerrors provides structured error types for jsonedit.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the failure kinds a
// patch operation can produce and react to each one.
//
// # Error Categories
//
//   - SyntaxError: the path spec text does not match the grammar
//   - TypeMismatchError: a step expected an object or array but found
//     another JSON kind
//   - IndexError: an array index falls outside the range the current step
//     requires
//   - PreconditionError: an existence-mode check failed
//   - UnsupportedError: the operation cannot act on the resolved site
//   - SpecError: context wrapper naming the spec and the offset at which a
//     failure occurred
//
// # Usage with errors.Is
//
//	_, err := editor.Set(root, ".a[3]", v, editor.SetExisting)
//	if errors.Is(err, editerrors.ErrIndexOutOfRange) {
//	    // the index precondition failed
//	}
package editerrors
