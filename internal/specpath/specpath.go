// Package specpath resolves jsonedit path specs against JSON value trees.
//
// A spec is a compact textual address of one location inside a document:
// a chain of object-member and array-index steps consumed left to right
// with no backtracking once a prefix pattern commits.
//
// Supported syntax:
//   - .name (object member, name matches [A-Za-z0-9_]+)
//   - [N] (array index, N may be negative and counts from the end)
//   - [] (append marker, valid only as the final step)
//
// The final step designates the mutation site; intermediate steps are pure
// navigation. Resolution and mutation happen in one call: the caller passes
// a function that receives the resolved Site and performs the mutation
// while the resolver still holds a writable cell for the container.
package specpath

import (
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/jsonedit/jsonedit/editerrors"
	"github.com/jsonedit/jsonedit/internal/jsonval"
)

// Site is a resolved mutation site: a live container in the document tree
// plus the member name or element index the final step designated.
//
// Slot points at the cell that holds the container, so a mutation that
// grows or shrinks the container writes the new slice header back through
// Slot and stays visible in the tree.
type Site interface {
	site()
}

// ObjectMember designates a member of the object held in *Slot.
// The member may or may not exist; existence policy belongs to the caller.
type ObjectMember struct {
	Slot *any // holds a yaml.MapSlice
	Name string
}

func (ObjectMember) site() {}

// ArrayElement designates an element position in the array held in *Slot.
// Index is normalized (never negative) but may equal the array length,
// which final-step callers interpret as append.
type ArrayElement struct {
	Slot  *any // holds a []any
	Index int
}

func (ArrayElement) site() {}

// Resolve walks the document along spec and invokes apply with the mutation
// site the final step designates.
//
// Any failure, whether detected by the resolver or returned by apply, is
// wrapped exactly once in *editerrors.SpecError naming the spec and the
// byte offset of the step that failed. The underlying kind stays reachable
// through errors.Is/As.
func Resolve(root *any, spec string, apply func(Site) error) error {
	slot := root
	rest := spec

	for {
		offset := len(spec) - len(rest)

		step, remainder, ok := scanStep(rest)
		if !ok {
			return &editerrors.SpecError{Spec: spec, Offset: offset, Cause: &editerrors.SyntaxError{
				Spec:      spec,
				Remainder: rest,
				Offset:    offset,
			}}
		}
		final := remainder == ""

		next, err := walk(slot, step, final, apply)
		if err != nil {
			return &editerrors.SpecError{Spec: spec, Offset: offset, Cause: err}
		}
		if final {
			return nil
		}
		slot = next
		rest = remainder
	}
}

// step is one scanned unit of a spec.
type step struct {
	name   string // object member name, when member is true
	member bool
	index  int  // raw array index, when member and append are false
	append bool // the [] marker
}

// scanStep scans one step from the front of rest. It returns the step, the
// unconsumed remainder, and whether a step pattern matched at all.
func scanStep(rest string) (step, string, bool) {
	if len(rest) == 0 {
		return step{}, "", false
	}

	switch rest[0] {
	case '.':
		i := 1
		for i < len(rest) && isNameChar(rest[i]) {
			i++
		}
		if i == 1 {
			return step{}, "", false
		}
		return step{name: rest[1:i], member: true}, rest[i:], true

	case '[':
		if len(rest) >= 2 && rest[1] == ']' {
			// The append marker is only meaningful as the final step;
			// "[]" followed by more spec text is not in the grammar.
			if rest[2:] != "" {
				return step{}, "", false
			}
			return step{append: true}, "", true
		}
		i := 1
		if i < len(rest) && rest[i] == '-' {
			i++
		}
		digits := i
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == digits || i >= len(rest) || rest[i] != ']' {
			return step{}, "", false
		}
		n, err := strconv.Atoi(rest[1:i])
		if err != nil {
			return step{}, "", false
		}
		return step{index: n}, rest[i+1:], true

	default:
		return step{}, "", false
	}
}

// walk applies one scanned step: a final step hands the mutation site to
// apply, an intermediate step descends and returns the next slot.
func walk(slot *any, s step, final bool, apply func(Site) error) (*any, error) {
	if s.member {
		obj, ok := (*slot).(yaml.MapSlice)
		if !ok {
			return nil, &editerrors.TypeMismatchError{Want: "object", Got: jsonval.Kind(*slot)}
		}
		if final {
			return nil, apply(ObjectMember{Slot: slot, Name: s.name})
		}
		// An absent intermediate member yields null rather than an error;
		// the next step's type check reports it as "found null".
		if i := jsonval.MemberIndex(obj, s.name); i >= 0 {
			return &obj[i].Value, nil
		}
		var missing any
		return &missing, nil
	}

	arr, ok := (*slot).([]any)
	if !ok {
		return nil, &editerrors.TypeMismatchError{Want: "array", Got: jsonval.Kind(*slot)}
	}

	if s.append {
		return nil, apply(ArrayElement{Slot: slot, Index: len(arr)})
	}

	index := s.index
	if index < 0 {
		index += len(arr)
	}
	if index < 0 {
		// A negative index that stays negative after normalization is out
		// of range at every step, final ones included.
		return nil, &editerrors.IndexError{Index: index, Length: len(arr)}
	}
	if final {
		return nil, apply(ArrayElement{Slot: slot, Index: index})
	}
	// Intermediate descent has no append concept; the element must exist.
	if index >= len(arr) {
		return nil, &editerrors.IndexError{Index: index, Length: len(arr)}
	}
	return &arr[index], nil
}

func isNameChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
