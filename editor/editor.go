package editor

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jsonedit/jsonedit/editerrors"
	"github.com/jsonedit/jsonedit/internal/jsonval"
	"github.com/jsonedit/jsonedit/internal/specpath"
)

// Set adds or changes one object member or array element and returns the
// resulting document root.
//
// An empty spec replaces the whole document with value; no path resolution
// happens and root is discarded. Otherwise the spec must resolve to an
// object member or array element, and mode decides the existence check:
// SetExisting fails when the target is absent, SetNonExisting fails when
// it is present, SetAny performs no check. Setting the element one past
// the end of an array appends.
func Set(root any, spec string, value any, mode SetMode) (any, error) {
	if spec == "" {
		return value, nil
	}

	err := specpath.Resolve(&root, spec, func(site specpath.Site) error {
		switch s := site.(type) {
		case specpath.ObjectMember:
			obj := (*s.Slot).(yaml.MapSlice)
			switch mode {
			case SetExisting:
				if !jsonval.HasMember(obj, s.Name) {
					return &editerrors.PreconditionError{
						Member:  s.Name,
						Message: fmt.Sprintf("member %q does not exist", s.Name),
					}
				}
			case SetNonExisting:
				if jsonval.HasMember(obj, s.Name) {
					return &editerrors.PreconditionError{
						Member:  s.Name,
						Message: fmt.Sprintf("member %q already exists", s.Name),
					}
				}
			}
			*s.Slot = jsonval.SetMember(obj, s.Name, value)

		case specpath.ArrayElement:
			arr := (*s.Slot).([]any)
			switch mode {
			case SetExisting:
				if s.Index >= len(arr) {
					return &editerrors.IndexError{Index: s.Index, Length: len(arr), Message: "no such element"}
				}
			case SetNonExisting:
				if s.Index != len(arr) {
					return &editerrors.IndexError{Index: s.Index, Length: len(arr), Message: "index does not equal array length"}
				}
			default:
				if s.Index > len(arr) {
					return &editerrors.IndexError{Index: s.Index, Length: len(arr)}
				}
			}
			if s.Index == len(arr) {
				*s.Slot = append(arr, value)
			} else {
				arr[s.Index] = value
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Remove deletes one object member or array element and returns the
// resulting document root.
//
// Removing an absent object member is a no-op under RemoveAny and a
// precondition failure under RemoveExisting. Removing an array element
// requires the index to be in range regardless of mode; subsequent
// elements shift down by one. The whole document cannot be removed, so an
// empty spec is a syntax error.
func Remove(root any, spec string, mode RemoveMode) (any, error) {
	err := specpath.Resolve(&root, spec, func(site specpath.Site) error {
		switch s := site.(type) {
		case specpath.ObjectMember:
			obj := (*s.Slot).(yaml.MapSlice)
			updated, removed := jsonval.RemoveMember(obj, s.Name)
			if !removed && mode == RemoveExisting {
				return &editerrors.PreconditionError{
					Member:  s.Name,
					Message: fmt.Sprintf("member %q does not exist", s.Name),
				}
			}
			*s.Slot = updated

		case specpath.ArrayElement:
			arr := (*s.Slot).([]any)
			if s.Index >= len(arr) {
				return &editerrors.IndexError{Index: s.Index, Length: len(arr)}
			}
			*s.Slot = append(arr[:s.Index], arr[s.Index+1:]...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Insert places a new element into an array, shifting every element at or
// after the index one slot toward the end, and returns the resulting
// document root.
//
// The spec must resolve to an array element; inserting into an object
// member is unsupported (use Set). The index may range from 0 through the
// array length, where inserting at the length appends.
func Insert(root any, spec string, value any) (any, error) {
	err := specpath.Resolve(&root, spec, func(site specpath.Site) error {
		switch s := site.(type) {
		case specpath.ObjectMember:
			return &editerrors.UnsupportedError{Message: "cannot insert into an object member; use set"}

		case specpath.ArrayElement:
			arr := (*s.Slot).([]any)
			if s.Index > len(arr) {
				return &editerrors.IndexError{Index: s.Index, Length: len(arr)}
			}
			updated := make([]any, 0, len(arr)+1)
			updated = append(updated, arr[:s.Index]...)
			updated = append(updated, value)
			updated = append(updated, arr[s.Index:]...)
			*s.Slot = updated
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}
