// Package jsonval provides helpers for the any-typed JSON value trees
// jsonedit operates on: ordered objects (yaml.MapSlice), arrays ([]any),
// and scalars.
//
// Objects are represented as yaml.MapSlice rather than map[string]any so
// that member insertion order survives a decode/patch/encode round trip.
// Keys are unique; the helpers here enforce first-occurrence semantics.
package jsonval

import (
	"github.com/goccy/go-yaml"
)

// Kind names the JSON kind of a value for error messages.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "array"
	case yaml.MapSlice:
		return "object"
	default:
		return "value"
	}
}

// MemberIndex returns the position of the member with the given name, or -1.
func MemberIndex(obj yaml.MapSlice, name string) int {
	for i, item := range obj {
		if key, ok := item.Key.(string); ok && key == name {
			return i
		}
	}
	return -1
}

// HasMember reports whether the object has a member with the given name.
func HasMember(obj yaml.MapSlice, name string) bool {
	return MemberIndex(obj, name) >= 0
}

// Member returns the value of the named member. The second return is false
// when the member is absent.
func Member(obj yaml.MapSlice, name string) (any, bool) {
	if i := MemberIndex(obj, name); i >= 0 {
		return obj[i].Value, true
	}
	return nil, false
}

// SetMember inserts or replaces a member and returns the updated object.
// Replacing an existing member keeps its position; a new member is appended.
func SetMember(obj yaml.MapSlice, name string, value any) yaml.MapSlice {
	if i := MemberIndex(obj, name); i >= 0 {
		obj[i].Value = value
		return obj
	}
	return append(obj, yaml.MapItem{Key: name, Value: value})
}

// RemoveMember removes the named member and returns the updated object.
// The second return is false when the member was absent.
func RemoveMember(obj yaml.MapSlice, name string) (yaml.MapSlice, bool) {
	i := MemberIndex(obj, name)
	if i < 0 {
		return obj, false
	}
	return append(obj[:i], obj[i+1:]...), true
}

// DeepCopy recursively copies a value tree.
//
// Scalars are immutable and returned as-is; objects and arrays are copied
// element by element so the result shares no containers with the input.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		result := make(yaml.MapSlice, len(val))
		for i, item := range val {
			result[i] = yaml.MapItem{Key: item.Key, Value: DeepCopy(item.Value)}
		}
		return result

	case []any:
		result := make([]any, len(val))
		for i, elem := range val {
			result[i] = DeepCopy(elem)
		}
		return result

	default:
		return val
	}
}
