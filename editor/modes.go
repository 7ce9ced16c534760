package editor

import "fmt"

// SetMode is the existence precondition attached to a Set operation.
type SetMode int

const (
	// SetAny places the value whether or not the target exists.
	SetAny SetMode = iota
	// SetExisting requires the target member or element to exist.
	SetExisting
	// SetNonExisting requires the target member to be absent, or the
	// target array index to equal the array length.
	SetNonExisting
)

// String returns the mode's textual name.
func (m SetMode) String() string {
	switch m {
	case SetAny:
		return "any"
	case SetExisting:
		return "existing"
	case SetNonExisting:
		return "non-existing"
	default:
		return fmt.Sprintf("SetMode(%d)", int(m))
	}
}

// ParseSetMode converts a textual mode name to a SetMode.
func ParseSetMode(s string) (SetMode, error) {
	switch s {
	case "any", "":
		return SetAny, nil
	case "existing":
		return SetExisting, nil
	case "non-existing", "non_existing":
		return SetNonExisting, nil
	default:
		return SetAny, fmt.Errorf("unknown set mode %q (want any, existing, or non-existing)", s)
	}
}

// RemoveMode is the existence precondition attached to a Remove operation.
// It only affects object-member removal; array-element removal always
// requires the element to exist.
type RemoveMode int

const (
	// RemoveAny tolerates an absent member silently.
	RemoveAny RemoveMode = iota
	// RemoveExisting requires the member to exist.
	RemoveExisting
)

// String returns the mode's textual name.
func (m RemoveMode) String() string {
	switch m {
	case RemoveAny:
		return "any"
	case RemoveExisting:
		return "existing"
	default:
		return fmt.Sprintf("RemoveMode(%d)", int(m))
	}
}

// ParseRemoveMode converts a textual mode name to a RemoveMode.
func ParseRemoveMode(s string) (RemoveMode, error) {
	switch s {
	case "any", "":
		return RemoveAny, nil
	case "existing":
		return RemoveExisting, nil
	default:
		return RemoveAny, fmt.Errorf("unknown remove mode %q (want any or existing)", s)
	}
}
