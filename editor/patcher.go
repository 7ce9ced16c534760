package editor

import "github.com/jsonedit/jsonedit/internal/jsonval"

// operation transforms a document root into a new root.
type operation func(root any) (any, error)

// Patcher holds an ordered list of mutation operations and applies them to
// documents in registration order.
//
// Build the list once during configuration; after that a Patcher is
// read-only and may be reused across any number of sequential document
// transforms, or shared across goroutines as long as each works on its own
// document tree.
type Patcher struct {
	ops []operation
}

// New creates an empty Patcher.
func New() *Patcher {
	return &Patcher{}
}

// AddSet registers a Set operation. The value payload is deep-copied at
// registration time and again per application, so neither the caller nor
// previously patched documents can alias into it.
func (p *Patcher) AddSet(spec string, value any, mode SetMode) {
	payload := jsonval.DeepCopy(value)
	p.ops = append(p.ops, func(root any) (any, error) {
		return Set(root, spec, jsonval.DeepCopy(payload), mode)
	})
}

// AddRemove registers a Remove operation.
func (p *Patcher) AddRemove(spec string, mode RemoveMode) {
	p.ops = append(p.ops, func(root any) (any, error) {
		return Remove(root, spec, mode)
	})
}

// AddInsert registers an Insert operation. The value payload is deep-copied
// the same way as for AddSet.
func (p *Patcher) AddInsert(spec string, value any) {
	payload := jsonval.DeepCopy(value)
	p.ops = append(p.ops, func(root any) (any, error) {
		return Insert(root, spec, jsonval.DeepCopy(payload))
	})
}

// Len returns the number of registered operations.
func (p *Patcher) Len() int {
	return len(p.ops)
}

// Apply threads root through every registered operation in order and
// returns the final document. The first failing operation aborts the
// pipeline and its error is returned; the input tree may have been
// partially mutated at that point.
func (p *Patcher) Apply(root any) (any, error) {
	var err error
	for _, op := range p.ops {
		root, err = op(root)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}
