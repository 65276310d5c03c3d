package dto

import "fmt"

// DanglingReferenceError reports a child document whose foreign key matches
// no parent in the supplied set.
type DanglingReferenceError struct {
	Field string
	Value uint64
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s=%d matches no parent document", e.Field, e.Value)
}

// ResolveOwned joins each child document to its owning parent and builds one
// view per child, preserving child order. The whole batch fails on the first
// dangling foreign key: skipping orphans would hide data corruption, so the
// caller gets an error naming the offending value instead of a partial list.
func ResolveOwned[C, P, V any](
	children []C,
	parents []P,
	field string,
	parentID func(P) uint64,
	foreignKey func(C) uint64,
	build func(C, P) (V, error),
) ([]V, error) {
	index := make(map[uint64]P, len(parents))
	for _, p := range parents {
		index[parentID(p)] = p
	}

	views := make([]V, 0, len(children))
	for _, child := range children {
		parent, ok := index[foreignKey(child)]
		if !ok {
			return nil, &DanglingReferenceError{Field: field, Value: foreignKey(child)}
		}
		view, err := build(child, parent)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
