package mapreg

import (
	"fmt"
	"strings"
)

// TypeID names a data shape. It is chosen by the caller and carries no
// meaning beyond equality, e.g. "Reservation" or "google.Reservation".
type TypeID string

// TransformFunc converts a value of the source shape into the target shape.
// It reports failure by returning an error; a panic is treated the same way.
type TransformFunc func(source any) (any, error)

// Entry pairs a (source, target) type pair with the transform between them.
// An Entry is immutable once built; use NewEntry or NewTypedEntry.
//
// Example:
//
//	entry, err := mapreg.NewEntry("Celsius", "Fahrenheit", func(v any) (any, error) {
//	    c, ok := v.(float64)
//	    if !ok {
//	        return nil, fmt.Errorf("expected float64, got %T", v)
//	    }
//	    return c*9/5 + 32, nil
//	})
type Entry struct {
	source    TypeID
	target    TypeID
	transform TransformFunc
}

// NewEntry builds an Entry. Both identifiers must be non-blank and the
// transform must be set. Identifiers are kept exactly as given.
func NewEntry(source, target TypeID, transform TransformFunc) (Entry, error) {
	e := Entry{
		source:    source,
		target:    target,
		transform: transform,
	}
	if err := e.validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// MustEntry is like NewEntry but panics on invalid input. It is meant for
// package-level tables of known-good entries.
func MustEntry(source, target TypeID, transform TransformFunc) Entry {
	e, err := NewEntry(source, target, transform)
	if err != nil {
		panic(fmt.Sprintf("mapreg: %v", err))
	}
	return e
}

func (e Entry) SourceType() TypeID {
	return e.source
}

func (e Entry) TargetType() TypeID {
	return e.target
}

// Apply runs the transform on input. Any failure, including a panic, is
// returned as a *MappingExecutionError carrying the entry's type pair.
func (e Entry) Apply(input any) (output any, err error) {
	if e.transform == nil {
		return nil, NewMappingExecutionError(e.source, e.target, ErrTransformRequired)
	}

	defer func() {
		if r := recover(); r != nil {
			output = nil
			err = NewMappingExecutionError(e.source, e.target, panicCause(r))
		}
	}()

	result, err := e.transform(input)
	if err != nil {
		return nil, NewMappingExecutionError(e.source, e.target, err)
	}
	return result, nil
}

func (e Entry) key() pairKey {
	return pairKey{source: e.source, target: e.target}
}

func (e Entry) validate() error {
	if isBlank(e.source) {
		return fmt.Errorf("%w: source", ErrTypeRequired)
	}
	if isBlank(e.target) {
		return fmt.Errorf("%w: target", ErrTypeRequired)
	}
	if e.transform == nil {
		return fmt.Errorf("%w: %s to %s", ErrTransformRequired, e.source, e.target)
	}
	return nil
}

// isBlank reports whether id is empty or only whitespace. Non-blank ids are
// stored and compared byte for byte.
func isBlank(id TypeID) bool {
	return strings.TrimSpace(string(id)) == ""
}
