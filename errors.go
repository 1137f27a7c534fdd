package mapreg

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeRequired indicates a blank source or target type identifier.
	ErrTypeRequired = errors.New("type id is required")
	// ErrTransformRequired indicates an entry without a transform function.
	ErrTransformRequired = errors.New("transform is required")
	// ErrRegistryNil indicates an operation on a nil registry.
	ErrRegistryNil = errors.New("registry is nil")

	// ErrDuplicateMapping matches any *DuplicateMappingError via errors.Is.
	ErrDuplicateMapping = errors.New("mapping already registered")
	// ErrMappingNotFound matches any *MappingNotFoundError via errors.Is.
	ErrMappingNotFound = errors.New("mapping not found")
	// ErrMappingExecution matches any *MappingExecutionError via errors.Is.
	ErrMappingExecution = errors.New("mapping failed")
)

// DuplicateMappingError is returned by Register when the type pair is already taken.
type DuplicateMappingError struct {
	Source TypeID
	Target TypeID
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf("mapping from %s to %s already exists", e.Source, e.Target)
}

func (e *DuplicateMappingError) Is(target error) bool {
	return target == ErrDuplicateMapping
}

func NewDuplicateMappingError(source, target TypeID) *DuplicateMappingError {
	return &DuplicateMappingError{Source: source, Target: target}
}

// MappingNotFoundError is returned by Map when nothing is registered for the
// requested pair. It usually means a registration is missing at startup.
type MappingNotFoundError struct {
	Source TypeID
	Target TypeID
}

func (e *MappingNotFoundError) Error() string {
	return fmt.Sprintf("mapping not found from %s to %s", e.Source, e.Target)
}

func (e *MappingNotFoundError) Is(target error) bool {
	return target == ErrMappingNotFound
}

func NewMappingNotFoundError(source, target TypeID) *MappingNotFoundError {
	return &MappingNotFoundError{Source: source, Target: target}
}

// MappingExecutionError wraps a failure raised by a transform. Cause is the
// transform's own error, reachable through errors.Unwrap.
type MappingExecutionError struct {
	Source TypeID
	Target TypeID
	Cause  error
}

func (e *MappingExecutionError) Error() string {
	return fmt.Sprintf("mapping failed from %s to %s: %v", e.Source, e.Target, e.Cause)
}

func (e *MappingExecutionError) Unwrap() error {
	return e.Cause
}

func (e *MappingExecutionError) Is(target error) bool {
	return target == ErrMappingExecution
}

func NewMappingExecutionError(source, target TypeID, cause error) *MappingExecutionError {
	return &MappingExecutionError{Source: source, Target: target, Cause: cause}
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("transform panicked: %v", e.Value)
}

func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
