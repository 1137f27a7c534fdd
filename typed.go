package mapreg

import (
	"fmt"
	"reflect"
)

// NewTypedEntry adapts a typed function into an Entry. The input is asserted
// to TSource before the function runs; a value of any other type fails the
// mapping rather than being converted.
//
// Example:
//
//	entry, err := mapreg.NewTypedEntry("UserDTO", "User", func(dto UserDTO) (User, error) {
//	    return User{Name: dto.FullName}, nil
//	})
func NewTypedEntry[TSource, TDest any](source, target TypeID, fn func(TSource) (TDest, error)) (Entry, error) {
	if fn == nil {
		return NewEntry(source, target, nil)
	}
	return NewEntry(source, target, func(value any) (any, error) {
		casted, ok := value.(TSource)
		if !ok {
			return nil, fmt.Errorf("invalid source type: expected %v, got %T", reflect.TypeFor[TSource](), value)
		}
		return fn(casted)
	})
}

// MapAs maps data through r and asserts the result to TDest.
func MapAs[TDest any](r Mapper, data any, source, target TypeID) (TDest, error) {
	var zero TDest
	if r == nil {
		return zero, ErrRegistryNil
	}
	result, err := r.Map(data, source, target)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(TDest)
	if !ok {
		return zero, fmt.Errorf("final type mismatch: expected %v, got %T", reflect.TypeFor[TDest](), result)
	}
	return typed, nil
}
