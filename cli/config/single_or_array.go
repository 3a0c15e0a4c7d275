package config

// SingleOrArray is a helper type for fields that can contain either a single
// value or a list of values of the same type. A single value is decoded as a
// one element list.
type SingleOrArray[T any] []T

// NewSingleOrArray creates SingleOrArray object.
func NewSingleOrArray[T any](v ...T) SingleOrArray[T] {
	return append([]T{}, v...)
}

// FieldStringArrayType is alias for the custom type used `SingleOrArray` with strings
// to handle as a single string as well as a list of strings.
type FieldStringArrayType = SingleOrArray[string]
