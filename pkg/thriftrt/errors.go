package thriftrt

import "fmt"

// RequiredFieldError is returned by generated constructors when a required
// field is unset.
type RequiredFieldError struct {
	Struct string
	Field  string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s: required field %s is unset", e.Struct, e.Field)
}

// UnionFieldCountError is returned when a union does not have exactly one
// field set.
type UnionFieldCountError struct {
	Union string
	Set   int
}

func (e *UnionFieldCountError) Error() string {
	return fmt.Sprintf("%s: exactly one field must be set (%d set)", e.Union, e.Set)
}
