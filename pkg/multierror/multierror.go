package multierror

import (
	"errors"
	"slices"
	"strings"
)

// MultiError collects independent failures, such as every unresolved
// reference in one schema document.
type MultiError struct {
	errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	for i, err := range m.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (m *MultiError) Unwrap() []error {
	return m.errors
}

func (m *MultiError) Errors() []error {
	return m.errors
}

func (m *MultiError) As(target any) bool {
	for _, e := range m.errors {
		if errors.As(e, target) {
			return true
		}
	}
	return false
}

// Append adds errs to err, dropping nils. It returns nil when nothing but
// nils were given, and a bare error when only one remains.
func Append(err error, errs ...error) error {
	var all []error

	if me, ok := err.(*MultiError); ok {
		all = slices.Clone(me.errors)
	} else if err != nil {
		all = append(all, err)
	}

	for _, e := range errs {
		if e != nil {
			all = append(all, e)
		}
	}

	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return &MultiError{errors: all}
	}
}

// Errors flattens err into its parts.
func Errors(err error) []error {
	if err == nil {
		return nil
	}

	if me, ok := err.(*MultiError); ok {
		return me.errors
	}

	return []error{err}
}
