package thriftrt

// Ptr returns a pointer to v. Generated structs store optional scalars as
// pointers.
func Ptr[T any](v T) *T {
	return &v
}
