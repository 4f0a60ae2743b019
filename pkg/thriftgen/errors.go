package thriftgen

import "github.com/pkg/errors"

var (
	ErrInvalidSchema = errors.New("invalid schema")
	ErrNoImportPath  = errors.New("no Go import path for included document")
	ErrNotRead       = errors.New("no schema has been read")
)
