package schema

import "errors"

var (
	ErrInvalidSchema  = errors.New("invalid schema")
	ErrReadSchema     = errors.New("failed to read schema file")
	ErrUnknownType    = errors.New("unknown field type")
	ErrUnknownRule    = errors.New("unknown rule")
	ErrDuplicateField = errors.New("duplicate field")
)
