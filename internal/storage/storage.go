package storage

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrNoFiles      = errors.New("no files in request")
	ErrInvalidKind  = errors.New("unknown content kind")
	ErrInvalidInput = errors.New("invalid input")
)
