package ir

import (
	"errors"
)

var (
	errInternal = errors.New("internal error")

	ErrTypeMismatch = errors.New("type mismatch")
	ErrPathNotFound = errors.New("path not found")
)
