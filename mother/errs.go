package mother

import (
	"errors"

	"github.com/signadot/mother/ir"
	"github.com/signadot/mother/ir/kpath"
)

var (
	ErrPathSyntax   = kpath.ErrSyntax
	ErrTypeMismatch = ir.ErrTypeMismatch
	ErrPathNotFound = ir.ErrPathNotFound

	ErrInvalidDocument = errors.New("invalid document")
	ErrPredicate       = errors.New("invalid predicate")
	ErrPatch           = errors.New("patch failed")
)
