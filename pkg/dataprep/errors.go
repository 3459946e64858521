package dataprep

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned by Transform before any successful Fit.
	ErrNotFitted = errors.New("transformer is not fitted")
	// ErrUnseenCategory is matched by *UnseenCategoryError.
	ErrUnseenCategory = errors.New("unseen category")
	// ErrUnknownCode is matched by *UnknownCodeError.
	ErrUnknownCode      = errors.New("unknown category code")
	ErrInvalidThreshold = errors.New("threshold must be in (0, 1]")
	ErrNilDataset       = errors.New("nil dataset")
)

// UnseenCategoryError reports a value met at transform time in a column that
// was encoded at fit time, when the value itself never appeared during fit.
type UnseenCategoryError struct {
	Column string
	Value  string
	Row    int
}

func (e *UnseenCategoryError) Error() string {
	return fmt.Sprintf("column %q row %d: unseen category %q", e.Column, e.Row, e.Value)
}

func (e *UnseenCategoryError) Is(target error) bool { return target == ErrUnseenCategory }

// UnknownCodeError reports a code that does not map back to a category.
type UnknownCodeError struct {
	Column string
	Code   string
	Row    int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("column %q row %d: unknown category code %q", e.Column, e.Row, e.Code)
}

func (e *UnknownCodeError) Is(target error) bool { return target == ErrUnknownCode }
