package query

import (
	"errors"
	"fmt"
)

// Errors reported for a single query. None of them affect the catalog.
var (
	ErrUnknownCriterion   = errors.New("unknown criterion")
	ErrNonNumericArgument = errors.New("argument must be a number")
	ErrMissingArgument    = errors.New("missing argument")
	ErrTooManyArguments   = errors.New("too many arguments")
)

// UnknownCriterionError reports a label that did not resolve to a criterion.
type UnknownCriterionError struct {
	Label string
	// Suggestion is the closest canonical label, or "".
	Suggestion string
}

func (e *UnknownCriterionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown criterion %q (did you mean %q?)", e.Label, e.Suggestion)
	}
	return fmt.Sprintf("unknown criterion %q", e.Label)
}

// Is makes errors.Is(err, ErrUnknownCriterion) hold.
func (e *UnknownCriterionError) Is(target error) bool {
	return target == ErrUnknownCriterion
}

// ArgumentError reports an argument a criterion could not use.
type ArgumentError struct {
	Criterion Criterion
	Arg       string
	Err       error
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %v", e.Criterion, e.Err)
	}
	return fmt.Sprintf("%s: %v, got %q", e.Criterion, e.Err, e.Arg)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
