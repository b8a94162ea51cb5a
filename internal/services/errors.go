package services

import "errors"

// ErrInvalidInput marks parameters that fail validation (ids that are not
// positive, ratings outside [0, 5], negative skip/limit). Services reject
// bad values before any repository call.
var ErrInvalidInput = errors.New("invalid input")
