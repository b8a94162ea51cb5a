package repository

import "errors"

// ErrNotFound is returned by single-record lookups when no row matches the
// key. List scans never return it: an empty slice is a normal result.
var ErrNotFound = errors.New("record not found")
