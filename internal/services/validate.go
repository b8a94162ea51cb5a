package services

import "fmt"

func errInvalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func validateID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", ErrInvalidInput, name, id)
	}
	return nil
}

func validatePagination(skip, limit int) error {
	if skip < 0 {
		return fmt.Errorf("%w: skip must not be negative, got %d", ErrInvalidInput, skip)
	}
	if limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidInput, limit)
	}
	return nil
}

func validateRatingBound(name string, value float64) error {
	if value < 0 || value > 5 {
		return fmt.Errorf("%w: %s must lie in [0.0, 5.0], got %v", ErrInvalidInput, name, value)
	}
	return nil
}

// paginate applies skip then limit to an already filtered and ordered
// slice. A skip past the end yields an empty slice, never an error.
func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
