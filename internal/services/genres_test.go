package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGenres(t *testing.T) {
	assert.Equal(t, []string{"Action", "Comedy"}, splitGenres("Action|Comedy"))
	assert.Equal(t, []string{"Drama"}, splitGenres("Drama"))
	assert.Empty(t, splitGenres(""))
	assert.Empty(t, splitGenres("(no genres listed)"))
	// Stray delimiters never produce empty genres.
	assert.Equal(t, []string{"Action"}, splitGenres("Action|"))
	assert.Equal(t, []string{"Action", "Drama"}, splitGenres("Action||Drama"))
}

func TestGenreOverlap(t *testing.T) {
	reference := genreSet([]string{"Action", "Comedy", "Fantasy"})

	assert.Equal(t, 2, genreOverlap(reference, []string{"Action", "Fantasy", "Drama"}))
	assert.Equal(t, 0, genreOverlap(reference, []string{"Drama"}))
	assert.Equal(t, 0, genreOverlap(reference, nil))
	assert.Equal(t, 3, genreOverlap(reference, []string{"Action", "Comedy", "Fantasy"}))
}
