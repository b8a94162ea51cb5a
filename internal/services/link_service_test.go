package services

import (
	"context"
	"testing"

	"movielens-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLink(t *testing.T) {
	f := newFixture()
	svc := NewLinkService(f.links, newTestLogger())
	ctx := context.Background()

	link, err := svc.GetLink(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "0114709", link.ImdbID)
	require.NotNil(t, link.TmdbID)
	assert.Equal(t, "862", *link.TmdbID)

	// Movie 5 exists but has no link row.
	_, err = svc.GetLink(ctx, 5)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetLink(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListLinks(t *testing.T) {
	f := newFixture()
	svc := NewLinkService(f.links, newTestLogger())
	ctx := context.Background()

	links, err := svc.ListLinks(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, int64(1), links[0].MovieID)
	assert.Equal(t, int64(2), links[1].MovieID)
	assert.Equal(t, int64(4), links[2].MovieID)

	page, err := svc.ListLinks(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(2), page[0].MovieID)

	_, err = svc.ListLinks(ctx, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
