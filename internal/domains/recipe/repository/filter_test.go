package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterConditions_Empty(t *testing.T) {
	conds, args := filterConditions(Filter{}, 2)

	assert.Empty(t, conds)
	assert.Empty(t, args)
}

func TestFilterConditions_Tags(t *testing.T) {
	conds, args := filterConditions(Filter{TagSlugs: []string{"breakfast", "vegan"}}, 2)

	require.Len(t, conds, 1)
	assert.Contains(t, conds[0], "t.slug = ANY($2)")
	require.Len(t, args, 1)
	assert.Equal(t, []string{"breakfast", "vegan"}, args[0])
}

func TestFilterConditions_AllOptionsCompose(t *testing.T) {
	author := uuid.New()
	viewer := uuid.New()

	conds, args := filterConditions(Filter{
		TagSlugs:    []string{"dinner"},
		AuthorID:    author,
		FavoritedBy: viewer,
		InCartOf:    viewer,
	}, 2)

	require.Len(t, conds, 4)
	require.Len(t, args, 4)
	assert.Contains(t, conds[1], "r.author_id = $3")
	assert.Contains(t, conds[2], "favorites")
	assert.Contains(t, conds[2], "$4")
	assert.Contains(t, conds[3], "shopping_carts")
	assert.Contains(t, conds[3], "$5")
	assert.Equal(t, author, args[1])
}

func TestFilterConditions_PlaceholdersStartWhereAsked(t *testing.T) {
	conds, _ := filterConditions(Filter{AuthorID: uuid.New()}, 1)

	require.Len(t, conds, 1)
	assert.Contains(t, conds[0], "$1")
}
