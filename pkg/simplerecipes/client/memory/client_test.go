package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-recipes/pkg/simplerecipes"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/client/memory"
)

func TestListEntriesOrderAndLimit(t *testing.T) {
	c := memory.NewWithSamples()
	ctx := context.Background()

	newest, err := c.ListEntries(ctx, simplerecipes.EntryQuery{
		ContentType: simplerecipes.DefaultContentType,
		Order:       simplerecipes.OrderCreatedAtDesc,
	})
	require.NoError(t, err)
	require.Len(t, newest, 4)
	assert.Equal(t, "weeknight-carbonara", newest[0].Sys.ID)
	assert.Equal(t, "pancake-sunday", newest[3].Sys.ID)

	oldest, err := c.ListEntries(ctx, simplerecipes.EntryQuery{
		Order: simplerecipes.OrderCreatedAtAsc,
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, oldest, 2)
	assert.Equal(t, "pancake-sunday", oldest[0].Sys.ID)
	assert.Equal(t, "lava-cake-secrets", oldest[1].Sys.ID)
}

func TestListEntriesContentType(t *testing.T) {
	c := memory.NewWithSamples()
	entries, err := c.ListEntries(context.Background(), simplerecipes.EntryQuery{ContentType: "recipe"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetEntry(t *testing.T) {
	c := memory.NewWithSamples()

	entry, err := c.GetEntry(context.Background(), "tofu-bowl-basics")
	require.NoError(t, err)
	assert.Equal(t, "Tofu Bowl Basics", entry.Fields.Title)

	_, err = c.GetEntry(context.Background(), "missing")
	assert.True(t, errors.Is(err, simplerecipes.ErrNotFound))
}

func TestSetError(t *testing.T) {
	c := memory.New()
	c.SetError(errors.New("boom"))

	_, err := c.ListEntries(context.Background(), simplerecipes.EntryQuery{})
	assert.ErrorIs(t, err, simplerecipes.ErrFetch)

	c.SetError(nil)
	entries, err := c.ListEntries(context.Background(), simplerecipes.EntryQuery{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCancelledContext(t *testing.T) {
	c := memory.NewWithSamples()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListEntries(ctx, simplerecipes.EntryQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}
