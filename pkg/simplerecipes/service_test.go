package simplerecipes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-recipes/pkg/simplerecipes"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/client/memory"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/urlstrategy"
)

type mockContentClient struct {
	mock.Mock
}

func (m *mockContentClient) ListEntries(ctx context.Context, query simplerecipes.EntryQuery) ([]simplerecipes.Entry, error) {
	args := m.Called(ctx, query)
	entries, _ := args.Get(0).([]simplerecipes.Entry)
	return entries, args.Error(1)
}

func (m *mockContentClient) GetEntry(ctx context.Context, id string) (*simplerecipes.Entry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*simplerecipes.Entry)
	return entry, args.Error(1)
}

type recordingObserver struct {
	ops  []string
	errs []error
}

func (o *recordingObserver) ObserveFetch(op string, _ time.Duration, err error) {
	o.ops = append(o.ops, op)
	o.errs = append(o.errs, err)
}

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []simplerecipes.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []simplerecipes.Option{},
			expectError: true,
		},
		{
			name: "with content client should succeed",
			options: []simplerecipes.Option{
				simplerecipes.WithContentClient(memory.New()),
			},
		},
		{
			name: "with all options should succeed",
			options: []simplerecipes.Option{
				simplerecipes.WithContentClient(memory.New()),
				simplerecipes.WithCatalog(&simplerecipes.Catalog{}),
				simplerecipes.WithContentType("post"),
				simplerecipes.WithFetchLimit(10),
				simplerecipes.WithImageStrategy(urlstrategy.NewDefault()),
				simplerecipes.WithFetchObserver(simplerecipes.NewNoopFetchObserver()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := simplerecipes.New(tt.options...)
			if tt.expectError {
				assert.ErrorIs(t, err, simplerecipes.ErrContentClientRequired)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestServiceListEntriesQuery(t *testing.T) {
	client := &mockContentClient{}
	client.On("ListEntries", mock.Anything, simplerecipes.EntryQuery{
		ContentType: "post",
		Order:       "sys.createdAt",
		Limit:       25,
	}).Return([]simplerecipes.Entry{entryAt("a", "A", baseTime)}, nil).Once()

	observer := &recordingObserver{}
	svc, err := simplerecipes.New(
		simplerecipes.WithContentClient(client),
		simplerecipes.WithContentType("post"),
		simplerecipes.WithFetchLimit(25),
		simplerecipes.WithFetchObserver(observer),
	)
	require.NoError(t, err)

	entries, err := svc.ListEntries(context.Background(), simplerecipes.SortOldest)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, []string{"list"}, observer.ops)
	client.AssertExpectations(t)
}

func TestServiceListEntriesInvalidSort(t *testing.T) {
	client := &mockContentClient{}
	svc, err := simplerecipes.New(simplerecipes.WithContentClient(client))
	require.NoError(t, err)

	_, err = svc.ListEntries(context.Background(), simplerecipes.SortOrder("random"))
	assert.ErrorIs(t, err, simplerecipes.ErrInvalidSortOrder)
	client.AssertNotCalled(t, "ListEntries", mock.Anything, mock.Anything)
}

func TestServiceWrapsErrors(t *testing.T) {
	client := &mockContentClient{}
	client.On("ListEntries", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	client.On("GetEntry", mock.Anything, "gone").Return(nil, simplerecipes.ErrNotFound)

	svc, err := simplerecipes.New(simplerecipes.WithContentClient(client))
	require.NoError(t, err)

	_, err = svc.ListEntries(context.Background(), simplerecipes.SortNewest)
	var fetchErr *simplerecipes.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "list", fetchErr.Op)
	assert.ErrorIs(t, err, simplerecipes.ErrFetch)
	assert.False(t, simplerecipes.IsNotFound(err))

	_, err = svc.GetEntry(context.Background(), "gone")
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "gone", fetchErr.EntryID)
	assert.True(t, simplerecipes.IsNotFound(err))
	assert.NotErrorIs(t, err, simplerecipes.ErrFetch)
}

func TestServiceGetEntryEmptyID(t *testing.T) {
	client := &mockContentClient{}
	svc, err := simplerecipes.New(simplerecipes.WithContentClient(client))
	require.NoError(t, err)

	_, err = svc.GetEntry(context.Background(), "  ")
	assert.True(t, simplerecipes.IsNotFound(err))
	client.AssertNotCalled(t, "GetEntry", mock.Anything, mock.Anything)
}
