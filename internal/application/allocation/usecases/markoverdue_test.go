package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
)

func TestMarkOverdueAllocationsUseCase(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	stale := newTestAllocation(t, "eq-1")
	cancelled := newTestAllocation(t, "eq-2")
	require.NoError(t, cancelled.Cancel())

	var gotFilter allocation.Filter
	var updated []string
	repo := &mockAllocationRepository{
		ListFunc: func(_ context.Context, f allocation.Filter) ([]*allocation.Allocation, int64, error) {
			gotFilter = f
			return []*allocation.Allocation{stale, cancelled}, 2, nil
		},
		UpdateFunc: func(_ context.Context, a *allocation.Allocation) error {
			updated = append(updated, a.ID())
			return nil
		},
	}

	uc := NewMarkOverdueAllocationsUseCase(repo, 30, testLogger())
	uc.now = func() time.Time { return now }

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.Equal(t, []string{stale.ID()}, updated)
	assert.Equal(t, vo.StatusOverdue, stale.Status())
	assert.Equal(t, vo.StatusCancelled, cancelled.Status())

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusInProgress, *gotFilter.Status)
	require.NotNil(t, gotFilter.EndDate)
	assert.Equal(t, now.AddDate(0, 0, -30), *gotFilter.EndDate)
}

func TestMarkOverdueAllocationsUseCase_Disabled(t *testing.T) {
	repo := &mockAllocationRepository{
		ListFunc: func(context.Context, allocation.Filter) ([]*allocation.Allocation, int64, error) {
			t.Fatal("repository must not be queried")
			return nil, 0, nil
		},
	}

	count, err := NewMarkOverdueAllocationsUseCase(repo, 0, testLogger()).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkOverdueAllocationsUseCase_ListError(t *testing.T) {
	repo := &mockAllocationRepository{
		ListFunc: func(context.Context, allocation.Filter) ([]*allocation.Allocation, int64, error) {
			return nil, 0, assert.AnError
		},
	}

	_, err := NewMarkOverdueAllocationsUseCase(repo, 365, testLogger()).Execute(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}
