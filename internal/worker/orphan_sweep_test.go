package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/blobstore"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

type MockPlanIndex struct {
	mock.Mock
}

func (m *MockPlanIndex) ExistingPlanIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type failingDeleteStore struct {
	*blobstore.MemoryStore
	failID string
}

func (s *failingDeleteStore) DeleteDocument(ctx context.Context, id string) error {
	if id == s.failID {
		return errors.New("object storage unavailable")
	}
	return s.MemoryStore.DeleteDocument(ctx, id)
}

func storeWith(t *testing.T, ids ...string) *blobstore.MemoryStore {
	t.Helper()
	store := blobstore.NewMemoryStore()
	for _, id := range ids {
		require.NoError(t, store.PutDocument(context.Background(), id, &domain.PlanDocument{Item: "Iron Ore", Amount: 30}))
	}
	return store
}

func storedIDs(t *testing.T, store DocumentStore) []string {
	t.Helper()
	infos, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	return ids
}

func TestOrphanSweepJob_RemovesOrphans(t *testing.T) {
	ctx := context.Background()
	store := storeWith(t, "kept", "orphan-1", "orphan-2")
	index := new(MockPlanIndex)
	index.On("ExistingPlanIDs", mock.Anything, []string{"kept", "orphan-1", "orphan-2"}).
		Return(map[string]bool{"kept": true}, nil)

	job := NewOrphanSweepJob(index, store, 0)
	require.NoError(t, job.Process(ctx))

	assert.Equal(t, []string{"kept"}, storedIDs(t, store))
	index.AssertExpectations(t)
}

func TestOrphanSweepJob_SkipsRecentDocuments(t *testing.T) {
	store := storeWith(t, "fresh")
	index := new(MockPlanIndex)

	job := NewOrphanSweepJob(index, store, time.Hour)
	require.NoError(t, job.Process(context.Background()))

	assert.Equal(t, []string{"fresh"}, storedIDs(t, store))
	index.AssertNotCalled(t, "ExistingPlanIDs", mock.Anything, mock.Anything)
}

func TestOrphanSweepJob_OldDocumentsBecomeEligible(t *testing.T) {
	store := storeWith(t, "stale")
	index := new(MockPlanIndex)
	index.On("ExistingPlanIDs", mock.Anything, []string{"stale"}).Return(map[string]bool{}, nil)

	job := NewOrphanSweepJob(index, store, time.Hour)
	job.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	require.NoError(t, job.Process(context.Background()))

	assert.Empty(t, storedIDs(t, store))
}

func TestOrphanSweepJob_LookupFailureKeepsDocuments(t *testing.T) {
	store := storeWith(t, "a")
	index := new(MockPlanIndex)
	index.On("ExistingPlanIDs", mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)

	err := NewOrphanSweepJob(index, store, 0).Process(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.Equal(t, []string{"a"}, storedIDs(t, store))
}

func TestOrphanSweepJob_DeleteFailureContinues(t *testing.T) {
	store := &failingDeleteStore{MemoryStore: storeWith(t, "a", "b", "c"), failID: "b"}
	index := new(MockPlanIndex)
	index.On("ExistingPlanIDs", mock.Anything, mock.Anything).Return(map[string]bool{}, nil)

	job := NewOrphanSweepJob(index, store, 0)
	removed, checked, err := job.sweep(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, checked)
	assert.Equal(t, []string{"b"}, storedIDs(t, store))
}

func TestOrphanSweepJob_Batches(t *testing.T) {
	infos := make([]repository.DocumentInfo, sweepBatchSize+1)
	for i := range infos {
		infos[i] = repository.DocumentInfo{ID: fmt.Sprintf("doc-%d", i)}
	}
	docs := &listOnlyStore{infos: infos}
	index := new(MockPlanIndex)
	index.On("ExistingPlanIDs", mock.Anything, mock.Anything).Return(map[string]bool{}, nil).Twice()

	removed, checked, err := NewOrphanSweepJob(index, docs, 0).sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sweepBatchSize+1, checked)
	assert.Equal(t, sweepBatchSize+1, removed)
	assert.Equal(t, sweepBatchSize+1, docs.deleted)
	index.AssertNumberOfCalls(t, "ExistingPlanIDs", 2)
}

type listOnlyStore struct {
	infos   []repository.DocumentInfo
	deleted int
}

func (s *listOnlyStore) ListDocuments(context.Context) ([]repository.DocumentInfo, error) {
	return s.infos, nil
}

func (s *listOnlyStore) DeleteDocument(context.Context, string) error {
	s.deleted++
	return nil
}
