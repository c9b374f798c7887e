package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// MemoryStore keeps plan documents in process memory.
// It is used when no object storage is configured and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]memoryDocument
}

type memoryDocument struct {
	data       []byte
	modifiedAt time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]memoryDocument)}
}

// PutDocument stores an encoded copy of doc under id
func (m *MemoryStore) PutDocument(_ context.Context, id string, doc *domain.PlanDocument) error {
	if _, err := objectKey(id); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: document is nil", domain.ErrInvalidPlan)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode plan document: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = memoryDocument{data: data, modifiedAt: time.Now()}
	return nil
}

// GetDocument returns a fresh copy of the document stored under id
func (m *MemoryStore) GetDocument(_ context.Context, id string) (*domain.PlanDocument, error) {
	m.mu.RLock()
	stored, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: document '%s'", domain.ErrPlanNotFound, id)
	}
	return decodeDocument(id, stored.data)
}

// DeleteDocument removes the document stored under id
func (m *MemoryStore) DeleteDocument(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

// ListDocuments returns every stored document id ordered by id
func (m *MemoryStore) ListDocuments(_ context.Context) ([]repository.DocumentInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]repository.DocumentInfo, 0, len(m.docs))
	for id, stored := range m.docs {
		infos = append(infos, repository.DocumentInfo{ID: id, ModifiedAt: stored.modifiedAt})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}
