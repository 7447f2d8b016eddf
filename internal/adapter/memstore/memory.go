package memstore

import (
	"fmt"
	"sort"
	"sync"

	"stemcount/internal/domain"
)

// MemoryStore keeps count snapshots in process memory. It mirrors the bolt
// store's behavior for tests and runs that never touch disk.
type MemoryStore struct {
	mu      sync.RWMutex
	corpora map[string]domain.CorpusMeta
	counts  map[string]domain.WordCounts
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		corpora: make(map[string]domain.CorpusMeta),
		counts:  make(map[string]domain.WordCounts),
	}
}

func (s *MemoryStore) SaveCorpus(meta domain.CorpusMeta, counts domain.WordCounts) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpora[meta.ID] = meta
	copied := make(domain.WordCounts, len(counts))
	copied.Merge(counts)
	s.counts[meta.ID] = copied
	return nil
}

func (s *MemoryStore) GetCorpus(id string) (domain.CorpusMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.corpora[id]
	if !ok {
		return domain.CorpusMeta{}, fmt.Errorf("corpus not found: %s", id)
	}
	return meta, nil
}

func (s *MemoryStore) ListCorpora() ([]domain.CorpusMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	corpora := make([]domain.CorpusMeta, 0, len(s.corpora))
	for _, meta := range s.corpora {
		corpora = append(corpora, meta)
	}
	sort.Slice(corpora, func(i, j int) bool {
		return corpora[i].CreatedAt.Before(corpora[j].CreatedAt)
	})
	return corpora, nil
}

func (s *MemoryStore) DeleteCorpus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.corpora[id]; !ok {
		return fmt.Errorf("corpus not found: %s", id)
	}
	delete(s.corpora, id)
	delete(s.counts, id)
	return nil
}

func (s *MemoryStore) GetCounts(id string) (domain.WordCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts, ok := s.counts[id]
	if !ok {
		return nil, fmt.Errorf("corpus not found: %s", id)
	}
	copied := make(domain.WordCounts, len(counts))
	copied.Merge(counts)
	return copied, nil
}

func (s *MemoryStore) TopStems(id string, n int) ([]domain.StemCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts, ok := s.counts[id]
	if !ok {
		return nil, fmt.Errorf("corpus not found: %s", id)
	}
	return counts.TopStems(n), nil
}

func (s *MemoryStore) Close() error {
	return nil
}
