package catalogrepo

import (
	"context"
	"sync"

	"lendshelf/model"
)

// memoryRepo keeps the catalog in insertion order behind one RWMutex. Used
// when no DATABASE_URL is configured; seeded once at startup.
type memoryRepo struct {
	mu    sync.RWMutex
	items []model.Item
	index map[int64]int
}

func NewMemory(seed []model.Item) Repo {
	m := &memoryRepo{index: make(map[int64]int, len(seed))}
	for _, it := range seed {
		if _, dup := m.index[it.ID]; dup {
			continue
		}
		m.index[it.ID] = len(m.items)
		m.items = append(m.items, it)
	}
	return m
}

func (m *memoryRepo) Get(ctx context.Context, id int64) (*model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	it := m.items[i]
	return &it, nil
}

func (m *memoryRepo) List(ctx context.Context) ([]model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memoryRepo) SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.items[i].Available = available
	it := m.items[i]
	return &it, nil
}
