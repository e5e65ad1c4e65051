package requestrepo

import (
	"context"
	"sync"
	"time"

	"lendshelf/model"
)

// memoryRepo is the single-process ledger: one mutex, insertion-ordered
// slice, monotonic id counter. Cancel deletes the record but the counter
// never rewinds, so ids are never handed out twice.
type memoryRepo struct {
	mu       sync.RWMutex
	requests []model.Request
	nextID   int64
}

func NewMemory() Repo {
	return &memoryRepo{nextID: 1}
}

func (m *memoryRepo) Get(ctx context.Context, requestID int64) (*model.Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, req := range m.requests {
		if req.ID == requestID {
			r := req
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) ListFor(ctx context.Context, requesterID int64) ([]model.Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Request
	for _, req := range m.requests {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *memoryRepo) HasPending(ctx context.Context, itemID, requesterID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.hasPendingLocked(itemID, requesterID), nil
}

func (m *memoryRepo) hasPendingLocked(itemID, requesterID int64) bool {
	for _, req := range m.requests {
		if req.ItemID == itemID && req.RequesterID == requesterID && req.Status == model.RequestPending {
			return true
		}
	}
	return false
}

func (m *memoryRepo) Create(ctx context.Context, itemID, requesterID int64, itemTitle string) (*model.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasPendingLocked(itemID, requesterID) {
		return nil, ErrDuplicatePending
	}

	req := model.Request{
		ID:          m.nextID,
		ItemID:      itemID,
		RequesterID: requesterID,
		ItemTitle:   itemTitle,
		CreatedAt:   time.Now().UTC().Truncate(24 * time.Hour),
		Status:      model.RequestPending,
	}
	m.nextID++
	m.requests = append(m.requests, req)
	return &req, nil
}

func (m *memoryRepo) Cancel(ctx context.Context, requestID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, req := range m.requests {
		if req.ID != requestID {
			continue
		}
		if req.Status != model.RequestPending {
			return ErrInvalidState
		}
		m.requests = append(m.requests[:i], m.requests[i+1:]...)
		return nil
	}
	return ErrNotFound
}

func (m *memoryRepo) SetStatus(ctx context.Context, requestID int64, status model.RequestStatus) (*model.Request, error) {
	if status != model.RequestApproved && status != model.RequestRejected {
		return nil, ErrInvalidState
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.requests {
		if m.requests[i].ID != requestID {
			continue
		}
		if m.requests[i].Status != model.RequestPending {
			return nil, ErrInvalidState
		}
		m.requests[i].Status = status
		req := m.requests[i]
		return &req, nil
	}
	return nil, ErrNotFound
}
