package requestsvc

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"lendshelf/model"
	catalogrepo "lendshelf/repository/catalog"
	requestrepo "lendshelf/repository/request"
)

// errors used by controllers

type ErrCode string

const (
	ErrItemNotFound     ErrCode = "ITEM_NOT_FOUND"
	ErrRequestNotFound  ErrCode = "REQUEST_NOT_FOUND"
	ErrItemUnavailable  ErrCode = "ITEM_UNAVAILABLE"
	ErrAlreadyRequested ErrCode = "ALREADY_REQUESTED"
	ErrInvalidState     ErrCode = "INVALID_STATE"
	ErrNotOwner         ErrCode = "NOT_OWNER"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type CatalogRepo interface {
	Get(ctx context.Context, id int64) (*model.Item, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error)
}

type LedgerRepo interface {
	Get(ctx context.Context, requestID int64) (*model.Request, error)
	ListFor(ctx context.Context, requesterID int64) ([]model.Request, error)
	HasPending(ctx context.Context, itemID, requesterID int64) (bool, error)
	Create(ctx context.Context, itemID, requesterID int64, itemTitle string) (*model.Request, error)
	Cancel(ctx context.Context, requestID int64) error
	SetStatus(ctx context.Context, requestID int64, status model.RequestStatus) (*model.Request, error)
}

// Service is the coordinator: the only component that touches both the
// catalog and the ledger within one logical operation.
type Service interface {
	// RequestItem validates the item and the dedup gate, then creates a
	// pending request. Availability is NOT flipped here: the item stays
	// available while a request is merely pending.
	RequestItem(ctx context.Context, itemID, requesterID int64) (*model.Request, error)

	// CancelRequest removes the requester's own pending request.
	CancelRequest(ctx context.Context, requestID, requesterID int64) error

	// Approve moves pending->approved and flips the item unavailable.
	Approve(ctx context.Context, requestID int64) (*model.Request, error)

	// Reject moves pending->rejected; no catalog interaction.
	Reject(ctx context.Context, requestID int64) (*model.Request, error)

	MyRequests(ctx context.Context, requesterID int64) ([]model.Request, error)
}

type service struct {
	mu      sync.Mutex
	catalog CatalogRepo
	ledger  LedgerRepo
	log     *slog.Logger
}

func New(catalog CatalogRepo, ledger LedgerRepo, log *slog.Logger) Service {
	return &service{catalog: catalog, ledger: ledger, log: log}
}

// RequestItem holds s.mu across the hasPending check and the create so two
// concurrent submissions for the same (item, requester) cannot both pass the
// gate.
func (s *service) RequestItem(ctx context.Context, itemID, requesterID int64) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}
	if !item.Available {
		return nil, makeErr(ErrItemUnavailable)
	}

	pending, err := s.ledger.HasPending(ctx, itemID, requesterID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, makeErr(ErrAlreadyRequested)
	}

	req, err := s.ledger.Create(ctx, itemID, requesterID, item.Title)
	if err != nil {
		if errors.Is(err, requestrepo.ErrDuplicatePending) {
			return nil, makeErr(ErrAlreadyRequested)
		}
		return nil, err
	}
	return req, nil
}

func (s *service) CancelRequest(ctx context.Context, requestID, requesterID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.ledger.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestrepo.ErrNotFound) {
			return makeErr(ErrRequestNotFound)
		}
		return err
	}
	if req.RequesterID != requesterID {
		return makeErr(ErrNotOwner)
	}

	if err := s.ledger.Cancel(ctx, requestID); err != nil {
		switch {
		case errors.Is(err, requestrepo.ErrNotFound):
			return makeErr(ErrRequestNotFound)
		case errors.Is(err, requestrepo.ErrInvalidState):
			return makeErr(ErrInvalidState)
		}
		return err
	}
	return nil
}

// Approve commits the ledger transition first; the availability flip is
// best-effort secondary state. A failed flip is logged, not rolled back,
// since rollback would reopen the double-booking window.
func (s *service) Approve(ctx context.Context, requestID int64) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.setStatus(ctx, requestID, model.RequestApproved)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalog.SetAvailability(ctx, req.ItemID, false); err != nil {
		s.log.Error("approved but item availability not updated",
			"request_id", req.ID,
			"item_id", req.ItemID,
			"err", err,
		)
	}
	return req, nil
}

func (s *service) Reject(ctx context.Context, requestID int64) (*model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setStatus(ctx, requestID, model.RequestRejected)
}

func (s *service) setStatus(ctx context.Context, requestID int64, status model.RequestStatus) (*model.Request, error) {
	req, err := s.ledger.SetStatus(ctx, requestID, status)
	if err != nil {
		switch {
		case errors.Is(err, requestrepo.ErrNotFound):
			return nil, makeErr(ErrRequestNotFound)
		case errors.Is(err, requestrepo.ErrInvalidState):
			return nil, makeErr(ErrInvalidState)
		}
		return nil, err
	}
	return req, nil
}

func (s *service) MyRequests(ctx context.Context, requesterID int64) ([]model.Request, error) {
	return s.ledger.ListFor(ctx, requesterID)
}
