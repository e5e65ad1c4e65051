package catalogsvc

import (
	"context"
	"errors"

	"lendshelf/model"
	catalogrepo "lendshelf/repository/catalog"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound  ErrCode = "ITEM_NOT_FOUND"
	ErrBadFilter ErrCode = "BAD_FILTER"
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

type Repo interface {
	Get(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error)
}

type Service interface {
	// List returns the full catalog in insertion order.
	List(ctx context.Context) ([]model.Item, error)

	// Search applies the filter engine to a fresh catalog snapshot.
	Search(ctx context.Context, q model.FilterQuery) ([]model.Item, error)

	Detail(ctx context.Context, id int64) (*model.Item, error)

	// SetAvailability is the librarian-side return/maintenance hook.
	SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Item, error) {
	return s.r.List(ctx)
}

func (s *service) Search(ctx context.Context, q model.FilterQuery) ([]model.Item, error) {
	if tag := normalizeTag(q.Category); tag != model.TagAll && !model.CategoryTag(tag).Valid() {
		return nil, makeErr(ErrBadFilter)
	}
	if tag := normalizeTag(q.Cohort); tag != model.TagAll && !model.CohortTag(tag).Valid() {
		return nil, makeErr(ErrBadFilter)
	}
	items, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, q), nil
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.r.Get(ctx, id)
	if errors.Is(err, catalogrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	return it, err
}

func (s *service) SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error) {
	it, err := s.r.SetAvailability(ctx, id, available)
	if errors.Is(err, catalogrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	return it, err
}
