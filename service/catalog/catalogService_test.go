package catalogsvc_test

import (
	"context"
	"testing"

	"lendshelf/model"
	catalogrepo "lendshelf/repository/catalog"
	catalogsvc "lendshelf/service/catalog"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	getFn  func(ctx context.Context, id int64) (*model.Item, error)
	listFn func(ctx context.Context) ([]model.Item, error)
	setFn  func(ctx context.Context, id int64, available bool) (*model.Item, error)
}

func (m *repoMock) Get(ctx context.Context, id int64) (*model.Item, error) { return m.getFn(ctx, id) }
func (m *repoMock) List(ctx context.Context) ([]model.Item, error)         { return m.listFn(ctx) }
func (m *repoMock) SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error) {
	return m.setFn(ctx, id, available)
}

func TestSearch_UnknownTagRejected(t *testing.T) {
	s := catalogsvc.New(&repoMock{})

	_, err := s.Search(context.Background(), model.FilterQuery{Category: "COOKING"})
	require.Error(t, err)
	require.Equal(t, catalogsvc.ErrBadFilter, catalogsvc.Code(err))

	_, err = s.Search(context.Background(), model.FilterQuery{Cohort: "FRESHMAN"})
	require.Error(t, err)
	require.Equal(t, catalogsvc.ErrBadFilter, catalogsvc.Code(err))
}

func TestSearch_FiltersSnapshot(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Item, error) {
			return []model.Item{
				{ID: 1, Title: "Web Development Technologies", Category: model.CategoryTechnology, Cohort: model.CohortBeginner},
				{ID: 2, Title: "Programming in C", Category: model.CategoryTechnology, Cohort: model.CohortIntermediate},
			}, nil
		},
	}
	s := catalogsvc.New(m)

	got, err := s.Search(context.Background(), model.FilterQuery{Text: "web"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
}

func TestDetail_NotFoundMapped(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Item, error) {
			return nil, catalogrepo.ErrNotFound
		},
	}
	s := catalogsvc.New(m)

	_, err := s.Detail(context.Background(), 99)
	require.Error(t, err)
	require.Equal(t, catalogsvc.ErrNotFound, catalogsvc.Code(err))
}

func TestSetAvailability_PassThrough(t *testing.T) {
	m := &repoMock{
		setFn: func(ctx context.Context, id int64, available bool) (*model.Item, error) {
			require.Equal(t, int64(7), id)
			require.False(t, available)
			return &model.Item{ID: 7, Available: false}, nil
		},
	}
	s := catalogsvc.New(m)

	it, err := s.SetAvailability(context.Background(), 7, false)
	require.NoError(t, err)
	require.False(t, it.Available)
}
