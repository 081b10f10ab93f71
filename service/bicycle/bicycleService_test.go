package bicyclesvc

import (
	"context"
	"database/sql"
	"testing"

	"bikerental/model"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Bicycle) error
	getFn    func(ctx context.Context, id int64) (*model.Bicycle, error)
	listFn   func(ctx context.Context, f Filter) ([]model.Bicycle, error)
	updateFn func(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error)
	deleteFn func(ctx context.Context, id int64) (*string, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Bicycle) error { return m.createFn(ctx, b) }
func (m *repoMock) GetByID(ctx context.Context, id int64) (*model.Bicycle, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, f Filter) ([]model.Bicycle, error) {
	return m.listFn(ctx, f)
}
func (m *repoMock) Update(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error) {
	return m.updateFn(ctx, b)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (*string, error) {
	return m.deleteFn(ctx, id)
}

type mediaMock struct {
	deleted []string
}

func (m *mediaMock) Delete(ref string) error {
	m.deleted = append(m.deleted, ref)
	return nil
}

func TestSearch_ForcesAvailableStatus(t *testing.T) {
	var gotFilter Filter
	m := &repoMock{
		listFn: func(ctx context.Context, f Filter) ([]model.Bicycle, error) {
			gotFilter = f
			return nil, nil
		},
	}
	s := New(m, &mediaMock{})

	min, max := 10.0, 20.0
	_, err := s.Search(context.Background(), Filter{
		Type: "road", MinPrice: &min, MaxPrice: &max,
		Status: model.BicycleRented, // caller cannot widen the public view
	})
	require.NoError(t, err)
	require.Equal(t, model.BicycleAvailable, gotFilter.Status)
	require.Equal(t, "road", gotFilter.Type)
	require.Equal(t, 10.0, *gotFilter.MinPrice)
	require.Equal(t, 20.0, *gotFilter.MaxPrice)
}

func TestListAll_NoStatusRestriction(t *testing.T) {
	var gotFilter Filter
	m := &repoMock{
		listFn: func(ctx context.Context, f Filter) ([]model.Bicycle, error) {
			gotFilter = f
			return nil, nil
		},
	}
	s := New(m, &mediaMock{})

	_, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.BicycleStatus(""), gotFilter.Status)
}

func TestCreate_Validation(t *testing.T) {
	s := New(&repoMock{}, &mediaMock{})
	ctx := context.Background()

	cases := []model.Bicycle{
		{Name: "", Type: model.TypeRoad, Price: 10, Location: "x"},
		{Name: "a", Type: model.BicycleType("bmx"), Price: 10, Location: "x"},
		{Name: "a", Type: model.TypeRoad, Price: -1, Location: "x"},
		{Name: "a", Type: model.TypeRoad, Price: 10, Location: ""},
	}
	for i := range cases {
		_, err := s.Create(ctx, &cases[i])
		require.Equal(t, ErrBadInput, Code(err), "case %d", i)
	}
}

func TestCreate_RateCardFallback(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Bicycle) error { b.ID = 1; return nil },
	}
	s := New(m, &mediaMock{})

	out, err := s.Create(context.Background(), &model.Bicycle{
		Name: "Trek", Type: model.TypeRoad, Price: 15, Location: "Downtown",
	})
	require.NoError(t, err)
	require.Equal(t, model.BicycleAvailable, out.Status)
	require.Equal(t, 15.0, out.PricePerHour)
	require.Equal(t, 15.0, out.PricePerDay)
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Bicycle, error) { return nil, nil },
	}
	s := New(m, &mediaMock{})

	_, err := s.Detail(context.Background(), 42)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestDelete_ReleasesImage(t *testing.T) {
	img := "/uploads/123-bike.jpg"
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (*string, error) { return &img, nil },
	}
	media := &mediaMock{}
	s := New(m, media)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.Equal(t, []string{img}, media.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (*string, error) { return nil, sql.ErrNoRows },
	}
	s := New(m, &mediaMock{})

	err := s.Delete(context.Background(), 1)
	require.Equal(t, ErrNotFound, Code(err))
}
