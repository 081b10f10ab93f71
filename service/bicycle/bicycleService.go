package bicyclesvc

import (
	"context"
	"database/sql"
	"errors"

	"bikerental/model"
	bicyclerepo "bikerental/repository/bicycle"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Filter = bicyclerepo.Filter

type Repo interface {
	Create(ctx context.Context, b *model.Bicycle) error
	GetByID(ctx context.Context, id int64) (*model.Bicycle, error)
	List(ctx context.Context, f Filter) ([]model.Bicycle, error)
	Update(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

// MediaStore releases stored images when their bicycle goes away.
type MediaStore interface {
	Delete(ref string) error
}

type Service interface {
	// Search is the public catalog: optional type/price/location filters,
	// always restricted to available bicycles.
	Search(ctx context.Context, f Filter) ([]model.Bicycle, error)

	// ListAll is the admin view across every status.
	ListAll(ctx context.Context) ([]model.Bicycle, error)

	Detail(ctx context.Context, id int64) (*model.Bicycle, error)
	Create(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error)
	Update(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r     Repo
	media MediaStore
}

func New(r Repo, media MediaStore) Service { return &service{r: r, media: media} }

func validType(t model.BicycleType) bool {
	switch t {
	case model.TypeMountain, model.TypeRoad, model.TypeHybrid, model.TypeElectric:
		return true
	}
	return false
}

func validStatus(s model.BicycleStatus) bool {
	switch s {
	case model.BicycleAvailable, model.BicycleRented, model.BicycleMaintenance:
		return true
	}
	return false
}

func (s *service) Search(ctx context.Context, f Filter) ([]model.Bicycle, error) {
	f.Status = model.BicycleAvailable
	return s.r.List(ctx, f)
}

func (s *service) ListAll(ctx context.Context) ([]model.Bicycle, error) {
	return s.r.List(ctx, Filter{})
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Bicycle, error) {
	b, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, makeErr(ErrNotFound)
	}
	return b, nil
}

func (s *service) Create(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error) {
	if b.Name == "" || b.Location == "" || !validType(b.Type) || b.Price < 0 {
		return nil, makeErr(ErrBadInput)
	}
	// A single-rate fleet only sets the headline price; the rate card
	// falls back to it.
	if b.PricePerHour <= 0 {
		b.PricePerHour = b.Price
	}
	if b.PricePerDay <= 0 {
		b.PricePerDay = b.Price
	}
	if b.Status == "" {
		b.Status = model.BicycleAvailable
	}
	if !validStatus(b.Status) {
		return nil, makeErr(ErrBadInput)
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error) {
	if b.Name == "" || b.Location == "" || !validType(b.Type) || b.Price < 0 || !validStatus(b.Status) {
		return nil, makeErr(ErrBadInput)
	}
	if b.PricePerHour <= 0 {
		b.PricePerHour = b.Price
	}
	if b.PricePerDay <= 0 {
		b.PricePerDay = b.Price
	}
	out, err := s.r.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, makeErr(ErrNotFound)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	image, err := s.r.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return makeErr(ErrNotFound)
	}
	if err != nil {
		return err
	}
	if image != nil {
		_ = s.media.Delete(*image)
	}
	return nil
}
