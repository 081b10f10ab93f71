package bicyclerepo

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"bikerental/model"
)

// Filter narrows catalog listings. Zero values mean "no restriction".
type Filter struct {
	Type     string
	MinPrice *float64
	MaxPrice *float64
	Location string
	Status   model.BicycleStatus
}

type Repo interface {
	Create(ctx context.Context, b *model.Bicycle) error
	GetByID(ctx context.Context, id int64) (*model.Bicycle, error)
	List(ctx context.Context, f Filter) ([]model.Bicycle, error)
	Update(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error)
	Delete(ctx context.Context, id int64) (image *string, err error)

	// Claim atomically moves an available bicycle to rented. Returns false
	// when the bicycle was not available at write time (lost race included).
	Claim(ctx context.Context, id int64) (bool, error)
	SetStatus(ctx context.Context, id int64, status model.BicycleStatus) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const bicycleCols = `id, name, type, description, price, price_per_hour, price_per_day, status, location, image, created_at, updated_at`

func scanBicycle(row interface{ Scan(...any) error }, b *model.Bicycle) error {
	return row.Scan(&b.ID, &b.Name, &b.Type, &b.Description,
		&b.Price, &b.PricePerHour, &b.PricePerDay,
		&b.Status, &b.Location, &b.Image, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) Create(ctx context.Context, b *model.Bicycle) error {
	const q = `
INSERT INTO bicycles (name, type, description, price, price_per_hour, price_per_day, status, location, image)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		b.Name, b.Type, b.Description, b.Price, b.PricePerHour, b.PricePerDay,
		b.Status, b.Location, b.Image,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) GetByID(ctx context.Context, id int64) (*model.Bicycle, error) {
	const q = `SELECT ` + bicycleCols + ` FROM bicycles WHERE id = $1`
	var b model.Bicycle
	if err := scanBicycle(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repo) List(ctx context.Context, f Filter) ([]model.Bicycle, error) {
	q := `SELECT ` + bicycleCols + ` FROM bicycles WHERE 1=1`
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		q += cond
	}
	if f.Status != "" {
		add(` AND status = $`+strconv.Itoa(len(args)+1), f.Status)
	}
	if f.Type != "" {
		add(` AND type = $`+strconv.Itoa(len(args)+1), f.Type)
	}
	if f.Location != "" {
		add(` AND location = $`+strconv.Itoa(len(args)+1), f.Location)
	}
	if f.MinPrice != nil {
		add(` AND price >= $`+strconv.Itoa(len(args)+1), *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add(` AND price <= $`+strconv.Itoa(len(args)+1), *f.MaxPrice)
	}
	q += ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Bicycle
	for rows.Next() {
		var b model.Bicycle
		if err := scanBicycle(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, b *model.Bicycle) (*model.Bicycle, error) {
	const q = `
UPDATE bicycles
SET name = $2, type = $3, description = $4,
    price = $5, price_per_hour = $6, price_per_day = $7,
    status = $8, location = $9,
    image = COALESCE($10, image),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + bicycleCols
	var out model.Bicycle
	err := scanBicycle(r.db.QueryRowContext(ctx, q,
		b.ID, b.Name, b.Type, b.Description,
		b.Price, b.PricePerHour, b.PricePerDay,
		b.Status, b.Location, b.Image,
	), &out)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (*string, error) {
	const q = `DELETE FROM bicycles WHERE id = $1 RETURNING image`
	var image *string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&image)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return image, nil
}

// Claim asserts the prior status in the write itself, so two concurrent
// bookings of the same bicycle cannot both succeed.
func (r *repo) Claim(ctx context.Context, id int64) (bool, error) {
	const q = `
UPDATE bicycles
SET status = 'rented', updated_at = NOW()
WHERE id = $1
  AND status = 'available'`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) SetStatus(ctx context.Context, id int64, status model.BicycleStatus) error {
	const q = `
UPDATE bicycles
SET status = $2, updated_at = NOW()
WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, status)
	return err
}
