package adminrepo

import (
	"context"
	"database/sql"
	"errors"

	"bikerental/model"
)

type Repo interface {
	Create(ctx context.Context, a *model.Admin) error
	ByEmail(ctx context.Context, email string) (*model.Admin, error)
	ByID(ctx context.Context, id int64) (*model.Admin, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, a *model.Admin) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO admins(email, password_hash)
		VALUES ($1,$2)
		RETURNING id, created_at`,
		a.Email, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE lower(email) = lower($1)`,
		email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
