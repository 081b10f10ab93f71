package bookingrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bikerental/model"
)

// ErrEndNotAfterStart rejects a persist whose window is empty or inverted.
var ErrEndNotAfterStart = errors.New("end time must be after start time")

// Row is the joined listing shape returned to renters and admins.
type Row struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"user_id"`
	BicycleID     int64               `json:"bicycle_id"`
	BicycleName   string              `json:"bicycle_name"`
	BicycleType   model.BicycleType   `json:"bicycle_type"`
	StartTime     time.Time           `json:"start_time"`
	EndTime       time.Time           `json:"end_time"`
	Duration      model.BillingMode   `json:"duration"`
	TotalPrice    float64             `json:"total_price"`
	Status        model.BookingStatus `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
}

type Repo interface {
	Insert(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id int64) (*model.Booking, error)

	// UpdateStatuses writes the booking status and the linked bicycle status
	// in one transaction, so the two records cannot drift apart.
	UpdateStatuses(ctx context.Context, bookingID int64, status model.BookingStatus, bicycleID int64, bicycleStatus model.BicycleStatus) (*model.Booking, error)

	ListByUser(ctx context.Context, userID int64) ([]Row, error)
	ListAll(ctx context.Context) ([]Row, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const bookingCols = `id, user_id, bicycle_id, start_time, end_time, duration, total_price, status, payment_status, created_at`

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.UserID, &b.BicycleID, &b.StartTime, &b.EndTime,
		&b.Duration, &b.TotalPrice, &b.Status, &b.PaymentStatus, &b.CreatedAt)
}

func (r *repo) Insert(ctx context.Context, b *model.Booking) error {
	if !b.EndTime.After(b.StartTime) {
		return ErrEndNotAfterStart
	}
	const q = `
INSERT INTO bookings (user_id, bicycle_id, start_time, end_time, duration, total_price, status, payment_status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		b.UserID, b.BicycleID, b.StartTime, b.EndTime,
		b.Duration, b.TotalPrice, b.Status, b.PaymentStatus,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *repo) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id = $1`
	var b model.Booking
	if err := scanBooking(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repo) UpdateStatuses(ctx context.Context, bookingID int64, status model.BookingStatus, bicycleID int64, bicycleStatus model.BicycleStatus) (_ *model.Booking, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qb = `
UPDATE bookings
SET status = $2
WHERE id = $1
RETURNING ` + bookingCols
	var b model.Booking
	if err = scanBooking(tx.QueryRowContext(ctx, qb, bookingID, status), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = tx.Rollback()
			return nil, nil
		}
		return nil, err
	}

	const qc = `
UPDATE bicycles
SET status = $2, updated_at = NOW()
WHERE id = $1`
	if _, err = tx.ExecContext(ctx, qc, bicycleID, bicycleStatus); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]Row, error) {
	const q = listQuery + `
WHERE bk.user_id = $1
ORDER BY bk.created_at DESC, bk.id DESC`
	return r.list(ctx, q, userID)
}

func (r *repo) ListAll(ctx context.Context) ([]Row, error) {
	const q = listQuery + `
ORDER BY bk.created_at DESC, bk.id DESC`
	return r.list(ctx, q)
}

const listQuery = `
SELECT
	bk.id, bk.user_id, bk.bicycle_id,
	bc.name, bc.type,
	bk.start_time, bk.end_time, bk.duration,
	bk.total_price, bk.status, bk.payment_status, bk.created_at
FROM bookings bk
JOIN bicycles bc ON bc.id = bk.bicycle_id`

func (r *repo) list(ctx context.Context, q string, args ...any) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var h Row
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.BicycleID,
			&h.BicycleName, &h.BicycleType,
			&h.StartTime, &h.EndTime, &h.Duration,
			&h.TotalPrice, &h.Status, &h.PaymentStatus, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
