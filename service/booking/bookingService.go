package bookingsvc

import (
	"context"
	"errors"
	"time"

	"bikerental/model"
	bookingrepo "bikerental/repository/booking"
)

// errors used by controllers

type ErrCode string

const (
	ErrBicycleNotFound ErrCode = "BICYCLE_NOT_FOUND"
	ErrNotAvailable    ErrCode = "NOT_AVAILABLE"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrNotOwner        ErrCode = "NOT_OWNER"
	ErrNotPending      ErrCode = "NOT_PENDING"
	ErrBadWindow       ErrCode = "BAD_WINDOW"
	ErrBadStatus       ErrCode = "BAD_STATUS"
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

// Row = repository listing shape
type Row = bookingrepo.Row

// BicycleRepo is the slice of the inventory store the lifecycle needs.
type BicycleRepo interface {
	GetByID(ctx context.Context, id int64) (*model.Bicycle, error)
	Claim(ctx context.Context, id int64) (bool, error)
	SetStatus(ctx context.Context, id int64, status model.BicycleStatus) error
}

type BookingRepo interface {
	Insert(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	UpdateStatuses(ctx context.Context, bookingID int64, status model.BookingStatus, bicycleID int64, bicycleStatus model.BicycleStatus) (*model.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]Row, error)
	ListAll(ctx context.Context) ([]Row, error)
}

type CreateInput struct {
	BicycleID int64
	StartTime time.Time
	EndTime   time.Time
	Duration  model.BillingMode
}

type Service interface {
	// Create books an available bicycle for a time window. The bicycle is
	// claimed with a conditional write, so a lost race surfaces as
	// ErrNotAvailable rather than a double booking.
	Create(ctx context.Context, userID int64, in CreateInput) (*model.Booking, error)

	// Transition moves a booking to a new status and keeps the linked
	// bicycle's status in lockstep.
	Transition(ctx context.Context, actor Actor, bookingID int64, target model.BookingStatus) (*model.Booking, error)

	MyBookings(ctx context.Context, userID int64) ([]Row, error)
	ListAll(ctx context.Context) ([]Row, error)
}

// ----- Service implementation -----

type service struct {
	bookings BookingRepo
	bicycles BicycleRepo
}

func New(bookings BookingRepo, bicycles BicycleRepo) Service {
	return &service{bookings: bookings, bicycles: bicycles}
}

func (s *service) Create(ctx context.Context, userID int64, in CreateInput) (*model.Booking, error) {
	if !in.EndTime.After(in.StartTime) {
		return nil, makeErr(ErrBadWindow)
	}
	if in.Duration != model.BillHourly && in.Duration != model.BillDaily {
		return nil, makeErr(ErrBadStatus)
	}

	bike, err := s.bicycles.GetByID(ctx, in.BicycleID)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, makeErr(ErrBicycleNotFound)
	}

	total := Total(in.StartTime, in.EndTime, in.Duration, bike.PricePerHour, bike.PricePerDay)

	// Claim first: the conditional write is the availability check. Checking
	// bike.Status here would reintroduce the read-then-write race.
	claimed, err := s.bicycles.Claim(ctx, in.BicycleID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, makeErr(ErrNotAvailable)
	}

	b := &model.Booking{
		UserID:        userID,
		BicycleID:     in.BicycleID,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Duration:      in.Duration,
		TotalPrice:    total,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
	}
	if err := s.bookings.Insert(ctx, b); err != nil {
		// Release the claim so a failed insert cannot strand the bicycle
		// in rented with no booking behind it.
		_ = s.bicycles.SetStatus(ctx, in.BicycleID, model.BicycleAvailable)
		if errors.Is(err, bookingrepo.ErrEndNotAfterStart) {
			return nil, makeErr(ErrBadWindow)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Transition(ctx context.Context, actor Actor, bookingID int64, target model.BookingStatus) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, makeErr(ErrNotFound)
	}

	bikeStatus, err := Decide(b, actor, target)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateStatuses(ctx, b.ID, target, b.BicycleID, bikeStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, makeErr(ErrNotFound)
	}
	return updated, nil
}

func (s *service) MyBookings(ctx context.Context, userID int64) ([]Row, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Row, error) {
	return s.bookings.ListAll(ctx)
}
