package bookingrepo

import (
	"context"
	"testing"
	"time"

	"bikerental/model"

	"github.com/stretchr/testify/require"
)

// The window guard rejects before any SQL runs, regardless of billing mode.
func TestInsert_RejectsBadWindow(t *testing.T) {
	r := New(nil)
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for _, mode := range []model.BillingMode{model.BillHourly, model.BillDaily} {
		err := r.Insert(context.Background(), &model.Booking{
			UserID: 1, BicycleID: 2,
			StartTime: start, EndTime: start,
			Duration: mode,
		})
		require.ErrorIs(t, err, ErrEndNotAfterStart)

		err = r.Insert(context.Background(), &model.Booking{
			UserID: 1, BicycleID: 2,
			StartTime: start, EndTime: start.Add(-time.Hour),
			Duration: mode,
		})
		require.ErrorIs(t, err, ErrEndNotAfterStart)
	}
}
