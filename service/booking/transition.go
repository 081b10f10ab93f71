package bookingsvc

import "bikerental/model"

// Actor identifies who requested a booking transition. The claims are
// trusted as-is; authentication happened at the HTTP boundary.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// Decide applies the transition matrix for a booking and returns the bicycle
// status the transition implies.
//
// Renters may only cancel their own booking, and only while it is pending.
// Admins may set any status from any state: completed and cancelled release
// the bicycle, every other admin-set status forces it to rented.
func Decide(b *model.Booking, actor Actor, target model.BookingStatus) (model.BicycleStatus, error) {
	if !target.Valid() {
		return "", makeErr(ErrBadStatus)
	}

	if !actor.IsAdmin {
		if b.UserID != actor.UserID {
			return "", makeErr(ErrNotOwner)
		}
		if target != model.BookingCancelled {
			return "", makeErr(ErrNotOwner)
		}
		if b.Status != model.BookingPending {
			return "", makeErr(ErrNotPending)
		}
		return model.BicycleAvailable, nil
	}

	if target == model.BookingCompleted || target == model.BookingCancelled {
		return model.BicycleAvailable, nil
	}
	return model.BicycleRented, nil
}
