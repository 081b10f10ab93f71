package bookingsvc

import (
	"math"
	"time"

	"bikerental/model"
)

// Total prices a booking window against a bicycle's rate card. Hours are
// billed in whole units rounded up; daily billing rounds the hour count up
// to whole days. The window must already be validated (end after start).
func Total(start, end time.Time, mode model.BillingMode, perHour, perDay float64) float64 {
	hours := int64(math.Ceil(end.Sub(start).Hours()))
	if hours < 1 {
		hours = 1
	}
	switch mode {
	case model.BillDaily:
		days := (hours + 23) / 24
		return float64(days) * perDay
	default:
		return float64(hours) * perHour
	}
}
