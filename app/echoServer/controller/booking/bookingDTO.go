package booking

import "time"

type CreateBookingReq struct {
	BicycleID int64     `json:"bicycle_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Duration  string    `json:"duration" validate:"required,oneof=hourly daily"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
