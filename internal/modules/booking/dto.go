package booking

import "time"

type CreateBookingRequest struct {
	PlaceID   int64     `json:"place_id" binding:"required"`
	DriverID  *int64    `json:"driver_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	TotalCost float64   `json:"total_cost" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
