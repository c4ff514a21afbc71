package assignment

import "time"

type AssignRequest struct {
	DriverID  int64     `json:"driver_id" binding:"required"`
	PlaceID   int64     `json:"place_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
