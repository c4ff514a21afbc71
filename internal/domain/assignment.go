package domain

import "time"

// Assignment allocates a driver to a place for a half-open time window
// [StartTime, EndTime). Windows for the same driver never overlap; adjacent
// windows (one ends exactly when the next starts) are allowed.
type Assignment struct {
	ID         int64      `json:"id"`
	DriverID   int64      `json:"driver_id" validate:"required"`
	PlaceID    int64      `json:"place_id" validate:"required"`
	StartTime  time.Time  `json:"start_time" validate:"required"`
	EndTime    time.Time  `json:"end_time" validate:"required"`
	AssignedAt time.Time  `json:"assigned_at"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
}

// Active reports whether the assignment still holds its window.
func (a Assignment) Active() bool { return a.ReleasedAt == nil }

// Overlaps compares two half-open windows.
func (a Assignment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndTime) && a.StartTime.Before(end)
}
