package domain

import "time"

type DriverStatus string

const (
	DriverAvailable   DriverStatus = "available"
	DriverUnavailable DriverStatus = "unavailable"
)

// Driver.Status is maintained by the assignment allocator as a persisted
// mirror of the active assignment windows. Allocation decisions never read
// it; they scan the windows themselves.
type Driver struct {
	ID         int64        `json:"id"`
	CompanyID  int64        `json:"company_id" validate:"required"`
	LanguageID int64        `json:"language_id" validate:"required"`
	Name       string       `json:"name" validate:"required,max=40"`
	Surname    string       `json:"surname" validate:"required,max=40"`
	Age        int          `json:"age" validate:"gte=18,lte=100"`
	Status     DriverStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
