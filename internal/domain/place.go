package domain

import "time"

type Place struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name" validate:"required,max=40"`
	Location            string    `json:"location" validate:"required,max=40"`
	Rating              float64   `json:"rating" validate:"gte=1,lte=5"`
	DefaultPrice        float64   `json:"default_price" validate:"required,gt=0"`
	EntertainmentTypeID int64     `json:"entertainment_type_id"`
	CategoryID          int64     `json:"category_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
