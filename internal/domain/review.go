package domain

import "time"

type Review struct {
	ID          int64     `json:"id"`
	PlaceID     int64     `json:"place_id" validate:"required"`
	UserID      int64     `json:"user_id" validate:"required"`
	Rating      float64   `json:"rating" validate:"gte=1,lte=5"`
	Comment     string    `json:"comment,omitempty"`
	PublishDate time.Time `json:"publish_date"`
}
