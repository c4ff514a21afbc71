package review

type CreateReviewRequest struct {
	PlaceID int64   `json:"place_id" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment" binding:"max=500"`
}
