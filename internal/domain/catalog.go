package domain

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=40"`
}

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=40"`
}

type EntertainmentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=40"`
}

// PlaceCategory is the lookup Place.CategoryID points at.
type PlaceCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=40"`
}
