package catalog

type PlaceRequest struct {
	Name                string  `json:"name" binding:"required,max=40"`
	Location            string  `json:"location" binding:"required,max=40"`
	Rating              float64 `json:"rating" binding:"omitempty,gte=1,lte=5"`
	DefaultPrice        float64 `json:"default_price" binding:"required,gt=0"`
	EntertainmentTypeID int64   `json:"entertainment_type_id"`
	CategoryID          int64   `json:"category_id"`
}

type DriverRequest struct {
	CompanyID  int64  `json:"company_id" binding:"required"`
	LanguageID int64  `json:"language_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=40"`
	Surname    string `json:"surname" binding:"required,max=40"`
	Age        int    `json:"age" binding:"required,gte=18,lte=100"`
}

type NameRequest struct {
	Name string `json:"name" binding:"required,max=40"`
}
