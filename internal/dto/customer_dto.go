package dto

// CustomerResponse always carries every field as a string ("" when unset) so
// the frontend can edit records in place.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Birthday    string `json:"birthday"`
	Anniversary string `json:"anniversary"`
}

type CustomerListResponse struct {
	Results []CustomerResponse `json:"results"`
	Total   int64              `json:"total"`
}

// PageFilter is the shared skip/limit pagination query.
type PageFilter struct {
	Skip  int `form:"skip,default=0"   validate:"min=0"`
	Limit int `form:"limit,default=10" validate:"min=1,max=100"`
}
