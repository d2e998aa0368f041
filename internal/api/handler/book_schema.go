package handler

// Amount fields are pointers so that an explicit zero can be told apart from
// an absent field.

type createBookRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      *int   `json:"amount"      validate:"required"`
}

type updateBookRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Amount      *int    `json:"amount"`
}
