package dto

// AuthorCreateRequest carries the client-writable author fields. The id is
// server-assigned and never accepted on create.
type AuthorCreateRequest struct {
	Name           string `json:"name" validate:"required,max=20"`
	Specialisation string `json:"specialisation" validate:"required,max=50"`
}

// AuthorUpdateRequest uses pointers so absent fields are left unchanged.
type AuthorUpdateRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=20"`
	Specialisation *string `json:"specialisation" validate:"omitempty,max=50"`
}

type AuthorResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Specialisation string `json:"specialisation"`
}
