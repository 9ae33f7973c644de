package dto

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserResponse mirrors the persisted row, including the bcrypt password
// hash. Exposing the hash on register matches the source API; see DESIGN.md.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is what the login flow hands back to the handler, which shapes
// it into the {message, access_token, id} payload.
type LoginResult struct {
	UserID      uint
	Username    string
	AccessToken string
}
