package models

// MessageResponse is the body of every error response and of most
// successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned when a record has been inserted.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
}
