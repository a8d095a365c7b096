package models

// AuthResponse is returned on successful signup and login.
type AuthResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// PlaceResponse wraps a single place.
type PlaceResponse struct {
	Place Place `json:"place"`
}

// PlacesResponse lists places together with their count.
type PlacesResponse struct {
	Count  int     `json:"count"`
	Places []Place `json:"places"`
}

// UsersResponse lists users together with their count.
type UsersResponse struct {
	Count int            `json:"count"`
	Users []UserResponse `json:"users"`
}

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
