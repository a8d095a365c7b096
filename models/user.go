package models

import "time"

// User is a registered account. Places holds the identifiers of the places
// the user created, in creation order.
type User struct {
	// UserID is a UUID v7 string assigned on signup.
	UserID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It must never leave the server; see [User.Public].
	Password string `json:"-"`

	// Image is a reference to the profile image: either a path under the
	// uploads route or an absolute URL of a placeholder.
	Image string `json:"image"`

	Places []string `json:"places"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public converts u into its client-facing representation.
func (u User) Public() UserResponse {
	places := u.Places
	if places == nil {
		places = []string{}
	}

	return UserResponse{
		ID:     u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Places: places,
	}
}

// UserResponse is a user without credentials.
type UserResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Image  string   `json:"image"`
	Places []string `json:"places"`
}
