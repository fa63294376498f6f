package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// User represents the admin account. There is no self-registration.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
}

// Principal is the authenticated identity carried by a token.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Principal returns the public fields of the user.
func (u User) Principal() Principal {
	return Principal{ID: u.ID, Username: u.Username}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
