package api

import "github.com/hadrianhq/userhub/pkg/users"

// signupRequest is the body of POST /api/auth/signup
type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// loginRequest is the body of POST /api/auth/login
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse wraps a user for signup, login, and me responses
type authResponse struct {
	User *users.User `json:"user"`
}

// usersResponse wraps the user listing
type usersResponse struct {
	Users []*users.User `json:"users"`
}
