package auth

import "jobtracker/internal/domain/user"

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Name     string `json:"name,omitempty"`
	Pin      string `json:"pin,omitempty"`
	Location string `json:"location,omitempty"`
}

type loginOutput struct {
	Body user.Profile
}
