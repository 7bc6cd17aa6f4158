package admin

import (
	"jobtracker/internal/domain/event"
	"jobtracker/internal/domain/user"
)

type usersListInput struct{}

type usersListOutput struct {
	Body user.Overview
}

type userSetInput struct {
	Body UserSetRequest
}

type UserSetRequest struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	Pin      string `json:"pin,omitempty"`
}

type userSetOutput struct {
	Body user.Profile
}

type userDeleteInput struct {
	Name string `query:"name"`
}

type userDeleteOutput struct{}

type eventsListInput struct {
	Limit string `query:"limit"`
}

type eventsListOutput struct {
	Body EventsResponse
}

type EventsResponse struct {
	Events []event.Event `json:"events"`
}

type eventsClearInput struct{}

type eventsClearOutput struct {
	Body ClearResponse
}

type ClearResponse struct {
	Status string `json:"status"`
}

type eventsClearHintInput struct{}

type eventsClearHintOutput struct{}
