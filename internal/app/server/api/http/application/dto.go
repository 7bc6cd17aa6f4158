package application

import "jobtracker/internal/domain/application"

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Items []application.Application `json:"items"`
}

// Тела create/update терпимы к лишним ключам. id и owner из payload
// принимаются, но отбрасываются: их значения всегда берутся из пути
// и из сессии владельца.
type createBody struct {
	_ struct{} `additionalProperties:"true"`

	application.Fields
	ID    *int64  `json:"id,omitempty"`
	Owner *string `json:"owner,omitempty"`
}

type createInput struct {
	Body createBody
}

type createOutput struct {
	Body application.Application
}

type updateBody struct {
	_ struct{} `additionalProperties:"true"`

	application.Patch
	ID    *int64  `json:"id,omitempty"`
	Owner *string `json:"owner,omitempty"`
}

type updateInput struct {
	ID   string `path:"id"`
	Body updateBody
}

type updateOutput struct {
	Body application.Application
}

type deleteInput struct {
	ID string `path:"id"`
}

type deleteOutput struct{}

type seedInput struct{}

type seedOutput struct {
	Body ListResponse
}
