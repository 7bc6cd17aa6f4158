package application

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "applications-list",
		Method:      http.MethodGet,
		Path:        "/api/applications",
		Summary:     "Список заявок владельца",
		Tags:        []string{"applications"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "applications-create",
		Method:        http.MethodPost,
		Path:          "/api/applications",
		Summary:       "Создать заявку",
		Tags:          []string{"applications"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "applications-update",
		Method:      http.MethodPut,
		Path:        "/api/applications/{id}",
		Summary:     "Обновить заявку",
		Tags:        []string{"applications"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "applications-delete",
		Method:        http.MethodDelete,
		Path:          "/api/applications/{id}",
		Summary:       "Удалить заявку",
		Tags:          []string{"applications"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) seedOp() huma.Operation {
	return huma.Operation{
		OperationID:   "applications-seed",
		Method:        http.MethodPost,
		Path:          "/api/seed",
		Summary:       "Засеять демонстрационные заявки",
		Tags:          []string{"applications"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
