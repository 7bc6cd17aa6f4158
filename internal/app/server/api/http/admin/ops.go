package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) usersListOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users-list",
		Method:      http.MethodGet,
		Path:        "/api/admin/users",
		Summary:     "Пользователи и счетчики заявок",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) userSetOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users-set",
		Method:      http.MethodPost,
		Path:        "/api/admin/users",
		Summary:     "Создать или обновить пользователя",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) userDeleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "admin-users-delete",
		Method:        http.MethodDelete,
		Path:          "/api/admin/users",
		Summary:       "Удалить пользователя вместе с заявками",
		Tags:          []string{"admin"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) eventsListOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-events-list",
		Method:      http.MethodGet,
		Path:        "/api/admin/events",
		Summary:     "Журнал событий, новые первыми",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) eventsClearOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-events-clear",
		Method:      http.MethodDelete,
		Path:        "/api/admin/events/clear",
		Summary:     "Очистить журнал событий",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) eventsClearHintOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-events-clear-hint",
		Method:      http.MethodGet,
		Path:        "/api/admin/events/clear",
		Summary:     "Подсказка: очистка журнала только через DELETE",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}
