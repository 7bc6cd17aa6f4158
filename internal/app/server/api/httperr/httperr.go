// Package httperr — единая точка преобразования доменных ошибок в HTTP-ответы.
// Тело ошибки всегда {"error": "...", "details": "..."}.
package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"jobtracker/internal/infrastructure/storage"
)

type Error struct {
	status  int
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// ContentType: ошибки отдаем как application/json, а не application/problem+json
func (e *Error) ContentType(string) string {
	return "application/json"
}

// New подставляется в huma.NewError, чтобы и внутренние ошибки huma
// (битый JSON и т.п.) принимали нашу форму.
func New(status int, message string, errs ...error) huma.StatusError {
	e := &Error{status: status, Message: message}
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			parts = append(parts, err.Error())
		}
	}
	e.Details = strings.Join(parts, "; ")
	return e
}

func Unauthorized(message string) error {
	return New(http.StatusUnauthorized, message)
}

func BadRequest(message string) error {
	return New(http.StatusBadRequest, message)
}

func Forbidden(message string) error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

// Internal — запасной маппинг: отказ хранилища в 503, все прочее в 500.
func Internal(err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		return New(http.StatusServiceUnavailable, "Database unavailable", err)
	}
	return New(http.StatusInternalServerError, "Unexpected server error", err)
}
