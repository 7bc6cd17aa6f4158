package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api/http/middleware/realip"
	"jobtracker/internal/app/server/api/httperr"
	"jobtracker/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
}

// Все три исхода неудачного логина отдаются как 403: клиенту не нужно
// различать отсутствующий аккаунт и неверный PIN.
func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	name := strings.TrimSpace(input.Body.Name)
	pin := strings.TrimSpace(input.Body.Pin)
	location := strings.TrimSpace(input.Body.Location)
	if name == "" || pin == "" {
		return nil, httperr.BadRequest("name and pin are required")
	}

	u, err := h.service.Login(ctx, name, pin, location, realip.FromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return nil, httperr.Forbidden("User not found. Ask admin to create your account.")
		case errors.Is(err, user.ErrNotConfigured):
			return nil, httperr.Forbidden("User not configured. Admin must set a PIN.")
		case errors.Is(err, user.ErrInvalidAuth):
			return nil, httperr.Forbidden("Invalid credentials")
		default:
			h.log.Error("login failed", "name", name, "error", err)
			return nil, httperr.Internal(err)
		}
	}

	return &loginOutput{Body: u.ProfileWithToken()}, nil
}
