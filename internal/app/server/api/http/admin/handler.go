package admin

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api/http/middleware/realip"
	"jobtracker/internal/app/server/api/httperr"
	"jobtracker/internal/domain/event"
	"jobtracker/internal/domain/user"
)

type Handler struct {
	users      user.Servicer
	events     event.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(users user.Servicer, events event.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		users:      users,
		events:     events,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.usersListOp(), h.usersList)
	huma.Register(api, h.userSetOp(), h.userSet)
	huma.Register(api, h.userDeleteOp(), h.userDelete)
	huma.Register(api, h.eventsListOp(), h.eventsList)
	huma.Register(api, h.eventsClearOp(), h.eventsClear)
	huma.Register(api, h.eventsClearHintOp(), h.eventsClearHint)
}

func (h *Handler) usersList(ctx context.Context, _ *usersListInput) (*usersListOutput, error) {
	overview, err := h.users.Overview(ctx)
	if err != nil {
		h.log.Error("users overview failed", "error", err)
		return nil, httperr.Internal(err)
	}
	return &usersListOutput{Body: overview}, nil
}

func (h *Handler) userSet(ctx context.Context, input *userSetInput) (*userSetOutput, error) {
	name := strings.TrimSpace(input.Body.Name)
	location := strings.TrimSpace(input.Body.Location)
	pin := strings.TrimSpace(input.Body.Pin)
	if name == "" {
		return nil, httperr.BadRequest("name is required")
	}

	u, err := h.users.Set(ctx, name, location, pin, realip.FromContext(ctx))
	if err != nil {
		if errors.Is(err, user.ErrPinRequired) {
			return nil, httperr.BadRequest("pin is required for new users")
		}
		h.log.Error("set user failed", "name", name, "error", err)
		return nil, httperr.Internal(err)
	}
	return &userSetOutput{Body: u.Profile()}, nil
}

func (h *Handler) userDelete(ctx context.Context, input *userDeleteInput) (*userDeleteOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, httperr.BadRequest("name query param is required")
	}

	if err := h.users.Delete(ctx, name, realip.FromContext(ctx)); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, httperr.NotFound("User not found")
		}
		h.log.Error("delete user failed", "name", name, "error", err)
		return nil, httperr.Internal(err)
	}
	return &userDeleteOutput{}, nil
}

func (h *Handler) eventsList(ctx context.Context, input *eventsListInput) (*eventsListOutput, error) {
	// Некорректный limit молча заменяется значением по умолчанию
	limit, err := strconv.ParseInt(input.Limit, 10, 64)
	if err != nil {
		limit = 0
	}

	events, err := h.events.ListRecent(ctx, limit)
	if err != nil {
		h.log.Error("list events failed", "error", err)
		return nil, httperr.Internal(err)
	}
	if events == nil {
		events = []event.Event{}
	}
	return &eventsListOutput{Body: EventsResponse{Events: events}}, nil
}

func (h *Handler) eventsClear(ctx context.Context, _ *eventsClearInput) (*eventsClearOutput, error) {
	if err := h.events.ClearAll(ctx); err != nil {
		h.log.Error("clear events failed", "error", err)
		return nil, httperr.Internal(err)
	}
	return &eventsClearOutput{Body: ClearResponse{Status: "cleared"}}, nil
}

func (h *Handler) eventsClearHint(_ context.Context, _ *eventsClearHintInput) (*eventsClearHintOutput, error) {
	return nil, httperr.NotFound("Use DELETE to clear events")
}
