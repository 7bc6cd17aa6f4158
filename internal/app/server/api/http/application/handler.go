package application

import (
	"context"
	"errors"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api/http/middleware/auth"
	"jobtracker/internal/app/server/api/http/middleware/realip"
	"jobtracker/internal/app/server/api/httperr"
	"jobtracker/internal/domain/application"
)

type Handler struct {
	service    application.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service application.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.seedOp(), h.seed)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, httperr.Unauthorized("User token required")
	}

	items, err := h.service.List(ctx, u.Name)
	if err != nil {
		h.log.Error("list applications failed", "owner", u.Name, "error", err)
		return nil, httperr.Internal(err)
	}
	if items == nil {
		items = []application.Application{}
	}
	return &listOutput{Body: ListResponse{Items: items}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, httperr.Unauthorized("User token required")
	}

	item, err := h.service.Create(ctx, u.Name, input.Body.Fields, realip.FromContext(ctx))
	if err != nil {
		h.log.Error("create application failed", "owner", u.Name, "error", err)
		return nil, httperr.Internal(err)
	}
	return &createOutput{Body: item}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, httperr.Unauthorized("User token required")
	}
	id, err := parseID(input.ID)
	if err != nil {
		return nil, httperr.NotFound("Not found")
	}

	item, err := h.service.Update(ctx, u.Name, id, input.Body.Patch, realip.FromContext(ctx))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return nil, httperr.NotFound("Application not found")
		}
		h.log.Error("update application failed", "owner", u.Name, "id", id, "error", err)
		return nil, httperr.Internal(err)
	}
	return &updateOutput{Body: item}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, httperr.Unauthorized("User token required")
	}
	id, err := parseID(input.ID)
	if err != nil {
		return nil, httperr.NotFound("Not found")
	}

	if err := h.service.Delete(ctx, u.Name, id, realip.FromContext(ctx)); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return nil, httperr.NotFound("Application not found")
		}
		h.log.Error("delete application failed", "owner", u.Name, "id", id, "error", err)
		return nil, httperr.Internal(err)
	}
	return &deleteOutput{}, nil
}

func (h *Handler) seed(ctx context.Context, _ *seedInput) (*seedOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, httperr.Unauthorized("User token required")
	}

	items, err := h.service.Seed(ctx, u.Name, realip.FromContext(ctx))
	if err != nil {
		if errors.Is(err, application.ErrSeedDenied) {
			return nil, httperr.BadRequest("Seed denied: data already exists for this owner")
		}
		h.log.Error("seed failed", "owner", u.Name, "error", err)
		return nil, httperr.Internal(err)
	}
	return &seedOutput{Body: ListResponse{Items: items}}, nil
}

// parseID: нечисловой id — это несуществующий маршрут, а не ошибка валидации
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
