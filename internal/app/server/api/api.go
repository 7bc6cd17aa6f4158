//GET    /api/health              проверка живости (публичный)
//POST   /api/auth/login          вход (публичный)
//GET    /api/applications        список заявок (X-User-Token)
//POST   /api/applications        создать заявку (X-User-Token)
//PUT    /api/applications/{id}   обновить заявку (X-User-Token)
//DELETE /api/applications/{id}   удалить заявку (X-User-Token)
//POST   /api/seed                демонстрационные данные (X-User-Token)
//GET    /api/admin/users         пользователи и счетчики (X-Admin-Token)
//POST   /api/admin/users         создать/обновить пользователя (X-Admin-Token)
//DELETE /api/admin/users?name=   удалить пользователя (X-Admin-Token)
//GET    /api/admin/events        журнал событий (X-Admin-Token)
//DELETE /api/admin/events/clear  очистить журнал (X-Admin-Token)

package api

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	adminAPI "jobtracker/internal/app/server/api/http/admin"
	applicationAPI "jobtracker/internal/app/server/api/http/application"
	authAPI "jobtracker/internal/app/server/api/http/auth"
	healthAPI "jobtracker/internal/app/server/api/http/health"
	"jobtracker/internal/app/server/api/http/middleware"
	authMW "jobtracker/internal/app/server/api/http/middleware/auth"
	"jobtracker/internal/app/server/api/http/middleware/cors"
	loggerMW "jobtracker/internal/app/server/api/http/middleware/logger"
	"jobtracker/internal/app/server/api/http/middleware/realip"
	"jobtracker/internal/app/server/api/http/middleware/recovery"
	"jobtracker/internal/app/server/api/httperr"
	"jobtracker/internal/config"
	"jobtracker/internal/domain/application"
	"jobtracker/internal/domain/event"
	"jobtracker/internal/domain/user"
	"jobtracker/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health      *healthAPI.Handler
	Auth        *authAPI.Handler
	Application *applicationAPI.Handler
	Admin       *adminAPI.Handler
}

// New создает *chi.Mux со ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(recovery.Handler(log))
	mux.Use(cors.Handler)
	mux.NotFound(notFound)
	mux.MethodNotAllowed(notFound)

	// Ошибки huma (битый JSON и прочее) тоже принимают форму {"error": ...}
	huma.NewError = httperr.New

	humaCfg := huma.DefaultConfig("Job Tracker API", "1.0.0")
	API := humachi.New(mux, humaCfg)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Application.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	eventRepo := postgres.NewEventRepository(pool, log)
	eventService := event.NewService(eventRepo, log)

	applicationRepo := postgres.NewApplicationRepository(pool, log)
	sequenceRepo := postgres.NewSequenceRepository(pool, log)
	applicationService := application.NewService(applicationRepo, sequenceRepo, eventService, log)

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, applicationRepo, eventService, cfg.Auth.PINPepper, log)

	auth := authMW.New(userService, cfg.Admin.Token, log)
	requestLogger := loggerMW.New(log)
	clientIP := realip.Middleware()
	middlewares := middleware.NewContainer()

	middlewares.Add(requestLogger.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(requestLogger.Middleware())
	middlewares.Add(clientIP)
	authHandler := authAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	middlewares.Add(requestLogger.Middleware())
	middlewares.Add(clientIP)
	middlewares.Add(auth.User())
	applicationHandler := applicationAPI.NewHandler(applicationService, log, middlewares.GetAllAndClear())

	middlewares.Add(requestLogger.Middleware())
	middlewares.Add(clientIP)
	middlewares.Add(auth.Admin())
	adminHandler := adminAPI.NewHandler(userService, eventService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:      healthHandler,
		Auth:        authHandler,
		Application: applicationHandler,
		Admin:       adminHandler,
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
}
