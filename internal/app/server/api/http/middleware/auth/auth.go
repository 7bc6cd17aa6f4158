package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/user"
	"jobtracker/internal/infrastructure/storage"
)

type Auth struct {
	users      user.Servicer
	adminToken string
	log        *slog.Logger
}

func New(users user.Servicer, adminToken string, log *slog.Logger) *Auth {
	return &Auth{
		users:      users,
		adminToken: adminToken,
		log:        log.With("component", "auth_middleware"),
	}
}

type contextKey string

const userKey contextKey = "user"

// User проверяет X-User-Token и кладет пользователя в контекст.
func (a *Auth) User() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := strings.TrimSpace(ctx.Header("X-User-Token"))
		if token == "" {
			a.reject(ctx, http.StatusUnauthorized, "User token required", "")
			return
		}

		u, err := a.users.Authenticate(ctx.Context(), token)
		if err != nil {
			if errors.Is(err, user.ErrUnauthorized) {
				a.reject(ctx, http.StatusUnauthorized, "User token invalid", "")
				return
			}
			a.log.Error("authenticate failed", "error", err)
			if errors.Is(err, storage.ErrUnavailable) {
				a.reject(ctx, http.StatusServiceUnavailable, "Database unavailable", err.Error())
				return
			}
			a.reject(ctx, http.StatusInternalServerError, "Unexpected server error", err.Error())
			return
		}

		next(huma.WithContext(ctx, WithUser(ctx.Context(), u)))
	}
}

// Admin сверяет X-Admin-Token с настроенным секретом.
// Пустой секрет запрещает админский доступ целиком.
func (a *Auth) Admin() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ctx.Header("X-Admin-Token")
		if a.adminToken == "" || token != a.adminToken {
			a.reject(ctx, http.StatusUnauthorized, "Admin token invalid", "")
			return
		}
		next(ctx)
	}
}

func (a *Auth) reject(ctx huma.Context, status int, message, details string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)

	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(body); err != nil {
		a.log.Error("write auth response", "error", err)
	}
}

func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func GetUser(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userKey).(user.User)
	return u, ok
}
