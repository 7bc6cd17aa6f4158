// Package realip кладет адрес клиента в контекст запроса,
// чтобы сервисы могли записывать его в журнал событий.
package realip

import (
	"context"
	"net"

	"github.com/danielgtaylor/huma/v2"
)

type contextKey string

const clientIPKey contextKey = "clientIP"

func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		addr := ctx.RemoteAddr()
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		next(huma.WithContext(ctx, WithClientIP(ctx.Context(), host)))
	}
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
