package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"agroflow/internal/entities"
	identitygw "agroflow/internal/gateway/http/identity"
	"agroflow/pkg/logger"
)

type actorContextKey struct{}

// ActorFromContext достаёт аутентифицированного актора, положенного Middleware.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(entities.Actor)
	return actor, ok
}

// ContextWithActor используется в тестах хендлеров для подстановки актора.
func ContextWithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func Middleware(log handlerLogger, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeUnauthorized(w, log, r.URL.Path)
				return
			}

			actor, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, identitygw.ErrUnauthenticated) {
					writeUnauthorized(w, log, r.URL.Path)
					return
				}

				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("identity resolve failed")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"Service Unavailable","message":"Identity service is unavailable. Try again later."}`))
				return
			}

			ctx := ContextWithActor(r.Context(), *actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func writeUnauthorized(w http.ResponseWriter, log handlerLogger, path string) {
	log.With(
		logger.NewField("path", path),
	).Warn("unauthenticated request")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Missing or invalid credentials."}`))
}
