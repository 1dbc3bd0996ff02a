package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// Actor identifies who is making the request. Authentication mechanics are
// out of scope; identity arrives in X-Actor-Id / X-Actor-Role headers and is
// validated here, in one place.
type Actor struct {
	ID   string
	Role domain.ActorType
}

// ActorFrom returns the actor stored by RequireRole.
func ActorFrom(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey).(Actor)
	return actor
}

// RequireRole rejects requests whose actor role is not in the allowed set.
// This is the single place role checks happen.
func RequireRole(roles ...domain.ActorType) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[domain.ActorType]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			actor := Actor{
				ID:   r.Header.Get("X-Actor-Id"),
				Role: domain.ActorType(r.Header.Get("X-Actor-Role")),
			}

			if !allowed[actor.Role] {
				respondJSON(w, http.StatusForbidden, ErrorResponse{
					Error: "insufficient role for this operation",
					Code:  "FORBIDDEN",
				})
				return
			}

			next(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
		}
	}
}

func LoggingMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := fmt.Sprintf("req-%d", time.Now().UnixNano())

			logger.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r)

			duration := time.Since(start)
			logger.Debug("http_response", "Request completed", requestID, map[string]interface{}{
				"duration_ms": duration.Milliseconds(),
			})
		})
	}
}

func RecoveryMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					requestID := fmt.Sprintf("req-%d", time.Now().UnixNano())
					logger.Error("panic_recovered", "Panic recovered", requestID, nil, fmt.Errorf("%v", err))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
