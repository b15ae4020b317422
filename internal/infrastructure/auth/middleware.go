package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/redis"
	"github.com/Antontokarchuk0302/Travelsite/internal/models"
)

// TokenKey is the Redis key holding the current token of a user.
func TokenKey(userID int64) string {
	return fmt.Sprintf("user:%d:token", userID)
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// AuthMiddleware accepts a Bearer token only while it is the one cached for
// its user, so logout revokes it immediately.
func AuthMiddleware(redisClient redis.RedisClient, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenStr == "" {
				deny(w, http.StatusUnauthorized, "authorization header missing or malformed")
				return
			}

			actor, err := ParseToken(tokenStr, jwtSecret)
			if err != nil {
				deny(w, http.StatusUnauthorized, err.Error())
				return
			}

			storedToken, err := redisClient.Get(r.Context(), TokenKey(actor.ID))
			switch {
			case errors.Is(err, redis.ErrKeyNotFound) || (err == nil && storedToken != tokenStr):
				slog.Warn("revoked token", "user_id", actor.ID, "path", r.URL.Path)
				deny(w, http.StatusUnauthorized, "invalid or revoked token")
				return
			case err != nil:
				slog.Error("failed to check token", "user_id", actor.ID, "error", err)
				deny(w, http.StatusServiceUnavailable, "token store unavailable")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRoles rejects actors whose role is not listed.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok || !actor.HasRole(roles...) {
				slog.Warn("role not allowed", "user_id", actor.ID, "role", actor.Role, "path", r.URL.Path)
				deny(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
