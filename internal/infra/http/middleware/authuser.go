package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const authUserKey contextKey = "auth_user"

// AuthUser copies the opaque X-Auth-User identity into the request context.
// It is passed through untouched; authentication itself happens upstream.
func AuthUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := r.Header.Get("X-Auth-User"); user != "" {
			r = r.WithContext(context.WithValue(r.Context(), authUserKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

func AuthUserFrom(ctx context.Context) string {
	user, _ := ctx.Value(authUserKey).(string)
	return user
}
