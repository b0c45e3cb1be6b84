package middleware

import (
	"context"
	"net/http"
	"strconv"

	"inkwell/app/auth"
	"inkwell/app/models"
)

// SessionCookieName is the cookie carrying the signed user id.
const SessionCookieName = "user_id"

type contextKey int

const userKey contextKey = 0

// UserResolver resolves a user id from a session cookie to a user record.
type UserResolver interface {
	ByID(id int) (*models.User, error)
}

// Session resolves the current user from the session cookie once per
// request and exposes it via the request context. A missing, invalid or
// stale cookie means the request proceeds unauthenticated; it is never
// surfaced as an error.
func Session(codec *auth.CookieCodec, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := resolveUser(codec, users, r); user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveUser(codec *auth.CookieCodec, users UserResolver, r *http.Request) *models.User {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	value, err := codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	user, err := users.ByID(id)
	if err != nil {
		return nil
	}
	return user
}

// UserFrom returns the authenticated user for the request, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
