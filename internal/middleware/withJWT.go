// Package middleware holds the HTTP middleware of the shortener: owner
// identity, request logging, gzip, subnet and rate limiting.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/atinyakov/shortlink/internal/app/service"
)

// ContextKey is the type of request context keys set by this package.
type ContextKey string

// UserIDKey holds the owner id of the current request.
const UserIDKey ContextKey = "userID"

const tokenCookie = "token"

// InjectUserID returns req with userID stored under UserIDKey.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// WithJWT resolves the owner of a request from the "token" cookie. A missing
// or unreadable token is replaced with a freshly issued identity.
func WithJWT(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(tokenCookie); err == nil {
				if claims, err := auth.ParseClaims(cookie); err == nil {
					next.ServeHTTP(w, InjectUserID(r, claims.UserID))
					return
				}
			}

			tokenString, userID, err := auth.BuildJWTString()
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     tokenCookie,
				Value:    tokenString,
				Expires:  time.Now().Add(service.TokenExp),
				HttpOnly: true,
				Path:     "/",
			})

			next.ServeHTTP(w, InjectUserID(r, userID))
		})
	}
}
