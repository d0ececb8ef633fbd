// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickpost/models"
	"github.com/danielhkuo/quickpost/store"
)

// TokenVerifier resolves a bearer token to a user id
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserFinder loads the user a token refers to
type UserFinder interface {
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// AuthedHandlerFunc is a handler that runs on behalf of an authenticated user
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, user models.User)

// RequireAuth rejects requests without a valid bearer token for an existing
// user and hands the resolved user to next.
//
// All failures produce the same 401 so callers can't tell which check failed.
func RequireAuth(tokens TokenVerifier, users UserFinder, next AuthedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			unauthorized(w)
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			slog.Debug("token rejected", "error", err, "path", r.URL.Path)
			unauthorized(w)
			return
		}

		user, err := users.FindUserByID(r.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("token for unknown user", "user_id", userID)
			unauthorized(w)
			return
		}
		if err != nil {
			slog.Error("failed to load user", "error", err, "user_id", userID)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		next(w, r, user)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	ErrorResponse(w, http.StatusUnauthorized, "Could not validate credentials")
}
