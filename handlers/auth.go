// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/danielhkuo/quickpost/auth"
	"github.com/danielhkuo/quickpost/middleware"
	"github.com/danielhkuo/quickpost/models"
	"github.com/danielhkuo/quickpost/store"
)

type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenService
}

func NewAuthHandler(st *store.Store, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens}
}

// Login handles POST /login
// Accepts the OAuth2 password form (username, password) or the same fields as JSON
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	}

	fields := map[string]string{}
	if req.Username == "" {
		fields["username"] = "username is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid Credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid Credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
	})
}
