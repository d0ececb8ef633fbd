// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpost/middleware"
	"github.com/danielhkuo/quickpost/models"
	"github.com/danielhkuo/quickpost/store"
)

// Listing defaults
const (
	defaultLimit = 10
	defaultSkip  = 0
)

type PostHandler struct {
	store *store.Store
}

func NewPostHandler(st *store.Store) *PostHandler {
	return &PostHandler{store: st}
}

// ListPosts handles GET /posts?limit&skip&search
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request, user models.User) {
	fields := map[string]string{}
	params := models.ListPostsParams{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", defaultLimit, fields),
		Offset: queryInt(r, "skip", defaultSkip, fields),
	}
	if len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	posts, err := h.store.ListPosts(r.Context(), params)
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, posts)
}

// CreatePost handles POST /posts
// The owner is always the authenticated caller
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request, user models.User) {
	var req models.PostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	in, fields := postInput(req)
	if fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	post, err := h.store.CreatePost(r.Context(), user.ID, in)
	if err != nil {
		slog.Error("failed to insert post", "error", err, "owner_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	slog.Info("post created", "post_id", post.ID, "owner_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, post)
}

// GetPost handles GET /posts/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request, user models.User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.store.GetPost(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, postNotFound(id))
		return
	}
	if err != nil {
		slog.Error("failed to query post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// UpdatePost handles PUT /posts/{id}
// Only the owner may update; 404 is checked before 403
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request, user models.User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	in, fields := postInput(req)
	if fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	post, err := h.store.UpdatePost(r.Context(), id, user.ID, in)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, postNotFound(id))
		return
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized to perform requested action")
		return
	case err != nil:
		slog.Error("failed to update post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	slog.Info("post updated", "post_id", id, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request, user models.User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.store.DeletePost(r.Context(), id, user.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, postNotFound(id))
		return
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized to perform requested action")
		return
	case err != nil:
		slog.Error("failed to delete post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	slog.Info("post deleted", "post_id", id, "user_id", user.ID)

	w.WriteHeader(http.StatusNoContent)
}

func postNotFound(id int64) string {
	return fmt.Sprintf("A post with id %d was not found", id)
}
