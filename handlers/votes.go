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

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(st *store.Store) *VoteHandler {
	return &VoteHandler{store: st}
}

// Vote handles POST /votes
// dir 1 adds the caller's vote, dir 0 removes it
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request, user models.User) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	fields := map[string]string{}
	if req.PostID <= 0 {
		fields["post_id"] = "post_id must be a positive integer"
	}
	if req.Dir == nil {
		fields["dir"] = "dir is required"
	} else if *req.Dir != models.VoteApply && *req.Dir != models.VoteRetract {
		fields["dir"] = "dir must be 0 or 1"
	}
	if len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	err := h.store.CastVote(r.Context(), user.ID, req.PostID, *req.Dir)
	switch {
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict,
			fmt.Sprintf("User %d has already voted on post %d", user.ID, req.PostID))
		return
	case errors.Is(err, store.ErrVoteNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote does not exist")
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Post with id: %d does not exist", req.PostID))
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "post_id", req.PostID, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	message := "successfully added vote"
	if *req.Dir == models.VoteRetract {
		message = "successfully deleted vote"
	}

	slog.Info("vote recorded", "post_id", req.PostID, "user_id", user.ID, "dir", *req.Dir)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: message})
}
