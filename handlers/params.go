// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickpost/middleware"
	"github.com/danielhkuo/quickpost/models"
)

// pathID parses the {id} path value; on failure it writes a 422 and returns false
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ValidationErrorResponse(w, map[string]string{"id": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter, falling back to def when absent
func queryInt(r *http.Request, name string, def int, fields map[string]string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		fields[name] = name + " must be a non-negative integer"
		return def
	}
	return n
}

// postInput validates a create/update body; published defaults to true
func postInput(req models.PostRequest) (models.PostInput, map[string]string) {
	fields := map[string]string{}
	if req.Title == "" {
		fields["title"] = "title is required"
	}
	if req.Content == "" {
		fields["content"] = "content is required"
	}
	if len(fields) > 0 {
		return models.PostInput{}, fields
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	return models.PostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: published,
	}, nil
}
