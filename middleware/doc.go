// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request carries an X-Request-ID, generated with
google/uuid unless the caller supplied one.

# Authentication

RequireAuth guards a route. It reads "Authorization: Bearer <token>",
verifies the token, loads the user and passes it to the handler:

	mux.HandleFunc("POST /posts", middleware.WithLogging(
		middleware.RequireAuth(tokens, st, postHandler.CreatePost)))

	func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request, user models.User)

Every failure answers 401 "Could not validate credentials" with
WWW-Authenticate: Bearer, whatever the cause.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, map[string]string{"title": "title is required"})

Parse JSON request bodies:

	var req models.PostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
