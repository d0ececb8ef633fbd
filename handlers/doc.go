// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickpost API.

# Handler Types

Each handler is a struct holding the store it talks to:

  - AuthHandler: Credential exchange for bearer tokens
  - UserHandler: Registration and user lookup
  - PostHandler: Post listing, lookup, create, update, delete
  - VoteHandler: Adding and removing votes

Handlers are created via constructor functions:

	postHandler := handlers.NewPostHandler(st)

# Authenticated Handlers

Handlers behind the auth gate have the middleware.AuthedHandlerFunc
signature and receive the resolved caller as an argument:

	func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request, user models.User)

The caller is the only source of ownership. Any owner_id in a request
body is ignored.

# Error Mapping

Store errors map onto statuses the same way everywhere:

	store.ErrNotFound  → 404
	store.ErrForbidden → 403
	store.ErrConflict  → 409
	validation         → 422 with per-field messages
	malformed JSON     → 400

# Votes

	POST /votes {"post_id": 1, "dir": 1} → add the caller's vote (409 if present)
	POST /votes {"post_id": 1, "dir": 0} → remove it (404 if absent)
*/
package handlers
