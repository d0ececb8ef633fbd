// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickpost API.

# Route Registration

NewRouter builds the store and token service from the configuration,
registers every endpoint on an http.ServeMux and wraps the mux in CORS:

	handler := router.NewRouter(conn, cfg)

# Endpoints

Public:

	GET  /        - Greeting
	GET  /health  - Liveness probe
	POST /users   - Register
	POST /login   - Exchange credentials for a bearer token

Authenticated (Authorization: Bearer <token>):

	GET    /users/{id}  - Fetch a user
	GET    /posts       - List posts with vote counts (limit, skip, search)
	POST   /posts       - Create a post owned by the caller
	GET    /posts/{id}  - Fetch one post with its vote count
	PUT    /posts/{id}  - Replace a post (owner only)
	DELETE /posts/{id}  - Delete a post (owner only)
	POST   /votes       - Add (dir=1) or remove (dir=0) the caller's vote

Every route is wrapped in request logging. Authenticated routes resolve
the caller before the handler runs and pass it in explicitly.
*/
package router
