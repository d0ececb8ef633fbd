// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickpost/auth"
	"github.com/danielhkuo/quickpost/cliparse"
	"github.com/danielhkuo/quickpost/db"
	"github.com/danielhkuo/quickpost/handlers"
	"github.com/danielhkuo/quickpost/middleware"
	"github.com/danielhkuo/quickpost/models"
	"github.com/danielhkuo/quickpost/store"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	st := store.New(conn, db.DialectFor(cfg.DatabaseType))
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, tokens)
	userHandler := handlers.NewUserHandler(st)
	postHandler := handlers.NewPostHandler(st)
	voteHandler := handlers.NewVoteHandler(st)

	protected := func(next middleware.AuthedHandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(tokens, st, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts (public)
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /users/{id}", protected(userHandler.GetUser))

	// Posts (bearer token required)
	mux.HandleFunc("GET /posts", protected(postHandler.ListPosts))
	mux.HandleFunc("POST /posts", protected(postHandler.CreatePost))
	mux.HandleFunc("GET /posts/{id}", protected(postHandler.GetPost))
	mux.HandleFunc("PUT /posts/{id}", protected(postHandler.UpdatePost))
	mux.HandleFunc("DELETE /posts/{id}", protected(postHandler.DeletePost))

	// Votes
	mux.HandleFunc("POST /votes", protected(voteHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Hello World!!"})
	})

	return middleware.CORS(cfg.CORSOrigin, mux)
}
