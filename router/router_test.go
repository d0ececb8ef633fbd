// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/quickpost/models"
	"github.com/danielhkuo/quickpost/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Hello World!!" {
		t.Errorf("Expected greeting, got '%s'", resp.Message)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/users/1"},
		{"GET", "/posts"},
		{"POST", "/posts"},
		{"GET", "/posts/1"},
		{"PUT", "/posts/1"},
		{"DELETE", "/posts/1"},
		{"POST", "/votes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("Expected WWW-Authenticate 'Bearer', got '%s'", got)
			}
		})
	}
}

func TestPublicRoutesExist(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	// Empty bodies fail validation, which proves the handler ran
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/users"},
		{"POST", "/login"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PATCH", "/posts/1"},
		{"GET", "/votes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPreflightBypassesAuth(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("OPTIONS", "/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected reflected origin, got '%s'", got)
	}
}

func TestPathParameterExtraction(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	user := testutil.CreateTestUser(t, conn, "owner@example.com")
	postID := testutil.CreateTestPost(t, conn, user.ID, "Hello", "World")

	mux := NewRouter(conn, cfg)

	req := testutil.MakeRequest("GET", "/posts/"+strconv.FormatInt(postID, 10), nil, testutil.AuthHeader(t, cfg, user.ID))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var post models.PostWithVotes
	if err := json.NewDecoder(w.Body).Decode(&post); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if post.ID != postID {
		t.Errorf("Expected post %d, got %d", postID, post.ID)
	}
}

func TestFullFlowThroughRouter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	// Register
	req := testutil.MakeRequest("POST", "/users", models.CreateUserRequest{
		Email:    "flow@example.com",
		Password: "hunter22",
	}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Login with JSON
	req = testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: "flow@example.com",
		Password: "hunter22",
	}, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var token models.TokenResponse
	testutil.AssertJSON(t, w, &token)
	auth := map[string]string{"Authorization": "Bearer " + token.AccessToken}

	// Create and list
	req = testutil.MakeRequest("POST", "/posts", models.PostRequest{Title: "Hello", Content: "World"}, auth)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("GET", "/posts", nil, auth)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var posts []models.PostWithVotes
	testutil.AssertJSON(t, w, &posts)
	if len(posts) != 1 || posts[0].Votes != 0 || posts[0].Owner.Email != "flow@example.com" {
		t.Errorf("Unexpected listing: %+v", posts)
	}
}
