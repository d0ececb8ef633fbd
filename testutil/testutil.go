// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickpost/auth"
	"github.com/danielhkuo/quickpost/cliparse"
	"github.com/danielhkuo/quickpost/db"
	"github.com/danielhkuo/quickpost/models"
)

// TestPassword is the plaintext password of every user made by CreateTestUser
const TestPassword = "password123"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The pool is pinned to one connection: every connection to :memory: would
// otherwise see its own empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     30 * time.Minute,
		CORSOrigin:   "*",
	}
}

// CreateTestUser inserts a user whose password is TestPassword
func CreateTestUser(t *testing.T, conn *sql.DB, email string) models.User {
	t.Helper()

	// MinCost keeps the suite fast; production hashes use DefaultCost
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{Email: email, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	err = conn.QueryRow(`
		INSERT INTO users (email, password, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`, email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestPost inserts a published post and returns its id
func CreateTestPost(t *testing.T, conn *sql.DB, ownerID int64, title, content string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO posts (title, content, published, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, title, content, true, ownerID, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return id
}

// CreateTestVote records userID's vote on postID
func CreateTestVote(t *testing.T, conn *sql.DB, userID, postID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (user_id, post_id)
		VALUES (?, ?)
	`, userID, postID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows returns the number of rows in table matching where
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// AuthHeader returns an Authorization header carrying a valid token for userID
func AuthHeader(t *testing.T, cfg cliparse.Config, userID int64) map[string]string {
	t.Helper()

	token, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL).Issue(userID)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
