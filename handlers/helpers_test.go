// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickpost/db"
	"github.com/danielhkuo/quickpost/models"
	"github.com/danielhkuo/quickpost/store"
	"github.com/danielhkuo/quickpost/testutil"
)

func newTestStore(conn *sql.DB) *store.Store {
	return store.New(conn, db.SQLite)
}

// decodeError reads a models.ErrorResponse from the recorder
func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
