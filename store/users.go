// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/quickpost/models"
)

// NormalizeEmail trims and lower-cases an address so lookups and the
// uniqueness constraint agree
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new user with an already hashed password.
// Returns ErrConflict when the email is taken.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	user := models.User{
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err := s.conn.QueryRowContext(ctx, s.q(`
		INSERT INTO users (email, password, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)

	if isUniqueViolation(err) {
		return models.User{}, fmt.Errorf("email %s: %w", user.Email, ErrConflict)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findUser(ctx, "email = ?", NormalizeEmail(email))
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.findUser(ctx, "id = ?", id)
}

func (s *Store) findUser(ctx context.Context, where string, arg any) (models.User, error) {
	var user models.User
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT id, email, password, created_at
		FROM users
		WHERE `+where), arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user %v: %w", arg, ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}
