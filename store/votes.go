// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickpost/models"
)

var ErrInvalidDirection = errors.New("vote direction must be 0 or 1")

// CastVote applies (dir 1) or retracts (dir 0) userID's vote on postID.
//
// Applying twice returns ErrConflict; the (user_id, post_id) primary key
// decides races between concurrent requests. Retracting a vote that does
// not exist returns ErrVoteNotFound.
func (s *Store) CastVote(ctx context.Context, userID, postID int64, dir int) error {
	if dir != models.VoteApply && dir != models.VoteRetract {
		return ErrInvalidDirection
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, s.q(`
			SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)
		`), postID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to query post: %w", err)
		}
		if !exists {
			return fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}

		if dir == models.VoteApply {
			_, err := tx.ExecContext(ctx, s.q(`
				INSERT INTO votes (user_id, post_id)
				VALUES (?, ?)
			`), userID, postID)

			if isUniqueViolation(err) {
				return fmt.Errorf("user %d already voted on post %d: %w", userID, postID, ErrConflict)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("post %d: %w", postID, ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
			return nil
		}

		res, err := tx.ExecContext(ctx, s.q(`
			DELETE FROM votes
			WHERE user_id = ? AND post_id = ?
		`), userID, postID)
		if err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n == 0 {
			return ErrVoteNotFound
		}
		return nil
	})
}
