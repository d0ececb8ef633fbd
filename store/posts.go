// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickpost/models"
)

// Posts joined to their owner and to votes, one row per post.
// The outer join keeps posts without votes; COUNT of the nullable
// side makes their count 0.
const postsWithVotes = `
	SELECT p.id, p.title, p.content, p.published, p.owner_id, p.created_at,
	       u.id, u.email, u.created_at,
	       COUNT(v.post_id) AS votes
	FROM posts p
	JOIN users u ON u.id = p.owner_id
	LEFT JOIN votes v ON v.post_id = p.id
	WHERE %s
	GROUP BY p.id, u.id
	ORDER BY p.id`

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (models.PostWithVotes, error) {
	var post models.PostWithVotes
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.Published, &post.OwnerID, &post.CreatedAt,
		&post.Owner.ID, &post.Owner.Email, &post.Owner.CreatedAt,
		&post.Votes,
	)
	return post, err
}

// ListPosts returns posts whose title contains params.Search (case-sensitive,
// empty matches all) in creation order, with vote counts computed in the
// same query.
func (s *Store) ListPosts(ctx context.Context, params models.ListPostsParams) ([]models.PostWithVotes, error) {
	query := fmt.Sprintf(postsWithVotes, s.dialect.Contains("p.title")) + `
	LIMIT ? OFFSET ?`

	rows, err := s.conn.QueryContext(ctx, s.q(query), params.Search, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []models.PostWithVotes{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// GetPost returns one post with its vote count
func (s *Store) GetPost(ctx context.Context, id int64) (models.PostWithVotes, error) {
	return s.getPost(ctx, s.conn, id)
}

func (s *Store) getPost(ctx context.Context, q querier, id int64) (models.PostWithVotes, error) {
	query := fmt.Sprintf(postsWithVotes, "p.id = ?")

	post, err := scanPost(q.QueryRowContext(ctx, s.q(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PostWithVotes{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.PostWithVotes{}, fmt.Errorf("failed to query post: %w", err)
	}

	return post, nil
}

// CreatePost inserts a post owned by ownerID and returns the stored row
func (s *Store) CreatePost(ctx context.Context, ownerID int64, in models.PostInput) (models.Post, error) {
	var post models.PostWithVotes

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx, s.q(`
			INSERT INTO posts (title, content, published, owner_id, created_at)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id
		`), in.Title, in.Content, in.Published, ownerID, time.Now().UTC().Truncate(time.Microsecond)).Scan(&id)

		if isForeignKeyViolation(err) {
			return fmt.Errorf("owner %d: %w", ownerID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		post, err = s.getPost(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Post{}, err
	}

	return post.Post, nil
}

// UpdatePost overwrites the mutable fields of a post owned by callerID.
// A missing post is ErrNotFound; someone else's post is ErrForbidden.
func (s *Store) UpdatePost(ctx context.Context, id, callerID int64, in models.PostInput) (models.Post, error) {
	var post models.PostWithVotes

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.checkOwner(ctx, tx, id, callerID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, s.q(`
			UPDATE posts
			SET title = ?, content = ?, published = ?
			WHERE id = ?
		`), in.Title, in.Content, in.Published, id)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		post, err = s.getPost(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Post{}, err
	}

	return post.Post, nil
}

// DeletePost removes a post owned by callerID; its votes go with it (ON DELETE CASCADE)
func (s *Store) DeletePost(ctx context.Context, id, callerID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.checkOwner(ctx, tx, id, callerID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM posts WHERE id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	})
}

// checkOwner locks the post row and verifies existence, then ownership
func (s *Store) checkOwner(ctx context.Context, tx *sql.Tx, id, callerID int64) error {
	var ownerID int64
	err := tx.QueryRowContext(ctx, s.q(`SELECT owner_id FROM posts WHERE id = ?`+s.dialect.ForUpdate()), id).Scan(&ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to query post owner: %w", err)
	}

	if ownerID != callerID {
		return fmt.Errorf("post %d owned by %d: %w", id, ownerID, ErrForbidden)
	}
	return nil
}
