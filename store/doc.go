// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists users, posts and votes.

Methods return plain structs from the models package; nothing is loaded
lazily after a call returns.

# Users

	user, err := s.CreateUser(ctx, email, hash)  // ErrConflict on duplicate email
	user, err := s.FindUserByEmail(ctx, email)   // ErrNotFound
	user, err := s.FindUserByID(ctx, id)         // ErrNotFound

Emails are trimmed and lower-cased before they reach the database.

# Posts

ListPosts and GetPost compute each post's vote count in the same query as
the listing (LEFT JOIN votes, GROUP BY post), so posts without votes come
back with Votes == 0:

	posts, err := s.ListPosts(ctx, models.ListPostsParams{Search: "go", Limit: 10, Offset: 0})

Search is a case-sensitive literal substring match on the title.

UpdatePost and DeletePost run in one transaction: the post row is locked,
existence is checked (ErrNotFound), then ownership (ErrForbidden), then the
write happens.

# Votes

	err := s.CastVote(ctx, userID, postID, models.VoteApply)

Applying twice returns ErrConflict, retracting a missing vote returns
ErrVoteNotFound, voting on a missing post returns ErrNotFound. Uniqueness is
enforced by the votes primary key, not by application locking.

# Drivers

Constraint violations are recognised from lib/pq, pgx and modernc sqlite errors.
*/
package store
