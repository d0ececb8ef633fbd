// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: email, password
  - LoginRequest: username (email), password
  - PostRequest: title, content, published (optional, default true)
  - VoteRequest: post_id, dir (1 = vote, 0 = retract)

# Response Types

Types for JSON responses:

  - TokenResponse: access_token, token_type
  - MessageResponse: message
  - ErrorResponse: error, message, fields

# Domain Types

Data transfer structs returned by the store:

  - User: account record; the password hash never leaves the server
  - Post: post row plus its owner
  - PostWithVotes: Post fields flattened with a votes count
  - PostInput: the mutable fields of a post
  - ListPostsParams: search / limit / offset for listings

# Constants

Vote directions:

	VoteRetract = 0
	VoteApply   = 1
*/
package models
