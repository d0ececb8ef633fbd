package models

import "time"

// Vote directions
const (
	VoteRetract = 0
	VoteApply   = 1
)

const TokenTypeBearer = "bearer"

// Request types

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest mirrors the OAuth2 password form; username carries the email
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Published is optional and defaults to true.
// Ownership always comes from the token, so the body has no owner field.
type PostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

type VoteRequest struct {
	PostID int64 `json:"post_id"`
	Dir    *int  `json:"dir"`
}

// Response types

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	Owner     User      `json:"owner"`
}

// PostWithVotes is a read-time projection; votes is never stored
type PostWithVotes struct {
	Post
	Votes int64 `json:"votes"`
}

// PostInput holds the mutable fields of a post
type PostInput struct {
	Title     string
	Content   string
	Published bool
}

type ListPostsParams struct {
	Search string
	Limit  int
	Offset int
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
