// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and access token handling.

# Passwords

Passwords are stored as bcrypt hashes, never in plaintext:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrPasswordMismatch when the password is wrong.

# Access Tokens

TokenService issues HS256 JWTs carrying the user id and an expiry:

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	token, err := tokens.Issue(user.ID)
	userID, err := tokens.Verify(token)

Verify returns ErrInvalidToken for a bad signature, an unexpected signing
method, a malformed token or an expired one. There is no refresh flow.
*/
package auth
