// Package common defines shared sentinel errors and small utilities used
// across blogkeeper layers. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// Session / access-gate errors.
	ErrAccessDenied         = errors.New("access denied")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNoCurrentBlog        = errors.New("no current blog")

	// Store-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// Ownership errors (mutating a blog while it is selected for editing).
	ErrCurrentBlogLocked = errors.New("current blog locked")
)
