package services

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks one authenticated user and the blog currently selected for
// editing, if any. It lives in memory only and dies with the process or on
// logout.
type Session struct {
	ID        string
	Username  string
	StartedAt time.Time

	currentBlogID *int64
}

func newSession(username string, startedAt time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Username:  username,
		StartedAt: startedAt,
	}
}

// CurrentBlogID returns the selected blog id and whether one is selected.
func (s *Session) CurrentBlogID() (int64, bool) {
	if s.currentBlogID == nil {
		return 0, false
	}
	return *s.currentBlogID, true
}

func (s *Session) setCurrentBlog(id int64) {
	s.currentBlogID = &id
}

func (s *Session) unsetCurrentBlog() {
	s.currentBlogID = nil
}

func (s *Session) isCurrentBlog(id int64) bool {
	return s.currentBlogID != nil && *s.currentBlogID == id
}
