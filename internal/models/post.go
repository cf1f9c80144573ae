package models

import "time"

// Post is a record owned exclusively by the post store of one blog. Code is
// unique within that blog and UpdatedAt is never earlier than CreatedAt.
type Post struct {
	Code      int64     `json:"code"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
