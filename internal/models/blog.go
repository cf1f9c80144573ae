// Package models defines the record types managed by blogkeeper.
package models

// Blog is a uniquely-keyed record owned by the blog store. PostCounter is
// the allocation counter for post codes within this blog; it never
// decreases, so post codes are never reused (see services package docs).
type Blog struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Email       string `json:"email"`
	PostCounter int64  `json:"post_counter"`
}

// SetValues overwrites blog fields in place. Zero id and empty strings keep
// the old value, so callers can update a subset of fields.
func (b *Blog) SetValues(id int64, name, url, email string) {
	if id != 0 {
		b.ID = id
	}
	if name != "" {
		b.Name = name
	}
	if url != "" {
		b.URL = url
	}
	if email != "" {
		b.Email = email
	}
}
