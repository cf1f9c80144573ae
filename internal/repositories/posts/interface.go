package posts

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// Repository describes CRUD and query operations over the post collection
// of a single blog. Codes are allocated from the owning blog's counter and
// never reused: deleting a post does not roll the counter back.
type Repository interface {
	// Create allocates the next code, stamps both timestamps with the
	// current time and appends the post.
	Create(ctx context.Context, title, text string) (*models.Post, error)

	// Search looks a post up by code in O(log n). Returns common.ErrNotFound
	// when absent.
	Search(code int64) (*models.Post, error)

	// RetrieveByText returns all posts whose title or text contains needle
	// (case-insensitive), in creation order.
	RetrieveByText(needle string) []*models.Post

	// Update replaces title and text and bumps UpdatedAt. Returns
	// common.ErrNotFound when absent.
	Update(ctx context.Context, code int64, title, text string) (*models.Post, error)

	// Delete removes the post. Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, code int64) error

	// List returns the posts most-recent-first, i.e. descending by code.
	List() []*models.Post
}
