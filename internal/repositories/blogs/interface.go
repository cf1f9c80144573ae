package blogs

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// Repository describes CRUD and query operations over the blog collection.
// The implementation keeps the collection sorted ascending by id at all
// times and snapshots it to the blob store on every successful mutation.
type Repository interface {
	// Create inserts a new blog at its sorted position. Returns
	// common.ErrConflict when the id is already present.
	Create(ctx context.Context, id int64, name, url, email string) (*models.Blog, error)

	// Search looks a blog up by id in O(log n). Returns common.ErrNotFound
	// when absent.
	Search(id int64) (*models.Blog, error)

	// RetrieveByName returns all blogs whose name contains needle
	// (case-sensitive), in collection order. An empty needle matches all.
	RetrieveByName(needle string) []*models.Blog

	// Update mutates the blog identified by searchID in place, re-sorting
	// when the id changes. Empty fields keep their old values. Returns
	// common.ErrNotFound when searchID is absent and common.ErrConflict when
	// newID would collide with another blog.
	Update(ctx context.Context, searchID, newID int64, name, url, email string) error

	// Delete removes the blog and the backing storage of its posts.
	// Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// List returns the full collection sorted ascending by id.
	List() []*models.Blog
}
