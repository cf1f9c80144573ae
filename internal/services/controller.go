// Package services implements the controller: the sole entry point through
// which presentation callers reach the record stores. Every operation first
// checks the session state, then the blog-selection state where required,
// and only then delegates. Failures surface as the sentinel errors of the
// common package and are never swallowed.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/blob"
	"github.com/dmitrijs2005/blogkeeper/internal/codec"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/credentials"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/repositories/blogs"
	"github.com/dmitrijs2005/blogkeeper/internal/repositories/posts"
)

// Controller orchestrates the session, the blog store and the post store of
// the currently selected blog. It owns no record data itself.
//
// A single mutex serializes all operations, so the controller may be shared
// by concurrent callers even though the underlying stores assume one
// caller at a time.
type Controller struct {
	mu sync.Mutex

	creds    *credentials.Store
	blobs    blob.Store
	codec    codec.Codec
	autosave bool
	log      logging.Logger
	now      func() time.Time

	session *Session
	blogs   blogs.Repository
	posts   posts.Repository
}

// NewController loads the blog collection from the blob store and returns a
// controller in the anonymous state.
func NewController(ctx context.Context, creds *credentials.Store, blobs blob.Store, c codec.Codec, autosave bool, log logging.Logger) *Controller {
	ctrl := &Controller{
		creds:    creds,
		blobs:    blobs,
		codec:    c,
		autosave: autosave,
		log:      log,
		now:      time.Now,
	}
	ctrl.blogs = ctrl.newBlogStore(ctx)
	return ctrl
}

func (c *Controller) newBlogStore(ctx context.Context) blogs.Repository {
	return blogs.NewStore(ctx, c.blobs, c.codec, c.autosave, c.log)
}

func (c *Controller) newPostStore(ctx context.Context, blog *models.Blog) posts.Repository {
	return posts.NewStore(ctx, blog, c.blobs, c.codec, c.autosave, c.now, c.log)
}

// requireAuth must be called with the mutex held.
func (c *Controller) requireAuth() error {
	if c.session == nil {
		return common.ErrAccessDenied
	}
	return nil
}

// requireCurrentBlog must be called with the mutex held.
func (c *Controller) requireCurrentBlog() error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if c.posts == nil {
		return common.ErrNoCurrentBlog
	}
	return nil
}

// Login authenticates the user and starts a session. It fails with
// ErrAlreadyAuthenticated while a session is active and with
// ErrInvalidCredentials when the username/password pair does not match.
func (c *Controller) Login(ctx context.Context, username string, password []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return common.ErrAlreadyAuthenticated
	}
	if !c.creds.Verify(username, password) {
		return common.ErrInvalidCredentials
	}

	c.session = newSession(username, c.now())
	c.log.Info(ctx, "logged in", "user", username, "session", c.session.ID)
	return nil
}

// Logout ends the session, dropping the current-blog selection with it.
// It fails with ErrNotAuthenticated when no session is active.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return common.ErrNotAuthenticated
	}

	c.log.Info(ctx, "logged out", "user", c.session.Username, "session", c.session.ID)
	c.session = nil
	c.posts = nil
	return nil
}

// LoggedIn reports whether a session is active.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// Username returns the authenticated user's name, or "" when anonymous.
func (c *Controller) Username() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.Username
}

// CurrentBlogID returns the selected blog id, for prompt display.
func (c *Controller) CurrentBlogID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return 0, false
	}
	return c.session.CurrentBlogID()
}

// CreateBlog registers a new blog.
func (c *Controller) CreateBlog(ctx context.Context, id int64, name, url, email string) (*models.Blog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	return c.blogs.Create(ctx, id, name, url, email)
}

// SearchBlog looks a blog up by id.
func (c *Controller) SearchBlog(ctx context.Context, id int64) (*models.Blog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	return c.blogs.Search(id)
}

// RetrieveBlogs returns blogs whose name contains needle.
func (c *Controller) RetrieveBlogs(ctx context.Context, needle string) ([]*models.Blog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	return c.blogs.RetrieveByName(needle), nil
}

// UpdateBlog changes blog data, optionally relabelling its id. The blog
// currently selected for editing is locked against updates.
func (c *Controller) UpdateBlog(ctx context.Context, searchID, newID int64, name, url, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return err
	}
	if c.session.isCurrentBlog(searchID) {
		return common.ErrCurrentBlogLocked
	}
	return c.blogs.Update(ctx, searchID, newID, name, url, email)
}

// DeleteBlog removes a blog and cascades its post collection. The blog
// currently selected for editing is locked against deletion.
func (c *Controller) DeleteBlog(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return err
	}
	if c.session.isCurrentBlog(id) {
		return common.ErrCurrentBlogLocked
	}
	return c.blogs.Delete(ctx, id)
}

// ListBlogs returns the full collection sorted ascending by id.
func (c *Controller) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	return c.blogs.List(), nil
}

// SetCurrentBlog selects the blog to edit, loading its post store.
func (c *Controller) SetCurrentBlog(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return err
	}
	blog, err := c.blogs.Search(id)
	if err != nil {
		return err
	}

	c.session.setCurrentBlog(id)
	c.posts = c.newPostStore(ctx, blog)
	c.log.Info(ctx, "current blog set", "id", id)
	return nil
}

// UnsetCurrentBlog clears the selection. Idempotent.
func (c *Controller) UnsetCurrentBlog(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return err
	}
	c.session.unsetCurrentBlog()
	c.posts = nil
	return nil
}

// GetCurrentBlog returns the selected blog, or nil when none is selected.
func (c *Controller) GetCurrentBlog(ctx context.Context) (*models.Blog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	id, ok := c.session.CurrentBlogID()
	if !ok {
		return nil, nil
	}
	return c.blogs.Search(id)
}

// CreatePost adds a post to the current blog.
func (c *Controller) CreatePost(ctx context.Context, title, text string) (*models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireCurrentBlog(); err != nil {
		return nil, err
	}
	return c.posts.Create(ctx, title, text)
}

// SearchPost looks a post of the current blog up by code.
func (c *Controller) SearchPost(ctx context.Context, code int64) (*models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireCurrentBlog(); err != nil {
		return nil, err
	}
	return c.posts.Search(code)
}

// RetrievePosts returns posts of the current blog whose title or text
// contains needle.
func (c *Controller) RetrievePosts(ctx context.Context, needle string) ([]*models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireCurrentBlog(); err != nil {
		return nil, err
	}
	return c.posts.RetrieveByText(needle), nil
}

// UpdatePost changes a post of the current blog.
func (c *Controller) UpdatePost(ctx context.Context, code int64, title, text string) (*models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireCurrentBlog(); err != nil {
		return nil, err
	}
	return c.posts.Update(ctx, code, title, text)
}

// DeletePost removes a post from the current blog.
func (c *Controller) DeletePost(ctx context.Context, code int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireCurrentBlog(); err != nil {
		return err
	}
	return c.posts.Delete(ctx, code)
}

// ListPosts returns the current blog's posts most-recent-first.
func (c *Controller) ListPosts(ctx context.Context) ([]*models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireCurrentBlog(); err != nil {
		return nil, err
	}
	return c.posts.List(), nil
}
